// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package services wraps Wayfinder's long-running components as suture.Service
implementations so the supervisor tree can restart them on failure.

Services:

  - HTTPServerService: runs the API server and shuts it down gracefully
  - CatalogRefreshService: reloads the catalog on a cron schedule
  - MaintenanceService: purges expired cache entries and sessions

Each service returns ctx.Err() on cancellation and implements fmt.Stringer
so supervisor logs carry a readable name.
*/
package services
