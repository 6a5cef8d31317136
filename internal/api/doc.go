// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package api provides the HTTP REST API layer for Wayfinder.

Key Components:

  - Router: chi route table and middleware stack
  - Handler: request handlers over the catalog holder, the recommendation
    engine and the session manager
  - ResponseWriter: the JSON envelope written with goccy/go-json
  - writeServiceError: maps domain errors to HTTP status and error code

Endpoints:

	GET    /health
	GET    /metrics
	GET    /api/v1/status
	GET    /api/v1/labels
	GET    /api/v1/destinations
	GET    /api/v1/destinations/{id}
	POST   /api/v1/recommendations
	GET    /api/v1/listings?price=&category=&bedrooms=&amenities=&q=
	GET    /api/v1/listings/categories
	POST   /api/v1/sessions
	GET    /api/v1/sessions/{id}
	DELETE /api/v1/sessions/{id}
	POST   /api/v1/sessions/{id}/tags/{tag}
	PUT    /api/v1/sessions/{id}/style/{value}
	PUT    /api/v1/sessions/{id}/season/{value}
	PUT    /api/v1/sessions/{id}/duration/{value}
	POST   /api/v1/sessions/{id}/reset
	GET    /api/v1/sessions/{id}/recommendations

Response format:

	{
	  "success": true,
	  "data": { ... },
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 1, "catalog_version": 3, "cached": false}
	}

Errors carry {"code", "message", "details", "request_id"} under "error".
Codes: VALIDATION_FAILED and BAD_REQUEST (400), NOT_FOUND (404),
TOO_MANY_REQUESTS (429), INTERNAL_ERROR (500), SERVICE_UNAVAILABLE (503).

The /api/v1 routes are rate limited per client IP with go-chi/httprate.
CORS is handled globally by go-chi/cors so preflight requests succeed.
*/
package api
