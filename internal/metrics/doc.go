// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry via promauto at package
// init. Record* helpers keep label values consistent between call sites:
//
//	metrics.RecordRecommendation("miss", time.Since(start), len(items))
//	metrics.RecordCatalogLoad("file", err, version, len(destinations), len(listings))
package metrics
