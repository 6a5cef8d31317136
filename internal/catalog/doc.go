// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package catalog holds the destinations and rental listings served by Wayfinder.
//
// # Snapshots
//
// A Catalog is immutable. Holder publishes the current snapshot through an
// atomic pointer and stamps it with a version that increases on every
// Replace, so readers (scoring, filtering, caches) never lock and can key
// cached results by version.
//
// # Sources
//
// Documents are JSON or YAML with three sections:
//
//	destinations:
//	  - id: banff
//	    name: Banff National Park
//	    tags: [hiking, wildlife]
//	    travel_styles: [adventure]
//	    best_seasons: [summer]
//	    recommended_duration: week
//	listings:
//	  - name: Bow River Cabin          # id derived: bow-river-cabin
//	    category: cabin
//	    price: 180
//	    bedrooms: 2
//	    amenities: [wifi, fireplace]
//	labels:
//	  tags: {hiking: Hiking}
//
// Every document is checked against an embedded JSON Schema (YAML is
// normalized to JSON first) and then against struct validation rules.
// Manager.Bootstrap tries the configured file, then the snapshot persisted in
// BadgerDB by Store, then the embedded seed catalog.
//
// # Labels
//
// Labels resolves identifiers to display names per facet with identity
// fallback, replacing per-amenity boolean fields with one table.
package catalog
