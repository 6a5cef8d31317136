// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package listing filters rental listings and counts them per category.
//
// ApplyFilters combines the predicates of a PredicateSet with logical AND.
// Empty predicates are skipped. Amenities use ALL semantics and the search
// term matches name, location or category case-insensitively.
//
// Price ranges are parsed by ParsePriceRange, which rejects malformed input
// with a *PriceRangeError instead of producing a range that matches nothing.
//
// CountCategories reports totals over the full catalog, independent of the
// active filter.
package listing
