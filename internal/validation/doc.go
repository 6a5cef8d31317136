// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package validation wraps go-playground/validator v10 with a shared instance,
// JSON field naming, an "identifier" rule for catalog codes, and translation of
// failures into FieldError values that the API and the catalog loader report.
package validation
