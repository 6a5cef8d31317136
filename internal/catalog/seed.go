// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	_ "embed"
)

//go:embed seed.yaml
var seedDocument []byte

// Seed returns the built-in catalog shipped with the binary.
func Seed() (*Catalog, error) {
	return Parse(seedDocument, FormatYAML, "seed")
}
