// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package listing

import (
	"strings"
)

// Query is the raw filter input from a request or the command line.
type Query struct {
	Price     string   `json:"price,omitempty" validate:"max=64"`
	Category  string   `json:"category,omitempty" validate:"max=64"`
	Bedrooms  int      `json:"bedrooms,omitempty" validate:"gte=0,lte=100"`
	Amenities []string `json:"amenities,omitempty" validate:"max=32,dive,required,max=64"`
	Search    string   `json:"q,omitempty" validate:"max=200"`
}

// Predicates parses q into a PredicateSet. The only failure is a malformed
// price range, reported as *PriceRangeError.
//
//nolint:gocritic // value receiver keeps Query usable as a plain value
func (q Query) Predicates() (PredicateSet, error) {
	price, err := ParsePriceRange(q.Price)
	if err != nil {
		return PredicateSet{}, err
	}
	return PredicateSet{
		Price:       price,
		Category:    strings.TrimSpace(q.Category),
		MinBedrooms: q.Bedrooms,
		Amenities:   normalizeAmenities(q.Amenities),
		Search:      q.Search,
	}, nil
}

// SplitList splits a comma-separated value, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func normalizeAmenities(in []string) []string {
	var out []string
	for _, a := range in {
		out = append(out, SplitList(a)...)
	}
	return out
}
