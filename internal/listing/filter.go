// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package listing

import (
	"strings"

	"github.com/tomtom215/wayfinder/internal/catalog"
)

// PredicateSet is the combined filter applied to listings. Every predicate
// whose field is empty matches all listings; the others are ANDed.
type PredicateSet struct {
	// Price bounds the nightly price. Zero means unbounded.
	Price PriceRange `json:"price"`

	// Category matches case-insensitively.
	Category string `json:"category,omitempty"`

	// MinBedrooms requires at least this many bedrooms.
	MinBedrooms int `json:"min_bedrooms,omitempty"`

	// Amenities must all be present on a listing.
	Amenities []string `json:"amenities,omitempty"`

	// Search is matched case-insensitively as a substring of the name,
	// location or category.
	Search string `json:"search,omitempty"`
}

// IsEmpty reports whether the set matches every listing.
//
//nolint:gocritic // value receiver keeps PredicateSet usable as a plain value
func (p PredicateSet) IsEmpty() bool {
	return p.Price.IsZero() &&
		p.Category == "" &&
		p.MinBedrooms <= 0 &&
		len(p.Amenities) == 0 &&
		strings.TrimSpace(p.Search) == ""
}

// Match reports whether l satisfies every predicate.
//
//nolint:gocritic // value receiver keeps PredicateSet usable as a plain value
func (p PredicateSet) Match(l *catalog.Listing) bool {
	return p.rejection(l, strings.ToLower(strings.TrimSpace(p.Search))) == ""
}

// rejection returns the name of the first predicate l fails, or "".
// search must already be trimmed and lower-cased.
//
//nolint:gocritic // value receiver keeps PredicateSet usable as a plain value
func (p PredicateSet) rejection(l *catalog.Listing, search string) string {
	if !p.Price.Contains(l.Price) {
		return "price"
	}
	if p.Category != "" && !l.InCategory(p.Category) {
		return "category"
	}
	if p.MinBedrooms > 0 && l.Bedrooms < p.MinBedrooms {
		return "bedrooms"
	}
	for _, a := range p.Amenities {
		if !l.HasAmenity(a) {
			return "amenities"
		}
	}
	if search != "" && !matchesSearch(l, search) {
		return "search"
	}
	return ""
}

func matchesSearch(l *catalog.Listing, search string) bool {
	return strings.Contains(strings.ToLower(l.Name), search) ||
		strings.Contains(strings.ToLower(l.Location), search) ||
		strings.Contains(strings.ToLower(l.Category), search)
}

// ApplyFilters returns the listings matching p, in input order. The input is
// never modified; an empty predicate set returns a copy of all listings.
//
//nolint:gocritic // value receiver keeps PredicateSet usable as a plain value
func ApplyFilters(listings []catalog.Listing, p PredicateSet) []catalog.Listing {
	out := make([]catalog.Listing, 0, len(listings))
	if p.IsEmpty() {
		return append(out, listings...)
	}

	search := strings.ToLower(strings.TrimSpace(p.Search))
	for i := range listings {
		if p.rejection(&listings[i], search) == "" {
			out = append(out, listings[i])
		}
	}
	return out
}

// CategoryCount is the number of listings in one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CountCategories counts the listings of each category across the whole
// input, ignoring any active filter. Counts follow the order of categories
// and include zero counts. When categories is empty, the distinct categories
// of listings are used in first-seen order.
func CountCategories(listings []catalog.Listing, categories []string) []CategoryCount {
	if len(categories) == 0 {
		categories = distinctCategories(listings)
	}

	counts := make([]CategoryCount, len(categories))
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		counts[i].Category = c
		key := strings.ToLower(c)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	for i := range listings {
		if j, ok := index[strings.ToLower(listings[i].Category)]; ok {
			counts[j].Count++
		}
	}
	return counts
}

func distinctCategories(listings []catalog.Listing) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range listings {
		key := strings.ToLower(listings[i].Category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, listings[i].Category)
	}
	return out
}
