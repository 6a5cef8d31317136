// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package listing

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tomtom215/wayfinder/internal/catalog"
)

func testListings() []catalog.Listing {
	return []catalog.Listing{
		{ID: "loft", Name: "Alfama Loft", Location: "Lisbon, Portugal", Category: "loft", Price: 120, Bedrooms: 1, Amenities: []string{"wifi", "kitchen"}},
		{ID: "villa", Name: "Sintra Villa", Location: "Sintra, Portugal", Category: "villa", Price: 450, Bedrooms: 4, Amenities: []string{"wifi", "pool", "parking"}},
		{ID: "cabin", Name: "Lakeside Cabin", Location: "Banff, Canada", Category: "cabin", Price: 210, Bedrooms: 2, Amenities: []string{"fireplace", "parking"}},
		{ID: "studio", Name: "Marais Studio", Location: "Paris, France", Category: "Loft", Price: 95, Bedrooms: 0, Amenities: []string{"wifi"}},
	}
}

func ids(listings []catalog.Listing) []string {
	out := make([]string, len(listings))
	for i := range listings {
		out[i] = listings[i].ID
	}
	return out
}

func mustRange(t *testing.T, s string) PriceRange {
	t.Helper()
	r, err := ParsePriceRange(s)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

// ========================================
// ApplyFilters
// ========================================

func TestApplyFilters_EmptyReturnsAll(t *testing.T) {
	in := testListings()

	got := ApplyFilters(in, PredicateSet{})

	if !reflect.DeepEqual(got, in) {
		t.Errorf("empty predicate set changed the result: %v", ids(got))
	}
	got[0].Name = "changed"
	if in[0].Name == "changed" {
		t.Error("result must not alias the input slice")
	}
}

func TestApplyFilters(t *testing.T) {
	tests := []struct {
		name string
		p    func(t *testing.T) PredicateSet
		want []string
	}{
		{
			name: "price range",
			p:    func(t *testing.T) PredicateSet { return PredicateSet{Price: mustRange(t, "100-300")} },
			want: []string{"loft", "cabin"},
		},
		{
			name: "open price range",
			p:    func(t *testing.T) PredicateSet { return PredicateSet{Price: mustRange(t, "200+")} },
			want: []string{"villa", "cabin"},
		},
		{
			name: "category is case-insensitive",
			p:    func(t *testing.T) PredicateSet { return PredicateSet{Category: "LOFT"} },
			want: []string{"loft", "studio"},
		},
		{
			name: "minimum bedrooms",
			p:    func(t *testing.T) PredicateSet { return PredicateSet{MinBedrooms: 2} },
			want: []string{"villa", "cabin"},
		},
		{
			name: "all amenities required",
			p:    func(t *testing.T) PredicateSet { return PredicateSet{Amenities: []string{"wifi", "parking"}} },
			want: []string{"villa"},
		},
		{
			name: "search matches location",
			p:    func(t *testing.T) PredicateSet { return PredicateSet{Search: "portugal"} },
			want: []string{"loft", "villa"},
		},
		{
			name: "search matches category",
			p:    func(t *testing.T) PredicateSet { return PredicateSet{Search: "CAB"} },
			want: []string{"cabin"},
		},
		{
			name: "search matches name",
			p:    func(t *testing.T) PredicateSet { return PredicateSet{Search: "  marais "} },
			want: []string{"studio"},
		},
		{
			name: "predicates are ANDed",
			p: func(t *testing.T) PredicateSet {
				return PredicateSet{Price: mustRange(t, "-200"), Category: "loft", Amenities: []string{"kitchen"}}
			},
			want: []string{"loft"},
		},
		{
			name: "nothing matches",
			p:    func(t *testing.T) PredicateSet { return PredicateSet{Search: "tokyo"} },
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(testListings(), tt.p(t))
			if !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("got %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestApplyFilters_MissingOneAmenityExcludes(t *testing.T) {
	in := []catalog.Listing{{ID: "a", Amenities: []string{"wifi"}}}

	got := ApplyFilters(in, PredicateSet{Amenities: []string{"wifi", "pool"}})

	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", ids(got))
	}
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	in := testListings()
	before := testListings()

	ApplyFilters(in, PredicateSet{Category: "villa", Search: "sintra"})

	if !reflect.DeepEqual(in, before) {
		t.Error("ApplyFilters modified its input")
	}
}

func TestPredicateSet_Match(t *testing.T) {
	l := testListings()[1]
	if !(PredicateSet{Category: "Villa", Search: "SINTRA"}).Match(&l) {
		t.Error("expected villa to match")
	}
	if (PredicateSet{MinBedrooms: 5}).Match(&l) {
		t.Error("expected villa to fail bedroom predicate")
	}
}

// ========================================
// Query
// ========================================

func TestQuery_Predicates(t *testing.T) {
	q := Query{
		Price:     "100-300",
		Category:  " cabin ",
		Bedrooms:  2,
		Amenities: []string{"wifi, pool", "", "parking"},
		Search:    "lake",
	}

	p, err := q.Predicates()
	if err != nil {
		t.Fatalf("Predicates: %v", err)
	}
	if p.Price != (PriceRange{Min: 100, Max: 300, HasMax: true}) {
		t.Errorf("Price = %+v", p.Price)
	}
	if p.Category != "cabin" || p.MinBedrooms != 2 || p.Search != "lake" {
		t.Errorf("unexpected predicates: %+v", p)
	}
	if !reflect.DeepEqual(p.Amenities, []string{"wifi", "pool", "parking"}) {
		t.Errorf("Amenities = %v", p.Amenities)
	}
}

func TestQuery_InvalidPrice(t *testing.T) {
	_, err := Query{Price: "cheap"}.Predicates()
	if !errors.Is(err, ErrInvalidPriceRange) {
		t.Errorf("got %v, want ErrInvalidPriceRange", err)
	}
}

func TestSplitList(t *testing.T) {
	if got := SplitList(" wifi ,, pool,"); !reflect.DeepEqual(got, []string{"wifi", "pool"}) {
		t.Errorf("SplitList = %v", got)
	}
	if got := SplitList(""); got != nil {
		t.Errorf("SplitList(\"\") = %v, want nil", got)
	}
}

// ========================================
// CountCategories
// ========================================

func TestCountCategories(t *testing.T) {
	got := CountCategories(testListings(), []string{"villa", "loft", "cabin", "house"})

	want := []CategoryCount{
		{Category: "villa", Count: 1},
		{Category: "loft", Count: 2},
		{Category: "cabin", Count: 1},
		{Category: "house", Count: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestCountCategories_DistinctFallback(t *testing.T) {
	got := CountCategories(testListings(), nil)

	want := []CategoryCount{
		{Category: "loft", Count: 2},
		{Category: "villa", Count: 1},
		{Category: "cabin", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestCountCategories_IgnoresFilters(t *testing.T) {
	all := testListings()
	filtered := ApplyFilters(all, PredicateSet{Category: "villa"})

	totals := CountCategories(all, []string{"loft"})
	if totals[0].Count != 2 {
		t.Errorf("loft total = %d, want 2", totals[0].Count)
	}
	if len(filtered) != 1 {
		t.Fatalf("filtered = %v", ids(filtered))
	}
}

func TestCountCategories_Empty(t *testing.T) {
	if got := CountCategories(nil, nil); len(got) != 0 {
		t.Errorf("got %+v, want empty", got)
	}
}
