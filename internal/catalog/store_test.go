// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore("")
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_LoadEmpty(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Load(context.Background())
	if !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("Load on empty store: got %v, want ErrNoSnapshot", err)
	}
}

func TestStore_SaveLoad(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// More than ten entities so lexical key order would differ from numeric order
	// without zero padding.
	doc := &Document{Categories: []string{"villa", "cabin"}}
	for _, id := range []string{"k", "j", "i", "h", "g", "f", "e", "d", "c", "b", "a", "z"} {
		doc.Destinations = append(doc.Destinations, Entity{ID: id, Name: id, Tags: []string{"hiking"}})
	}
	doc.Listings = []Listing{
		{ID: "l2", Name: "Two", Category: "cabin", Price: 90, Bedrooms: 2, Amenities: []string{"wifi"}},
		{ID: "l1", Name: "One", Category: "villa", Price: 300, Bedrooms: 4},
	}
	doc.Labels.Tags = map[string]string{"hiking": "Trail Hiking"}

	orig, err := New(doc, "file:/tmp/catalog.json")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, orig); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(got.Destinations()) != len(orig.Destinations()) {
		t.Fatalf("destinations = %d, want %d", len(got.Destinations()), len(orig.Destinations()))
	}
	for i, e := range got.Destinations() {
		if e.ID != orig.Destinations()[i].ID {
			t.Errorf("destination %d = %q, want %q", i, e.ID, orig.Destinations()[i].ID)
		}
	}
	if got.Listings()[0].ID != "l2" || got.Listings()[0].Amenities[0] != "wifi" {
		t.Errorf("unexpected first listing: %+v", got.Listings()[0])
	}
	if cats := got.Categories(); len(cats) != 2 || cats[0] != "villa" {
		t.Errorf("Categories() = %v, want [villa cabin]", cats)
	}
	if got.Labels().Tag("hiking") != "Trail Hiking" {
		t.Errorf("label override lost: %q", got.Labels().Tag("hiking"))
	}
	if got.Source() != "store:file:/tmp/catalog.json" {
		t.Errorf("Source() = %q", got.Source())
	}
}

func TestStore_SaveReplacesPreviousSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	big, err := New(&Document{Destinations: []Entity{
		{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"},
	}}, "first")
	if err != nil {
		t.Fatal(err)
	}
	small, err := New(&Document{Destinations: []Entity{{ID: "x", Name: "X"}}}, "second")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Save(ctx, big); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, small); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Destinations()) != 1 || got.Destinations()[0].ID != "x" {
		t.Errorf("stale entries survived: %+v", got.Destinations())
	}
}

func TestStore_SaveCanceledContext(t *testing.T) {
	s := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := New(&Document{}, "test")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, c); !errors.Is(err, context.Canceled) {
		t.Errorf("Save with canceled context: got %v", err)
	}
}
