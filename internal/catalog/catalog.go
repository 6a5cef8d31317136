// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import "time"

// Document is the serialized form of a catalog, as read from JSON or YAML files
// and as persisted by Store.
type Document struct {
	Destinations []Entity  `json:"destinations" validate:"dive"`
	Listings     []Listing `json:"listings" validate:"dive"`

	// Categories is the ordered list of known listing categories. When empty,
	// categories are taken from the listings in first-seen order.
	Categories []string `json:"categories,omitempty" validate:"omitempty,unique,dive,identifier"`

	// Labels override or extend DefaultLabels.
	Labels Labels `json:"labels,omitempty"`
}

// Catalog is an immutable snapshot of destinations and listings.
// The slices returned by its accessors must not be modified.
type Catalog struct {
	destinations []Entity
	listings     []Listing
	categories   []string
	labels       Labels

	destIndex    map[string]int
	listingIndex map[string]int

	source   string
	loadedAt time.Time
	version  uint64
}

// New builds a catalog from doc. Labels in doc are merged over DefaultLabels.
// Duplicate destination or listing ids are rejected.
func New(doc *Document, source string) (*Catalog, error) {
	c := &Catalog{
		destinations: append([]Entity(nil), doc.Destinations...),
		listings:     append([]Listing(nil), doc.Listings...),
		labels:       DefaultLabels().Merge(doc.Labels),
		destIndex:    make(map[string]int, len(doc.Destinations)),
		listingIndex: make(map[string]int, len(doc.Listings)),
		source:       source,
		loadedAt:     time.Now().UTC(),
	}

	for i := range c.destinations {
		id := c.destinations[i].ID
		if _, dup := c.destIndex[id]; dup {
			return nil, &DuplicateIDError{Kind: "destination", ID: id}
		}
		c.destIndex[id] = i
	}
	for i := range c.listings {
		id := c.listings[i].ID
		if _, dup := c.listingIndex[id]; dup {
			return nil, &DuplicateIDError{Kind: "listing", ID: id}
		}
		c.listingIndex[id] = i
	}

	if len(doc.Categories) > 0 {
		c.categories = append([]string(nil), doc.Categories...)
	} else {
		c.categories = distinctCategories(c.listings)
	}

	return c, nil
}

func distinctCategories(listings []Listing) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := range listings {
		cat := listings[i].Category
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}

// Destinations returns all destinations in catalog order.
func (c *Catalog) Destinations() []Entity { return c.destinations }

// Listings returns all listings in catalog order.
func (c *Catalog) Listings() []Listing { return c.listings }

// Categories returns the known listing categories in display order.
func (c *Catalog) Categories() []string { return c.categories }

// Labels returns the display-name resolver.
func (c *Catalog) Labels() Labels { return c.labels }

// Source describes where the catalog was loaded from, e.g. "file:/etc/wayfinder/catalog.yaml".
func (c *Catalog) Source() string { return c.source }

// LoadedAt is when the catalog was built.
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// Version is assigned by Holder when the catalog is published. Zero if never published.
func (c *Catalog) Version() uint64 { return c.version }

// Destination returns the destination with id.
func (c *Catalog) Destination(id string) (Entity, bool) {
	i, ok := c.destIndex[id]
	if !ok {
		return Entity{}, false
	}
	return c.destinations[i], true
}

// Listing returns the listing with id.
func (c *Catalog) Listing(id string) (Listing, bool) {
	i, ok := c.listingIndex[id]
	if !ok {
		return Listing{}, false
	}
	return c.listings[i], true
}

// Document returns the serialized form of c.
func (c *Catalog) Document() *Document {
	return &Document{
		Destinations: append([]Entity(nil), c.destinations...),
		Listings:     append([]Listing(nil), c.listings...),
		Categories:   append([]string(nil), c.categories...),
		Labels:       c.labels,
	}
}
