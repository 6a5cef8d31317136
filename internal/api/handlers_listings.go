// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/wayfinder/internal/catalog"
	"github.com/tomtom215/wayfinder/internal/listing"
	"github.com/tomtom215/wayfinder/internal/metrics"
)

// ListingsResult is the body of GET /api/v1/listings.
type ListingsResult struct {
	Listings []catalog.Listing    `json:"listings"`
	Total    int                  `json:"total"`
	Matched  int                  `json:"matched"`
	Filters  listing.PredicateSet `json:"filters"`
}

// Listings handles GET /api/v1/listings?price=&category=&bedrooms=&amenities=&q=
func (h *Handler) Listings(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	query, err := listingQuery(r)
	if err != nil {
		recordRejection(err)
		writeServiceError(rw, r, err)
		return
	}
	preds, err := query.Predicates()
	if err != nil {
		recordRejection(err)
		writeServiceError(rw, r, err)
		return
	}

	c := h.currentCatalog(rw)
	if c == nil {
		return
	}

	all := c.Listings()
	matched := listing.ApplyFilters(all, preds)
	metrics.ListingFilterMatches.Observe(float64(len(matched)))

	rw.SuccessWithMeta(ListingsResult{
		Listings: matched,
		Total:    len(all),
		Matched:  len(matched),
		Filters:  preds,
	}, catalogMeta(c))
}

// Categories handles GET /api/v1/listings/categories. Counts cover the
// whole catalog regardless of any filter.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	c := h.currentCatalog(rw)
	if c == nil {
		return
	}
	rw.SuccessWithMeta(listing.CountCategories(c.Listings(), c.Categories()), catalogMeta(c))
}

func recordRejection(err error) {
	reason := "validation"
	if errors.Is(err, listing.ErrInvalidPriceRange) {
		reason = "price_range"
	}
	metrics.ListingFilterRejections.WithLabelValues(reason).Inc()
}
