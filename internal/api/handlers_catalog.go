// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Labels handles GET /api/v1/labels.
func (h *Handler) Labels(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	c := h.currentCatalog(rw)
	if c == nil {
		return
	}
	rw.SuccessWithMeta(c.Labels(), catalogMeta(c))
}

// Destinations handles GET /api/v1/destinations, in catalog order.
func (h *Handler) Destinations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	c := h.currentCatalog(rw)
	if c == nil {
		return
	}
	rw.SuccessWithMeta(c.Destinations(), catalogMeta(c))
}

// Destination handles GET /api/v1/destinations/{id}.
func (h *Handler) Destination(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	c := h.currentCatalog(rw)
	if c == nil {
		return
	}

	id := chi.URLParam(r, "id")
	dest, ok := c.Destination(id)
	if !ok {
		rw.NotFound("Destination not found: " + id)
		return
	}
	rw.SuccessWithMeta(dest, catalogMeta(c))
}
