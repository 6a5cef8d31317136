// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/wayfinder/internal/preference"
)

// Recommend handles POST /api/v1/recommendations. The body is an optional
// selection snapshot; an empty body ranks nothing and returns no items.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	snap, err := decodeSnapshot(w, r)
	if err != nil {
		writeServiceError(rw, r, err)
		return
	}

	h.writeRecommendations(rw, r, preference.FromSnapshot(snap))
}

func (h *Handler) writeRecommendations(rw *ResponseWriter, r *http.Request, sel *preference.Selection) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, sel)
	if err != nil {
		writeServiceError(rw, r, err)
		return
	}

	rw.SuccessWithMeta(resp, &APIMeta{
		CatalogVersion: resp.Metadata.CatalogVersion,
		Cached:         resp.Metadata.CacheHit,
	})
}
