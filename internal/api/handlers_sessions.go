// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wayfinder/internal/preference"
	"github.com/tomtom215/wayfinder/internal/validation"
)

// facetValue validates identifiers taken from the URL path.
type facetValue struct {
	Value string `json:"value" validate:"required,max=64,identifier"`
}

// CreateSession handles POST /api/v1/sessions with an optional selection body.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	snap, err := decodeSnapshot(w, r)
	if err != nil {
		writeServiceError(rw, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	sess, err := h.sessions.Create(ctx, &snap)
	if err != nil {
		writeServiceError(rw, r, err)
		return
	}
	rw.Created(sess, nil)
}

// GetSession handles GET /api/v1/sessions/{id}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	sess, err := h.sessions.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(rw, r, err)
		return
	}
	rw.Success(sess)
}

// DeleteSession handles DELETE /api/v1/sessions/{id}.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.sessions.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(rw, r, err)
		return
	}
	rw.NoContent()
}

// ToggleTag handles POST /api/v1/sessions/{id}/tags/{tag}.
func (h *Handler) ToggleTag(w http.ResponseWriter, r *http.Request) {
	h.updateFacet(w, r, "tag", (*preference.Selection).ToggleTag)
}

// SelectStyle handles PUT /api/v1/sessions/{id}/style/{value}.
func (h *Handler) SelectStyle(w http.ResponseWriter, r *http.Request) {
	h.updateFacet(w, r, "value", (*preference.Selection).SelectStyle)
}

// SelectSeason handles PUT /api/v1/sessions/{id}/season/{value}.
func (h *Handler) SelectSeason(w http.ResponseWriter, r *http.Request) {
	h.updateFacet(w, r, "value", (*preference.Selection).SelectSeason)
}

// SelectDuration handles PUT /api/v1/sessions/{id}/duration/{value}.
func (h *Handler) SelectDuration(w http.ResponseWriter, r *http.Request) {
	h.updateFacet(w, r, "value", (*preference.Selection).SelectDuration)
}

// ResetSession handles POST /api/v1/sessions/{id}/reset.
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	h.updateSession(w, r, (*preference.Selection).Reset)
}

// SessionRecommendations handles GET /api/v1/sessions/{id}/recommendations,
// ranking the catalog against the session's current selection.
func (h *Handler) SessionRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	sel, err := h.sessions.Selection(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(rw, r, err)
		return
	}
	h.writeRecommendations(rw, r, sel)
}

// updateFacet applies a single-identifier mutation taken from URL parameter param.
func (h *Handler) updateFacet(w http.ResponseWriter, r *http.Request, param string, apply func(*preference.Selection, string)) {
	value := facetValue{Value: chi.URLParam(r, param)}
	if verr := validation.ValidateStruct(&value); verr != nil {
		writeServiceError(NewResponseWriter(w, r), r, verr)
		return
	}

	h.updateSession(w, r, func(sel *preference.Selection) {
		apply(sel, value.Value)
	})
}

func (h *Handler) updateSession(w http.ResponseWriter, r *http.Request, fn func(*preference.Selection)) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	sess, err := h.sessions.Update(ctx, chi.URLParam(r, "id"), fn)
	if err != nil {
		writeServiceError(rw, r, err)
		return
	}
	rw.Success(sess)
}
