// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/wayfinder/internal/listing"
	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/recommend"
	"github.com/tomtom215/wayfinder/internal/session"
	"github.com/tomtom215/wayfinder/internal/validation"
)

func requestWithID(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(logging.ContextWithRequestID(req.Context(), id))
}

// =====================================================
// Envelope
// =====================================================

func TestResponseWriter_SuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec, requestWithID("req-1"))

	rw.SuccessWithMeta(map[string]int{"n": 1}, &APIMeta{CatalogVersion: 7, Cached: true})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	var data map[string]int
	env := decodeEnvelope(t, rec, &data)
	if !env.Success || data["n"] != 1 {
		t.Errorf("envelope = %+v, data = %v", env, data)
	}
	if env.Meta.RequestID != "req-1" || env.Meta.CatalogVersion != 7 || !env.Meta.Cached {
		t.Errorf("meta = %+v", env.Meta)
	}
	if env.Meta.Timestamp.IsZero() {
		t.Error("meta timestamp not set")
	}
}

func TestResponseWriter_Created(t *testing.T) {
	rec := httptest.NewRecorder()
	NewResponseWriter(rec, requestWithID("req-2")).Created("x", nil)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestResponseWriter_Errors(t *testing.T) {
	tests := []struct {
		name   string
		write  func(rw *ResponseWriter)
		status int
		code   string
	}{
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("x") }, http.StatusBadRequest, ErrCodeBadRequest},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("x") }, http.StatusNotFound, ErrCodeNotFound},
		{"too many", func(rw *ResponseWriter) { rw.TooManyRequests("x") }, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("x") }, http.StatusInternalServerError, ErrCodeInternalError},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable("x") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"validation", func(rw *ResponseWriter) { rw.ValidationError("x", nil) }, http.StatusBadRequest, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(NewResponseWriter(rec, requestWithID("req-3")))
			env := expectError(t, rec, tt.status, tt.code)
			if env.Error.RequestID != "req-3" {
				t.Errorf("request_id = %q", env.Error.RequestID)
			}
		})
	}
}

// =====================================================
// Error mapping
// =====================================================

func TestWriteServiceError(t *testing.T) {
	_, priceErr := listing.ParsePriceRange("500-100")

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &validation.Error{Fields: []validation.FieldError{{Field: "tags", Tag: "max"}}}, http.StatusBadRequest, ErrCodeValidationFailed},
		{"price range", fmt.Errorf("query: %w", priceErr), http.StatusBadRequest, ErrCodeValidationFailed},
		{"malformed", &requestError{msg: "invalid JSON body"}, http.StatusBadRequest, ErrCodeBadRequest},
		{"session missing", fmt.Errorf("get: %w", session.ErrSessionNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"backend down", session.ErrBackendUnavailable, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"no catalog", recommend.ErrNoCatalog, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"timeout", context.DeadlineExceeded, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := requestWithID("req-4")
			writeServiceError(NewResponseWriter(rec, req), req, tt.err)
			expectError(t, rec, tt.status, tt.code)
		})
	}
}
