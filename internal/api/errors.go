// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/wayfinder/internal/listing"
	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/recommend"
	"github.com/tomtom215/wayfinder/internal/session"
	"github.com/tomtom215/wayfinder/internal/validation"
)

// ErrEmptyBody is returned by decodeBody when a body is required but missing.
var ErrEmptyBody = errors.New("request body is empty")

// requestError is a malformed request that is not a validation failure,
// e.g. a body that is not JSON.
type requestError struct {
	msg string
	err error
}

func (e *requestError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *requestError) Unwrap() error { return e.err }

// writeServiceError maps a domain error onto the response envelope.
// Unrecognized errors are logged and reported as INTERNAL_ERROR.
func writeServiceError(rw *ResponseWriter, r *http.Request, err error) {
	var (
		verr  *validation.Error
		prerr *listing.PriceRangeError
		rerr  *requestError
	)

	switch {
	case errors.As(err, &rerr):
		rw.BadRequest(rerr.Error())
	case errors.As(err, &verr):
		rw.ValidationError("Request validation failed", verr.Fields)
	case errors.As(err, &prerr):
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, "Invalid price range", map[string]string{
			"field":  "price",
			"input":  prerr.Input,
			"reason": prerr.Reason,
		})
	case errors.Is(err, session.ErrSessionNotFound):
		rw.NotFound("Session not found")
	case errors.Is(err, session.ErrBackendUnavailable):
		rw.ServiceUnavailable("Session backend unavailable")
	case errors.Is(err, recommend.ErrNoCatalog):
		rw.ServiceUnavailable("Catalog not loaded")
	case errors.Is(err, context.DeadlineExceeded):
		rw.ServiceUnavailable("Request timed out")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		rw.InternalError("Internal server error")
	}
}
