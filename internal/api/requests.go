// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfinder/internal/listing"
	"github.com/tomtom215/wayfinder/internal/preference"
	"github.com/tomtom215/wayfinder/internal/validation"
)

// maxBodyBytes bounds request bodies. Selections are small.
const maxBodyBytes = 64 << 10

// decodeBody decodes a JSON body into dst and validates it. An empty body
// leaves dst untouched and returns ErrEmptyBody.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return &requestError{msg: "invalid JSON body", err: err}
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		return verr
	}
	return nil
}

// decodeSnapshot reads an optional Snapshot body. A missing body yields the
// empty selection.
func decodeSnapshot(w http.ResponseWriter, r *http.Request) (preference.Snapshot, error) {
	var snap preference.Snapshot
	if r.Body == nil || r.ContentLength == 0 {
		return snap, nil
	}
	if err := decodeBody(w, r, &snap); err != nil && !errors.Is(err, ErrEmptyBody) {
		return preference.Snapshot{}, err
	}
	return snap, nil
}

// listingQuery builds a listing.Query from URL parameters:
// price, category, bedrooms, amenities (comma list, repeatable) and q.
func listingQuery(r *http.Request) (listing.Query, error) {
	params := r.URL.Query()

	q := listing.Query{
		Price:     params.Get("price"),
		Category:  params.Get("category"),
		Amenities: params["amenities"],
		Search:    params.Get("q"),
	}

	if raw := params.Get("bedrooms"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return listing.Query{}, &validation.Error{Fields: []validation.FieldError{{
				Field:   "bedrooms",
				Tag:     "number",
				Message: "bedrooms must be a whole number",
			}}}
		}
		q.Bedrooms = n
	}

	if verr := validation.ValidateStruct(&q); verr != nil {
		return listing.Query{}, verr
	}
	return q, nil
}
