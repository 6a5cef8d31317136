// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/wayfinder/internal/validation"
)

// ErrNoSnapshot is returned by Store.Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("catalog: no persisted snapshot")

// ValidationError reports a catalog document that failed schema or field validation.
type ValidationError struct {
	// Stage is "schema" or "fields".
	Stage  string
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "catalog %s validation failed", e.Stage)
	for i, f := range e.Fields {
		if i == 5 {
			fmt.Fprintf(&sb, " (and %d more)", len(e.Fields)-5)
			break
		}
		sep := ", "
		if i == 0 {
			sep = ": "
		}
		fmt.Fprintf(&sb, "%s%s", sep, f.Message)
	}
	return sb.String()
}

// DuplicateIDError reports two entities of the same kind sharing an id.
type DuplicateIDError struct {
	Kind string
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("catalog: duplicate %s id %q", e.Kind, e.ID)
}
