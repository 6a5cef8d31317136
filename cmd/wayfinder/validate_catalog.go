// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tomtom215/wayfinder/internal/catalog"
	"github.com/tomtom215/wayfinder/internal/validation"
)

// validateOutput is the JSON printed by the validate-catalog command.
type validateOutput struct {
	Path         string                  `json:"path"`
	Valid        bool                    `json:"valid"`
	Destinations int                     `json:"destinations,omitempty"`
	Listings     int                     `json:"listings,omitempty"`
	Categories   []string                `json:"categories,omitempty"`
	Errors       []validation.FieldError `json:"errors,omitempty"`
}

// errCatalogInvalid is returned after the failure report has been printed.
var errCatalogInvalid = errors.New("catalog validation failed")

func newValidateCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-catalog <path>",
		Short: "Validate a catalog file",
		Long:  "Checks a JSON or YAML catalog against the catalog schema and field rules and reports every violation.",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidateCatalog,
	}
}

func runValidateCatalog(cmd *cobra.Command, args []string) error {
	path := args[0]
	c, err := catalog.LoadFile(path)
	if err == nil {
		return writeJSON(cmd.OutOrStdout(), validateOutput{
			Path:         path,
			Valid:        true,
			Destinations: len(c.Destinations()),
			Listings:     len(c.Listings()),
			Categories:   c.Categories(),
		})
	}

	out := validateOutput{Path: path}
	var verr *catalog.ValidationError
	var dup *catalog.DuplicateIDError
	switch {
	case errors.As(err, &verr):
		out.Errors = verr.Fields
	case errors.As(err, &dup):
		out.Errors = []validation.FieldError{{
			Field:   dup.Kind + ".id",
			Tag:     "unique",
			Param:   dup.ID,
			Message: dup.Error(),
		}}
	default:
		return fmt.Errorf("failed to validate %s: %w", path, err)
	}

	if werr := writeJSON(cmd.OutOrStdout(), out); werr != nil {
		return werr
	}
	return errCatalogInvalid
}
