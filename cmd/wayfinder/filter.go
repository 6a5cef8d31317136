// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package main

import (
	"github.com/spf13/cobra"
	"github.com/tomtom215/wayfinder/internal/catalog"
	"github.com/tomtom215/wayfinder/internal/listing"
	"github.com/tomtom215/wayfinder/internal/validation"
)

type filterOptions struct {
	catalogPath string
	query       listing.Query
}

// filterOutput is the JSON printed by the filter command.
type filterOutput struct {
	Filters  listing.PredicateSet `json:"filters"`
	Total    int                  `json:"total"`
	Matched  int                  `json:"matched"`
	Listings []catalog.Listing    `json:"listings"`
}

func newFilterCmd() *cobra.Command {
	opts := &filterOptions{}
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter rental listings",
		Long:  "Applies price, category, bedroom, amenity and text filters to the catalog listings and prints the matches in catalog order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Path to a JSON or YAML catalog (default: $WAYFINDER_CATALOG or built-in)")
	cmd.Flags().StringVar(&opts.query.Price, "price", "", `Nightly price range: "min-max", "min+" or "-max"`)
	cmd.Flags().StringVar(&opts.query.Category, "category", "", "Listing category")
	cmd.Flags().IntVar(&opts.query.Bedrooms, "bedrooms", 0, "Minimum number of bedrooms")
	cmd.Flags().StringArrayVarP(&opts.query.Amenities, "amenity", "a", nil, "Required amenity (repeatable, comma-separated allowed)")
	cmd.Flags().StringVarP(&opts.query.Search, "search", "q", "", "Text to find in name, location or category")

	return cmd
}

func runFilter(cmd *cobra.Command, opts *filterOptions) error {
	if verr := validation.ValidateStruct(opts.query); verr != nil {
		return verr
	}
	predicates, err := opts.query.Predicates()
	if err != nil {
		return err
	}

	c, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}

	all := c.Listings()
	matches := listing.ApplyFilters(all, predicates)

	return writeJSON(cmd.OutOrStdout(), filterOutput{
		Filters:  predicates,
		Total:    len(all),
		Matched:  len(matches),
		Listings: matches,
	})
}
