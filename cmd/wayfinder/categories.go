// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package main

import (
	"github.com/spf13/cobra"
	"github.com/tomtom215/wayfinder/internal/listing"
)

func newCategoriesCmd() *cobra.Command {
	var catalogPath string
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Count listings per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), listing.CountCategories(c.Listings(), c.Categories()))
		},
	}
	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "Path to a JSON or YAML catalog (default: $WAYFINDER_CATALOG or built-in)")
	return cmd
}
