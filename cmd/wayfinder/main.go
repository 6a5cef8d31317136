// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package main provides the wayfinder command line tool for scoring
// destinations, filtering listings and checking catalog files offline.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tomtom215/wayfinder/internal/catalog"
)

// catalogEnvVar names the default catalog file when --catalog is not given.
const catalogEnvVar = "WAYFINDER_CATALOG"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wayfinder",
		Short:         "Travel destination recommendations and listing search",
		Long:          "wayfinder ranks destinations against travel preferences and filters rental listings using a local catalog file or the built-in catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRecommendCmd(),
		newFilterCmd(),
		newCategoriesCmd(),
		newValidateCatalogCmd(),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadCatalog reads path, falling back to $WAYFINDER_CATALOG and then to the
// built-in catalog.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		path = os.Getenv(catalogEnvVar)
	}
	if path == "" {
		return catalog.Seed()
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
