// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tomtom215/wayfinder/internal/preference"
	"github.com/tomtom215/wayfinder/internal/recommend"
	"github.com/tomtom215/wayfinder/internal/validation"
)

type recommendOptions struct {
	catalogPath string
	tags        []string
	style       string
	season      string
	duration    string
	top         int
}

// recommendOutput is the JSON printed by the recommend command.
type recommendOutput struct {
	Selection       preference.Snapshot      `json:"selection"`
	TotalCandidates int                      `json:"total_candidates"`
	Matched         int                      `json:"matched"`
	Items           []recommend.ScoredEntity `json:"items"`
}

func newRecommendCmd() *cobra.Command {
	opts := &recommendOptions{}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank destinations against travel preferences",
		Long:  "Scores every destination in the catalog against the given tags, travel style, season and trip length and prints the ranked matches.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecommend(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Path to a JSON or YAML catalog (default: $WAYFINDER_CATALOG or built-in)")
	cmd.Flags().StringArrayVarP(&opts.tags, "tag", "t", nil, "Interest tag to match (repeatable)")
	cmd.Flags().StringVar(&opts.style, "style", "", "Travel style id")
	cmd.Flags().StringVar(&opts.season, "season", "", "Season id")
	cmd.Flags().StringVar(&opts.duration, "duration", "", "Trip length id")
	cmd.Flags().IntVar(&opts.top, "top", 0, "Maximum destinations to print (default: engine limit)")

	return cmd
}

func runRecommend(cmd *cobra.Command, opts *recommendOptions) error {
	if opts.top < 0 {
		return fmt.Errorf("--top must not be negative, got %d", opts.top)
	}

	c, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}

	snap := preference.Snapshot{
		Tags:     opts.tags,
		Style:    opts.style,
		Season:   opts.season,
		Duration: opts.duration,
	}
	if verr := validation.ValidateStruct(snap); verr != nil {
		return verr
	}
	sel := preference.FromSnapshot(snap)

	cfg := recommend.DefaultConfig()
	if opts.top > 0 {
		cfg.Limits.TopN = opts.top
	}

	destinations := c.Destinations()
	items, matched := recommend.NewScorer(cfg, c.Labels()).Rank(destinations, sel)

	return writeJSON(cmd.OutOrStdout(), recommendOutput{
		Selection:       sel.Snapshot(),
		TotalCandidates: len(destinations),
		Matched:         matched,
		Items:           items,
	})
}
