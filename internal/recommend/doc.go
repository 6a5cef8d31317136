// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

// Package recommend ranks destinations against a preference selection.
//
// # Scoring
//
// Scoring is additive with fixed weights and a cap:
//
//   - +25 per selected tag the destination carries, reason "Perfect for {tag}"
//   - +20 when the selected style applies, reason "Ideal for {style}"
//   - +15 when the selected season is a best season, reason "Excellent in {season}"
//   - +10 when the selected duration is the recommended one, reason
//     "Perfect for a {duration} getaway"
//
// The score is capped at 100. At most three reasons and two "best for"
// labels are kept. Weights, cap and limits are configurable.
//
// # Ranking
//
// Destinations scoring zero are dropped. The rest are sorted by descending
// score, ties broken by catalog position, and the first six are returned.
//
// # Usage
//
//	// Pure functions over a catalog snapshot
//	ranked := recommend.Rank(cat.Destinations(), sel, cat.Labels())
//
//	// Engine over the served catalog, with caching and metrics
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), holder, logger)
//	resp, err := engine.Recommend(ctx, sel)
//
// # Thread Safety
//
// Scorer and the package functions are pure. Engine is safe for concurrent
// use; results are cached per catalog version and selection.
package recommend
