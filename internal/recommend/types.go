// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package recommend

import (
	"time"

	"github.com/tomtom215/wayfinder/internal/catalog"
	"github.com/tomtom215/wayfinder/internal/preference"
)

// ScoredEntity is a destination with its match score and explanation.
// It is created fresh on every scoring pass and never modified afterwards.
type ScoredEntity struct {
	Destination catalog.Entity `json:"destination"`

	// MatchScore is in [0, MaxScore].
	MatchScore int `json:"match_score"`

	// Reasons explain the score in generation order: tags, style, season, duration.
	Reasons []string `json:"reasons"`

	// BestFor lists display names of matched tags.
	BestFor []string `json:"best_for"`

	// Index is the destination's position in the scored catalog; it breaks
	// ties between equal scores.
	Index int `json:"catalog_index"`
}

// Response contains the ranked destinations for one selection.
type Response struct {
	Items []ScoredEntity `json:"items"`

	// TotalCandidates is the number of destinations scored.
	TotalCandidates int `json:"total_candidates"`

	// Matched is the number of destinations with a non-zero score, before truncation.
	Matched int `json:"matched"`

	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID      string              `json:"request_id"`
	CatalogVersion uint64              `json:"catalog_version"`
	Selection      preference.Snapshot `json:"selection"`
	LatencyMS      int64               `json:"latency_ms"`
	CacheHit       bool                `json:"cache_hit"`
	Timestamp      time.Time           `json:"timestamp"`
}

// Status reports engine counters.
type Status struct {
	Requests       int64   `json:"requests"`
	CacheHits      int64   `json:"cache_hits"`
	CacheMisses    int64   `json:"cache_misses"`
	CacheHitRate   float64 `json:"cache_hit_rate"`
	CacheEntries   int     `json:"cache_entries"`
	CatalogVersion uint64  `json:"catalog_version"`
	Config         *Config `json:"config"`
}
