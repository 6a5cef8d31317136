// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights are the points added for each matched criterion.
	Weights Weights `json:"weights" koanf:"weights"`

	// MaxScore caps the summed score.
	// Default: 100.
	MaxScore int `json:"max_score" koanf:"max_score"`

	// Limits bound the size of each result.
	Limits LimitsConfig `json:"limits" koanf:"limits"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache" koanf:"cache"`
}

// Weights defines the points awarded per matched facet.
type Weights struct {
	// Tag is awarded once per selected tag the destination carries.
	// Default: 25.
	Tag int `json:"tag" koanf:"tag"`

	// Style is awarded when the selected travel style applies.
	// Default: 20.
	Style int `json:"style" koanf:"style"`

	// Season is awarded when the selected season is one of the best seasons.
	// Default: 15.
	Season int `json:"season" koanf:"season"`

	// Duration is awarded when the selected duration equals the recommended one.
	// Default: 10.
	Duration int `json:"duration" koanf:"duration"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// TopN is the maximum number of destinations returned.
	// Default: 6.
	TopN int `json:"top_n" koanf:"top_n"`

	// MaxReasons is the maximum number of reasons per destination.
	// Default: 3.
	MaxReasons int `json:"max_reasons" koanf:"max_reasons"`

	// MaxBestFor is the maximum number of "best for" labels per destination.
	// Default: 2.
	MaxBestFor int `json:"max_best_for" koanf:"max_best_for"`
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	// Enabled toggles the result cache.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// TTL is how long a cached result stays valid.
	// Results are also keyed by catalog version, so a catalog swap never
	// serves stale entries.
	TTL time.Duration `json:"ttl" koanf:"ttl"`

	// MaxEntries bounds the cache size.
	MaxEntries int `json:"max_entries" koanf:"max_entries"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Tag:      25,
			Style:    20,
			Season:   15,
			Duration: 10,
		},
		MaxScore: 100,
		Limits: LimitsConfig{
			TopN:       6,
			MaxReasons: 3,
			MaxBestFor: 2,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Weights.Tag < 0 || c.Weights.Style < 0 || c.Weights.Season < 0 || c.Weights.Duration < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", c.Weights)
	}
	if c.MaxScore < 1 {
		return fmt.Errorf("max_score must be positive, got %d", c.MaxScore)
	}

	if c.Limits.TopN < 1 {
		return fmt.Errorf("limits.top_n must be positive, got %d", c.Limits.TopN)
	}
	if c.Limits.MaxReasons < 0 {
		return fmt.Errorf("limits.max_reasons must be non-negative, got %d", c.Limits.MaxReasons)
	}
	if c.Limits.MaxBestFor < 0 {
		return fmt.Errorf("limits.max_best_for must be non-negative, got %d", c.Limits.MaxBestFor)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive when caching is enabled, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive when caching is enabled, got %d", c.Cache.MaxEntries)
		}
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
