// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Backend names.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendRedis  = "redis"
)

// Config selects and configures the session backend.
type Config struct {
	// Backend is "memory", "badger" or "redis".
	Backend string `json:"backend" koanf:"backend"`

	// TTL is the session lifetime after the last write.
	TTL time.Duration `json:"ttl" koanf:"ttl"`

	// Capacity bounds the memory backend.
	Capacity int `json:"capacity" koanf:"capacity"`

	// BadgerPath is the database directory for the badger backend.
	// Empty opens an in-memory database.
	BadgerPath string `json:"badger_path" koanf:"badger_path"`

	// RedisURL is a redis:// URL for the redis backend.
	RedisURL string `json:"redis_url" koanf:"redis_url"`

	Breaker BreakerConfig `json:"breaker" koanf:"breaker"`
}

// DefaultConfig returns an in-memory configuration.
func DefaultConfig() Config {
	return Config{
		Backend:  BackendMemory,
		TTL:      24 * time.Hour,
		Capacity: 10000,
		Breaker:  DefaultBreakerConfig(),
	}
}

// Validate checks the configuration for invalid values.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (c Config) Validate() error {
	if c.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive, got %v", c.TTL)
	}
	switch c.Backend {
	case BackendMemory:
		if c.Capacity < 1 {
			return fmt.Errorf("session.capacity must be positive, got %d", c.Capacity)
		}
	case BackendBadger:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("session.redis_url is required for the redis backend")
		}
		if c.Breaker.FailureThreshold < 1 {
			return fmt.Errorf("session.breaker.failure_threshold must be positive")
		}
	default:
		return fmt.Errorf("session.backend must be one of memory, badger, redis; got %q", c.Backend)
	}
	return nil
}

// Open creates the store selected by cfg.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(ctx context.Context, cfg Config, logger zerolog.Logger) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendBadger:
		return OpenBadgerStore(cfg.BadgerPath, cfg.TTL)
	case BackendRedis:
		return OpenRedisStore(ctx, cfg.RedisURL, cfg.TTL, cfg.Breaker, logger)
	default:
		return NewMemoryStore(cfg.Capacity, cfg.TTL), nil
	}
}
