// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wayfinder/internal/metrics"
)

// BreakerConfig configures the circuit breaker guarding a remote backend.
type BreakerConfig struct {
	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32 `json:"max_requests" koanf:"max_requests"`

	// Interval is the cyclic period of the closed state for clearing counts.
	// Zero never clears.
	Interval time.Duration `json:"interval" koanf:"interval"`

	// Timeout is how long the breaker stays open before trying again.
	Timeout time.Duration `json:"timeout" koanf:"timeout"`

	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32 `json:"failure_threshold" koanf:"failure_threshold"`
}

// DefaultBreakerConfig returns the default breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// RedisStore keeps sessions in Redis with key expiry. Every call goes
// through a circuit breaker; while it is open calls fail fast with
// ErrBackendUnavailable.
type RedisStore struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
	breaker   *gobreaker.CircuitBreaker[[]byte]
	ownsConn  bool
}

// OpenRedisStore connects to redisURL and verifies connectivity.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func OpenRedisStore(ctx context.Context, redisURL string, ttl time.Duration, breaker BreakerConfig, logger zerolog.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	s := NewRedisStore(client, ttl, breaker, logger)
	s.ownsConn = true
	return s, nil
}

// NewRedisStore uses an existing client. Close leaves the client open.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRedisStore(client *redis.Client, ttl time.Duration, cfg BreakerConfig, logger zerolog.Logger) *RedisStore {
	logger = logger.With().Str("component", "session").Str("backend", BackendRedis).Logger()

	settings := gobreaker.Settings{
		Name:        "session-redis",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SessionBreakerState.WithLabelValues(BackendRedis).Set(float64(to))
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("session backend circuit breaker state changed")
		},
		// A missing key is an answer, not a backend failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrSessionNotFound)
		},
	}

	metrics.SessionBreakerState.WithLabelValues(BackendRedis).Set(float64(gobreaker.StateClosed))

	return &RedisStore{
		client:    client,
		ttl:       ttl,
		keyPrefix: "wayfinder:session:",
		breaker:   gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

// Get retrieves a session by ID.
func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.execute(func() ([]byte, error) {
		val, err := r.client.Get(ctx, r.keyPrefix+id).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return val, err
	})
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

// Put stores s with the store TTL.
func (r *RedisStore) Put(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	_, err = r.execute(func() ([]byte, error) {
		return nil, r.client.Set(ctx, r.keyPrefix+s.ID, data, r.ttl).Err()
	})
	return err
}

// Delete removes a session by ID.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	_, err := r.execute(func() ([]byte, error) {
		n, err := r.client.Del(ctx, r.keyPrefix+id).Result()
		if err == nil && n == 0 {
			return nil, ErrSessionNotFound
		}
		return nil, err
	})
	return err
}

// BreakerState returns the circuit breaker state.
func (r *RedisStore) BreakerState() gobreaker.State {
	return r.breaker.State()
}

func (r *RedisStore) Backend() string { return BackendRedis }

// Close closes the client if the store opened it.
func (r *RedisStore) Close() error {
	if r.ownsConn {
		return r.client.Close()
	}
	return nil
}

func (r *RedisStore) execute(fn func() ([]byte, error)) ([]byte, error) {
	out, err := r.breaker.Execute(fn)
	switch {
	case err == nil, errors.Is(err, ErrSessionNotFound):
		return out, err
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	default:
		return nil, fmt.Errorf("redis: %w", err)
	}
}
