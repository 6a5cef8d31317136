// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/cache"
	"github.com/tomtom215/wayfinder/internal/catalog"
	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/metrics"
	"github.com/tomtom215/wayfinder/internal/preference"
)

// ErrNoCatalog is returned when no catalog has been published yet.
var ErrNoCatalog = errors.New("recommend: no catalog loaded")

// Engine ranks the destinations of the currently served catalog. It adds a
// result cache, metrics and request logging around Scorer.
// It is safe for concurrent use.
type Engine struct {
	holder *catalog.Holder
	logger zerolog.Logger

	cfgMu  sync.RWMutex
	config *Config
	cache  *cache.LRU[*Response] // nil when disabled

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
}

// NewEngine creates an engine serving the catalogs published in holder.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, holder *catalog.Holder, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if holder == nil {
		return nil, fmt.Errorf("catalog holder is required")
	}

	e := &Engine{
		holder: holder,
		logger: logger.With().Str("component", "recommend").Logger(),
		config: cfg.Clone(),
	}
	e.cache = newResultCache(e.config)
	return e, nil
}

func newResultCache(cfg *Config) *cache.LRU[*Response] {
	if !cfg.Cache.Enabled {
		return nil
	}
	return cache.NewLRU[*Response](cfg.Cache.MaxEntries, cfg.Cache.TTL)
}

// Recommend ranks the current catalog's destinations for sel.
// The request id is taken from ctx when present.
func (e *Engine) Recommend(ctx context.Context, sel *preference.Selection) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cat := e.holder.Current()
	if cat == nil {
		return nil, ErrNoCatalog
	}

	requestID := logging.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = logging.GenerateRequestID()
	}

	logger := e.logger.With().
		Str("request_id", requestID).
		Uint64("catalog_version", cat.Version()).
		Int("tags", len(sel.Tags())).
		Logger()
	logger.Debug().Msg("processing recommendation request")

	e.cfgMu.RLock()
	cfg := e.config
	resultCache := e.cache
	e.cfgMu.RUnlock()

	key := cacheKey(cat.Version(), sel)
	if resultCache != nil {
		if cached, ok := resultCache.Get(key); ok {
			e.cacheHits.Add(1)
			resp := copyCachedResponse(cached, requestID, start)
			metrics.RecordRecommendation("hit", time.Since(start), len(resp.Items))
			logger.Debug().Msg("cache hit")
			return resp, nil
		}
		e.cacheMisses.Add(1)
	}

	scorer := NewScorer(cfg, cat.Labels())
	items, matched := scorer.Rank(cat.Destinations(), sel)

	resp := &Response{
		Items:           items,
		TotalCandidates: len(cat.Destinations()),
		Matched:         matched,
		Metadata: ResponseMetadata{
			RequestID:      requestID,
			CatalogVersion: cat.Version(),
			Selection:      sel.Snapshot(),
			LatencyMS:      time.Since(start).Milliseconds(),
			Timestamp:      time.Now().UTC(),
		},
	}

	outcome := "disabled"
	if resultCache != nil {
		resultCache.Add(key, resp)
		metrics.RecommendCacheEntries.Set(float64(resultCache.Len()))
		outcome = "miss"
	}
	metrics.RecordRecommendation(outcome, time.Since(start), len(items))

	logger.Debug().
		Int("candidates", resp.TotalCandidates).
		Int("matched", matched).
		Int("returned", len(items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// Status returns request and cache counters.
func (e *Engine) Status() Status {
	e.cfgMu.RLock()
	cfg := e.config.Clone()
	resultCache := e.cache
	e.cfgMu.RUnlock()

	st := Status{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		Config:      cfg,
	}
	if lookups := st.CacheHits + st.CacheMisses; lookups > 0 {
		st.CacheHitRate = float64(st.CacheHits) / float64(lookups)
	}
	if resultCache != nil {
		st.CacheEntries = resultCache.Len()
	}
	if cat := e.holder.Current(); cat != nil {
		st.CatalogVersion = cat.Version()
	}
	return st
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	e.cfgMu.RLock()
	defer e.cfgMu.RUnlock()
	return e.config.Clone()
}

// UpdateConfig replaces the configuration and drops cached results.
func (e *Engine) UpdateConfig(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	e.cfgMu.Lock()
	e.config = cfg.Clone()
	e.cache = newResultCache(e.config)
	e.cfgMu.Unlock()

	metrics.RecommendCacheEntries.Set(0)
	e.logger.Info().
		Int("top_n", cfg.Limits.TopN).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Msg("recommendation config updated")
	return nil
}

// PurgeExpired drops expired cache entries and returns how many were removed.
func (e *Engine) PurgeExpired() int {
	e.cfgMu.RLock()
	resultCache := e.cache
	e.cfgMu.RUnlock()

	if resultCache == nil {
		return 0
	}
	removed := resultCache.CleanupExpired()
	metrics.RecommendCacheEntries.Set(float64(resultCache.Len()))
	return removed
}

func cacheKey(catalogVersion uint64, sel *preference.Selection) string {
	return strconv.FormatUint(catalogVersion, 10) + "#" + sel.Fingerprint()
}

// copyCachedResponse returns a response sharing the cached items but with
// metadata for the current request.
func copyCachedResponse(resp *Response, requestID string, start time.Time) *Response {
	cp := *resp
	cp.Items = make([]ScoredEntity, len(resp.Items))
	copy(cp.Items, resp.Items)
	cp.Metadata.RequestID = requestID
	cp.Metadata.CacheHit = true
	cp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	cp.Metadata.Timestamp = time.Now().UTC()
	return &cp
}
