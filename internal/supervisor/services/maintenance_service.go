// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CachePurger drops expired cache entries. Satisfied by *recommend.Engine.
type CachePurger interface {
	PurgeExpired() int
}

// SessionSweeper drops expired sessions. Satisfied by *session.Manager.
type SessionSweeper interface {
	Sweep() int
}

// MaintenanceService periodically purges the recommendation cache and sweeps
// expired sessions. Either dependency may be nil.
type MaintenanceService struct {
	cache    CachePurger
	sessions SessionSweeper
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewMaintenanceService creates the service. A non-positive interval
// defaults to one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMaintenanceService(cache CachePurger, sessions SessionSweeper, interval time.Duration, logger zerolog.Logger) *MaintenanceService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &MaintenanceService{
		cache:    cache,
		sessions: sessions,
		interval: interval,
		logger:   logger.With().Str("service", "maintenance").Logger(),
		name:     "maintenance",
	}
}

// Serve implements suture.Service.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("maintenance service running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *MaintenanceService) runOnce() {
	var purged, swept int
	if s.cache != nil {
		purged = s.cache.PurgeExpired()
	}
	if s.sessions != nil {
		swept = s.sessions.Sweep()
	}
	if purged > 0 || swept > 0 {
		s.logger.Debug().
			Int("cache_purged", purged).
			Int("sessions_swept", swept).
			Msg("maintenance pass complete")
	}
}

// String returns the service name for logging.
func (s *MaintenanceService) String() string {
	return s.name
}
