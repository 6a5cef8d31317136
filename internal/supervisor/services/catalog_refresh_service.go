// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// CatalogReloader reloads the catalog from its configured source and reports
// whether a new snapshot was published. Satisfied by *catalog.Manager.
type CatalogReloader interface {
	Reload(ctx context.Context) (bool, error)
}

// reloadTimeout bounds a single scheduled reload.
const reloadTimeout = 2 * time.Minute

// CatalogRefreshService reloads the catalog on a cron schedule. A failed
// reload keeps the current catalog and is retried at the next tick.
type CatalogRefreshService struct {
	reloader CatalogReloader
	schedule cron.Schedule
	spec     string
	logger   zerolog.Logger
	name     string

	runs     atomic.Int64
	failures atomic.Int64
}

// NewCatalogRefreshService validates spec ("@every 5m", "*/10 * * * *", ...)
// and returns the service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogRefreshService(reloader CatalogReloader, spec string, logger zerolog.Logger) (*CatalogRefreshService, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return &CatalogRefreshService{
		reloader: reloader,
		schedule: schedule,
		spec:     spec,
		logger:   logger.With().Str("service", "catalog-refresh").Logger(),
		name:     "catalog-refresh",
	}, nil
}

// Serve implements suture.Service. It runs a cron scheduler until ctx is
// canceled and waits for an in-flight reload to finish before returning.
func (s *CatalogRefreshService) Serve(ctx context.Context) error {
	cl := cronLogger{logger: s.logger}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	c.Schedule(s.schedule, cron.FuncJob(func() { s.refresh(ctx) }))

	s.logger.Info().Str("schedule", s.spec).Msg("catalog refresh scheduled")
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()

	s.logger.Info().Msg("catalog refresh stopped")
	return ctx.Err()
}

// refresh performs one reload.
func (s *CatalogRefreshService) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	reloadCtx, cancel := context.WithTimeout(ctx, reloadTimeout)
	defer cancel()

	s.runs.Add(1)
	start := time.Now()
	changed, err := s.reloader.Reload(reloadCtx)
	if err != nil {
		s.failures.Add(1)
		s.logger.Warn().Err(err).Msg("catalog reload failed, keeping current catalog")
		return
	}
	s.logger.Debug().
		Bool("changed", changed).
		Dur("duration", time.Since(start)).
		Msg("catalog reload complete")
}

// Runs returns the number of reloads attempted.
func (s *CatalogRefreshService) Runs() int64 { return s.runs.Load() }

// Failures returns the number of reloads that returned an error.
func (s *CatalogRefreshService) Failures() int64 { return s.failures.Load() }

// String returns the service name for logging.
func (s *CatalogRefreshService) String() string {
	return s.name
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
