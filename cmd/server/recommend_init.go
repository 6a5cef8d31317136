// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tomtom215/wayfinder/internal/catalog"
	"github.com/tomtom215/wayfinder/internal/config"
	"github.com/tomtom215/wayfinder/internal/recommend"
	"github.com/tomtom215/wayfinder/internal/session"
	"github.com/tomtom215/wayfinder/internal/supervisor"
	"github.com/tomtom215/wayfinder/internal/supervisor/services"
)

// CatalogComponents holds the catalog holder and its loader.
type CatalogComponents struct {
	Holder  *catalog.Holder
	Manager *catalog.Manager
	Store   *catalog.Store // nil unless catalog.store_enabled
}

// Close releases the persisted store, if any.
func (c *CatalogComponents) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}

// initCatalog loads the first catalog and, when a schedule is configured,
// adds the refresh job to the data layer.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger, tree *supervisor.SupervisorTree) (*CatalogComponents, error) {
	comps := &CatalogComponents{Holder: catalog.NewHolder(nil)}

	if cfg.Catalog.StoreEnabled {
		store, err := catalog.OpenStore(cfg.Catalog.StorePath)
		if err != nil {
			return nil, fmt.Errorf("open catalog store: %w", err)
		}
		comps.Store = store
		logger.Info().Str("path", cfg.Catalog.StorePath).Msg("catalog store opened")
	}

	comps.Manager = catalog.NewManager(comps.Holder, comps.Store, cfg.Catalog.Path, logger)
	if err := comps.Manager.Bootstrap(ctx); err != nil {
		_ = comps.Close()
		return nil, fmt.Errorf("bootstrap catalog: %w", err)
	}

	current := comps.Holder.Current()
	logger.Info().
		Str("source", current.Source()).
		Int("destinations", len(current.Destinations())).
		Int("listings", len(current.Listings())).
		Uint64("version", current.Version()).
		Msg("catalog loaded")

	if cfg.Catalog.Path == "" || cfg.Catalog.RefreshSchedule == "" {
		logger.Info().Msg("catalog refresh disabled")
		return comps, nil
	}

	refresh, err := services.NewCatalogRefreshService(comps.Manager, cfg.Catalog.RefreshSchedule, logger)
	if err != nil {
		_ = comps.Close()
		return nil, err
	}
	tree.AddDataService(refresh)
	logger.Info().Str("schedule", cfg.Catalog.RefreshSchedule).Msg("catalog refresh service added to supervisor tree")

	return comps, nil
}

// RecommendComponents holds the recommendation engine and session manager.
type RecommendComponents struct {
	Engine   *recommend.Engine
	Sessions *session.Manager
}

// initRecommend creates the engine and the session manager and adds the
// maintenance job to the data layer.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(ctx context.Context, cfg *config.Config, holder *catalog.Holder, logger zerolog.Logger, tree *supervisor.SupervisorTree) (*RecommendComponents, error) {
	engineCfg := cfg.Recommend.Clone()

	logger.Info().
		Int("top_n", engineCfg.Limits.TopN).
		Int("max_score", engineCfg.MaxScore).
		Bool("cache_enabled", engineCfg.Cache.Enabled).
		Dur("cache_ttl", engineCfg.Cache.TTL).
		Msg("initializing recommendation engine")

	engine, err := recommend.NewEngine(engineCfg, holder, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	store, err := session.Open(ctx, cfg.Session, logger)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	sessions := session.NewManager(store, logger)
	logger.Info().
		Str("backend", sessions.Backend()).
		Dur("ttl", cfg.Session.TTL).
		Msg("session store opened")

	tree.AddDataService(services.NewMaintenanceService(engine, sessions, cfg.Maintenance.Interval, logger))
	logger.Info().Dur("interval", cfg.Maintenance.Interval).Msg("maintenance service added to supervisor tree")

	return &RecommendComponents{
		Engine:   engine,
		Sessions: sessions,
	}, nil
}
