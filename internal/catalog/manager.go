// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/metrics"
)

// Manager owns catalog loading for a Holder: initial bootstrap with fallbacks,
// and reloads of the catalog file.
type Manager struct {
	holder *Holder
	store  *Store // optional
	path   string // optional
	logger zerolog.Logger

	mu       sync.Mutex
	lastHash [sha256.Size]byte
}

// NewManager creates a manager publishing into holder. store and path may be empty.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewManager(holder *Holder, store *Store, path string, logger zerolog.Logger) *Manager {
	return &Manager{
		holder: holder,
		store:  store,
		path:   path,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Holder returns the holder the manager publishes into.
func (m *Manager) Holder() *Holder {
	return m.holder
}

// Bootstrap publishes the first catalog. Sources are tried in order: the
// catalog file, the persisted snapshot, the built-in seed. A catalog loaded
// from the file or the seed is persisted to the store.
func (m *Manager) Bootstrap(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.path != "" {
		c, hash, err := m.loadFile()
		if err == nil {
			m.publish(ctx, c, "file", true)
			m.lastHash = hash
			return nil
		}
		metrics.RecordCatalogLoad("file", err, 0, 0, 0)
		m.logger.Warn().Err(err).Str("path", m.path).Msg("catalog file unavailable, trying fallbacks")
	}

	if m.store != nil {
		c, err := m.store.Load(ctx)
		switch {
		case err == nil:
			m.publish(ctx, c, "store", false)
			return nil
		case errors.Is(err, ErrNoSnapshot):
			m.logger.Debug().Msg("no persisted catalog snapshot")
		default:
			metrics.RecordCatalogLoad("store", err, 0, 0, 0)
			m.logger.Warn().Err(err).Msg("persisted catalog snapshot unreadable")
		}
	}

	c, err := Seed()
	if err != nil {
		metrics.RecordCatalogLoad("seed", err, 0, 0, 0)
		return fmt.Errorf("load seed catalog: %w", err)
	}
	m.publish(ctx, c, "seed", true)
	return nil
}

// Reload re-reads the catalog file and publishes it when its content changed.
// It reports whether a new catalog was published. Without a configured path
// Reload does nothing.
func (m *Manager) Reload(ctx context.Context) (bool, error) {
	if m.path == "" {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, hash, err := m.loadFile()
	if err != nil {
		metrics.RecordCatalogLoad("file", err, 0, 0, 0)
		return false, err
	}
	if hash == m.lastHash {
		m.logger.Debug().Str("path", m.path).Msg("catalog file unchanged")
		return false, nil
	}

	m.publish(ctx, c, "file", true)
	m.lastHash = hash
	return true, nil
}

func (m *Manager) loadFile() (*Catalog, [sha256.Size]byte, error) {
	var zero [sha256.Size]byte

	format, err := FormatFromPath(m.path)
	if err != nil {
		return nil, zero, err
	}
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, zero, fmt.Errorf("read catalog %s: %w", m.path, err)
	}
	c, err := Parse(data, format, "file:"+m.path)
	if err != nil {
		return nil, zero, err
	}
	return c, sha256.Sum256(data), nil
}

func (m *Manager) publish(ctx context.Context, c *Catalog, source string, persist bool) {
	version := m.holder.Replace(c)
	metrics.RecordCatalogLoad(source, nil, version, len(c.destinations), len(c.listings))

	m.logger.Info().
		Str("source", c.source).
		Uint64("version", version).
		Int("destinations", len(c.destinations)).
		Int("listings", len(c.listings)).
		Msg("catalog published")

	if persist && m.store != nil {
		if err := m.store.Save(ctx, c); err != nil {
			m.logger.Warn().Err(err).Msg("failed to persist catalog snapshot")
		}
	}
}
