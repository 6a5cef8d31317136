// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/metrics"
	"github.com/tomtom215/wayfinder/internal/preference"
)

// Manager creates and mutates sessions on top of a Store. Read-modify-write
// cycles are serialized so concurrent toggles on one session never lose an
// update.
type Manager struct {
	store  Store
	logger zerolog.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewManager creates a manager over store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewManager(store Store, logger zerolog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger.With().Str("component", "session").Str("backend", store.Backend()).Logger(),
		now:    time.Now,
	}
}

// Create starts a session, optionally seeded with initial.
func (m *Manager) Create(ctx context.Context, initial *preference.Snapshot) (*Session, error) {
	sel := preference.New()
	if initial != nil {
		sel = preference.FromSnapshot(*initial)
	}

	now := m.now().UTC()
	s := &Session{
		ID:        uuid.New().String(),
		Selection: sel.Snapshot(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := m.store.Put(ctx, s)
	m.record("create", err)
	if err != nil {
		return nil, err
	}

	m.logger.Debug().Str("session_id", s.ID).Msg("session created")
	return s, nil
}

// Get returns the session with id.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	s, err := m.store.Get(ctx, id)
	m.record("get", err)
	return s, err
}

// Selection returns the session's selection as a mutable copy.
func (m *Manager) Selection(ctx context.Context, id string) (*preference.Selection, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return preference.FromSnapshot(s.Selection), nil
}

// Update applies fn to the session's selection and stores the result.
func (m *Manager) Update(ctx context.Context, id string, fn func(*preference.Selection)) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.store.Get(ctx, id)
	if err != nil {
		m.record("update", err)
		return nil, err
	}

	sel := preference.FromSnapshot(s.Selection)
	fn(sel)

	s.Selection = sel.Snapshot()
	s.Revision += sel.Revision()
	s.UpdatedAt = m.now().UTC()

	err = m.store.Put(ctx, s)
	m.record("update", err)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Delete removes the session with id.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.store.Delete(ctx, id)
	m.record("delete", err)
	return err
}

// Sweep removes expired sessions from stores that need it and returns how
// many were removed.
func (m *Manager) Sweep() int {
	sw, ok := m.store.(Sweeper)
	if !ok {
		return 0
	}
	n := sw.Sweep()
	if n > 0 {
		m.logger.Debug().Int("removed", n).Msg("expired sessions swept")
	}
	return n
}

// Backend names the underlying store.
func (m *Manager) Backend() string {
	return m.store.Backend()
}

// Close closes the underlying store.
func (m *Manager) Close() error {
	return m.store.Close()
}

func (m *Manager) record(op string, err error) {
	if errors.Is(err, ErrSessionNotFound) {
		// A miss is a normal outcome, not a store failure.
		err = nil
	}
	metrics.RecordSessionOperation(m.store.Backend(), op, err)
	if err != nil {
		m.logger.Warn().Err(err).Str("operation", op).Msg("session store operation failed")
	}
}
