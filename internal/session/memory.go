// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package session

import (
	"context"
	"time"

	"github.com/tomtom215/wayfinder/internal/cache"
)

// MemoryStore keeps sessions in a bounded LRU. Sessions are lost on restart
// and the least recently used ones are evicted at capacity.
type MemoryStore struct {
	entries *cache.LRU[Session]
}

// NewMemoryStore creates a store holding up to capacity sessions for ttl each.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{entries: cache.NewLRU[Session](capacity, ttl)}
}

// Get retrieves a session by ID.
func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s, ok := m.entries.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

// Put stores a copy of s.
func (m *MemoryStore) Put(ctx context.Context, s *Session) error {
	m.entries.Add(s.ID, *s)
	return nil
}

// Delete removes a session by ID. An expired entry counts as missing.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	live := m.entries.Contains(id)
	if !m.entries.Remove(id) || !live {
		return ErrSessionNotFound
	}
	return nil
}

// Sweep drops expired sessions.
func (m *MemoryStore) Sweep() int {
	return m.entries.CleanupExpired()
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	return m.entries.Len()
}

func (m *MemoryStore) Backend() string { return BackendMemory }

func (m *MemoryStore) Close() error {
	m.entries.Clear()
	return nil
}
