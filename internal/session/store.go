// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package session

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/wayfinder/internal/preference"
)

var (
	// ErrSessionNotFound is returned for unknown or expired sessions.
	ErrSessionNotFound = errors.New("session not found")

	// ErrBackendUnavailable is returned when a remote backend is failing and
	// its circuit breaker is open.
	ErrBackendUnavailable = errors.New("session backend unavailable")
)

// Session is a server-held preference selection.
type Session struct {
	ID        string              `json:"id"`
	Selection preference.Snapshot `json:"selection"`

	// Revision counts mutations applied over the session's lifetime.
	Revision uint64 `json:"revision"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists sessions. Implementations expire sessions after their TTL
// and return ErrSessionNotFound for them.
type Store interface {
	// Get returns the session with id.
	Get(ctx context.Context, id string) (*Session, error)

	// Put creates or replaces a session and restarts its TTL.
	Put(ctx context.Context, s *Session) error

	// Delete removes a session. Unknown and expired ids yield ErrSessionNotFound.
	Delete(ctx context.Context, id string) error

	// Backend names the implementation for logs and metrics.
	Backend() string

	Close() error
}

// Sweeper is implemented by stores that need expired entries removed
// periodically.
type Sweeper interface {
	Sweep() int
}
