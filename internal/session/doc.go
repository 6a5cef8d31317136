// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package session keeps preference selections on the server, keyed by a
random session id.

Backends:

  - memory: bounded LRU with TTL, lost on restart (default)
  - badger: BadgerDB with native key TTL, survives restarts
  - redis:  shared across replicas, guarded by a circuit breaker

Manager serializes read-modify-write cycles, so concurrent toggles on one
session are applied one after the other.

Unknown and expired sessions yield ErrSessionNotFound. When the redis
breaker is open, calls fail fast with ErrBackendUnavailable.
*/
package session
