// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"sync"
	"sync/atomic"
)

// Holder publishes the catalog currently being served. Readers call Current
// without locking; Replace swaps in a new snapshot and assigns its version.
type Holder struct {
	mu      sync.Mutex // serializes Replace
	current atomic.Pointer[Catalog]
	version uint64
}

// NewHolder returns a Holder serving c. c may be nil.
func NewHolder(c *Catalog) *Holder {
	h := &Holder{}
	if c != nil {
		h.Replace(c)
	}
	return h
}

// Current returns the catalog being served, or nil before the first Replace.
func (h *Holder) Current() *Catalog {
	return h.current.Load()
}

// Replace publishes c and returns the version assigned to it.
// c must not be published to another Holder.
func (h *Holder) Replace(c *Catalog) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.version++
	c.version = h.version
	h.current.Store(c)
	return h.version
}
