// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

/*
Package cache provides an in-process LRU cache with TTL expiration.

LRU is generic over the value type and keyed by string. It backs the
recommendation result cache and the in-memory session store.

Usage:

	c := cache.NewLRU[*Response](1024, time.Minute)
	c.Add(key, resp)
	if resp, ok := c.Get(key); ok {
	    // serve cached response
	}

All methods are safe for concurrent use.
*/
package cache
