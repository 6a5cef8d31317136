// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package preference

// Snapshot is the serialized form of a Selection, used in request bodies,
// CLI flags and session stores.
type Snapshot struct {
	Tags     []string `json:"tags" validate:"max=64,dive,max=64,identifier"`
	Style    string   `json:"style,omitempty" validate:"omitempty,max=64,identifier"`
	Season   string   `json:"season,omitempty" validate:"omitempty,max=64,identifier"`
	Duration string   `json:"duration,omitempty" validate:"omitempty,max=64,identifier"`
}
