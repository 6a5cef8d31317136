// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package preference

import (
	"slices"
	"strconv"
	"strings"
)

// Selection is a user's current choices across the four facets.
//
// The multi-select tag facet keeps the order in which present tags were
// added. The style, season and duration facets hold at most one value each.
// Every mutation increments Revision so callers can discard results computed
// for an older state.
//
// A Selection is not safe for concurrent mutation.
type Selection struct {
	tags     []string
	style    string
	season   string
	duration string
	revision uint64
}

// New returns an empty selection.
func New() *Selection {
	return &Selection{}
}

// FromSnapshot builds a selection from its serialized form. Duplicate tags
// are collapsed, keeping the first occurrence.
func FromSnapshot(s Snapshot) *Selection {
	sel := &Selection{
		style:    s.Style,
		season:   s.Season,
		duration: s.Duration,
	}
	for _, tag := range s.Tags {
		if !sel.HasTag(tag) {
			sel.tags = append(sel.tags, tag)
		}
	}
	return sel
}

// ToggleTag removes tagID if it is selected and adds it otherwise.
func (s *Selection) ToggleTag(tagID string) {
	if i := slices.Index(s.tags, tagID); i >= 0 {
		s.tags = slices.Delete(s.tags, i, i+1)
	} else {
		s.tags = append(s.tags, tagID)
	}
	s.revision++
}

// SelectStyle replaces the selected travel style. Choosing the current value
// again leaves it selected.
func (s *Selection) SelectStyle(styleID string) {
	s.style = styleID
	s.revision++
}

// SelectSeason replaces the selected season.
func (s *Selection) SelectSeason(seasonID string) {
	s.season = seasonID
	s.revision++
}

// SelectDuration replaces the selected trip duration.
func (s *Selection) SelectDuration(durationID string) {
	s.duration = durationID
	s.revision++
}

// Reset clears all four facets.
func (s *Selection) Reset() {
	s.tags = nil
	s.style = ""
	s.season = ""
	s.duration = ""
	s.revision++
}

// Tags returns the selected tags in selection order. The slice is a copy.
func (s *Selection) Tags() []string {
	return slices.Clone(s.tags)
}

// HasTag reports whether tagID is selected.
func (s *Selection) HasTag(tagID string) bool {
	return slices.Contains(s.tags, tagID)
}

// Style returns the selected style, or "" when none is selected.
func (s *Selection) Style() string { return s.style }

// Season returns the selected season, or "" when none is selected.
func (s *Selection) Season() string { return s.season }

// Duration returns the selected duration, or "" when none is selected.
func (s *Selection) Duration() string { return s.duration }

// Revision returns the number of mutations applied since creation.
func (s *Selection) Revision() uint64 { return s.revision }

// IsEmpty reports whether no facet has a value.
func (s *Selection) IsEmpty() bool {
	return len(s.tags) == 0 && s.style == "" && s.season == "" && s.duration == ""
}

// Snapshot returns the serializable form of the selection.
func (s *Selection) Snapshot() Snapshot {
	return Snapshot{
		Tags:     s.Tags(),
		Style:    s.style,
		Season:   s.season,
		Duration: s.duration,
	}
}

// Clone returns an independent copy, revision included.
func (s *Selection) Clone() *Selection {
	c := *s
	c.tags = slices.Clone(s.tags)
	return &c
}

// Fingerprint returns a key for the selection's content. Tag order is part of
// the key because it decides the order of generated reasons. Every value is
// length-prefixed, so distinct selections never share a key whatever bytes
// their identifiers contain.
func (s *Selection) Fingerprint() string {
	var sb strings.Builder
	writeField := func(v string) {
		sb.WriteString(strconv.Itoa(len(v)))
		sb.WriteByte(':')
		sb.WriteString(v)
	}

	sb.WriteString(strconv.Itoa(len(s.tags)))
	sb.WriteByte('t')
	for _, tag := range s.tags {
		writeField(tag)
	}
	writeField(s.style)
	writeField(s.season)
	writeField(s.duration)
	return sb.String()
}
