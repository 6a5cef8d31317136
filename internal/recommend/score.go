// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package recommend

import (
	"sort"

	"github.com/tomtom215/wayfinder/internal/catalog"
	"github.com/tomtom215/wayfinder/internal/preference"
)

// Scorer scores and ranks destinations against a selection. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct {
	weights  Weights
	maxScore int
	limits   LimitsConfig
	labels   catalog.Labels
}

// NewScorer creates a scorer using cfg's weights and limits. Display names
// for reasons come from labels. A nil cfg means DefaultConfig.
func NewScorer(cfg *Config, labels catalog.Labels) *Scorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Scorer{
		weights:  cfg.Weights,
		maxScore: cfg.MaxScore,
		limits:   cfg.Limits,
		labels:   labels,
	}
}

// Score computes the match score of e for sel.
//
// Each selected tag the destination carries adds Weights.Tag, in selection
// order. A matching style, season and duration add their weight once each.
// The sum is capped at MaxScore. Reasons keep generation order and are cut
// to Limits.MaxReasons; best-for labels come from matched tags only.
func (s *Scorer) Score(e *catalog.Entity, sel *preference.Selection) ScoredEntity {
	var (
		score   int
		reasons []string
		bestFor []string
	)

	for _, tag := range sel.Tags() {
		if !e.HasTag(tag) {
			continue
		}
		name := s.labels.Tag(tag)
		score += s.weights.Tag
		reasons = append(reasons, "Perfect for "+name)
		bestFor = append(bestFor, name)
	}

	if style := sel.Style(); style != "" && e.SuitsStyle(style) {
		score += s.weights.Style
		reasons = append(reasons, "Ideal for "+s.labels.Style(style))
	}

	if season := sel.Season(); season != "" && e.InSeason(season) {
		score += s.weights.Season
		reasons = append(reasons, "Excellent in "+s.labels.Season(season))
	}

	if duration := sel.Duration(); duration != "" && duration == e.RecommendedDuration {
		score += s.weights.Duration
		reasons = append(reasons, "Perfect for a "+s.labels.Duration(duration)+" getaway")
	}

	return ScoredEntity{
		Destination: *e,
		MatchScore:  min(score, s.maxScore),
		Reasons:     truncate(reasons, s.limits.MaxReasons),
		BestFor:     truncate(bestFor, s.limits.MaxBestFor),
	}
}

// Rank scores every destination, drops those scoring zero, orders the rest
// by descending score and returns at most Limits.TopN of them. Equal scores
// keep catalog order: ties are broken on ascending index in entities.
//
// The second return value is the number of destinations that scored above
// zero before truncation.
func (s *Scorer) Rank(entities []catalog.Entity, sel *preference.Selection) ([]ScoredEntity, int) {
	scored := make([]ScoredEntity, 0, len(entities))
	for i := range entities {
		se := s.Score(&entities[i], sel)
		if se.MatchScore == 0 {
			continue
		}
		se.Index = i
		scored = append(scored, se)
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].MatchScore != scored[j].MatchScore {
			return scored[i].MatchScore > scored[j].MatchScore
		}
		return scored[i].Index < scored[j].Index
	})

	matched := len(scored)
	if len(scored) > s.limits.TopN {
		scored = scored[:s.limits.TopN:s.limits.TopN]
	}
	return scored, matched
}

// Score scores e with the default weights and limits.
func Score(e *catalog.Entity, sel *preference.Selection, labels catalog.Labels) ScoredEntity {
	return NewScorer(nil, labels).Score(e, sel)
}

// Rank ranks entities with the default weights and limits.
func Rank(entities []catalog.Entity, sel *preference.Selection, labels catalog.Labels) []ScoredEntity {
	ranked, _ := NewScorer(nil, labels).Rank(entities, sel)
	return ranked
}

// truncate returns at most n elements of list. A nil list becomes empty so
// JSON encodes [] rather than null.
func truncate(list []string, n int) []string {
	if list == nil {
		return []string{}
	}
	if len(list) > n {
		return list[:n:n]
	}
	return list
}
