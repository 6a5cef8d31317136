// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package listing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidPriceRange is matched by every *PriceRangeError.
var ErrInvalidPriceRange = errors.New("invalid price range")

// PriceRangeError reports a price range string that could not be parsed.
type PriceRangeError struct {
	Input  string
	Reason string
}

func (e *PriceRangeError) Error() string {
	return fmt.Sprintf("invalid price range %q: %s", e.Input, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidPriceRange) true.
func (e *PriceRangeError) Is(target error) bool {
	return target == ErrInvalidPriceRange
}

// PriceRange is an inclusive price interval. A zero PriceRange matches every
// price.
type PriceRange struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max,omitempty"`
	HasMax bool    `json:"has_max"`
}

// IsZero reports whether the range matches every price.
func (r PriceRange) IsZero() bool {
	return r.Min == 0 && !r.HasMax
}

// Contains reports whether price lies within the range.
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	return !r.HasMax || price <= r.Max
}

// String formats the range in the form accepted by ParsePriceRange.
func (r PriceRange) String() string {
	switch {
	case r.IsZero():
		return ""
	case !r.HasMax:
		return formatPrice(r.Min) + "+"
	case r.Min == 0:
		return "-" + formatPrice(r.Max)
	default:
		return formatPrice(r.Min) + "-" + formatPrice(r.Max)
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParsePriceRange parses a price range.
//
// Accepted forms:
//
//	""          no constraint
//	"100-300"   100 <= price <= 300
//	"500+"      price >= 500
//	"-150"      price <= 150
//
// Bounds must be finite non-negative numbers and min must not exceed max.
func ParsePriceRange(s string) (PriceRange, error) {
	input := s
	s = strings.TrimSpace(s)
	if s == "" {
		return PriceRange{}, nil
	}

	if rest, ok := strings.CutSuffix(s, "+"); ok {
		lo, err := parseBound(input, rest, "minimum")
		if err != nil {
			return PriceRange{}, err
		}
		return PriceRange{Min: lo}, nil
	}

	loStr, hiStr, ok := strings.Cut(s, "-")
	if !ok {
		return PriceRange{}, &PriceRangeError{Input: input, Reason: `expected "min-max", "min+" or "-max"`}
	}

	var lo float64
	if strings.TrimSpace(loStr) != "" {
		v, err := parseBound(input, loStr, "minimum")
		if err != nil {
			return PriceRange{}, err
		}
		lo = v
	}
	hi, err := parseBound(input, hiStr, "maximum")
	if err != nil {
		return PriceRange{}, err
	}
	if lo > hi {
		return PriceRange{}, &PriceRangeError{Input: input, Reason: "minimum exceeds maximum"}
	}
	return PriceRange{Min: lo, Max: hi, HasMax: true}, nil
}

func parseBound(input, s, which string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &PriceRangeError{Input: input, Reason: which + " is missing"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &PriceRangeError{Input: input, Reason: which + " is not a number"}
	}
	if v < 0 {
		return 0, &PriceRangeError{Input: input, Reason: which + " is negative"}
	}
	return v, nil
}
