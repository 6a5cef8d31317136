// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"slices"
	"strings"
)

// Entity is a destination that can be scored against a preference selection.
// Entities are immutable once a catalog is built.
type Entity struct {
	// ID is the unique identifier, e.g. "banff". Derived from Name when omitted in a document.
	ID string `json:"id" validate:"required,identifier,max=64"`

	// Name is the display name.
	Name string `json:"name" validate:"required,max=128"`

	// Tags are activity/interest codes, e.g. "hiking", "museum".
	Tags []string `json:"tags" validate:"unique,max=32,dive,identifier"`

	// TravelStyles are the styles the destination suits, e.g. "adventure".
	TravelStyles []string `json:"travel_styles" validate:"unique,max=16,dive,identifier"`

	// BestSeasons are the seasons the destination is best visited in.
	BestSeasons []string `json:"best_seasons" validate:"unique,max=4,dive,identifier"`

	// RecommendedDuration is the trip-length bucket, e.g. "week".
	RecommendedDuration string `json:"recommended_duration" validate:"omitempty,identifier"`

	Image       string `json:"image,omitempty" validate:"omitempty,max=512"`
	Description string `json:"description,omitempty" validate:"omitempty,max=4096"`
}

// HasTag reports whether the entity carries tag.
func (e *Entity) HasTag(tag string) bool {
	return slices.Contains(e.Tags, tag)
}

// SuitsStyle reports whether style is one of the entity's travel styles.
func (e *Entity) SuitsStyle(style string) bool {
	return slices.Contains(e.TravelStyles, style)
}

// InSeason reports whether season is one of the entity's best seasons.
func (e *Entity) InSeason(season string) bool {
	return slices.Contains(e.BestSeasons, season)
}

// Listing is a rental property shown on the listing page.
type Listing struct {
	ID       string `json:"id" validate:"required,identifier,max=64"`
	Name     string `json:"name" validate:"required,max=128"`
	Location string `json:"location" validate:"max=128"`
	Category string `json:"category" validate:"required,identifier"`

	// Price is the nightly rate.
	Price float64 `json:"price" validate:"gte=0"`

	Bedrooms int `json:"bedrooms" validate:"gte=0,lte=100"`

	// Amenities is the set of capability codes, e.g. "wifi", "pool".
	Amenities []string `json:"amenities" validate:"unique,max=64,dive,identifier"`

	Rating      float64 `json:"rating,omitempty" validate:"gte=0,lte=5"`
	Image       string  `json:"image,omitempty" validate:"omitempty,max=512"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=4096"`
}

// HasAmenity reports whether the listing offers amenity.
func (l *Listing) HasAmenity(amenity string) bool {
	return slices.Contains(l.Amenities, amenity)
}

// InCategory reports whether the listing belongs to category, ignoring case.
func (l *Listing) InCategory(category string) bool {
	return strings.EqualFold(l.Category, category)
}
