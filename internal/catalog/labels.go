// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import "maps"

// Labels maps short identifiers to display names, one table per facet.
// Every lookup falls back to the identifier itself.
type Labels struct {
	Tags       map[string]string `json:"tags,omitempty"`
	Styles     map[string]string `json:"styles,omitempty"`
	Seasons    map[string]string `json:"seasons,omitempty"`
	Durations  map[string]string `json:"durations,omitempty"`
	Amenities  map[string]string `json:"amenities,omitempty"`
	Categories map[string]string `json:"categories,omitempty"`
}

// DefaultLabels returns the built-in display names.
func DefaultLabels() Labels {
	return Labels{
		Tags: map[string]string{
			"hiking":       "Hiking",
			"museum":       "Museums",
			"beach":        "Beaches",
			"food":         "Food & Dining",
			"nightlife":    "Nightlife",
			"history":      "History",
			"wildlife":     "Wildlife",
			"skiing":       "Skiing",
			"architecture": "Architecture",
			"shopping":     "Shopping",
			"wellness":     "Wellness & Spa",
			"diving":       "Diving",
		},
		Styles: map[string]string{
			"adventure":  "Adventure",
			"relaxation": "Relaxation",
			"cultural":   "Cultural",
			"luxury":     "Luxury",
			"budget":     "Budget",
			"family":     "Family",
			"romantic":   "Romantic",
		},
		Seasons: map[string]string{
			"spring": "Spring",
			"summer": "Summer",
			"autumn": "Autumn",
			"winter": "Winter",
		},
		Durations: map[string]string{
			"weekend":      "weekend",
			"long_weekend": "long weekend",
			"week":         "week-long",
			"two_weeks":    "two-week",
		},
		Amenities: map[string]string{
			"wifi":             "Wi-Fi",
			"pool":             "Swimming pool",
			"parking":          "Free parking",
			"kitchen":          "Kitchen",
			"air_conditioning": "Air conditioning",
			"washer":           "Washer",
			"hot_tub":          "Hot tub",
			"pet_friendly":     "Pet friendly",
			"fireplace":        "Fireplace",
			"sea_view":         "Sea view",
			"gym":              "Gym",
			"ev_charger":       "EV charger",
		},
		Categories: map[string]string{
			"apartment": "Apartment",
			"villa":     "Villa",
			"cabin":     "Cabin",
			"house":     "House",
			"loft":      "Loft",
			"cottage":   "Cottage",
		},
	}
}

// Merge returns a copy of l with every entry of override applied on top.
func (l Labels) Merge(override Labels) Labels {
	return Labels{
		Tags:       mergeTable(l.Tags, override.Tags),
		Styles:     mergeTable(l.Styles, override.Styles),
		Seasons:    mergeTable(l.Seasons, override.Seasons),
		Durations:  mergeTable(l.Durations, override.Durations),
		Amenities:  mergeTable(l.Amenities, override.Amenities),
		Categories: mergeTable(l.Categories, override.Categories),
	}
}

func mergeTable(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}

func lookup(table map[string]string, id string) string {
	if name, ok := table[id]; ok && name != "" {
		return name
	}
	return id
}

// Tag returns the display name of a tag.
func (l Labels) Tag(id string) string { return lookup(l.Tags, id) }

// Style returns the display name of a travel style.
func (l Labels) Style(id string) string { return lookup(l.Styles, id) }

// Season returns the display name of a season.
func (l Labels) Season(id string) string { return lookup(l.Seasons, id) }

// Duration returns the display name of a duration bucket.
func (l Labels) Duration(id string) string { return lookup(l.Durations, id) }

// Amenity returns the display name of an amenity.
func (l Labels) Amenity(id string) string { return lookup(l.Amenities, id) }

// Category returns the display name of a listing category.
func (l Labels) Category(id string) string { return lookup(l.Categories, id) }
