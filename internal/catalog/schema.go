// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/tomtom215/wayfinder/internal/validation"
)

// documentSchema describes the structure of a catalog document. Identifier
// syntax and cross-field rules are checked afterwards by struct validation.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Wayfinder catalog",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "destinations": {
      "type": "array",
      "items": { "$ref": "#/definitions/destination" }
    },
    "listings": {
      "type": "array",
      "items": { "$ref": "#/definitions/listing" }
    },
    "categories": { "$ref": "#/definitions/stringList" },
    "labels": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "tags":       { "$ref": "#/definitions/labelTable" },
        "styles":     { "$ref": "#/definitions/labelTable" },
        "seasons":    { "$ref": "#/definitions/labelTable" },
        "durations":  { "$ref": "#/definitions/labelTable" },
        "amenities":  { "$ref": "#/definitions/labelTable" },
        "categories": { "$ref": "#/definitions/labelTable" }
      }
    }
  },
  "definitions": {
    "stringList": {
      "type": "array",
      "items": { "type": "string" }
    },
    "labelTable": {
      "type": "object",
      "additionalProperties": { "type": "string" }
    },
    "destination": {
      "type": "object",
      "additionalProperties": false,
      "required": ["name"],
      "properties": {
        "id":                   { "type": "string" },
        "name":                 { "type": "string", "minLength": 1 },
        "tags":                 { "$ref": "#/definitions/stringList" },
        "travel_styles":        { "$ref": "#/definitions/stringList" },
        "best_seasons":         { "$ref": "#/definitions/stringList" },
        "recommended_duration": { "type": "string" },
        "image":                { "type": "string" },
        "description":          { "type": "string" }
      }
    },
    "listing": {
      "type": "object",
      "additionalProperties": false,
      "required": ["name", "category", "price"],
      "properties": {
        "id":          { "type": "string" },
        "name":        { "type": "string", "minLength": 1 },
        "location":    { "type": "string" },
        "category":    { "type": "string" },
        "price":       { "type": "number", "minimum": 0 },
        "bedrooms":    { "type": "integer", "minimum": 0 },
        "amenities":   { "$ref": "#/definitions/stringList" },
        "rating":      { "type": "number", "minimum": 0, "maximum": 5 },
        "image":       { "type": "string" },
        "description": { "type": "string" }
      }
    }
  }
}`

var documentSchemaLoader = gojsonschema.NewStringLoader(documentSchema)

// ValidateSchema checks a JSON catalog document against the catalog schema.
// It returns a *ValidationError listing every violation.
func ValidateSchema(data []byte) error {
	result, err := gojsonschema.Validate(documentSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("catalog schema check: %w", err)
	}
	if result.Valid() {
		return nil
	}

	fields := make([]validation.FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		fields = append(fields, validation.FieldError{
			Field:   field,
			Tag:     desc.Type(),
			Message: field + ": " + desc.Description(),
		})
	}
	return &ValidationError{Stage: "schema", Fields: fields}
}
