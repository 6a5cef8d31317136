// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/wayfinder/internal/validation"
)

// Format is the encoding of a catalog document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("catalog: unsupported file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// LoadFile reads and validates the catalog document at path.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data, format, "file:"+path)
}

// Parse decodes, validates and builds a catalog.
func Parse(data []byte, format Format, source string) (*Catalog, error) {
	doc, err := ParseDocument(data, format)
	if err != nil {
		return nil, err
	}
	return New(doc, source)
}

// ParseDocument decodes and validates a catalog document without building it.
//
// YAML input is normalized to JSON first so both formats pass through the same
// schema check. Missing ids are derived from names.
func ParseDocument(data []byte, format Format) (*Document, error) {
	var err error
	switch format {
	case FormatJSON:
	case FormatYAML:
		if data, err = yamlToJSON(data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("catalog: unknown format %q", format)
	}

	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	fillIDs(&doc)

	if verr := validation.ValidateStruct(&doc); verr != nil {
		return nil, &ValidationError{Stage: "fields", Fields: verr.Fields}
	}
	return &doc, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	out, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize catalog yaml: %w", err)
	}
	return out, nil
}

// fillIDs derives ids from names for rows that omit them, e.g. "Banff National Park" -> "banff-national-park".
func fillIDs(doc *Document) {
	for i := range doc.Destinations {
		if doc.Destinations[i].ID == "" {
			doc.Destinations[i].ID = slug.Make(doc.Destinations[i].Name)
		}
	}
	for i := range doc.Listings {
		if doc.Listings[i].ID == "" {
			doc.Listings[i].ID = slug.Make(doc.Listings[i].Name)
		}
	}
}
