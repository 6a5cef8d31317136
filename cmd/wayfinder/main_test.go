// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args against the built-in catalog
// unless args name one, and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(catalogEnvVar, "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const smallCatalog = `
destinations:
  - id: alps
    name: Alps
    tags: [hiking, skiing]
    travel_styles: [adventure]
    best_seasons: [winter]
    recommended_duration: week
  - id: coast
    name: Coast
    tags: [beach]
    travel_styles: [relaxation]
    best_seasons: [summer]
    recommended_duration: weekend
listings:
  - id: chalet
    name: Snow Chalet
    location: Alps
    category: cabin
    price: 300
    bedrooms: 3
    amenities: [fireplace]
  - id: hut
    name: Beach Hut
    location: Coast
    category: cabin
    price: 80
    bedrooms: 1
    amenities: [wifi]
`

func TestRootCommand_Help(t *testing.T) {
	out, err := runCLI(t, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"recommend", "filter", "categories", "validate-catalog"} {
		assert.Contains(t, out, sub)
	}
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	_, err := runCLI(t, "book")
	assert.Error(t, err)
}

func TestLoadCatalog_EnvFallback(t *testing.T) {
	path := writeCatalog(t, "catalog.yaml", smallCatalog)
	t.Setenv(catalogEnvVar, path)

	c, err := loadCatalog("")
	require.NoError(t, err)
	assert.Len(t, c.Destinations(), 2)
	assert.Equal(t, "file:"+path, c.Source())
}

func TestLoadCatalog_Seed(t *testing.T) {
	t.Setenv(catalogEnvVar, "")

	c, err := loadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, "seed", c.Source())
	assert.NotEmpty(t, c.Destinations())
}

func TestLoadCatalog_Missing(t *testing.T) {
	_, err := loadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestWriteJSON_Indented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

// decode unmarshals CLI output into v.
func decode(t *testing.T, out string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(out), v), "output: %s", out)
}
