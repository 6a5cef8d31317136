// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/catalog"
	"github.com/tomtom215/wayfinder/internal/recommend"
	"github.com/tomtom215/wayfinder/internal/session"
)

// testEnvelope mirrors APIResponse with a raw payload for typed decoding.
type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func testDocument() *catalog.Document {
	return &catalog.Document{
		Destinations: []catalog.Entity{
			{ID: "banff", Name: "Banff", Tags: []string{"hiking", "nature"}, TravelStyles: []string{"adventure"}, BestSeasons: []string{"summer"}, RecommendedDuration: "week"},
			{ID: "paris", Name: "Paris", Tags: []string{"museum", "food"}, TravelStyles: []string{"cultural"}, BestSeasons: []string{"spring"}, RecommendedDuration: "weekend"},
			{ID: "kyoto", Name: "Kyoto", Tags: []string{"museum", "history"}, TravelStyles: []string{"cultural"}, BestSeasons: []string{"autumn"}, RecommendedDuration: "week"},
		},
		Listings: []catalog.Listing{
			{ID: "cabin", Name: "Lakeside Cabin", Location: "Banff", Category: "cabin", Price: 120, Bedrooms: 2, Amenities: []string{"wifi", "fireplace"}},
			{ID: "loft", Name: "Marais Loft", Location: "Paris", Category: "apartment", Price: 250, Bedrooms: 1, Amenities: []string{"wifi"}},
			{ID: "villa", Name: "Hillside Villa", Location: "Kyoto", Category: "villa", Price: 600, Bedrooms: 4, Amenities: []string{"pool", "wifi"}},
		},
	}
}

type testServer struct {
	handler  http.Handler
	holder   *catalog.Holder
	engine   *recommend.Engine
	sessions *session.Manager
}

func newTestServer(t *testing.T, withCatalog bool, mw *ChiMiddlewareConfig) *testServer {
	t.Helper()

	holder := catalog.NewHolder(nil)
	if withCatalog {
		c, err := catalog.New(testDocument(), "test")
		if err != nil {
			t.Fatalf("catalog.New: %v", err)
		}
		holder.Replace(c)
	}

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), holder, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	sessions := session.NewManager(session.NewMemoryStore(100, time.Hour), zerolog.Nop())
	t.Cleanup(func() { _ = sessions.Close() })

	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}

	h := NewHandler(holder, engine, sessions, "test")
	return &testServer{
		handler:  NewRouter(h, mw).SetupChi(),
		holder:   holder,
		engine:   engine,
		sessions: sessions,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return env
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) testEnvelope {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec, nil)
	if env.Success {
		t.Error("success = true on error response")
	}
	if env.Error == nil || env.Error.Code != code {
		t.Fatalf("error = %+v, want code %s", env.Error, code)
	}
	if env.Error.RequestID == "" {
		t.Error("error response missing request_id")
	}
	return env
}
