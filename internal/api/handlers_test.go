// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/wayfinder/internal/catalog"
	"github.com/tomtom215/wayfinder/internal/listing"
	"github.com/tomtom215/wayfinder/internal/metrics"
	"github.com/tomtom215/wayfinder/internal/recommend"
)

// =====================================================
// Health and metrics
// =====================================================

func TestHealth(t *testing.T) {
	tests := []struct {
		name        string
		withCatalog bool
		status      string
	}{
		{"catalog loaded", true, "healthy"},
		{"no catalog", false, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.withCatalog, nil)
			rec := srv.do(t, http.MethodGet, "/health", "")

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			var health HealthStatus
			decodeEnvelope(t, rec, &health)
			if health.Status != tt.status {
				t.Errorf("status = %q, want %q", health.Status, tt.status)
			}
			if health.SessionBackend != "memory" {
				t.Errorf("session backend = %q", health.SessionBackend)
			}
			if tt.withCatalog && (health.Destinations != 3 || health.Listings != 3 || health.CatalogVersion != 1) {
				t.Errorf("health = %+v", health)
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Error("missing X-Request-ID response header")
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, true, nil)
	srv.do(t, http.MethodGet, "/health", "")

	rec := srv.do(t, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "wayfinder_api_requests_total") {
		t.Error("exposition missing wayfinder_api_requests_total")
	}
}

func TestStatus(t *testing.T) {
	srv := newTestServer(t, true, nil)
	srv.do(t, http.MethodPost, "/api/v1/recommendations", `{"tags":["museum"]}`)

	rec := srv.do(t, http.MethodGet, "/api/v1/status", "")
	var status EngineStatus
	decodeEnvelope(t, rec, &status)
	if status.Recommend.Requests != 1 {
		t.Errorf("requests = %d, want 1", status.Recommend.Requests)
	}
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t, true, nil)
	expectError(t, srv.do(t, http.MethodGet, "/api/v1/nowhere", ""), http.StatusNotFound, ErrCodeNotFound)
}

// =====================================================
// Catalog
// =====================================================

func TestLabels(t *testing.T) {
	srv := newTestServer(t, true, nil)
	rec := srv.do(t, http.MethodGet, "/api/v1/labels", "")

	var labels catalog.Labels
	env := decodeEnvelope(t, rec, &labels)
	if env.Meta.CatalogVersion != 1 {
		t.Errorf("catalog_version = %d", env.Meta.CatalogVersion)
	}
	if labels.Tag("hiking") != "Hiking" {
		t.Errorf("hiking label = %q", labels.Tag("hiking"))
	}
}

func TestCatalogEndpoints_NoCatalog(t *testing.T) {
	srv := newTestServer(t, false, nil)
	for _, path := range []string{"/api/v1/labels", "/api/v1/destinations", "/api/v1/listings", "/api/v1/listings/categories"} {
		t.Run(path, func(t *testing.T) {
			expectError(t, srv.do(t, http.MethodGet, path, ""), http.StatusServiceUnavailable, ErrCodeServiceUnavailable)
		})
	}
}

func TestDestinations(t *testing.T) {
	srv := newTestServer(t, true, nil)

	var all []catalog.Entity
	decodeEnvelope(t, srv.do(t, http.MethodGet, "/api/v1/destinations", ""), &all)
	if len(all) != 3 || all[0].ID != "banff" || all[2].ID != "kyoto" {
		t.Errorf("destinations = %+v", all)
	}

	var one catalog.Entity
	decodeEnvelope(t, srv.do(t, http.MethodGet, "/api/v1/destinations/paris", ""), &one)
	if one.Name != "Paris" {
		t.Errorf("destination = %+v", one)
	}

	expectError(t, srv.do(t, http.MethodGet, "/api/v1/destinations/atlantis", ""), http.StatusNotFound, ErrCodeNotFound)
}

// =====================================================
// Recommendations
// =====================================================

func TestRecommend(t *testing.T) {
	srv := newTestServer(t, true, nil)

	rec := srv.do(t, http.MethodPost, "/api/v1/recommendations", `{"tags":["museum"],"style":"cultural"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}

	var resp recommend.Response
	env := decodeEnvelope(t, rec, &resp)
	if len(resp.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(resp.Items))
	}
	// equal scores keep catalog order
	if resp.Items[0].Destination.ID != "paris" || resp.Items[1].Destination.ID != "kyoto" {
		t.Errorf("order = %s, %s", resp.Items[0].Destination.ID, resp.Items[1].Destination.ID)
	}
	if resp.TotalCandidates != 3 {
		t.Errorf("total candidates = %d", resp.TotalCandidates)
	}
	if env.Meta.Cached {
		t.Error("first request should not be cached")
	}

	env = decodeEnvelope(t, srv.do(t, http.MethodPost, "/api/v1/recommendations", `{"tags":["museum"],"style":"cultural"}`), nil)
	if !env.Meta.Cached {
		t.Error("repeat request should be served from cache")
	}
}

func TestRecommend_EmptyBody(t *testing.T) {
	srv := newTestServer(t, true, nil)
	rec := srv.do(t, http.MethodPost, "/api/v1/recommendations", "")

	var resp recommend.Response
	decodeEnvelope(t, rec, &resp)
	if rec.Code != http.StatusOK || len(resp.Items) != 0 {
		t.Errorf("status = %d, items = %d", rec.Code, len(resp.Items))
	}
}

func TestRecommend_BadBodies(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"not json", `{"tags":`, http.StatusBadRequest, ErrCodeBadRequest},
		{"unknown field", `{"colour":"red"}`, http.StatusBadRequest, ErrCodeBadRequest},
		{"empty tag", `{"tags":[""]}`, http.StatusBadRequest, ErrCodeValidationFailed},
		{"oversized style", `{"style":"` + strings.Repeat("s", 65) + `"}`, http.StatusBadRequest, ErrCodeValidationFailed},
		{"comma in tag", `{"tags":["hiking,museum"]}`, http.StatusBadRequest, ErrCodeValidationFailed},
		{"non-identifier season", `{"season":"Summer Time"}`, http.StatusBadRequest, ErrCodeValidationFailed},
	}

	srv := newTestServer(t, true, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, srv.do(t, http.MethodPost, "/api/v1/recommendations", tt.body), tt.status, tt.code)
		})
	}
}

func TestRecommend_NoCatalog(t *testing.T) {
	srv := newTestServer(t, false, nil)
	expectError(t, srv.do(t, http.MethodPost, "/api/v1/recommendations", `{"tags":["museum"]}`),
		http.StatusServiceUnavailable, ErrCodeServiceUnavailable)
}

// =====================================================
// Listings
// =====================================================

func TestListings(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"no filters", "", []string{"cabin", "loft", "villa"}},
		{"price bounded", "?price=100-300", []string{"cabin", "loft"}},
		{"price open ended", "?price=300%2B", []string{"villa"}},
		{"category any case", "?category=CABIN", []string{"cabin"}},
		{"bedrooms", "?bedrooms=2", []string{"cabin", "villa"}},
		{"amenities comma list", "?amenities=wifi,pool", []string{"villa"}},
		{"amenities repeated", "?amenities=wifi&amenities=fireplace", []string{"cabin"}},
		{"search location", "?q=paris", []string{"loft"}},
		{"nothing matches", "?price=0-50", []string{}},
	}

	srv := newTestServer(t, true, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodGet, "/api/v1/listings"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
			}

			var result ListingsResult
			decodeEnvelope(t, rec, &result)
			if result.Total != 3 || result.Matched != len(tt.want) {
				t.Errorf("total = %d, matched = %d", result.Total, result.Matched)
			}
			got := make([]string, len(result.Listings))
			for i, l := range result.Listings {
				got[i] = l.ID
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("listings = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListings_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		reason string
	}{
		{"malformed price", "?price=abc", "price_range"},
		{"inverted price", "?price=500-100", "price_range"},
		{"bedrooms not a number", "?bedrooms=two", "validation"},
		{"negative bedrooms", "?bedrooms=-1", "validation"},
	}

	srv := newTestServer(t, true, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.ListingFilterRejections.WithLabelValues(tt.reason)
			before := testutil.ToFloat64(counter)

			expectError(t, srv.do(t, http.MethodGet, "/api/v1/listings"+tt.query, ""), http.StatusBadRequest, ErrCodeValidationFailed)

			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("rejections[%s] increased by %v", tt.reason, got)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	srv := newTestServer(t, true, nil)

	var counts []listing.CategoryCount
	decodeEnvelope(t, srv.do(t, http.MethodGet, "/api/v1/listings/categories", ""), &counts)

	want := []listing.CategoryCount{{Category: "cabin", Count: 1}, {Category: "apartment", Count: 1}, {Category: "villa", Count: 1}}
	if len(counts) != len(want) {
		t.Fatalf("counts = %+v", counts)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %+v, want %+v", i, counts[i], want[i])
		}
	}
}
