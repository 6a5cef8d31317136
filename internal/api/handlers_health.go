// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wayfinder/internal/recommend"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status         string    `json:"status"`
	Version        string    `json:"version"`
	CatalogVersion uint64    `json:"catalog_version"`
	CatalogSource  string    `json:"catalog_source,omitempty"`
	CatalogLoaded  time.Time `json:"catalog_loaded_at,omitempty"`
	Destinations   int       `json:"destinations"`
	Listings       int       `json:"listings"`
	SessionBackend string    `json:"session_backend"`
	Uptime         float64   `json:"uptime_seconds"`
}

// Health reports liveness. The service is "degraded" until a catalog is
// loaded, but always answers 200 so orchestrators do not restart it.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	health := HealthStatus{
		Status:         "degraded",
		Version:        h.version,
		SessionBackend: h.sessions.Backend(),
		Uptime:         time.Since(h.startTime).Seconds(),
	}

	meta := &APIMeta{}
	if c := h.holder.Current(); c != nil {
		health.Status = "healthy"
		health.CatalogVersion = c.Version()
		health.CatalogSource = c.Source()
		health.CatalogLoaded = c.LoadedAt()
		health.Destinations = len(c.Destinations())
		health.Listings = len(c.Listings())
		meta.CatalogVersion = c.Version()
	}

	rw.SuccessWithMeta(health, meta)
}

// EngineStatus is the body of GET /api/v1/status.
type EngineStatus struct {
	Recommend      recommend.Status `json:"recommend"`
	SessionBackend string           `json:"session_backend"`
}

// Status reports recommendation engine counters and configuration.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(EngineStatus{
		Recommend:      h.engine.Status(),
		SessionBackend: h.sessions.Backend(),
	})
}
