// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wayfinder/internal/catalog"
	"github.com/tomtom215/wayfinder/internal/recommend"
	"github.com/tomtom215/wayfinder/internal/session"
)

// requestTimeout bounds recommendation and session backend calls.
const requestTimeout = 10 * time.Second

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: health and engine status
//   - handlers_catalog.go: labels and destinations
//   - handlers_recommend.go: stateless recommendations
//   - handlers_listings.go: listing filter and category counts
//   - handlers_sessions.go: preference sessions
type Handler struct {
	holder    *catalog.Holder
	engine    *recommend.Engine
	sessions  *session.Manager
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
//
//	handler := api.NewHandler(holder, engine, sessions, version)
//	router := api.NewRouter(handler, api.DefaultChiMiddlewareConfig())
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(holder *catalog.Holder, engine *recommend.Engine, sessions *session.Manager, version string) *Handler {
	return &Handler{
		holder:    holder,
		engine:    engine,
		sessions:  sessions,
		version:   version,
		startTime: time.Now(),
	}
}

// currentCatalog writes 503 and returns nil when no catalog is loaded.
func (h *Handler) currentCatalog(rw *ResponseWriter) *catalog.Catalog {
	c := h.holder.Current()
	if c == nil {
		rw.ServiceUnavailable("Catalog not loaded")
	}
	return c
}

// catalogMeta tags a response with the catalog version it was built from.
func catalogMeta(c *catalog.Catalog) *APIMeta {
	return &APIMeta{CatalogVersion: c.Version()}
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
}
