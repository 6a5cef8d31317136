// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfinder_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfinder_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_recommend_requests_total",
			Help: "Total recommendation requests by cache outcome",
		},
		[]string{"cache"}, // "hit", "miss", "disabled"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wayfinder_recommend_duration_seconds",
			Help:    "Time spent scoring and ranking one request",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		},
	)

	RecommendResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wayfinder_recommend_result_size",
			Help:    "Number of destinations returned per recommendation",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 10, 20},
		},
	)

	RecommendCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfinder_recommend_cache_entries",
			Help: "Current number of cached recommendation results",
		},
	)

	// Listing Filter Metrics
	ListingFilterMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wayfinder_listing_filter_matches",
			Help:    "Number of listings matched per filter request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	ListingFilterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_listing_filter_rejections_total",
			Help: "Filter requests rejected before evaluation",
		},
		[]string{"reason"}, // "price_range", "validation"
	)

	// Catalog Metrics
	CatalogVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfinder_catalog_version",
			Help: "Version of the catalog snapshot currently served",
		},
	)

	CatalogEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wayfinder_catalog_entities",
			Help: "Number of entities in the served catalog",
		},
		[]string{"kind"}, // "destination", "listing"
	)

	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_catalog_loads_total",
			Help: "Catalog load attempts by source and result",
		},
		[]string{"source", "result"},
	)

	CatalogLastLoad = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfinder_catalog_last_load_timestamp_seconds",
			Help: "Unix time of the last successful catalog load",
		},
	)

	// Session Metrics
	SessionOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_session_operations_total",
			Help: "Session store operations by backend, operation and result",
		},
		[]string{"backend", "operation", "result"},
	)

	SessionBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wayfinder_session_breaker_state",
			Help: "Circuit breaker state for remote session backends (0=closed, 1=half-open, 2=open)",
		},
		[]string{"backend"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation pass.
func RecordRecommendation(cacheOutcome string, duration time.Duration, resultSize int) {
	RecommendRequests.WithLabelValues(cacheOutcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
	RecommendResultSize.Observe(float64(resultSize))
}

// RecordCatalogLoad records a catalog load attempt. On success the served
// version and entity gauges are updated.
func RecordCatalogLoad(source string, err error, version uint64, destinations, listings int) {
	if err != nil {
		CatalogLoads.WithLabelValues(source, "error").Inc()
		return
	}
	CatalogLoads.WithLabelValues(source, "success").Inc()
	CatalogVersion.Set(float64(version))
	CatalogEntities.WithLabelValues("destination").Set(float64(destinations))
	CatalogEntities.WithLabelValues("listing").Set(float64(listings))
	CatalogLastLoad.Set(float64(time.Now().Unix()))
}

// RecordSessionOperation records a session store call.
func RecordSessionOperation(backend, operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	SessionOperations.WithLabelValues(backend, operation, result).Inc()
}
