// Wayfinder - Travel Recommendation and Listing Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/listings", "200"))

	RecordAPIRequest("GET", "/api/v1/listings", "200", 3*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/listings", "200", 5*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/listings", "200"))
	if after-before != 2 {
		t.Errorf("expected counter to increase by 2, got %v", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendRequests.WithLabelValues("hit"))

	RecordRecommendation("hit", 200*time.Microsecond, 4)

	if got := testutil.ToFloat64(RecommendRequests.WithLabelValues("hit")); got != before+1 {
		t.Errorf("hit counter = %v, want %v", got, before+1)
	}

	var m dto.Metric
	if err := RecommendResultSize.Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if m.GetHistogram().GetSampleCount() == 0 {
		t.Error("expected at least one result size observation")
	}
}

func TestRecordCatalogLoad(t *testing.T) {
	t.Run("success updates gauges", func(t *testing.T) {
		RecordCatalogLoad("file", nil, 7, 12, 30)

		if got := testutil.ToFloat64(CatalogVersion); got != 7 {
			t.Errorf("CatalogVersion = %v, want 7", got)
		}
		if got := testutil.ToFloat64(CatalogEntities.WithLabelValues("destination")); got != 12 {
			t.Errorf("destination gauge = %v, want 12", got)
		}
		if got := testutil.ToFloat64(CatalogEntities.WithLabelValues("listing")); got != 30 {
			t.Errorf("listing gauge = %v, want 30", got)
		}
	})

	t.Run("error leaves gauges untouched", func(t *testing.T) {
		before := testutil.ToFloat64(CatalogLoads.WithLabelValues("file", "error"))

		RecordCatalogLoad("file", errors.New("boom"), 99, 1, 1)

		if got := testutil.ToFloat64(CatalogLoads.WithLabelValues("file", "error")); got != before+1 {
			t.Errorf("error counter = %v, want %v", got, before+1)
		}
		if got := testutil.ToFloat64(CatalogVersion); got == 99 {
			t.Error("version gauge should not change on error")
		}
	})
}

func TestRecordSessionOperation(t *testing.T) {
	okBefore := testutil.ToFloat64(SessionOperations.WithLabelValues("memory", "get", "success"))
	errBefore := testutil.ToFloat64(SessionOperations.WithLabelValues("memory", "get", "error"))

	RecordSessionOperation("memory", "get", nil)
	RecordSessionOperation("memory", "get", errors.New("not found"))

	if got := testutil.ToFloat64(SessionOperations.WithLabelValues("memory", "get", "success")); got != okBefore+1 {
		t.Errorf("success counter = %v, want %v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(SessionOperations.WithLabelValues("memory", "get", "error")); got != errBefore+1 {
		t.Errorf("error counter = %v, want %v", got, errBefore+1)
	}
}
