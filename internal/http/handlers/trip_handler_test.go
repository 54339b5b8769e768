// README: Handler tests for the trip and usage listing endpoints.
package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"voyago/internal/http/handlers"
	"voyago/internal/modules/trip"
)

// stubLister is a test double for handlers.TripLister that records the
// limit it was asked for.
type stubLister struct {
	trips     []trip.TripRecord
	usage     []trip.UsageRecord
	err       error
	lastLimit int
}

func (s *stubLister) ListTrips(_ context.Context, limit int) ([]trip.TripRecord, error) {
	s.lastLimit = limit
	return s.trips, s.err
}

func (s *stubLister) ListUsage(_ context.Context, limit int) ([]trip.UsageRecord, error) {
	s.lastLimit = limit
	return s.usage, s.err
}

func buildTripRouter(store handlers.TripLister) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewTripHandler(store)
	r.GET("/api/trips", h.ListTrips)
	r.GET("/api/usage", h.ListUsage)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListTrips_ReturnsRecords(t *testing.T) {
	store := &stubLister{trips: []trip.TripRecord{
		{ID: 2, Destination: "Tokyo", UserInput: "visit tokyo"},
		{ID: 1, Destination: "Paris", UserInput: "trip to Paris"},
	}}
	r := buildTripRouter(store)

	w := doGet(r, "/api/trips")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Trips []trip.TripRecord `json:"trips"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Trips) != 2 || resp.Trips[0].Destination != "Tokyo" {
		t.Errorf("trips = %+v", resp.Trips)
	}
}

func TestListUsage_ReturnsRecords(t *testing.T) {
	store := &stubLister{usage: []trip.UsageRecord{
		{ID: 1, Model: "gemini-1.5-pro", PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}}
	r := buildTripRouter(store)

	w := doGet(r, "/api/usage")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Usage []trip.UsageRecord `json:"usage"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Usage) != 1 || resp.Usage[0].TotalTokens != 15 {
		t.Errorf("usage = %+v", resp.Usage)
	}
}

// TestListTrips_LimitClamp verifies missing, non-positive, and oversized
// limit parameters collapse to the default or the maximum.
func TestListTrips_LimitClamp(t *testing.T) {
	tests := []struct {
		name string
		path string
		want int
	}{
		{"No limit uses default", "/api/trips", 20},
		{"Zero uses default", "/api/trips?limit=0", 20},
		{"Negative uses default", "/api/trips?limit=-5", 20},
		{"Garbage uses default", "/api/trips?limit=abc", 20},
		{"In range passes through", "/api/trips?limit=7", 7},
		{"Oversized clamps to max", "/api/trips?limit=999", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubLister{}
			r := buildTripRouter(store)

			w := doGet(r, tt.path)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if store.lastLimit != tt.want {
				t.Errorf("store asked for limit %d, want %d", store.lastLimit, tt.want)
			}
		})
	}
}

func TestListTrips_StoreError(t *testing.T) {
	r := buildTripRouter(&stubLister{err: errors.New("db down")})

	w := doGet(r, "/api/trips")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
