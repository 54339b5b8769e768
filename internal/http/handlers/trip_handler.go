// README: Read-only handlers for persisted trips and usage records.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/trip"
)

const (
	listTimeout      = 5 * time.Second
	defaultListLimit = 20
	maxListLimit     = 200
)

// TripLister reads persisted trip and usage records, newest first.
type TripLister interface {
	ListTrips(ctx context.Context, limit int) ([]trip.TripRecord, error)
	ListUsage(ctx context.Context, limit int) ([]trip.UsageRecord, error)
}

type TripHandler struct {
	store TripLister
}

func NewTripHandler(store TripLister) *TripHandler {
	return &TripHandler{store: store}
}

// ListTrips handles GET /api/trips.
func (h *TripHandler) ListTrips(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), listTimeout)
	defer cancel()

	recs, err := h.store.ListTrips(ctx, listLimit(c))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"trips": recs})
}

// ListUsage handles GET /api/usage.
func (h *TripHandler) ListUsage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), listTimeout)
	defer cancel()

	recs, err := h.store.ListUsage(ctx, listLimit(c))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"usage": recs})
}

func listLimit(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", ""))
	if err != nil || n <= 0 {
		return defaultListLimit
	}
	if n > maxListLimit {
		return maxListLimit
	}
	return n
}
