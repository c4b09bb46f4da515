package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"safar/internal/domain"
	"safar/internal/repository"
)

const defaultHistoryLimit = 100

// HistoryHandler serves recorded delay and cancellation observations.
type HistoryHandler struct {
	historyRepo repository.HistoryRepository
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyRepo repository.HistoryRepository) *HistoryHandler {
	return &HistoryHandler{historyRepo: historyRepo}
}

// Get handles GET /v1/reliability/history
func (h *HistoryHandler) Get(c *gin.Context) {
	route := c.Query("route")
	mode := c.Query("mode")
	if route == "" || mode == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "route and mode are required"})
		return
	}

	limit := defaultHistoryLimit
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if h.historyRepo == nil {
		c.JSON(http.StatusOK, gin.H{"delays": []any{}, "cancellations": []any{}})
		return
	}

	ctx := c.Request.Context()
	transportMode := domain.TransportMode(mode)

	delays, err := h.historyRepo.GetDelayHistory(ctx, route, transportMode, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	cancellations, err := h.historyRepo.GetCancellationHistory(ctx, route, transportMode, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"delays":        delays,
		"cancellations": cancellations,
	})
}
