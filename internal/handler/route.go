package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"safar/internal/domain"
	"safar/internal/repository"
	"safar/internal/service"
)

// RouteHandler handles HTTP requests for route planning.
type RouteHandler struct {
	engine      *service.RouteEngine
	historyRepo repository.HistoryRepository // optional
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(engine *service.RouteEngine, historyRepo repository.HistoryRepository) *RouteHandler {
	return &RouteHandler{
		engine:      engine,
		historyRepo: historyRepo,
	}
}

// SearchRoutesRequest is the HTTP request body for a route search.
type SearchRoutesRequest struct {
	Origin       *domain.Location `json:"origin"`
	Destination  *domain.Location `json:"destination"`
	Date         string           `json:"date"`
	Optimization string           `json:"optimization,omitempty"`
}

// SearchRoutesResponse is the HTTP response for a route search.
type SearchRoutesResponse struct {
	Success      bool                 `json:"success"`
	Origin       *domain.Location     `json:"origin"`
	Destination  *domain.Location     `json:"destination"`
	Date         string               `json:"date"`
	Optimization string               `json:"optimization"`
	RouteCount   int                  `json:"routeCount"`
	Routes       []domain.RouteOption `json:"routes"`
}

// AlternateRoutesRequest is the HTTP request body for an alternate search.
type AlternateRoutesRequest struct {
	Origin      *domain.Location `json:"origin"`
	Destination *domain.Location `json:"destination"`
	Date        string           `json:"date"`
	ExcludeType string           `json:"excludeType"`
}

// AlternateRoutesResponse is the HTTP response for an alternate search.
type AlternateRoutesResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Routes  []domain.RouteOption `json:"routes"`
}

// exampleSearchBody documents the expected request shape in 400 responses.
var exampleSearchBody = gin.H{
	"origin":       gin.H{"name": "Mumbai", "lat": 19.076, "lng": 72.8777},
	"destination":  gin.H{"name": "Pune", "lat": 18.5204, "lng": 73.8567},
	"date":         "2026-03-15",
	"optimization": "fastest",
}

// Search handles POST /v1/routes/search
func (h *RouteHandler) Search(c *gin.Context) {
	var req SearchRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "example": exampleSearchBody})
		return
	}

	if req.Origin == nil || req.Destination == nil || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "origin, destination, and date are required",
			"example": exampleSearchBody,
		})
		return
	}

	optimization := domain.OptimizationType(req.Optimization)
	if req.Optimization == "" {
		optimization = domain.OptimizeFastest
	}

	routes, err := h.engine.ComputeRoutes(c.Request.Context(), *req.Origin, *req.Destination, req.Date, optimization)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logSearchAsync(req, optimization, len(routes))

	c.JSON(http.StatusOK, SearchRoutesResponse{
		Success:      true,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Date:         req.Date,
		Optimization: string(optimization),
		RouteCount:   len(routes),
		Routes:       routes,
	})
}

// Alternate handles POST /v1/routes/alternate
func (h *RouteHandler) Alternate(c *gin.Context) {
	var req AlternateRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Origin == nil || req.Destination == nil || req.Date == "" || req.ExcludeType == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "origin, destination, date, and excludeType are required",
		})
		return
	}

	routes, err := h.engine.ComputeAlternateRoutes(
		c.Request.Context(), *req.Origin, *req.Destination, req.Date,
		domain.TransportMode(req.ExcludeType),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AlternateRoutesResponse{
		Success: true,
		Message: alternateMessage(len(routes), req.ExcludeType),
		Routes:  routes,
	})
}

func alternateMessage(count int, excludeType string) string {
	return fmt.Sprintf("Found %d alternate routes excluding %s", count, excludeType)
}

// logSearchAsync records the search in the history store, fire and forget.
func (h *RouteHandler) logSearchAsync(req SearchRoutesRequest, optimization domain.OptimizationType, routeCount int) {
	if h.historyRepo == nil {
		return
	}
	record := &domain.SearchRecord{
		ID:           uuid.New().String(),
		Origin:       req.Origin.Name,
		Destination:  req.Destination.Name,
		TravelDate:   req.Date,
		Optimization: optimization,
		RouteCount:   routeCount,
		CreatedAt:    time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.historyRepo.LogSearch(ctx, record)
	}()
}
