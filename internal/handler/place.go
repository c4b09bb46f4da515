package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safar/internal/provider"
)

// PlaceHandler handles place autocomplete requests.
type PlaceHandler struct {
	places *provider.PlaceService
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(places *provider.PlaceService) *PlaceHandler {
	return &PlaceHandler{places: places}
}

// Autocomplete handles GET /v1/places/autocomplete
func (h *PlaceHandler) Autocomplete(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter is required"})
		return
	}

	predictions, err := h.places.Autocomplete(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	if predictions == nil {
		predictions = []provider.PlacePrediction{}
	}
	c.JSON(http.StatusOK, gin.H{"predictions": predictions})
}
