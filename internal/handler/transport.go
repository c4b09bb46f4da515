package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safar/internal/service"
)

// TransportHandler exposes the per-mode inventory searches.
type TransportHandler struct {
	trains  service.TrainSearcher
	flights service.FlightSearcher
	buses   service.BusSearcher
}

// NewTransportHandler creates a new TransportHandler.
func NewTransportHandler(trains service.TrainSearcher, flights service.FlightSearcher, buses service.BusSearcher) *TransportHandler {
	return &TransportHandler{
		trains:  trains,
		flights: flights,
		buses:   buses,
	}
}

// searchParams extracts and validates the common search query parameters.
func searchParams(c *gin.Context) (from, to, date string, ok bool) {
	from = c.Query("from")
	to = c.Query("to")
	date = c.Query("date")
	if from == "" || to == "" || date == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from, to, and date are required"})
		return "", "", "", false
	}
	return from, to, date, true
}

// SearchTrains handles GET /v1/transport/trains/search
func (h *TransportHandler) SearchTrains(c *gin.Context) {
	from, to, date, ok := searchParams(c)
	if !ok {
		return
	}

	trains, err := h.trains.Search(c.Request.Context(), from, to, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"source": "indian-railways", "trains": trains})
}

// SearchFlights handles GET /v1/transport/flights/search
func (h *TransportHandler) SearchFlights(c *gin.Context) {
	from, to, date, ok := searchParams(c)
	if !ok {
		return
	}

	flights, err := h.flights.Search(c.Request.Context(), from, to, date)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(flights) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"source":  "no-airport",
			"flights": []any{},
			"message": "No flights available between " + from + " and " + to,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"source": "indian-airlines", "flights": flights})
}

// SearchBuses handles GET /v1/transport/buses/search
func (h *TransportHandler) SearchBuses(c *gin.Context) {
	from, to, date, ok := searchParams(c)
	if !ok {
		return
	}

	buses, err := h.buses.Search(c.Request.Context(), from, to, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"source": "indian-bus-operators", "buses": buses})
}
