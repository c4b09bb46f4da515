package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"safar/internal/handler"
	"safar/internal/middleware"
	internalRedis "safar/internal/redis"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	RouteHandler     *handler.RouteHandler
	TransportHandler *handler.TransportHandler
	PlaceHandler     *handler.PlaceHandler
	HistoryHandler   *handler.HistoryHandler
	SearchCache      *internalRedis.SearchCache
	NewRelicApp      *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Route planning.
		routes := v1.Group("/routes")
		{
			routes.POST("/search", middleware.CacheMiddleware(deps.SearchCache, "routes"), deps.RouteHandler.Search)
			routes.POST("/alternate", middleware.CacheMiddleware(deps.SearchCache, "alt-routes"), deps.RouteHandler.Alternate)
		}

		// Per-mode inventory searches.
		transport := v1.Group("/transport")
		{
			transport.GET("/trains/search", middleware.CacheMiddleware(deps.SearchCache, "trains"), deps.TransportHandler.SearchTrains)
			transport.GET("/flights/search", middleware.CacheMiddleware(deps.SearchCache, "flights"), deps.TransportHandler.SearchFlights)
			transport.GET("/buses/search", middleware.CacheMiddleware(deps.SearchCache, "buses"), deps.TransportHandler.SearchBuses)
		}

		// Place autocomplete.
		places := v1.Group("/places")
		{
			places.GET("/autocomplete", middleware.CacheMiddleware(deps.SearchCache, "places"), deps.PlaceHandler.Autocomplete)
		}

		// Reliability history.
		reliability := v1.Group("/reliability")
		{
			reliability.GET("/history", deps.HistoryHandler.Get)
		}
	}

	return router
}
