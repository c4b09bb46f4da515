package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"safar/internal/app"
	"safar/internal/config"
	"safar/internal/handler"
	"safar/internal/provider"
	internalRedis "safar/internal/redis"
	"safar/internal/repository"
	"safar/internal/repository/postgres"
	"safar/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize optional history database with New Relic instrumentation.
	var db *sql.DB
	if cfg.Database.Enabled {
		db, err = app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Println("Connected to PostgreSQL")
	}

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis search cache.
	searchCache := internalRedis.NewSearchCache(redisClient, cfg.Provider.CacheTTL)

	// Initialize the optional history repository.
	var historyRepo repository.HistoryRepository
	if db != nil {
		historyRepo = postgres.NewHistoryRepository(db)
	}

	// Initialize providers.
	trainService := provider.NewTrainService(cfg.Provider.RapidAPIKey, cfg.Provider.SearchTimeout)
	flightService := provider.NewFlightService()
	busService := provider.NewBusService()
	placeService := provider.NewPlaceService()
	predictionClient := provider.NewPredictionClient(cfg.Provider.MLServiceURL, cfg.Provider.PredictionTimeout)

	// Initialize services.
	reliabilityService := service.NewReliabilityService(predictionClient)
	routeEngine := service.NewRouteEngine(trainService, flightService, busService, reliabilityService, cfg.Provider.SearchTimeout)

	// Initialize handlers.
	routeHandler := handler.NewRouteHandler(routeEngine, historyRepo)
	transportHandler := handler.NewTransportHandler(trainService, flightService, busService)
	placeHandler := handler.NewPlaceHandler(placeService)
	historyHandler := handler.NewHistoryHandler(historyRepo)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		RouteHandler:     routeHandler,
		TransportHandler: transportHandler,
		PlaceHandler:     placeHandler,
		HistoryHandler:   historyHandler,
		SearchCache:      searchCache,
		NewRelicApp:      nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
