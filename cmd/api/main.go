package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/adapters/cache"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/adapters/database"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/adapters/events"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/api/handlers"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/api/middleware"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/api/routes"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/application/services"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/providers"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/repositories"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/infrastructure/clients/postgres"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/infrastructure/clients/redis"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/infrastructure/observability"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/loaders"
	"github.com/makjesusfreak-ai/ReactWebApp99/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize structured logging
	observability.InitLogger("ailment-tracker-api", cfg.Env)

	log.Info().
		Str("env", cfg.Env).
		Msg("Starting Ailment Tracker API")

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized successfully")

	// Initialize Redis client. The API degrades gracefully without Redis:
	// no read-through cache, no HTTP response cache, and events stay
	// in-process instead of fanning out across instances.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Redis client, running degraded")
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info().Msg("Redis client initialized successfully")
		}
	}

	// Initialize repository, wrapped with caching when Redis is available
	baseAdapter := database.NewAilmentAdapter(pgClient)

	var ailmentRepo repositories.AilmentRepository
	var cacheProvider providers.CacheProvider
	var cacheMiddleware *middleware.CacheMiddleware
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
		ailmentRepo = database.NewCachedAilmentAdapter(baseAdapter, cacheProvider, cfg.Cache.TTLSeconds)
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Info().Msg("Ailment adapter wrapped with caching layer")
	} else {
		ailmentRepo = baseAdapter
		log.Warn().Msg("Ailment adapter running without cache (Redis unavailable)")
	}

	// Initialize event bus
	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Info().Msg("Redis event bus initialized")
	} else {
		eventBus = events.NewMemoryEventBus()
		log.Warn().Msg("Using in-process event bus (Redis unavailable)")
	}
	defer eventBus.Close()

	// Initialize service, loaders and handlers
	ailmentService := services.NewAilmentService(ailmentRepo, eventBus)
	batchLoaders := loaders.NewLoaders(ailmentRepo)

	ailmentHandler := handlers.NewAilmentHandler(ailmentService)
	chartHandler := handlers.NewChartHandler(ailmentService, batchLoaders)
	sseHandler := handlers.NewSSEHandler(eventBus)

	router := routes.NewRouter(ailmentHandler, chartHandler, sseHandler, cacheMiddleware)

	// Create HTTP server. WriteTimeout stays zero so SSE streams are not
	// cut off mid-connection.
	server := &http.Server{
		Addr:        cfg.Server.ServerAddr(),
		Handler:     router.Setup(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("address", server.Addr).Msg("API server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
