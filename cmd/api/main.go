// ABOUTME: Main entry point for the SearchPilot API server
// ABOUTME: Wires storage, cache, services and handlers together and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"searchpilot-api/api"
	"searchpilot-api/api/handlers"
	"searchpilot-api/api/middleware"
	"searchpilot-api/core/dashboard"
	"searchpilot-api/core/interfaces"
	"searchpilot-api/core/metadata"
	"searchpilot-api/core/services"
	"searchpilot-api/infrastructure/cache/memory"
	"searchpilot-api/infrastructure/cache/redis"
	stdhttp "searchpilot-api/infrastructure/http/standard"
	"searchpilot-api/infrastructure/logger/structured"
	"searchpilot-api/infrastructure/metrics"
	memorystore "searchpilot-api/infrastructure/storage/memory"
	"searchpilot-api/infrastructure/storage/sqlite"
	"searchpilot-api/pkg/config"
	"searchpilot-api/pkg/featureflags"
)

// storageBackend is what main needs from a record store
type storageBackend interface {
	interfaces.MetadataStorage
	handlers.Pinger
}

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	defer logger.Close()

	flags := featureflags.NewEnvManager("")
	ctx := context.Background()

	logger.Info("Starting SearchPilot API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"storage_type": cfg.Storage.Type,
		"cache_type":   cfg.Cache.Type,
		"timezone":     cfg.Dashboard.Timezone,
	})

	loc, err := cfg.Dashboard.Location()
	if err != nil {
		log.Fatalf("Invalid dashboard timezone: %v", err)
	}

	// Create storage
	var store storageBackend
	switch cfg.Storage.Type {
	case "memory":
		store = memorystore.NewStore()
		logger.Warn("Using in-memory storage, records are lost on restart", nil)
	default:
		sqliteStore, err := sqlite.NewStore(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite store: %v", err)
		}
		defer sqliteStore.Close()
		store = sqliteStore
		logger.Info("Using SQLite storage", map[string]interface{}{
			"path": cfg.Storage.SQLitePath,
		})
	}

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = newMemoryCache(cfg)
		} else {
			defer redisCache.Close()
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = newMemoryCache(cfg)
		logger.Info("Using memory cache", nil)
	}

	// The listing is only cached when the flag is on; extraction results always are
	listTTL := time.Duration(0)
	if flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		listTTL = cfg.Cache.ListTTL
	}

	// Metrics
	var (
		appMetrics *metrics.Metrics
		registry   *prometheus.Registry
	)
	if flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		appMetrics = metrics.NewMetrics()
		if err := appMetrics.Register(registry); err != nil {
			log.Fatalf("Failed to register metrics: %v", err)
		}
	}

	deps := interfaces.Dependencies{
		Storage:    store,
		Cache:      cache,
		HTTPClient: stdhttp.NewStandardHTTPClient(15 * time.Second),
		Logger:     logger,
	}
	if appMetrics != nil {
		deps.Metrics = appMetrics
	}

	// Create services
	records := metadata.NewService(deps, listTTL)
	dash := dashboard.NewService(records, logger, deps.Metrics, loc)

	var extractor interfaces.PageMetadataService
	if flags.IsEnabled(ctx, featureflags.PageExtraction) {
		extractor = services.NewMetadataService(deps)
	}

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}
	if appMetrics != nil {
		apiConfig.Metrics = appMetrics
	}

	stopSweep := make(chan struct{})
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst, 10*time.Minute)
		if err := limiter.TrustProxies(cfg.Server.TrustedProxies); err != nil {
			log.Fatalf("Invalid trusted proxies: %v", err)
		}
		go limiter.Run(time.Minute, stopSweep)
		apiConfig.RateLimiter = limiter
	}

	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	handlers.NewMetadataHandler(records, extractor).RegisterRoutes(humaAPI)
	handlers.NewDashboardHandler(dash).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(store, flags).RegisterRoutes(humaAPI)

	if registry != nil {
		router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
			"flags":   flags.GetAllFlags(),
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)
	close(stopSweep)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

func newMemoryCache(cfg *config.Config) *memory.MemoryCache {
	expiration := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
	return memory.NewMemoryCache(expiration, 10*time.Minute)
}

func init() {
	fmt.Println(`
   ____                      __    ____  _ __      __
  / __/__ ___ _________ ____/ /   / __ \(_) /___  / /_
 _\ \/ -_) _ '/ __/ __/ _ \/ _ \ / /_/ / / / __ \/ __/
/___/\__/\_,_/_/  \__/_//_/_//_// ____/_/_/\____/\__/
                               /_/
	`)
}
