// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as persistence, caching, HTTP communication, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - storage/sqlite: Record store on SQLite, queries built with squirrel
// - storage/memory: Record store kept in process memory
// - cache/memory: In-memory cache on patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with retry logic
// - logger/structured: logrus logger with optional lumberjack file rotation
// - metrics: Prometheus collectors
//
// # Storage
//
//	store, err := sqlite.NewStore("searchpilot.db")
//	err = store.Save(ctx, record)
//	records, err := store.List(ctx) // newest first
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "metadata:list", data, 30*time.Second)
//	value, err := cache.Get(ctx, "metadata:list")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(15 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.New(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Metadata submitted", map[string]interface{}{
//	    "id":  record.ID,
//	    "url": record.URL,
//	})
package infrastructure
