// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS, request logging, rate limiting and HTTP metrics

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"searchpilot-api/api/middleware"
	"searchpilot-api/core/interfaces"
)

const (
	apiTitle       = "SearchPilot API"
	apiVersion     = "1.0.0"
	apiDescription = "Collects page metadata submissions and ranks URLs by keyword relevance"
)

// HTTPMetrics records served requests and rate limit rejections
type HTTPMetrics interface {
	middleware.HTTPMetrics
	IncRateLimitBlocked()
}

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// AllowedOrigins for CORS; empty means any origin
	AllowedOrigins []string

	// RateLimiter, when set, rejects clients that exceed their token bucket
	RateLimiter *middleware.RateLimiter

	// Metrics, when set, observes every request
	Metrics HTTPMetrics
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS should be first so preflight requests never hit the limiter
	router.Use(cors.Handler(corsOptions(cfg.AllowedOrigins)))

	if cfg.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(cfg.Metrics, routePattern))
	}

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimiter != nil {
		var onBlocked func()
		if cfg.Metrics != nil {
			onBlocked = cfg.Metrics.IncRateLimitBlocked
		}
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter, onBlocked))
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	wildcard := false
	for _, o := range origins {
		if o == "*" {
			wildcard = true
		}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Retry-After"},
		// Browsers reject credentials with a wildcard origin
		AllowCredentials: !wildcard,
		MaxAge:           300,
	}
}

// routePattern returns the matched chi route so metrics labels stay bounded
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
