// Package api provides the HTTP API layer for SearchPilot.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and middleware stack
// - handlers/: HTTP request handlers for metadata, dashboard and health
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging, HTTP metrics and per-IP rate limiting
//
// # OpenAPI
//
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    RateLimiter: middleware.NewRateLimiter(10, 20, 10*time.Minute),
//	})
//
//	handlers.NewMetadataHandler(records, extractor).RegisterRoutes(humaAPI)
//	handlers.NewDashboardHandler(dash).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":5000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "title: title is required"
//	}
//
// Domain errors are mapped to HTTP status codes in handlers/errors.go.
package api
