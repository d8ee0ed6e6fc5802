// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Storage is the record source
	Storage MetadataStorage

	// Cache provides caching functionality, optional
	Cache Cache

	// HTTPClient fetches remote pages
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records service measurements, optional
	Metrics Metrics
}
