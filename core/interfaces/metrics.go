package interfaces

import "time"

// Metrics records service-level measurements. A nil Metrics disables recording.
type Metrics interface {
	// ObservePipeline records one dashboard pipeline run
	ObservePipeline(operation string, duration time.Duration, records int)

	// IncSubmissions counts a submission attempt by outcome
	IncSubmissions(status string)

	// IncExtractions counts a page extraction attempt by outcome
	IncExtractions(status string)
}
