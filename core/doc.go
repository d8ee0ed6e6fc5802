// Package core contains the business logic for SearchPilot.
// It has no knowledge of HTTP, SQL or the cache backends; those are
// injected through the contracts in core/interfaces.
//
// - domain: metadata records, date ranges and ranking results
// - ranking: the keyword ranking pipeline over an immutable snapshot
// - metadata: record submission and listing
// - dashboard: ranked pages and summary series built from the listing
// - services: page metadata extraction used to prefill submissions
// - errors: typed errors mapped to HTTP statuses by the API layer
// - interfaces: contracts for storage, cache, HTTP, logger and metrics
//
// # Usage Example
//
//	records := metadata.NewService(interfaces.Dependencies{
//	    Storage: store,
//	    Cache:   cache,
//	    Logger:  logger,
//	}, 30*time.Second)
//
//	dash := dashboard.NewService(records, logger, metrics, time.UTC)
//	page, err := dash.RankedPage(ctx, dashboard.RankingQuery{
//	    Search: "go",
//	    Range:  domain.DateRangeWeek,
//	    Page:   1,
//	})
package core
