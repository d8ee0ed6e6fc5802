// ABOUTME: Pagination utilities for ranked entries
// ABOUTME: Slices the searched ranking into fixed-size pages for the dashboard

package ranking

import "searchpilot-api/core/domain"

// DefaultPageSize is the number of ranked entries shown per page
const DefaultPageSize = 10

// Paginate returns the entries of the 1-based page. Pages outside
// 1..TotalPages yield an empty slice; clamping is the caller's job.
func Paginate(entries []domain.RankedEntry, page, perPage int) []domain.RankedEntry {
	// Handle invalid perPage
	if perPage < 1 {
		perPage = DefaultPageSize
	}

	if page < 1 {
		return []domain.RankedEntry{}
	}

	start := (page - 1) * perPage
	end := start + perPage

	if start >= len(entries) {
		return []domain.RankedEntry{}
	}

	if end > len(entries) {
		end = len(entries)
	}

	return entries[start:end]
}

// TotalPages returns ceil(n/perPage), 0 for an empty list
func TotalPages(n, perPage int) int {
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	if n <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// ClampPage bounds page to 1..totalPages, returning 1 when there are no pages
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}
