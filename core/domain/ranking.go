// ABOUTME: Ranking domain models shared by the ranking pipeline and the API layer
// ABOUTME: Defines date ranges, ranked entries and the summary series

package domain

import (
	"fmt"
	"time"
)

// DateRange selects the recency window used by the dashboard
type DateRange string

const (
	// DateRangeAll passes every record
	DateRangeAll DateRange = "all"

	// DateRangeWeek keeps records from the last 7 days
	DateRangeWeek DateRange = "7"

	// DateRangeMonth keeps records from the last 30 days
	DateRangeMonth DateRange = "30"
)

// ParseDateRange converts a query value into a DateRange. Empty input means all.
func ParseDateRange(s string) (DateRange, error) {
	switch DateRange(s) {
	case "", DateRangeAll:
		return DateRangeAll, nil
	case DateRangeWeek, DateRangeMonth:
		return DateRange(s), nil
	}
	return "", fmt.Errorf("unknown date range %q", s)
}

// Window returns the recency bound of the range. ok is false for DateRangeAll.
func (r DateRange) Window() (window time.Duration, ok bool) {
	switch r {
	case DateRangeWeek:
		return 7 * 24 * time.Hour, true
	case DateRangeMonth:
		return 30 * 24 * time.Hour, true
	}
	return 0, false
}

// RankedEntry is the per-URL aggregate produced by the ranker.
// Rank is assigned once over the full ranked set and never renumbered.
type RankedEntry struct {
	URL      string  `json:"url"`
	Title    string  `json:"title"`
	Score    int     `json:"score"`
	Count    int     `json:"count"`
	AvgScore float64 `json:"avgScore"`
	Rank     int     `json:"rank"`
}

// RankedPage is one page of the searched ranking
type RankedPage struct {
	Entries      []RankedEntry `json:"entries"`
	Page         int           `json:"page"`
	TotalPages   int           `json:"totalPages"`
	TotalEntries int           `json:"totalEntries"`
}

// KeywordCount is one point of the keyword frequency series
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// SubmissionCount is one point of the submissions-per-day series
type SubmissionCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
