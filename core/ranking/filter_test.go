package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"searchpilot-api/core/domain"
)

func TestFilterByDate(t *testing.T) {
	now := time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)
	records := []domain.Metadata{
		{URL: "future", CreatedAt: now.Add(time.Hour)},
		{URL: "today", CreatedAt: now.Add(-time.Hour)},
		{URL: "edge7", CreatedAt: now.Add(-7 * 24 * time.Hour)},
		{URL: "day8", CreatedAt: now.Add(-8 * 24 * time.Hour)},
		{URL: "edge30", CreatedAt: now.Add(-30 * 24 * time.Hour)},
		{URL: "day31", CreatedAt: now.Add(-31 * 24 * time.Hour)},
		{URL: "broken"},
	}

	urls := func(rs []domain.Metadata) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.URL
		}
		return out
	}

	assert.Equal(t, []string{"future", "today", "edge7"}, urls(FilterByDate(records, domain.DateRangeWeek, now)))
	assert.Equal(t, []string{"future", "today", "edge7", "day8", "edge30"}, urls(FilterByDate(records, domain.DateRangeMonth, now)))
	assert.Equal(t, urls(records), urls(FilterByDate(records, domain.DateRangeAll, now)))
}

func TestFilterByDate_Monotonic(t *testing.T) {
	now := time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)
	records := make([]domain.Metadata, 0, 60)
	for d := 0; d < 60; d++ {
		records = append(records, domain.Metadata{CreatedAt: now.Add(-time.Duration(d) * 24 * time.Hour)})
	}

	week := len(FilterByDate(records, domain.DateRangeWeek, now))
	month := len(FilterByDate(records, domain.DateRangeMonth, now))
	all := len(FilterByDate(records, domain.DateRangeAll, now))

	assert.LessOrEqual(t, week, month)
	assert.LessOrEqual(t, month, all)
	assert.Equal(t, 8, week)
	assert.Equal(t, 31, month)
	assert.Equal(t, 60, all)
}

func TestFilterByDate_Empty(t *testing.T) {
	assert.Empty(t, FilterByDate(nil, domain.DateRangeWeek, time.Now()))
}

func TestSearchTitles(t *testing.T) {
	entries := []domain.RankedEntry{
		{Title: "Go Search Engines", Rank: 1},
		{Title: "Cooking", Rank: 2},
		{Title: "A guide to SEARCH", Rank: 3},
	}

	matched := SearchTitles(entries, "search")
	if assert.Len(t, matched, 2) {
		assert.Equal(t, 1, matched[0].Rank)
		assert.Equal(t, 3, matched[1].Rank, "ranks are not renumbered")
	}

	assert.Len(t, SearchTitles(entries, ""), 3)
	assert.Empty(t, SearchTitles(entries, "nothing like this"))
}
