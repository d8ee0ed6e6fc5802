package ranking

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchpilot-api/core/domain"
)

var testNow = time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

func TestSnapshot_RankedPage(t *testing.T) {
	records := make([]domain.Metadata, 25)
	for i := range records {
		records[i] = domain.Metadata{
			URL:       fmt.Sprintf("https://site%02d.example", i),
			Title:     fmt.Sprintf("Site %02d", i),
			Keywords:  "go",
			CreatedAt: testNow.Add(-time.Duration(i) * time.Hour),
		}
	}
	snap := NewSnapshot(records, nil)

	first := snap.RankedPage("", domain.DateRangeAll, 1, testNow)
	assert.Len(t, first.Entries, 10)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 25, first.TotalEntries)

	last := snap.RankedPage("", domain.DateRangeAll, 3, testNow)
	assert.Len(t, last.Entries, 5)
	assert.Equal(t, 21, last.Entries[0].Rank)

	beyond := snap.RankedPage("", domain.DateRangeAll, 4, testNow)
	assert.Empty(t, beyond.Entries)
	assert.Equal(t, 4, beyond.Page)
}

func TestPageOf(t *testing.T) {
	entries := make([]domain.RankedEntry, 12)
	for i := range entries {
		entries[i] = domain.RankedEntry{URL: fmt.Sprintf("https://u%d", i), Rank: i + 1}
	}

	second := PageOf(entries, 2)
	assert.Equal(t, 2, second.Page)
	assert.Equal(t, 2, second.TotalPages)
	assert.Equal(t, 12, second.TotalEntries)
	require.Len(t, second.Entries, 2)
	assert.Equal(t, 11, second.Entries[0].Rank)

	empty := PageOf(nil, 1)
	assert.Empty(t, empty.Entries)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestSnapshot_RankedPageMatchesSearchThenPage(t *testing.T) {
	snap := NewSnapshot([]domain.Metadata{
		{URL: "https://a.com", Title: "Alpha", Keywords: "x,y", CreatedAt: testNow},
		{URL: "https://b.com", Title: "Beta", Keywords: "x", CreatedAt: testNow},
	}, nil)

	want := PageOf(snap.Search("beta", domain.DateRangeAll, testNow), 1)
	assert.Equal(t, want, snap.RankedPage("beta", domain.DateRangeAll, 1, testNow))
}

func TestSnapshot_SearchWithoutMatches(t *testing.T) {
	snap := NewSnapshot([]domain.Metadata{
		{URL: "https://a.com", Title: "Alpha", Keywords: "x", CreatedAt: testNow},
	}, nil)

	page := snap.RankedPage("zzz", domain.DateRangeAll, 1, testNow)

	assert.Empty(t, page.Entries)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.TotalEntries)
}

func TestSnapshot_SearchKeepsRank(t *testing.T) {
	snap := NewSnapshot([]domain.Metadata{
		{URL: "https://a.com", Title: "Alpha", Keywords: "x,y", CreatedAt: testNow},
		{URL: "https://b.com", Title: "Beta", Keywords: "x", CreatedAt: testNow},
	}, nil)

	page := snap.RankedPage("BETA", domain.DateRangeAll, 1, testNow)

	require.Len(t, page.Entries, 1)
	assert.Equal(t, 2, page.Entries[0].Rank)
}

// The date range only shapes the frequency table; every URL stays ranked
// with the same record count while its average score moves.
func TestSnapshot_DateRangeChangesScoresNotCounts(t *testing.T) {
	records := []domain.Metadata{
		{URL: "https://new.com", Title: "New", Keywords: "go", CreatedAt: testNow.Add(-24 * time.Hour)},
		{URL: "https://old.com", Title: "Old", Keywords: "go,rust", CreatedAt: testNow.Add(-20 * 24 * time.Hour)},
		{URL: "https://old.com", Title: "Old again", Keywords: "rust", CreatedAt: testNow.Add(-40 * 24 * time.Hour)},
	}
	snap := NewSnapshot(records, nil)

	byURL := func(entries []domain.RankedEntry) map[string]domain.RankedEntry {
		m := make(map[string]domain.RankedEntry)
		for _, e := range entries {
			m[e.URL] = e
		}
		return m
	}

	all := byURL(snap.Ranking(domain.DateRangeAll, testNow))
	month := byURL(snap.Ranking(domain.DateRangeMonth, testNow))
	week := byURL(snap.Ranking(domain.DateRangeWeek, testNow))

	require.Len(t, all, 2)
	require.Len(t, month, 2)
	require.Len(t, week, 2)

	for _, url := range []string{"https://new.com", "https://old.com"} {
		assert.Equal(t, all[url].Count, month[url].Count)
		assert.Equal(t, all[url].Count, week[url].Count)
	}

	// all: go=2 rust=2; old.com = (2+2 + 2)/2 = 3
	// week: go=1; old.com = (1 + 0)/2 = 0.5
	assert.Equal(t, 3.0, all["https://old.com"].AvgScore)
	assert.Equal(t, 0.5, week["https://old.com"].AvgScore)
	assert.NotEqual(t, all["https://old.com"].AvgScore, month["https://old.com"].AvgScore)
}

func TestSnapshot_Idempotent(t *testing.T) {
	records := []domain.Metadata{
		{URL: "https://a.com", Title: "A", Keywords: "x,y", CreatedAt: testNow},
		{URL: "https://b.com", Title: "B", Keywords: "y", CreatedAt: testNow.Add(-48 * time.Hour)},
		{URL: "https://a.com", Title: "A2", Keywords: "z", CreatedAt: testNow.Add(-72 * time.Hour)},
	}
	snap := NewSnapshot(records, nil)

	for _, r := range []domain.DateRange{domain.DateRangeAll, domain.DateRangeWeek, domain.DateRangeMonth} {
		assert.Equal(t, snap.RankedPage("a", r, 1, testNow), snap.RankedPage("a", r, 1, testNow))
		assert.Equal(t, snap.KeywordFrequency(r, testNow), snap.KeywordFrequency(r, testNow))
		s1, k1 := snap.Submissions(r, testNow)
		s2, k2 := snap.Submissions(r, testNow)
		assert.Equal(t, s1, s2)
		assert.Equal(t, k1, k2)
	}
}

func TestSnapshot_CopiesInput(t *testing.T) {
	records := []domain.Metadata{
		{URL: "https://a.com", Title: "A", Keywords: "x", CreatedAt: testNow},
	}
	snap := NewSnapshot(records, nil)

	records[0].URL = "https://mutated.com"

	ranked := snap.Ranking(domain.DateRangeAll, testNow)
	require.Len(t, ranked, 1)
	assert.Equal(t, "https://a.com", ranked[0].URL)
}

func TestSnapshot_ConcurrentReads(t *testing.T) {
	records := make([]domain.Metadata, 200)
	for i := range records {
		records[i] = domain.Metadata{
			URL:       fmt.Sprintf("https://u%d.example", i%40),
			Title:     fmt.Sprintf("T%d", i),
			Keywords:  fmt.Sprintf("k%d,k%d", i%7, i%3),
			CreatedAt: testNow.Add(-time.Duration(i) * time.Hour),
		}
	}
	snap := NewSnapshot(records, nil)
	want := snap.RankedPage("", domain.DateRangeMonth, 2, testNow)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, snap.RankedPage("", domain.DateRangeMonth, 2, testNow))
		}()
	}
	wg.Wait()
}

func TestSnapshot_KeywordFrequencyAndSubmissions(t *testing.T) {
	snap := NewSnapshot([]domain.Metadata{
		{URL: "https://a.com", Keywords: "Go, web", CreatedAt: testNow},
		{URL: "https://b.com", Keywords: "go", CreatedAt: testNow.Add(-10 * 24 * time.Hour)},
	}, nil)

	assert.Equal(t, []domain.KeywordCount{{Keyword: "go", Count: 1}, {Keyword: "web", Count: 1}},
		snap.KeywordFrequency(domain.DateRangeWeek, testNow))
	assert.Equal(t, []domain.KeywordCount{{Keyword: "go", Count: 2}, {Keyword: "web", Count: 1}},
		snap.KeywordFrequency(domain.DateRangeAll, testNow))

	series, skipped := snap.Submissions(domain.DateRangeAll, testNow)
	assert.Zero(t, skipped)
	assert.Equal(t, []domain.SubmissionCount{{Date: "2025-07-15", Count: 1}, {Date: "2025-07-05", Count: 1}}, series)
}
