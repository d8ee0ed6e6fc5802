package ranking

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchpilot-api/core/domain"
)

func TestRank_ScenarioA(t *testing.T) {
	ts := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	records := []domain.Metadata{
		{URL: "a.com", Title: "A", Keywords: "x,y", CreatedAt: ts},
		{URL: "b.com", Title: "B", Keywords: "x", CreatedAt: ts},
	}

	table := CountKeywords(records)
	require.Equal(t, 2, table.Count("x"))
	require.Equal(t, 1, table.Count("y"))

	ranked := Rank(records, table)

	require.Len(t, ranked, 2)
	assert.Equal(t, domain.RankedEntry{URL: "a.com", Title: "A", Score: 3, Count: 1, AvgScore: 3, Rank: 1}, ranked[0])
	assert.Equal(t, domain.RankedEntry{URL: "b.com", Title: "B", Score: 2, Count: 1, AvgScore: 2, Rank: 2}, ranked[1])
}

func TestRank_ScenarioB(t *testing.T) {
	// x occurs 2 times, y once: "x,x" scores 4, "x" scores 2.
	table := CountKeywords([]domain.Metadata{{Keywords: "x,x"}, {Keywords: "y"}})
	records := []domain.Metadata{
		{URL: "c.com", Title: "Newest title", Keywords: "x,x"},
		{URL: "c.com", Title: "Older title", Keywords: "x"},
	}

	ranked := Rank(records, table)

	require.Len(t, ranked, 1)
	assert.Equal(t, "c.com", ranked[0].URL)
	assert.Equal(t, 6, ranked[0].Score)
	assert.Equal(t, 2, ranked[0].Count)
	assert.Equal(t, 3.0, ranked[0].AvgScore)
	assert.Equal(t, "Newest title", ranked[0].Title, "title comes from the first record seen")
}

func TestRank_TiesKeepFirstAppearance(t *testing.T) {
	table := CountKeywords([]domain.Metadata{{Keywords: "a,b"}})
	records := []domain.Metadata{
		{URL: "first.com", Keywords: "a"},
		{URL: "top.com", Keywords: "a,b"},
		{URL: "second.com", Keywords: "b"},
		{URL: "third.com", Keywords: "a"},
	}

	ranked := Rank(records, table)

	got := make([]string, len(ranked))
	for i, e := range ranked {
		got[i] = e.URL
	}
	assert.Equal(t, []string{"top.com", "first.com", "second.com", "third.com"}, got)
}

func TestRank_Empty(t *testing.T) {
	ranked := Rank(nil, CountKeywords(nil))
	assert.Empty(t, ranked)
}

func TestRank_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := []string{"go", "search", "seo", "rank", "web", ""}

	for run := 0; run < 20; run++ {
		n := rng.Intn(60)
		records := make([]domain.Metadata, n)
		for i := range records {
			kw := fmt.Sprintf("%s,%s", words[rng.Intn(len(words))], words[rng.Intn(len(words))])
			records[i] = domain.Metadata{
				URL:      fmt.Sprintf("https://u%d.example", rng.Intn(15)),
				Title:    fmt.Sprintf("title %d", i),
				Keywords: kw,
			}
		}

		ranked := Rank(records, CountKeywords(records))

		distinct := map[string]bool{}
		for _, r := range records {
			distinct[r.URL] = true
		}
		require.Len(t, ranked, len(distinct))

		total := 0
		for i, e := range ranked {
			total += e.Count
			assert.Equal(t, i+1, e.Rank, "ranks must be contiguous")
			if i > 0 {
				assert.GreaterOrEqual(t, ranked[i-1].AvgScore, e.AvgScore)
			}
		}
		assert.Equal(t, len(records), total, "counts must add up to the record count")
	}
}
