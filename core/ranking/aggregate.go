package ranking

import (
	"sort"

	"searchpilot-api/core/domain"
)

// bucket accumulates the records sharing one URL
type bucket struct {
	url   string
	title string
	score int
	count int
}

// Rank groups records by URL, scores each against table and orders the groups
// by average score, highest first. Ties keep the order in which their URL was
// first seen in records. Rank numbers run 1..N over the returned slice.
func Rank(records []domain.Metadata, table FrequencyTable) []domain.RankedEntry {
	index := make(map[string]int)
	buckets := make([]bucket, 0)

	for _, rec := range records {
		i, ok := index[rec.URL]
		if !ok {
			i = len(buckets)
			index[rec.URL] = i
			buckets = append(buckets, bucket{url: rec.URL, title: rec.Title})
		}
		buckets[i].score += Score(rec, table)
		buckets[i].count++
	}

	entries := make([]domain.RankedEntry, len(buckets))
	for i, b := range buckets {
		entries[i] = domain.RankedEntry{
			URL:      b.url,
			Title:    b.title,
			Score:    b.score,
			Count:    b.count,
			AvgScore: float64(b.score) / float64(b.count),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AvgScore > entries[j].AvgScore
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
