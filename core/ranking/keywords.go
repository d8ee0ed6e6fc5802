package ranking

import (
	"strings"

	"searchpilot-api/core/domain"
)

// NormalizeKeywords splits a raw comma-delimited keyword field into trimmed,
// lower-cased, non-empty tokens. Repeated tokens are kept.
func NormalizeKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		k := strings.ToLower(strings.TrimSpace(p))
		if k == "" {
			continue
		}
		tokens = append(tokens, k)
	}
	return tokens
}

// FrequencyTable maps normalized keywords to their occurrence count within a
// date-filtered window. It is read-only once built.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

// CountKeywords builds the frequency table for records
func CountKeywords(records []domain.Metadata) FrequencyTable {
	table := FrequencyTable{counts: make(map[string]int)}
	for _, r := range records {
		for _, k := range NormalizeKeywords(r.Keywords) {
			if _, seen := table.counts[k]; !seen {
				table.order = append(table.order, k)
			}
			table.counts[k]++
		}
	}
	return table
}

// Count returns the occurrences of keyword, 0 when absent
func (t FrequencyTable) Count(keyword string) int {
	return t.counts[keyword]
}

// Len returns the number of distinct keywords
func (t FrequencyTable) Len() int {
	return len(t.order)
}

// Series lists the table in first-seen order
func (t FrequencyTable) Series() []domain.KeywordCount {
	series := make([]domain.KeywordCount, 0, len(t.order))
	for _, k := range t.order {
		series = append(series, domain.KeywordCount{Keyword: k, Count: t.counts[k]})
	}
	return series
}

// Score sums the table count of every keyword token of record, duplicates included
func Score(record domain.Metadata, table FrequencyTable) int {
	score := 0
	for _, k := range NormalizeKeywords(record.Keywords) {
		score += table.Count(k)
	}
	return score
}
