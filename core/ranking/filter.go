package ranking

import (
	"strings"
	"time"

	"searchpilot-api/core/domain"
)

// FilterByDate keeps the records created within the range's window before now,
// preserving order. DateRangeAll returns every record. Records without a
// usable CreatedAt never fall inside a bounded window.
func FilterByDate(records []domain.Metadata, r domain.DateRange, now time.Time) []domain.Metadata {
	window, bounded := r.Window()
	if !bounded {
		return records
	}

	filtered := make([]domain.Metadata, 0, len(records))
	for _, rec := range records {
		if rec.CreatedAt.IsZero() {
			continue
		}
		if now.Sub(rec.CreatedAt) <= window {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// SearchTitles keeps entries whose title contains term, ignoring case.
// Ranks are left exactly as assigned by Rank.
func SearchTitles(entries []domain.RankedEntry, term string) []domain.RankedEntry {
	if term == "" {
		return entries
	}

	needle := strings.ToLower(term)
	matched := make([]domain.RankedEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), needle) {
			matched = append(matched, e)
		}
	}
	return matched
}
