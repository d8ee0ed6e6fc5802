package ranking

import (
	"time"

	"searchpilot-api/core/domain"
)

// DayLayout is the label format of the submissions-per-day series
const DayLayout = "2006-01-02"

// SummarizeSubmissions counts records per calendar day in loc, listing days in
// the order they are first met. Records with a zero CreatedAt are left out
// and counted in skipped so the caller can report them.
func SummarizeSubmissions(records []domain.Metadata, loc *time.Location) (series []domain.SubmissionCount, skipped int) {
	if loc == nil {
		loc = time.UTC
	}

	index := make(map[string]int)
	series = make([]domain.SubmissionCount, 0)

	for _, rec := range records {
		if rec.CreatedAt.IsZero() {
			skipped++
			continue
		}
		day := rec.CreatedAt.In(loc).Format(DayLayout)
		i, ok := index[day]
		if !ok {
			i = len(series)
			index[day] = i
			series = append(series, domain.SubmissionCount{Date: day})
		}
		series[i].Count++
	}
	return series, skipped
}
