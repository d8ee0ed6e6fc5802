package ranking

import (
	"time"

	"searchpilot-api/core/domain"
)

// Snapshot is a frozen copy of the record sequence that every dashboard
// operation reads from. Build a new one whenever the source is refreshed.
type Snapshot struct {
	records  []domain.Metadata
	location *time.Location
}

// NewSnapshot copies records (expected newest first) so later changes to the
// caller's slice cannot reach a running pipeline. A nil loc means UTC.
func NewSnapshot(records []domain.Metadata, loc *time.Location) *Snapshot {
	frozen := make([]domain.Metadata, len(records))
	copy(frozen, records)
	if loc == nil {
		loc = time.UTC
	}
	return &Snapshot{records: frozen, location: loc}
}

// Len returns the number of records in the snapshot
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Window returns the records inside the date range
func (s *Snapshot) Window(r domain.DateRange, now time.Time) []domain.Metadata {
	return FilterByDate(s.records, r, now)
}

// Ranking scores the whole snapshot against the frequency table of the date
// window and returns every ranked entry
func (s *Snapshot) Ranking(r domain.DateRange, now time.Time) []domain.RankedEntry {
	table := CountKeywords(s.Window(r, now))
	return Rank(s.records, table)
}

// Search returns the ranked entries whose title contains search
func (s *Snapshot) Search(search string, r domain.DateRange, now time.Time) []domain.RankedEntry {
	return SearchTitles(s.Ranking(r, now), search)
}

// RankedPage searches the ranking and returns the requested page. page is
// used as given.
func (s *Snapshot) RankedPage(search string, r domain.DateRange, page int, now time.Time) domain.RankedPage {
	return PageOf(s.Search(search, r, now), page)
}

// PageOf slices one page out of an already ranked and searched sequence
func PageOf(searched []domain.RankedEntry, page int) domain.RankedPage {
	return domain.RankedPage{
		Entries:      Paginate(searched, page, DefaultPageSize),
		Page:         page,
		TotalPages:   TotalPages(len(searched), DefaultPageSize),
		TotalEntries: len(searched),
	}
}

// KeywordFrequency returns the keyword counts of the date window
func (s *Snapshot) KeywordFrequency(r domain.DateRange, now time.Time) []domain.KeywordCount {
	return CountKeywords(s.Window(r, now)).Series()
}

// Submissions returns the submissions-per-day series of the date window and
// the number of records skipped for lacking a timestamp
func (s *Snapshot) Submissions(r domain.DateRange, now time.Time) ([]domain.SubmissionCount, int) {
	return SummarizeSubmissions(s.Window(r, now), s.location)
}
