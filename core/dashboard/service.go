// ABOUTME: Dashboard service runs the ranking pipeline over the current record listing
// ABOUTME: Exposes the ranked page and the two summary series to the API layer

package dashboard

import (
	"context"
	"time"

	coreerrors "searchpilot-api/core/errors"
	"searchpilot-api/core/domain"
	"searchpilot-api/core/interfaces"
	"searchpilot-api/core/ranking"
)

// Pipeline operation names reported to Metrics
const (
	OpRanking     = "ranking"
	OpKeywords    = "keywords"
	OpSubmissions = "submissions"
)

// RecordSource lists every record newest first
type RecordSource interface {
	List(ctx context.Context) ([]domain.Metadata, error)
}

// RankingQuery selects one page of the ranking
type RankingQuery struct {
	Search string
	Range  domain.DateRange
	Page   int
}

// Service builds a fresh snapshot per call and runs the pipeline on it
type Service struct {
	source   RecordSource
	logger   interfaces.Logger
	metrics  interfaces.Metrics
	location *time.Location
	now      func() time.Time
}

// NewService creates a dashboard service. loc decides calendar days for the
// submissions series; nil means UTC.
func NewService(source RecordSource, logger interfaces.Logger, metrics interfaces.Metrics, loc *time.Location) *Service {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		source:   source,
		logger:   logger,
		metrics:  metrics,
		location: loc,
		now:      time.Now,
	}
}

// RankedPage returns the requested page of the searched ranking. Pages
// outside 1..TotalPages are clamped to the nearest valid page.
func (s *Service) RankedPage(ctx context.Context, q RankingQuery) (domain.RankedPage, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.RankedPage{}, err
	}
	start := time.Now()
	now := s.now()

	searched := snap.Search(q.Search, q.Range, now)
	page := ranking.ClampPage(q.Page, ranking.TotalPages(len(searched), ranking.DefaultPageSize))
	result := ranking.PageOf(searched, page)

	s.observe(OpRanking, start, snap.Len())
	return result, nil
}

// KeywordFrequency returns the keyword counts within the date range
func (s *Service) KeywordFrequency(ctx context.Context, r domain.DateRange) ([]domain.KeywordCount, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	series := snap.KeywordFrequency(r, s.now())

	s.observe(OpKeywords, start, snap.Len())
	return series, nil
}

// Submissions returns the number of submissions per day within the date range
func (s *Service) Submissions(ctx context.Context, r domain.DateRange) ([]domain.SubmissionCount, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	series, skipped := snap.Submissions(r, s.now())
	if skipped > 0 {
		s.logger.Warn("Skipped records with unparseable timestamps", map[string]interface{}{
			"skipped":    skipped,
			"date_range": string(r),
		})
	}

	s.observe(OpSubmissions, start, snap.Len())
	return series, nil
}

func (s *Service) snapshot(ctx context.Context) (*ranking.Snapshot, error) {
	records, err := s.source.List(ctx)
	if err != nil {
		return nil, coreerrors.WrapError(err, "load records")
	}
	return ranking.NewSnapshot(records, s.location), nil
}

func (s *Service) observe(op string, start time.Time, records int) {
	if s.metrics != nil {
		s.metrics.ObservePipeline(op, time.Since(start), records)
	}
}
