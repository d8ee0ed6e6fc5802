package handlers

import (
	"context"

	"searchpilot-api/core/dashboard"
	"searchpilot-api/core/domain"
	"searchpilot-api/core/interfaces"
)

type mockMetadataService struct {
	submitFunc func(ctx context.Context, in domain.MetadataInput) (*domain.Metadata, error)
	listFunc   func(ctx context.Context) ([]domain.Metadata, error)
	getFunc    func(ctx context.Context, id string) (*domain.Metadata, error)
}

func (m *mockMetadataService) Submit(ctx context.Context, in domain.MetadataInput) (*domain.Metadata, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return &domain.Metadata{ID: "generated"}, nil
}

func (m *mockMetadataService) List(ctx context.Context) ([]domain.Metadata, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockMetadataService) Get(ctx context.Context, id string) (*domain.Metadata, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

type mockExtractor struct {
	extractFunc func(ctx context.Context, url string) (*interfaces.PageMetadata, error)
}

func (m *mockExtractor) Extract(ctx context.Context, url string) (*interfaces.PageMetadata, error) {
	return m.extractFunc(ctx, url)
}

type mockDashboardService struct {
	lastQuery dashboard.RankingQuery
	lastRange domain.DateRange
	page      domain.RankedPage
	keywords  []domain.KeywordCount
	days      []domain.SubmissionCount
	err       error
}

func (m *mockDashboardService) RankedPage(ctx context.Context, q dashboard.RankingQuery) (domain.RankedPage, error) {
	m.lastQuery = q
	return m.page, m.err
}

func (m *mockDashboardService) KeywordFrequency(ctx context.Context, r domain.DateRange) ([]domain.KeywordCount, error) {
	m.lastRange = r
	return m.keywords, m.err
}

func (m *mockDashboardService) Submissions(ctx context.Context, r domain.DateRange) ([]domain.SubmissionCount, error) {
	m.lastRange = r
	return m.days, m.err
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}
