// ABOUTME: Dashboard handlers exposing the ranked URL view and summary series
// ABOUTME: Every request recomputes its result from the current record listing

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"searchpilot-api/api/dto/mappers"
	"searchpilot-api/api/dto/responses"
	"searchpilot-api/core/dashboard"
	"searchpilot-api/core/domain"
)

// DashboardService defines the methods needed from the dashboard service
type DashboardService interface {
	RankedPage(ctx context.Context, q dashboard.RankingQuery) (domain.RankedPage, error)
	KeywordFrequency(ctx context.Context, r domain.DateRange) ([]domain.KeywordCount, error)
	Submissions(ctx context.Context, r domain.DateRange) ([]domain.SubmissionCount, error)
}

// DashboardHandler handles ranking and statistics requests
type DashboardHandler struct {
	service DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getRanking",
		Method:      http.MethodGet,
		Path:        "/ranking",
		Summary:     "Ranked URLs",
		Description: "Ranks URLs by average keyword relevance. The date range shapes keyword frequencies only; every URL is ranked. Search filters titles without changing ranks.",
		Tags:        []string{"Dashboard"},
	}, h.GetRanking)

	huma.Register(api, huma.Operation{
		OperationID: "getKeywordStats",
		Method:      http.MethodGet,
		Path:        "/stats/keywords",
		Summary:     "Keyword frequency",
		Tags:        []string{"Dashboard"},
	}, h.GetKeywordStats)

	huma.Register(api, huma.Operation{
		OperationID: "getSubmissionStats",
		Method:      http.MethodGet,
		Path:        "/stats/submissions",
		Summary:     "Submissions per day",
		Tags:        []string{"Dashboard"},
	}, h.GetSubmissionStats)
}

// RankingInput defines the input for the GetRanking operation
type RankingInput struct {
	Search string `query:"search" maxLength:"200" doc:"Case-insensitive title filter"`
	Range  string `query:"range" enum:"all,7,30" default:"all" doc:"Date range in days for keyword frequencies"`
	Page   int    `query:"page" default:"1" doc:"1-based page; out-of-range values are clamped"`
}

// RankingOutput defines the output for the GetRanking operation
type RankingOutput struct {
	Body responses.RankingResponse
}

// GetRanking handles GET /ranking
func (h *DashboardHandler) GetRanking(ctx context.Context, input *RankingInput) (*RankingOutput, error) {
	r, err := domain.ParseDateRange(input.Range)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	page, err := h.service.RankedPage(ctx, dashboard.RankingQuery{
		Search: input.Search,
		Range:  r,
		Page:   input.Page,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RankingOutput{Body: mappers.ToRankingResponse(page, input.Search, r)}, nil
}

// StatsInput defines the input for the statistics operations
type StatsInput struct {
	Range string `query:"range" enum:"all,7,30" default:"all" doc:"Date range in days"`
}

// KeywordStatsOutput defines the output for the GetKeywordStats operation
type KeywordStatsOutput struct {
	Body responses.KeywordStatsResponse
}

// GetKeywordStats handles GET /stats/keywords
func (h *DashboardHandler) GetKeywordStats(ctx context.Context, input *StatsInput) (*KeywordStatsOutput, error) {
	r, err := domain.ParseDateRange(input.Range)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	counts, err := h.service.KeywordFrequency(ctx, r)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &KeywordStatsOutput{Body: mappers.ToKeywordStatsResponse(counts, r)}, nil
}

// SubmissionStatsOutput defines the output for the GetSubmissionStats operation
type SubmissionStatsOutput struct {
	Body responses.SubmissionStatsResponse
}

// GetSubmissionStats handles GET /stats/submissions
func (h *DashboardHandler) GetSubmissionStats(ctx context.Context, input *StatsInput) (*SubmissionStatsOutput, error) {
	r, err := domain.ParseDateRange(input.Range)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	counts, err := h.service.Submissions(ctx, r)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SubmissionStatsOutput{Body: mappers.ToSubmissionStatsResponse(counts, r)}, nil
}
