// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Keeps JSON shapes of the API independent from the domain structs

package mappers

import (
	"time"

	"searchpilot-api/api/dto/requests"
	"searchpilot-api/api/dto/responses"
	"searchpilot-api/core/domain"
	"searchpilot-api/core/interfaces"
	"searchpilot-api/core/ranking"
)

// ToMetadataInput converts a submission request into domain input
func ToMetadataInput(req requests.SubmitMetadataRequest) domain.MetadataInput {
	return domain.MetadataInput{
		URL:           req.URL,
		Title:         req.Title,
		Description:   req.Description,
		Keywords:      req.Keywords,
		Author:        req.Author,
		PublishedDate: req.PublishedDate,
	}
}

// ToMetadataResponse converts a stored record
func ToMetadataResponse(record *domain.Metadata) *responses.MetadataResponse {
	if record == nil {
		return nil
	}

	return &responses.MetadataResponse{
		ID:            record.ID,
		URL:           record.URL,
		Title:         record.Title,
		Description:   record.Description,
		Keywords:      record.Keywords,
		Author:        record.Author,
		PublishedDate: record.PublishedDate,
		CreatedAt:     timePtr(record.CreatedAt),
		UpdatedAt:     timePtr(record.UpdatedAt),
	}
}

// ToMetadataResponses converts a listing, keeping its order
func ToMetadataResponses(records []domain.Metadata) []responses.MetadataResponse {
	out := make([]responses.MetadataResponse, 0, len(records))
	for i := range records {
		out = append(out, *ToMetadataResponse(&records[i]))
	}
	return out
}

// ToExtractResponse converts extracted page fields
func ToExtractResponse(meta *interfaces.PageMetadata) *responses.ExtractMetadataResponse {
	if meta == nil {
		return nil
	}
	return &responses.ExtractMetadataResponse{
		URL:         meta.URL,
		Title:       meta.Title,
		Description: meta.Description,
		Keywords:    meta.Keywords,
		Author:      meta.Author,
	}
}

// ToRankingResponse converts a ranked page
func ToRankingResponse(page domain.RankedPage, search string, r domain.DateRange) responses.RankingResponse {
	entries := make([]responses.RankedEntryResponse, 0, len(page.Entries))
	for _, e := range page.Entries {
		entries = append(entries, responses.RankedEntryResponse{
			Rank:     e.Rank,
			URL:      e.URL,
			Title:    e.Title,
			Score:    e.Score,
			Count:    e.Count,
			AvgScore: e.AvgScore,
		})
	}

	return responses.RankingResponse{
		Range:        string(r),
		Search:       search,
		Page:         page.Page,
		PageSize:     ranking.DefaultPageSize,
		TotalPages:   page.TotalPages,
		TotalEntries: page.TotalEntries,
		Entries:      entries,
	}
}

// ToKeywordStatsResponse converts the keyword frequency series
func ToKeywordStatsResponse(counts []domain.KeywordCount, r domain.DateRange) responses.KeywordStatsResponse {
	keywords := make([]responses.KeywordCountResponse, 0, len(counts))
	for _, c := range counts {
		keywords = append(keywords, responses.KeywordCountResponse{Keyword: c.Keyword, Count: c.Count})
	}
	return responses.KeywordStatsResponse{Range: string(r), Keywords: keywords}
}

// ToSubmissionStatsResponse converts the submissions-per-day series
func ToSubmissionStatsResponse(counts []domain.SubmissionCount, r domain.DateRange) responses.SubmissionStatsResponse {
	days := make([]responses.SubmissionCountResponse, 0, len(counts))
	for _, c := range counts {
		days = append(days, responses.SubmissionCountResponse{Date: c.Date, Count: c.Count})
	}
	return responses.SubmissionStatsResponse{Range: string(r), Days: days}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
