package responses

// RankedEntryResponse is one URL in the ranking
type RankedEntryResponse struct {
	Rank     int     `json:"rank" doc:"1-based position in the full ranking, unaffected by search"`
	URL      string  `json:"url"`
	Title    string  `json:"title"`
	Score    int     `json:"score" doc:"Sum of record scores for this URL"`
	Count    int     `json:"count" doc:"Number of records submitted for this URL"`
	AvgScore float64 `json:"avgScore"`
}

// RankingResponse is one page of the ranked view
type RankingResponse struct {
	Range        string                `json:"range"`
	Search       string                `json:"search,omitempty"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"pageSize"`
	TotalPages   int                   `json:"totalPages"`
	TotalEntries int                   `json:"totalEntries"`
	Entries      []RankedEntryResponse `json:"entries"`
}

// KeywordCountResponse is one bar of the keyword frequency chart
type KeywordCountResponse struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// KeywordStatsResponse is the keyword frequency series
type KeywordStatsResponse struct {
	Range    string                 `json:"range"`
	Keywords []KeywordCountResponse `json:"keywords"`
}

// SubmissionCountResponse is one point of the submissions-per-day series
type SubmissionCountResponse struct {
	Date  string `json:"date" example:"2024-05-01"`
	Count int    `json:"count"`
}

// SubmissionStatsResponse is the submissions-per-day series
type SubmissionStatsResponse struct {
	Range string                    `json:"range"`
	Days  []SubmissionCountResponse `json:"days"`
}

// HealthResponse reports liveness and backend reachability
type HealthResponse struct {
	Status  string          `json:"status" example:"ok"`
	Storage string          `json:"storage" example:"ok"`
	Flags   map[string]bool `json:"flags,omitempty"`
}
