// ABOUTME: Response DTOs for the metadata endpoints
// ABOUTME: Shapes returned by submission, listing, lookup and page extraction

package responses

import "time"

// SubmitMetadataResponse acknowledges an accepted submission
type SubmitMetadataResponse struct {
	Message string `json:"message" example:"Metadata submitted successfully"`
	ID      string `json:"id" doc:"Identifier of the stored record"`
}

// MetadataResponse is one stored record
type MetadataResponse struct {
	ID            string     `json:"id"`
	URL           string     `json:"url"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Keywords      string     `json:"keywords"`
	Author        string     `json:"author,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty" doc:"Absent when the stored timestamp is unreadable"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// ExtractMetadataResponse carries the fields read from a page
type ExtractMetadataResponse struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Author      string `json:"author,omitempty"`
}
