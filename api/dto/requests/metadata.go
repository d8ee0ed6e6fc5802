// ABOUTME: Request DTOs for the metadata and dashboard endpoints
// ABOUTME: Field presence is checked by the domain so every rejection shares one error shape

package requests

import "time"

// SubmitMetadataRequest is the body of POST /submit-metadata
type SubmitMetadataRequest struct {
	URL           string     `json:"url,omitempty" maxLength:"2048" doc:"Page URL (http or https)" example:"https://example.com/go-concurrency"`
	Title         string     `json:"title,omitempty" maxLength:"500" doc:"Page title" example:"Go concurrency patterns"`
	Description   string     `json:"description,omitempty" maxLength:"5000" doc:"Short page summary"`
	Keywords      string     `json:"keywords,omitempty" maxLength:"2000" doc:"Comma-separated keywords" example:"go, concurrency, channels"`
	Author        string     `json:"author,omitempty" maxLength:"200" doc:"Page author"`
	PublishedDate *time.Time `json:"publishedDate,omitempty" doc:"When the page was published"`
}

// ExtractMetadataRequest is the body of POST /metadata/extract
type ExtractMetadataRequest struct {
	URL string `json:"url" minLength:"1" maxLength:"2048" doc:"Page to read title, description and keywords from"`
}
