// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import "context"

// PageMetadata holds the submission fields suggested for a web page
type PageMetadata struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Author      string `json:"author,omitempty"`
}

// PageMetadataService extracts submission fields from web pages
type PageMetadataService interface {
	Extract(ctx context.Context, url string) (*PageMetadata, error)
}
