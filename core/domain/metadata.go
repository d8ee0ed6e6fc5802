// ABOUTME: Metadata domain model represents a submitted page-metadata record
// ABOUTME: Provides validation for records admitted through the submission endpoint

package domain

import (
	"net/url"
	"strings"
	"time"

	coreerrors "searchpilot-api/core/errors"

	"github.com/google/uuid"
)

// Metadata represents a submitted page-metadata record
type Metadata struct {
	// ID is the unique identifier (UUID) for the record
	ID string `json:"id"`

	// URL is the page the metadata describes
	URL string `json:"url"`

	// Title is the page title
	Title string `json:"title"`

	// Description is a short summary of the page
	Description string `json:"description"`

	// Keywords is the raw comma-delimited keyword list, possibly empty
	Keywords string `json:"keywords"`

	// Optional authoring details
	Author        string     `json:"author,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`

	// CreatedAt is when the record was submitted. A zero value means the
	// stored timestamp could not be parsed.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MetadataInput carries the user-supplied fields of a submission
type MetadataInput struct {
	URL           string
	Title         string
	Description   string
	Keywords      string
	Author        string
	PublishedDate *time.Time
}

// NewMetadata creates a new Metadata record with validation
func NewMetadata(in MetadataInput, now time.Time) (*Metadata, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &coreerrors.ValidationError{Field: "title", Message: "title is required"}
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, &coreerrors.ValidationError{Field: "description", Message: "description is required"}
	}

	rawURL := strings.TrimSpace(in.URL)
	if !IsValidPageURL(rawURL) {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "valid http(s) URL required"}
	}

	return &Metadata{
		ID:            uuid.New().String(),
		URL:           rawURL,
		Title:         title,
		Description:   description,
		Keywords:      in.Keywords,
		Author:        strings.TrimSpace(in.Author),
		PublishedDate: in.PublishedDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsValidPageURL reports whether s is an absolute http or https URL with a host
func IsValidPageURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
