// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines the record source consumed by the metadata and dashboard services

package interfaces

import (
	"context"

	"searchpilot-api/core/domain"
)

// MetadataStorage defines the interface for metadata persistence
type MetadataStorage interface {
	// Save persists a new record
	Save(ctx context.Context, record *domain.Metadata) error

	// Get retrieves a record by ID, returning nil when it does not exist
	Get(ctx context.Context, id string) (*domain.Metadata, error)

	// List returns every record ordered by creation time, newest first
	List(ctx context.Context) ([]domain.Metadata, error)

	// Ping checks that the backend is reachable
	Ping(ctx context.Context) error
}
