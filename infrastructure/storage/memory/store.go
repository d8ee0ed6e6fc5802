// ABOUTME: In-memory metadata store for tests and ephemeral deployments
// ABOUTME: Records are lost on restart

package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"searchpilot-api/core/domain"
	"searchpilot-api/core/interfaces"
)

// Store implements interfaces.MetadataStorage with a mutex-guarded slice
type Store struct {
	mu      sync.RWMutex
	records []domain.Metadata
	byID    map[string]int
}

var _ interfaces.MetadataStorage = (*Store)(nil)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{byID: make(map[string]int)}
}

// Save appends a new record
func (s *Store) Save(ctx context.Context, record *domain.Metadata) error {
	if record == nil || record.ID == "" {
		return errors.New("record must have an id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[record.ID]; exists {
		return fmt.Errorf("record %s already exists", record.ID)
	}

	s.byID[record.ID] = len(s.records)
	s.records = append(s.records, *record)
	return nil
}

// Get retrieves a record by ID, returning nil when it does not exist
func (s *Store) Get(ctx context.Context, id string) (*domain.Metadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	record := s.records[idx]
	return &record, nil
}

// List returns a copy of every record, newest first. Records created at the
// same instant come back in reverse insertion order.
func (s *Store) List(ctx context.Context) ([]domain.Metadata, error) {
	s.mu.RLock()
	out := make([]domain.Metadata, len(s.records))
	for i := range s.records {
		out[len(out)-1-i] = s.records[i]
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return nil
}
