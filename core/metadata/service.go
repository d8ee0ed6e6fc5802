// ABOUTME: Metadata service handles record submission and the newest-first listing
// ABOUTME: Keeps a cached copy of the listing that is dropped on every submission

package metadata

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	coreerrors "searchpilot-api/core/errors"
	"searchpilot-api/core/domain"
	"searchpilot-api/core/interfaces"
)

const listCacheKey = "metadata:list"

// Submission outcomes reported to Metrics
const (
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
	StatusFailed   = "failed"
)

// Service handles metadata operations
type Service struct {
	deps    interfaces.Dependencies
	listTTL time.Duration
	now     func() time.Time
}

// NewService creates a new metadata service. listTTL bounds how long a cached
// listing may be served; 0 disables listing cache.
func NewService(deps interfaces.Dependencies, listTTL time.Duration) *Service {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	return &Service{
		deps:    deps,
		listTTL: listTTL,
		now:     time.Now,
	}
}

// Submit validates and stores a new record
func (s *Service) Submit(ctx context.Context, in domain.MetadataInput) (*domain.Metadata, error) {
	record, err := domain.NewMetadata(in, s.now().UTC())
	if err != nil {
		s.countSubmission(StatusRejected)
		return nil, err
	}

	if err := s.deps.Storage.Save(ctx, record); err != nil {
		s.countSubmission(StatusFailed)
		s.deps.Logger.Error("Failed to save metadata", map[string]interface{}{
			"url":   record.URL,
			"error": err.Error(),
		})
		return nil, coreerrors.WrapError(err, "save metadata")
	}

	s.invalidateList(ctx)
	s.countSubmission(StatusAccepted)
	s.deps.Logger.Info("Metadata saved", map[string]interface{}{
		"id":  record.ID,
		"url": record.URL,
	})
	return record, nil
}

// List returns all records, newest first
func (s *Service) List(ctx context.Context) ([]domain.Metadata, error) {
	if records, ok := s.cachedList(ctx); ok {
		return records, nil
	}

	records, err := s.deps.Storage.List(ctx)
	if err != nil {
		return nil, coreerrors.WrapError(err, "list metadata")
	}

	s.cacheList(ctx, records)
	return records, nil
}

// Get returns a single record by ID
func (s *Service) Get(ctx context.Context, id string) (*domain.Metadata, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "id cannot be empty"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "invalid id format"}
	}

	record, err := s.deps.Storage.Get(ctx, id)
	if err != nil {
		return nil, coreerrors.WrapError(err, "get metadata")
	}
	if record == nil {
		return nil, &coreerrors.NotFoundError{Resource: "metadata", ID: id}
	}
	return record, nil
}

func (s *Service) cachedList(ctx context.Context) ([]domain.Metadata, bool) {
	if s.deps.Cache == nil || s.listTTL <= 0 {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, listCacheKey)
	if err != nil || data == nil {
		return nil, false
	}

	var records []domain.Metadata
	if err := json.Unmarshal(data, &records); err != nil {
		s.deps.Logger.Warn("Discarding unreadable cached listing", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false
	}
	return records, true
}

func (s *Service) cacheList(ctx context.Context, records []domain.Metadata) {
	if s.deps.Cache == nil || s.listTTL <= 0 {
		return
	}

	data, err := json.Marshal(records)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, listCacheKey, data, s.listTTL); err != nil {
		s.deps.Logger.Debug("Failed to cache listing", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Service) invalidateList(ctx context.Context) {
	if s.deps.Cache == nil {
		return
	}
	if err := s.deps.Cache.Delete(ctx, listCacheKey); err != nil {
		s.deps.Logger.Warn("Failed to invalidate cached listing", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Service) countSubmission(status string) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.IncSubmissions(status)
	}
}
