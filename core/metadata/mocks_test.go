package metadata

import (
	"context"
	"errors"
	"sync"
	"time"

	"searchpilot-api/core/domain"
)

// mockStorage is an in-memory MetadataStorage with optional failure hooks
type mockStorage struct {
	mu        sync.Mutex
	records   []domain.Metadata
	saveErr   error
	listErr   error
	listCalls int
}

func (m *mockStorage) Save(ctx context.Context, record *domain.Metadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = append([]domain.Metadata{*record}, m.records...)
	return nil
}

func (m *mockStorage) Get(ctx context.Context, id string) (*domain.Metadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, nil
}

func (m *mockStorage) List(ctx context.Context) ([]domain.Metadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.Metadata, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *mockStorage) Ping(ctx context.Context) error {
	return nil
}

// mockCache is a map-backed Cache that records deletes
type mockCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return v, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}

// mockMetrics counts submissions by status
type mockMetrics struct {
	mu          sync.Mutex
	submissions map[string]int
}

func (m *mockMetrics) ObservePipeline(string, time.Duration, int) {}

func (m *mockMetrics) IncSubmissions(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.submissions == nil {
		m.submissions = make(map[string]int)
	}
	m.submissions[status]++
}

func (m *mockMetrics) IncExtractions(string) {}
