package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	records map[string]domain.ParseRecord
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		records: make(map[string]domain.ParseRecord),
	}
}

// Save stores or updates a parse record.
func (s *HistoryStore) Save(_ context.Context, record domain.ParseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = record
	return nil
}

// Get retrieves a record by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.ParseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns records newest first, with the total count.
func (s *HistoryStore) List(_ context.Context, limit, offset int) ([]domain.ParseRecord, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := s.sortedLocked()
	total := len(sorted)
	if offset >= total {
		return nil, total, nil
	}
	sorted = sorted[offset:]
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, total, nil
}

// Delete removes a record.
func (s *HistoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// Prune deletes the oldest records beyond keep.
func (s *HistoryStore) Prune(_ context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := s.sortedLocked()
	if len(sorted) <= keep {
		return 0, nil
	}

	removed := 0
	for _, record := range sorted[keep:] {
		delete(s.records, record.ID)
		removed++
	}
	return removed, nil
}

// sortedLocked returns all records newest first. Caller must hold the lock.
func (s *HistoryStore) sortedLocked() []domain.ParseRecord {
	sorted := make([]domain.ParseRecord, 0, len(s.records))
	for _, record := range s.records {
		sorted = append(sorted, record)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}
