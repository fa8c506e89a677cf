package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
)

// Ensure NotebookStore implements the interface.
var _ driven.NotebookStore = (*NotebookStore)(nil)

// NotebookStore is an in-memory implementation of driven.NotebookStore.
// NoteCount is populated from the paired NoteStore when one is attached.
type NotebookStore struct {
	mu        sync.RWMutex
	notebooks map[string]domain.Notebook
	notes     *NoteStore
}

// NewNotebookStore creates a new in-memory notebook store. notes may be nil;
// NoteCount then stays zero.
func NewNotebookStore(notes *NoteStore) *NotebookStore {
	return &NotebookStore{
		notebooks: make(map[string]domain.Notebook),
		notes:     notes,
	}
}

// Save stores or updates a notebook.
func (s *NotebookStore) Save(_ context.Context, notebook domain.Notebook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notebooks[notebook.ID] = notebook
	return nil
}

// Get retrieves a notebook by ID.
func (s *NotebookStore) Get(_ context.Context, id string) (*domain.Notebook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	notebook, ok := s.notebooks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &notebook, nil
}

// GetByName retrieves a notebook by name.
func (s *NotebookStore) GetByName(_ context.Context, name string) (*domain.Notebook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, notebook := range s.notebooks {
		if notebook.Name == name {
			return &notebook, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all notebooks ordered by name, with NoteCount populated.
func (s *NotebookStore) List(ctx context.Context) ([]domain.Notebook, error) {
	s.mu.RLock()
	result := make([]domain.Notebook, 0, len(s.notebooks))
	for _, notebook := range s.notebooks {
		result = append(result, notebook)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	if s.notes != nil {
		for i := range result {
			_, count, err := s.notes.List(ctx, result[i].ID, 1, 0)
			if err != nil {
				return nil, err
			}
			result[i].NoteCount = count
		}
	}
	return result, nil
}

// Delete removes a notebook.
func (s *NotebookStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notebooks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.notebooks, id)
	return nil
}
