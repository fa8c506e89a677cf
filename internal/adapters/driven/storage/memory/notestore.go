package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore is an in-memory implementation of driven.NoteStore.
type NoteStore struct {
	mu    sync.RWMutex
	notes map[string]domain.Note
}

// NewNoteStore creates a new in-memory note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{
		notes: make(map[string]domain.Note),
	}
}

// Save stores or updates a note.
func (s *NoteStore) Save(_ context.Context, note domain.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[note.ID] = note
	return nil
}

// Get retrieves a note by ID.
func (s *NoteStore) Get(_ context.Context, id string) (*domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	note, ok := s.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &note, nil
}

// List returns notes, newest first. Empty notebookID lists the inbox;
// "*" lists everything.
func (s *NoteStore) List(_ context.Context, notebookID string, limit, offset int) ([]domain.Note, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []domain.Note
	for _, note := range s.notes {
		if notebookID == "*" || note.NotebookID == notebookID {
			matched = append(matched, note)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

// Delete removes a note.
func (s *NoteStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.notes, id)
	return nil
}

// DetachNotebook clears NotebookID on every note in the notebook.
func (s *NoteStore) DetachNotebook(_ context.Context, notebookID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, note := range s.notes {
		if note.NotebookID == notebookID {
			note.NotebookID = ""
			s.notes[id] = note
		}
	}
	return nil
}
