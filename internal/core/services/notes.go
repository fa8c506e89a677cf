package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driving"
)

// Ensure NoteService implements the interface.
var _ driving.NoteService = (*NoteService)(nil)

// NoteService manages notes.
type NoteService struct {
	notes     driven.NoteStore
	notebooks driven.NotebookStore
}

// NewNoteService creates a new note service.
func NewNoteService(notes driven.NoteStore, notebooks driven.NotebookStore) *NoteService {
	return &NoteService{
		notes:     notes,
		notebooks: notebooks,
	}
}

// Create adds a new note. ID and timestamps are assigned here.
func (s *NoteService) Create(ctx context.Context, note domain.Note) (*domain.Note, error) {
	if err := note.Validate(); err != nil {
		return nil, err
	}
	if note.NotebookID != "" {
		if _, err := s.notebooks.Get(ctx, note.NotebookID); err != nil {
			return nil, fmt.Errorf("looking up notebook: %w", err)
		}
	}

	now := time.Now().UTC()
	note.ID = uuid.New().String()
	note.CreatedAt = now
	note.UpdatedAt = now

	if err := s.notes.Save(ctx, note); err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}
	return &note, nil
}

// Get retrieves a note by ID.
func (s *NoteService) Get(ctx context.Context, id string) (*domain.Note, error) {
	return s.notes.Get(ctx, id)
}

// List returns notes in a notebook, newest first.
func (s *NoteService) List(ctx context.Context, notebookID string, limit, offset int) ([]domain.Note, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.notes.List(ctx, notebookID, limit, offset)
}

// Update modifies an existing note. CreatedAt is preserved.
func (s *NoteService) Update(ctx context.Context, note domain.Note) (*domain.Note, error) {
	if err := note.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.notes.Get(ctx, note.ID)
	if err != nil {
		return nil, err
	}
	if note.NotebookID != "" && note.NotebookID != existing.NotebookID {
		if _, err := s.notebooks.Get(ctx, note.NotebookID); err != nil {
			return nil, fmt.Errorf("looking up notebook: %w", err)
		}
	}

	note.CreatedAt = existing.CreatedAt
	note.UpdatedAt = time.Now().UTC()

	if err := s.notes.Save(ctx, note); err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}
	return &note, nil
}

// Delete removes a note.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	return s.notes.Delete(ctx, id)
}
