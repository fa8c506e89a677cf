package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driving"
)

// Ensure NotebookService implements the interface.
var _ driving.NotebookService = (*NotebookService)(nil)

// NotebookService manages notebooks.
type NotebookService struct {
	notebooks driven.NotebookStore
	notes     driven.NoteStore
}

// NewNotebookService creates a new notebook service.
func NewNotebookService(notebooks driven.NotebookStore, notes driven.NoteStore) *NotebookService {
	return &NotebookService{
		notebooks: notebooks,
		notes:     notes,
	}
}

// Create adds a new notebook with a unique name.
func (s *NotebookService) Create(ctx context.Context, name, description string) (*domain.Notebook, error) {
	name = strings.TrimSpace(name)
	notebook := domain.Notebook{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := notebook.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.notebooks.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("notebook %q: %w", name, domain.ErrAlreadyExists)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	notebook.CreatedAt = now
	notebook.UpdatedAt = now

	if err := s.notebooks.Save(ctx, notebook); err != nil {
		return nil, fmt.Errorf("saving notebook: %w", err)
	}
	return &notebook, nil
}

// Get retrieves a notebook by ID.
func (s *NotebookService) Get(ctx context.Context, id string) (*domain.Notebook, error) {
	return s.notebooks.Get(ctx, id)
}

// List returns all notebooks with note counts.
func (s *NotebookService) List(ctx context.Context) ([]domain.Notebook, error) {
	return s.notebooks.List(ctx)
}

// Rename updates a notebook's name and description.
func (s *NotebookService) Rename(ctx context.Context, id, name, description string) (*domain.Notebook, error) {
	notebook, err := s.notebooks.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name != "" && name != notebook.Name {
		if _, err := s.notebooks.GetByName(ctx, name); err == nil {
			return nil, fmt.Errorf("notebook %q: %w", name, domain.ErrAlreadyExists)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		notebook.Name = name
	}
	if description != "" {
		notebook.Description = strings.TrimSpace(description)
	}

	if err := notebook.Validate(); err != nil {
		return nil, err
	}
	notebook.UpdatedAt = time.Now().UTC()

	if err := s.notebooks.Save(ctx, *notebook); err != nil {
		return nil, fmt.Errorf("saving notebook: %w", err)
	}
	return notebook, nil
}

// Delete removes a notebook. A non-empty notebook is only deleted with
// force, which detaches its notes back to the inbox first.
func (s *NotebookService) Delete(ctx context.Context, id string, force bool) error {
	if _, err := s.notebooks.Get(ctx, id); err != nil {
		return err
	}

	_, count, err := s.notes.List(ctx, id, 1, 0)
	if err != nil {
		return fmt.Errorf("counting notes: %w", err)
	}
	if count > 0 {
		if !force {
			return domain.ErrNotebookNotEmpty
		}
		if err := s.notes.DetachNotebook(ctx, id); err != nil {
			return fmt.Errorf("detaching notes: %w", err)
		}
	}

	return s.notebooks.Delete(ctx, id)
}
