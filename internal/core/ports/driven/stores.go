package driven

import (
	"context"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

// NoteStore persists notes.
type NoteStore interface {
	// Save stores or updates a note.
	Save(ctx context.Context, note domain.Note) error

	// Get retrieves a note by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Note, error)

	// List returns notes, newest first. Empty notebookID lists the inbox;
	// "*" lists everything.
	List(ctx context.Context, notebookID string, limit, offset int) ([]domain.Note, int, error)

	// Delete removes a note. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// DetachNotebook clears NotebookID on every note in the notebook,
	// returning them to the inbox.
	DetachNotebook(ctx context.Context, notebookID string) error
}

// NotebookStore persists notebooks.
type NotebookStore interface {
	// Save stores or updates a notebook.
	Save(ctx context.Context, notebook domain.Notebook) error

	// Get retrieves a notebook by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Notebook, error)

	// GetByName retrieves a notebook by name. Returns domain.ErrNotFound if absent.
	GetByName(ctx context.Context, name string) (*domain.Notebook, error)

	// List returns all notebooks with NoteCount populated, ordered by name.
	List(ctx context.Context) ([]domain.Notebook, error)

	// Delete removes a notebook. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}

// HistoryStore persists parse records.
type HistoryStore interface {
	// Save stores or updates a parse record.
	Save(ctx context.Context, record domain.ParseRecord) error

	// Get retrieves a record by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.ParseRecord, error)

	// List returns records newest first, with the total count.
	List(ctx context.Context, limit, offset int) ([]domain.ParseRecord, int, error)

	// Delete removes a record. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// Prune deletes the oldest records beyond keep. Returns how many were
	// removed.
	Prune(ctx context.Context, keep int) (int, error)
}
