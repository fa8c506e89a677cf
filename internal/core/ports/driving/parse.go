package driving

import (
	"context"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

// ParseService runs pasted links and text through the AI pipeline and
// manages the resulting parse/assignment history.
type ParseService interface {
	// Submit sends input through capture (links only), the LLM, and content
	// normalisation. The returned record is persisted with status done or
	// failed; a pipeline failure is recorded on the history entry AND
	// returned to the caller.
	Submit(ctx context.Context, kind domain.ParseKind, input string) (*domain.ParseRecord, error)

	// History lists parse records newest first, with the total count.
	History(ctx context.Context, limit, offset int) ([]domain.ParseRecord, int, error)

	// Get retrieves one parse record.
	Get(ctx context.Context, id string) (*domain.ParseRecord, error)

	// Delete removes a parse record. Any note already filed from it stays.
	Delete(ctx context.Context, id string) error

	// File turns a done record into a note in the given notebook. Re-filing
	// an already-filed record moves its note instead of duplicating it.
	File(ctx context.Context, recordID, notebookID string) (*domain.Note, error)
}

// NoteService manages notes.
type NoteService interface {
	// Create adds a new note. ID and timestamps are assigned.
	Create(ctx context.Context, note domain.Note) (*domain.Note, error)

	// Get retrieves a note by ID.
	Get(ctx context.Context, id string) (*domain.Note, error)

	// List returns notes in a notebook, newest first. Empty notebookID is
	// the inbox; "*" lists all notes.
	List(ctx context.Context, notebookID string, limit, offset int) ([]domain.Note, int, error)

	// Update modifies an existing note.
	Update(ctx context.Context, note domain.Note) (*domain.Note, error)

	// Delete removes a note.
	Delete(ctx context.Context, id string) error
}

// NotebookService manages notebooks.
type NotebookService interface {
	// Create adds a new notebook with a unique name.
	Create(ctx context.Context, name, description string) (*domain.Notebook, error)

	// Get retrieves a notebook by ID.
	Get(ctx context.Context, id string) (*domain.Notebook, error)

	// List returns all notebooks with note counts.
	List(ctx context.Context) ([]domain.Notebook, error)

	// Rename updates a notebook's name and description.
	Rename(ctx context.Context, id, name, description string) (*domain.Notebook, error)

	// Delete removes a notebook. A non-empty notebook is only deleted with
	// force, which detaches its notes back to the inbox.
	Delete(ctx context.Context, id string, force bool) error
}

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLLMProvider configures the LLM provider.
	SetLLMProvider(provider domain.AIProvider, model, apiKey string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ValidateLLMConfig validates the current LLM configuration by pinging
	// the provider.
	ValidateLLMConfig(ctx context.Context) error
}
