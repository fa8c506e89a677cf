// Package tui provides an interactive terminal user interface for clipfold.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Parse runs submissions through the AI pipeline and manages history.
	Parse driving.ParseService

	// Note manages notes.
	Note driving.NoteService

	// Notebook manages notebooks.
	Notebook driving.NotebookService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	parse driving.ParseService,
	note driving.NoteService,
	notebook driving.NotebookService,
) *Ports {
	return &Ports{
		Parse:    parse,
		Note:     note,
		Notebook: notebook,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Parse == nil {
		return ErrMissingParseService
	}
	if p.Note == nil {
		return ErrMissingNoteService
	}
	if p.Notebook == nil {
		return ErrMissingNotebookService
	}
	return nil
}
