package mcp

import (
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Parse runs submissions through the AI pipeline and manages history.
	Parse driving.ParseService

	// Note manages notes.
	Note driving.NoteService

	// Notebook manages notebooks.
	Notebook driving.NotebookService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Parse == nil {
		return ErrMissingParseService
	}
	// Note and Notebook are optional; resources degrade gracefully
	return nil
}
