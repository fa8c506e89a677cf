package domain

import (
	"strings"
	"time"
)

// Notebook is a named collection of notes.
type Notebook struct {
	// ID is the unique identifier for the notebook.
	ID string

	// Name is the user-visible name. Unique across notebooks.
	Name string

	// Description is an optional free-form description.
	Description string

	// NoteCount is the number of notes filed in this notebook.
	// Populated on listing; not persisted.
	NoteCount int

	// CreatedAt is when the notebook was created.
	CreatedAt time.Time

	// UpdatedAt is when the notebook was last modified.
	UpdatedAt time.Time
}

// Validate checks the notebook for required fields.
func (n *Notebook) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return ErrInvalidInput
	}
	return nil
}
