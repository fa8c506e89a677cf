package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingParseService,
		ErrMissingNoteService,
		ErrMissingNotebookService,
		ErrInvalidPorts,
	}

	// Ensure all errors are unique
	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingParseService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingParseService.Error(), "parse service")
}

func TestErrMissingNoteService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingNoteService.Error(), "note service")
}

func TestErrMissingNotebookService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingNotebookService.Error(), "notebook service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
