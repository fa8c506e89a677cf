// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSubmit is the link/text submission view.
	ViewSubmit
	// ViewHistory is the parse history browser.
	ViewHistory
	// ViewRecord shows a single parse record's output.
	ViewRecord
	// ViewNotebooks is the notebook management view.
	ViewNotebooks
	// ViewSettings shows the current configuration.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSubmit:
		return "submit"
	case ViewHistory:
		return "history"
	case ViewRecord:
		return "record"
	case ViewNotebooks:
		return "notebooks"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ParseCompleted carries the result of a submission back to the model. A
// failed pipeline run still carries the persisted record alongside the error.
type ParseCompleted struct {
	Record *domain.ParseRecord
	Err    error
}

// HistoryLoaded carries a page of parse records from the service.
type HistoryLoaded struct {
	Records []domain.ParseRecord
	Total   int
	Err     error
}

// RecordSelected signals a parse record was selected for detail view.
type RecordSelected struct {
	Record domain.ParseRecord
}

// RecordDeleted signals a parse record was removed.
type RecordDeleted struct {
	ID  string
	Err error
}

// RecordFiled signals a record was filed into a notebook as a note.
type RecordFiled struct {
	RecordID string
	Note     *domain.Note
	Err      error
}

// NotebooksLoaded carries the list of notebooks from the service.
type NotebooksLoaded struct {
	Notebooks []domain.Notebook
	Err       error
}

// NotesLoaded carries the notes of a notebook.
type NotesLoaded struct {
	NotebookID string
	Notes      []domain.Note
	Total      int
	Err        error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
