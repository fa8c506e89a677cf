package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

// TestViewType_String tests all ViewType string representations
func TestViewType_String(t *testing.T) {
	tests := []struct {
		name     string
		view     ViewType
		expected string
	}{
		{"ViewMenu", ViewMenu, "menu"},
		{"ViewSubmit", ViewSubmit, "submit"},
		{"ViewHistory", ViewHistory, "history"},
		{"ViewRecord", ViewRecord, "record"},
		{"ViewNotebooks", ViewNotebooks, "notebooks"},
		{"ViewSettings", ViewSettings, "settings"},
		{"ViewHelp", ViewHelp, "help"},
		{"UnknownView", ViewType(99), "unknown"},
		{"NegativeView", ViewType(-1), "unknown"},
		{"LargeView", ViewType(1000), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

// TestViewChanged tests the ViewChanged message type
func TestViewChanged(t *testing.T) {
	t.Run("to submit view", func(t *testing.T) {
		msg := ViewChanged{View: ViewSubmit}
		assert.Equal(t, ViewSubmit, msg.View)
	})

	t.Run("to history view", func(t *testing.T) {
		msg := ViewChanged{View: ViewHistory}
		assert.Equal(t, ViewHistory, msg.View)
	})

	t.Run("to help view", func(t *testing.T) {
		msg := ViewChanged{View: ViewHelp}
		assert.Equal(t, ViewHelp, msg.View)
	})
}

// TestParseCompleted tests the ParseCompleted message type
func TestParseCompleted(t *testing.T) {
	t.Run("with record", func(t *testing.T) {
		record := &domain.ParseRecord{
			ID:     "rec-1",
			Kind:   domain.ParseKindText,
			Status: domain.ParseStatusDone,
			Output: "cleaned text",
		}
		msg := ParseCompleted{Record: record, Err: nil}

		require.NotNil(t, msg.Record)
		assert.Equal(t, "rec-1", msg.Record.ID)
		assert.Equal(t, domain.ParseStatusDone, msg.Record.Status)
		assert.NoError(t, msg.Err)
	})

	t.Run("with failed record and error", func(t *testing.T) {
		record := &domain.ParseRecord{
			ID:     "rec-2",
			Status: domain.ParseStatusFailed,
			Error:  "llm unreachable",
		}
		err := errors.New("llm unreachable")
		msg := ParseCompleted{Record: record, Err: err}

		require.NotNil(t, msg.Record)
		assert.Equal(t, domain.ParseStatusFailed, msg.Record.Status)
		assert.Error(t, msg.Err)
	})

	t.Run("with hard error and no record", func(t *testing.T) {
		err := errors.New("store unavailable")
		msg := ParseCompleted{Record: nil, Err: err}

		assert.Nil(t, msg.Record)
		assert.Error(t, msg.Err)
		assert.Equal(t, "store unavailable", msg.Err.Error())
	})
}

// TestHistoryLoaded tests the HistoryLoaded message type
func TestHistoryLoaded(t *testing.T) {
	t.Run("with records", func(t *testing.T) {
		records := []domain.ParseRecord{
			{ID: "rec-1", Input: "first"},
			{ID: "rec-2", Input: "second"},
		}
		msg := HistoryLoaded{Records: records, Total: 10, Err: nil}

		require.Len(t, msg.Records, 2)
		assert.Equal(t, "rec-1", msg.Records[0].ID)
		assert.Equal(t, 10, msg.Total)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("failed to load history")
		msg := HistoryLoaded{Records: nil, Err: err}

		assert.Nil(t, msg.Records)
		assert.Error(t, msg.Err)
	})

	t.Run("with empty records", func(t *testing.T) {
		msg := HistoryLoaded{Records: []domain.ParseRecord{}, Total: 0, Err: nil}

		assert.NotNil(t, msg.Records)
		assert.Empty(t, msg.Records)
		assert.NoError(t, msg.Err)
	})
}

// TestRecordSelected tests the RecordSelected message type
func TestRecordSelected(t *testing.T) {
	t.Run("with valid record", func(t *testing.T) {
		record := domain.ParseRecord{
			ID:     "rec-1",
			Kind:   domain.ParseKindLink,
			Input:  "https://example.com",
			Output: "cleaned",
		}
		msg := RecordSelected{Record: record}

		assert.Equal(t, "rec-1", msg.Record.ID)
		assert.Equal(t, domain.ParseKindLink, msg.Record.Kind)
	})

	t.Run("with empty record", func(t *testing.T) {
		msg := RecordSelected{Record: domain.ParseRecord{}}
		assert.Equal(t, "", msg.Record.ID)
	})
}

// TestRecordDeleted tests the RecordDeleted message type
func TestRecordDeleted(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		msg := RecordDeleted{ID: "rec-1", Err: nil}

		assert.Equal(t, "rec-1", msg.ID)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("record not found")
		msg := RecordDeleted{ID: "rec-2", Err: err}

		assert.Equal(t, "rec-2", msg.ID)
		assert.Error(t, msg.Err)
	})
}

// TestRecordFiled tests the RecordFiled message type
func TestRecordFiled(t *testing.T) {
	t.Run("successful filing", func(t *testing.T) {
		note := &domain.Note{ID: "note-1", NotebookID: "nb-1", Title: "Filed note"}
		msg := RecordFiled{RecordID: "rec-1", Note: note, Err: nil}

		assert.Equal(t, "rec-1", msg.RecordID)
		require.NotNil(t, msg.Note)
		assert.Equal(t, "nb-1", msg.Note.NotebookID)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("notebook not found")
		msg := RecordFiled{RecordID: "rec-1", Note: nil, Err: err}

		assert.Nil(t, msg.Note)
		assert.Error(t, msg.Err)
		assert.Equal(t, "notebook not found", msg.Err.Error())
	})
}

// TestNotebooksLoaded tests the NotebooksLoaded message type
func TestNotebooksLoaded(t *testing.T) {
	t.Run("with notebooks", func(t *testing.T) {
		notebooks := []domain.Notebook{
			{ID: "nb-1", Name: "Reading", NoteCount: 3},
			{ID: "nb-2", Name: "Recipes"},
		}
		msg := NotebooksLoaded{Notebooks: notebooks, Err: nil}

		require.Len(t, msg.Notebooks, 2)
		assert.Equal(t, "Reading", msg.Notebooks[0].Name)
		assert.Equal(t, 3, msg.Notebooks[0].NoteCount)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("failed to load notebooks")
		msg := NotebooksLoaded{Notebooks: nil, Err: err}

		assert.Nil(t, msg.Notebooks)
		assert.Error(t, msg.Err)
	})
}

// TestNotesLoaded tests the NotesLoaded message type
func TestNotesLoaded(t *testing.T) {
	t.Run("with notes", func(t *testing.T) {
		notes := []domain.Note{
			{ID: "note-1", NotebookID: "nb-1", Title: "First"},
		}
		msg := NotesLoaded{NotebookID: "nb-1", Notes: notes, Total: 5, Err: nil}

		assert.Equal(t, "nb-1", msg.NotebookID)
		require.Len(t, msg.Notes, 1)
		assert.Equal(t, 5, msg.Total)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("notebook not found")
		msg := NotesLoaded{NotebookID: "nb-missing", Err: err}

		assert.Equal(t, "nb-missing", msg.NotebookID)
		assert.Nil(t, msg.Notes)
		assert.Error(t, msg.Err)
	})
}

// TestSettingsLoaded tests the SettingsLoaded message type
func TestSettingsLoaded(t *testing.T) {
	t.Run("with settings", func(t *testing.T) {
		settings := domain.DefaultAppSettings()
		msg := SettingsLoaded{Settings: settings, Err: nil}

		assert.NotNil(t, msg.Settings)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("failed to load settings")
		msg := SettingsLoaded{Settings: nil, Err: err}

		assert.Nil(t, msg.Settings)
		assert.Error(t, msg.Err)
		assert.Equal(t, "failed to load settings", msg.Err.Error())
	})
}

// TestErrorOccurred tests the ErrorOccurred message type
func TestErrorOccurred(t *testing.T) {
	t.Run("with standard error", func(t *testing.T) {
		err := errors.New("something went wrong")
		msg := ErrorOccurred{Err: err}

		assert.Error(t, msg.Err)
		assert.Equal(t, "something went wrong", msg.Err.Error())
	})

	t.Run("with nil error", func(t *testing.T) {
		msg := ErrorOccurred{Err: nil}
		assert.Nil(t, msg.Err)
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("base error")
		wrappedErr := errors.Join(baseErr, errors.New("additional context"))
		msg := ErrorOccurred{Err: wrappedErr}

		assert.Error(t, msg.Err)
		assert.Contains(t, msg.Err.Error(), "base error")
	})
}

// TestQuit tests the Quit message type
func TestQuit(t *testing.T) {
	msg := Quit{}
	// Quit is an empty struct, just verify it can be created
	assert.NotNil(t, msg)
}
