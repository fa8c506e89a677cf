package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

func TestHistoryListCmd(t *testing.T) {
	oldService := parseService
	defer func() { parseService = oldService }()

	parseService = &mockParseService{
		HistoryFunc: func(_ context.Context, limit, offset int) ([]domain.ParseRecord, int, error) {
			assert.Equal(t, 20, limit)
			assert.Equal(t, 0, offset)
			return []domain.ParseRecord{
				{ID: "rec-1", Status: domain.ParseStatusDone, Title: "First"},
				{ID: "rec-2", Status: domain.ParseStatusFailed, Input: "bad input", Error: "model unreachable"},
			}, 7, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "list"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "rec-1")
	assert.Contains(t, output, "First")
	assert.Contains(t, output, "error: model unreachable")
	assert.Contains(t, output, "Showing 2 of 7 records")
}

func TestHistoryListCmd_Empty(t *testing.T) {
	oldService := parseService
	defer func() { parseService = oldService }()

	parseService = &mockParseService{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "History is empty")
}

func TestHistoryShowCmd(t *testing.T) {
	oldService := parseService
	defer func() { parseService = oldService }()

	parseService = &mockParseService{
		GetFunc: func(_ context.Context, id string) (*domain.ParseRecord, error) {
			return &domain.ParseRecord{
				ID:     id,
				Kind:   domain.ParseKindLink,
				Input:  "https://example.com/post",
				Output: "标题：整理后的笔记",
				Title:  "整理后的笔记",
				Status: domain.ParseStatusDone,
			}, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "show", "rec-9"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "rec-9")
	assert.Contains(t, output, "https://example.com/post")
	assert.Contains(t, output, "整理后的笔记")
}

func TestHistoryDeleteCmd(t *testing.T) {
	oldService := parseService
	defer func() { parseService = oldService }()

	var deleted string
	parseService = &mockParseService{
		DeleteFunc: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "delete", "rec-5"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "rec-5", deleted)
	assert.Contains(t, buf.String(), "deleted")
}

func TestHistoryFileCmd_ResolvesNotebookByName(t *testing.T) {
	oldParse := parseService
	oldNotebook := notebookService
	defer func() {
		parseService = oldParse
		notebookService = oldNotebook
	}()

	notebookService = &mockNotebookService{
		GetFunc: func(_ context.Context, id string) (*domain.Notebook, error) {
			return nil, domain.ErrNotFound
		},
		ListFunc: func(_ context.Context) ([]domain.Notebook, error) {
			return []domain.Notebook{
				{ID: "nb-1", Name: "reading"},
				{ID: "nb-2", Name: "work"},
			}, nil
		},
	}

	var filedRecord, filedNotebook string
	parseService = &mockParseService{
		FileFunc: func(_ context.Context, recordID, notebookID string) (*domain.Note, error) {
			filedRecord = recordID
			filedNotebook = notebookID
			return &domain.Note{ID: "note-1", NotebookID: notebookID}, nil
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history", "file", "rec-1", "work"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "rec-1", filedRecord)
	assert.Equal(t, "nb-2", filedNotebook)
	assert.Contains(t, buf.String(), "note-1")
}

func TestHistoryFileCmd_UnknownNotebook(t *testing.T) {
	oldParse := parseService
	oldNotebook := notebookService
	defer func() {
		parseService = oldParse
		notebookService = oldNotebook
	}()

	parseService = &mockParseService{}
	notebookService = &mockNotebookService{
		GetFunc: func(_ context.Context, id string) (*domain.Notebook, error) {
			return nil, domain.ErrNotFound
		},
		ListFunc: func(_ context.Context) ([]domain.Notebook, error) {
			return nil, nil
		},
	}

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"history", "file", "rec-1", "missing"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
