package mcp

import (
	"context"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

// mockParseService is a mock implementation of driving.ParseService.
type mockParseService struct {
	record  *domain.ParseRecord
	records []domain.ParseRecord
	note    *domain.Note
	total   int
	err     error
}

func (m *mockParseService) Submit(_ context.Context, _ domain.ParseKind, _ string) (*domain.ParseRecord, error) {
	return m.record, m.err
}

func (m *mockParseService) History(_ context.Context, _, _ int) ([]domain.ParseRecord, int, error) {
	return m.records, m.total, m.err
}

func (m *mockParseService) Get(_ context.Context, _ string) (*domain.ParseRecord, error) {
	return m.record, m.err
}

func (m *mockParseService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockParseService) File(_ context.Context, _, _ string) (*domain.Note, error) {
	return m.note, m.err
}

// mockNoteService is a mock implementation of driving.NoteService.
type mockNoteService struct {
	notes []domain.Note
	note  *domain.Note
	total int
	err   error
}

func (m *mockNoteService) Create(_ context.Context, _ domain.Note) (*domain.Note, error) {
	return m.note, m.err
}

func (m *mockNoteService) Get(_ context.Context, _ string) (*domain.Note, error) {
	return m.note, m.err
}

func (m *mockNoteService) List(_ context.Context, _ string, _, _ int) ([]domain.Note, int, error) {
	return m.notes, m.total, m.err
}

func (m *mockNoteService) Update(_ context.Context, _ domain.Note) (*domain.Note, error) {
	return m.note, m.err
}

func (m *mockNoteService) Delete(_ context.Context, _ string) error {
	return m.err
}

// mockNotebookService is a mock implementation of driving.NotebookService.
type mockNotebookService struct {
	notebooks []domain.Notebook
	notebook  *domain.Notebook
	err       error
}

func (m *mockNotebookService) Create(_ context.Context, _, _ string) (*domain.Notebook, error) {
	return m.notebook, m.err
}

func (m *mockNotebookService) Get(_ context.Context, _ string) (*domain.Notebook, error) {
	return m.notebook, m.err
}

func (m *mockNotebookService) List(_ context.Context) ([]domain.Notebook, error) {
	return m.notebooks, m.err
}

func (m *mockNotebookService) Rename(_ context.Context, _, _, _ string) (*domain.Notebook, error) {
	return m.notebook, m.err
}

func (m *mockNotebookService) Delete(_ context.Context, _ string, _ bool) error {
	return m.err
}
