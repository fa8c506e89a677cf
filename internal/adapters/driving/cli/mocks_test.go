package cli

import (
	"context"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

// mockParseService implements driving.ParseService for command tests.
type mockParseService struct {
	SubmitFunc  func(ctx context.Context, kind domain.ParseKind, input string) (*domain.ParseRecord, error)
	HistoryFunc func(ctx context.Context, limit, offset int) ([]domain.ParseRecord, int, error)
	GetFunc     func(ctx context.Context, id string) (*domain.ParseRecord, error)
	DeleteFunc  func(ctx context.Context, id string) error
	FileFunc    func(ctx context.Context, recordID, notebookID string) (*domain.Note, error)
}

func (m *mockParseService) Submit(ctx context.Context, kind domain.ParseKind, input string) (*domain.ParseRecord, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, kind, input)
	}
	return &domain.ParseRecord{}, nil
}

func (m *mockParseService) History(ctx context.Context, limit, offset int) ([]domain.ParseRecord, int, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockParseService) Get(ctx context.Context, id string) (*domain.ParseRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &domain.ParseRecord{ID: id}, nil
}

func (m *mockParseService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockParseService) File(ctx context.Context, recordID, notebookID string) (*domain.Note, error) {
	if m.FileFunc != nil {
		return m.FileFunc(ctx, recordID, notebookID)
	}
	return &domain.Note{ID: "note-1", NotebookID: notebookID}, nil
}

// mockNoteService implements driving.NoteService for command tests.
type mockNoteService struct {
	CreateFunc func(ctx context.Context, note domain.Note) (*domain.Note, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Note, error)
	ListFunc   func(ctx context.Context, notebookID string, limit, offset int) ([]domain.Note, int, error)
	UpdateFunc func(ctx context.Context, note domain.Note) (*domain.Note, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *mockNoteService) Create(ctx context.Context, note domain.Note) (*domain.Note, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, note)
	}
	note.ID = "note-1"
	return &note, nil
}

func (m *mockNoteService) Get(ctx context.Context, id string) (*domain.Note, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &domain.Note{ID: id}, nil
}

func (m *mockNoteService) List(ctx context.Context, notebookID string, limit, offset int) ([]domain.Note, int, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, notebookID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockNoteService) Update(ctx context.Context, note domain.Note) (*domain.Note, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, note)
	}
	return &note, nil
}

func (m *mockNoteService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockNotebookService implements driving.NotebookService for command tests.
type mockNotebookService struct {
	CreateFunc func(ctx context.Context, name, description string) (*domain.Notebook, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Notebook, error)
	ListFunc   func(ctx context.Context) ([]domain.Notebook, error)
	RenameFunc func(ctx context.Context, id, name, description string) (*domain.Notebook, error)
	DeleteFunc func(ctx context.Context, id string, force bool) error
}

func (m *mockNotebookService) Create(ctx context.Context, name, description string) (*domain.Notebook, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, name, description)
	}
	return &domain.Notebook{ID: "nb-1", Name: name, Description: description}, nil
}

func (m *mockNotebookService) Get(ctx context.Context, id string) (*domain.Notebook, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &domain.Notebook{ID: id}, nil
}

func (m *mockNotebookService) List(ctx context.Context) ([]domain.Notebook, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockNotebookService) Rename(ctx context.Context, id, name, description string) (*domain.Notebook, error) {
	if m.RenameFunc != nil {
		return m.RenameFunc(ctx, id, name, description)
	}
	return &domain.Notebook{ID: id, Name: name, Description: description}, nil
}

func (m *mockNotebookService) Delete(ctx context.Context, id string, force bool) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, force)
	}
	return nil
}
