package sqlite

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	// Create a temporary directory for the test database
	tempDir, err := os.MkdirTemp("", "clipfold-test-*")
	require.NoError(t, err)

	// Create store in temp directory
	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	// Return cleanup function
	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestNewStore_CreatesSchema(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.NotEmpty(t, store.Path())

	// Reopening the same directory must not re-run migrations.
	reopened, err := NewStore(store.Path()[:len(store.Path())-len("/clipfold.db")])
	require.NoError(t, err)
	assert.NoError(t, reopened.Close())
}

func TestNoteStore_SaveGetDelete(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	notes := store.NoteStore()
	ctx := context.Background()

	note := domain.Note{
		ID:         "n1",
		NotebookID: "nb1",
		Title:      "first",
		Content:    "body",
		SourceURL:  "https://example.com",
		Tags:       []string{"go", "notes"},
	}
	require.NoError(t, notes.Save(ctx, note))

	got, err := notes.Get(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, []string{"go", "notes"}, got.Tags)
	assert.False(t, got.CreatedAt.IsZero())

	// Upsert keeps the original creation time.
	note.Title = "renamed"
	note.CreatedAt = got.CreatedAt
	require.NoError(t, notes.Save(ctx, note))
	updated, err := notes.Get(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)

	require.NoError(t, notes.Delete(ctx, "n1"))
	_, err = notes.Get(ctx, "n1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, notes.Delete(ctx, "n1"), domain.ErrNotFound)
}

func TestNoteStore_ListFilters(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	notes := store.NoteStore()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, notes.Save(ctx, domain.Note{ID: "a", NotebookID: "nb1", Title: "a", CreatedAt: base}))
	require.NoError(t, notes.Save(ctx, domain.Note{ID: "b", NotebookID: "nb1", Title: "b", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, notes.Save(ctx, domain.Note{ID: "c", Title: "inbox", CreatedAt: base.Add(2 * time.Hour)}))

	listed, total, err := notes.List(ctx, "nb1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, listed, 2)
	assert.Equal(t, "b", listed[0].ID)

	inbox, total, err := notes.List(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "c", inbox[0].ID)

	all, total, err := notes.List(ctx, "*", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, all, 3)

	// Pagination.
	page, total, err := notes.List(ctx, "*", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "a", page[0].ID)
}

func TestNoteStore_DetachNotebook(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	notes := store.NoteStore()
	ctx := context.Background()

	require.NoError(t, notes.Save(ctx, domain.Note{ID: "a", NotebookID: "nb1", Title: "a"}))
	require.NoError(t, notes.Save(ctx, domain.Note{ID: "b", NotebookID: "nb2", Title: "b"}))

	require.NoError(t, notes.DetachNotebook(ctx, "nb1"))

	a, err := notes.Get(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, a.NotebookID)

	b, err := notes.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "nb2", b.NotebookID)
}

func TestNotebookStore_CRUD(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	notebooks := store.NotebookStore()
	notes := store.NoteStore()
	ctx := context.Background()

	require.NoError(t, notebooks.Save(ctx, domain.Notebook{ID: "nb1", Name: "beta"}))
	require.NoError(t, notebooks.Save(ctx, domain.Notebook{ID: "nb2", Name: "alpha", Description: "d"}))
	require.NoError(t, notes.Save(ctx, domain.Note{ID: "n1", NotebookID: "nb1", Title: "x"}))

	got, err := notebooks.Get(ctx, "nb1")
	require.NoError(t, err)
	assert.Equal(t, "beta", got.Name)

	byName, err := notebooks.GetByName(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, "nb2", byName.ID)

	_, err = notebooks.GetByName(ctx, "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	listed, err := notebooks.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	// Ordered by name, with note counts.
	assert.Equal(t, "alpha", listed[0].Name)
	assert.Zero(t, listed[0].NoteCount)
	assert.Equal(t, "beta", listed[1].Name)
	assert.Equal(t, 1, listed[1].NoteCount)

	require.NoError(t, notebooks.Delete(ctx, "nb2"))
	assert.ErrorIs(t, notebooks.Delete(ctx, "nb2"), domain.ErrNotFound)
}

func TestHistoryStore_SaveGetList(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	history := store.HistoryStore()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := range 3 {
		record := domain.ParseRecord{
			ID:        fmt.Sprintf("r%d", i),
			Kind:      domain.ParseKindText,
			Input:     fmt.Sprintf("input %d", i),
			Output:    "output",
			Status:    domain.ParseStatusDone,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, history.Save(ctx, record))
	}

	got, err := history.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.ParseKindText, got.Kind)
	assert.Equal(t, domain.ParseStatusDone, got.Status)

	records, total, err := history.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, records, 2)
	// Newest first.
	assert.Equal(t, "r2", records[0].ID)

	require.NoError(t, history.Delete(ctx, "r0"))
	assert.ErrorIs(t, history.Delete(ctx, "r0"), domain.ErrNotFound)
}

func TestHistoryStore_Prune(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	history := store.HistoryStore()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := range 5 {
		record := domain.ParseRecord{
			ID:        fmt.Sprintf("r%d", i),
			Kind:      domain.ParseKindText,
			Input:     "x",
			Status:    domain.ParseStatusDone,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, history.Save(ctx, record))
	}

	removed, err := history.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	records, total, err := history.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	// The newest records survive.
	assert.Equal(t, "r4", records[0].ID)
	assert.Equal(t, "r3", records[1].ID)

	// Pruning disabled.
	removed, err = history.Prune(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
