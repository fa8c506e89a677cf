package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// all metadata store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.clipfold/data/clipfold.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".clipfold", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "clipfold.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// NoteStore returns a NoteStore interface backed by this store.
func (s *Store) NoteStore() driven.NoteStore {
	return &noteStore{store: s}
}

// NotebookStore returns a NotebookStore interface backed by this store.
func (s *Store) NotebookStore() driven.NotebookStore {
	return &notebookStore{store: s}
}

// HistoryStore returns a HistoryStore interface backed by this store.
func (s *Store) HistoryStore() driven.HistoryStore {
	return &historyStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Note Store ====================

// noteStore implements driven.NoteStore.
type noteStore struct {
	store *Store
}

var _ driven.NoteStore = (*noteStore)(nil)

// Save stores or updates a note.
func (s *noteStore) Save(ctx context.Context, note domain.Note) error {
	tagsJSON, err := json.Marshal(note.Tags)
	if err != nil {
		return fmt.Errorf("marshalling tags: %w", err)
	}

	now := time.Now().UTC()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO notes (id, notebook_id, title, content, source_url, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			notebook_id = excluded.notebook_id,
			title = excluded.title,
			content = excluded.content,
			source_url = excluded.source_url,
			tags = excluded.tags,
			updated_at = excluded.updated_at
	`, note.ID, note.NotebookID, note.Title, note.Content, note.SourceURL,
		string(tagsJSON), note.CreatedAt, note.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving note: %w", err)
	}
	return nil
}

// Get retrieves a note by ID.
func (s *noteStore) Get(ctx context.Context, id string) (*domain.Note, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, notebook_id, title, content, source_url, tags, created_at, updated_at
		FROM notes WHERE id = ?
	`, id)

	note, err := scanNote(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning note: %w", err)
	}
	return note, nil
}

// List returns notes newest first. Empty notebookID lists the inbox; "*"
// lists everything.
func (s *noteStore) List(ctx context.Context, notebookID string, limit, offset int) ([]domain.Note, int, error) {
	where := "WHERE notebook_id = ?"
	args := []any{notebookID}
	if notebookID == "*" {
		where = ""
		args = nil
	}

	var total int
	countRow := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes "+where, args...)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting notes: %w", err)
	}

	query := "SELECT id, notebook_id, title, content, source_url, tags, created_at, updated_at FROM notes " +
		where + " ORDER BY created_at DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note //nolint:prealloc // size unknown from query
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, *note)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating notes: %w", err)
	}

	return notes, total, nil
}

// Delete removes a note.
func (s *noteStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DetachNotebook returns every note in the notebook to the inbox.
func (s *noteStore) DetachNotebook(ctx context.Context, notebookID string) error {
	_, err := s.store.db.ExecContext(ctx, `
		UPDATE notes SET notebook_id = '', updated_at = ? WHERE notebook_id = ?
	`, time.Now().UTC(), notebookID)
	if err != nil {
		return fmt.Errorf("detaching notes: %w", err)
	}
	return nil
}

// rowScanner abstracts sql.Row and sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanNote reads one note row.
func scanNote(row rowScanner) (*domain.Note, error) {
	var note domain.Note
	var tagsJSON string
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&note.ID, &note.NotebookID, &note.Title, &note.Content,
		&note.SourceURL, &tagsJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tagsJSON), &note.Tags); err != nil {
		return nil, fmt.Errorf("unmarshaling tags: %w", err)
	}
	if createdAt.Valid {
		note.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		note.UpdatedAt = updatedAt.Time
	}
	return &note, nil
}

// ==================== Notebook Store ====================

// notebookStore implements driven.NotebookStore.
type notebookStore struct {
	store *Store
}

var _ driven.NotebookStore = (*notebookStore)(nil)

// Save stores or updates a notebook.
func (s *notebookStore) Save(ctx context.Context, notebook domain.Notebook) error {
	now := time.Now().UTC()
	if notebook.CreatedAt.IsZero() {
		notebook.CreatedAt = now
	}
	notebook.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO notebooks (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			updated_at = excluded.updated_at
	`, notebook.ID, notebook.Name, notebook.Description, notebook.CreatedAt, notebook.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving notebook: %w", err)
	}
	return nil
}

// Get retrieves a notebook by ID.
func (s *notebookStore) Get(ctx context.Context, id string) (*domain.Notebook, error) {
	return s.getBy(ctx, "id = ?", id)
}

// GetByName retrieves a notebook by name.
func (s *notebookStore) GetByName(ctx context.Context, name string) (*domain.Notebook, error) {
	return s.getBy(ctx, "name = ?", name)
}

func (s *notebookStore) getBy(ctx context.Context, where string, arg any) (*domain.Notebook, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM notebooks WHERE `+where, arg)

	var notebook domain.Notebook
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&notebook.ID, &notebook.Name, &notebook.Description,
		&createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning notebook: %w", err)
	}

	if createdAt.Valid {
		notebook.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		notebook.UpdatedAt = updatedAt.Time
	}
	return &notebook, nil
}

// List returns all notebooks with note counts, ordered by name.
func (s *notebookStore) List(ctx context.Context) ([]domain.Notebook, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT nb.id, nb.name, nb.description, nb.created_at, nb.updated_at,
			(SELECT COUNT(*) FROM notes n WHERE n.notebook_id = nb.id) AS note_count
		FROM notebooks nb
		ORDER BY nb.name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying notebooks: %w", err)
	}
	defer rows.Close()

	var notebooks []domain.Notebook //nolint:prealloc // size unknown from query
	for rows.Next() {
		var notebook domain.Notebook
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&notebook.ID, &notebook.Name, &notebook.Description,
			&createdAt, &updatedAt, &notebook.NoteCount); err != nil {
			return nil, fmt.Errorf("scanning notebook: %w", err)
		}
		if createdAt.Valid {
			notebook.CreatedAt = createdAt.Time
		}
		if updatedAt.Valid {
			notebook.UpdatedAt = updatedAt.Time
		}
		notebooks = append(notebooks, notebook)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notebooks: %w", err)
	}

	return notebooks, nil
}

// Delete removes a notebook.
func (s *notebookStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM notebooks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting notebook: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ==================== History Store ====================

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Save stores or updates a parse record.
func (s *historyStore) Save(ctx context.Context, record domain.ParseRecord) error {
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO parse_history (id, kind, input, output, title, status, error, notebook_id, note_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			input = excluded.input,
			output = excluded.output,
			title = excluded.title,
			status = excluded.status,
			error = excluded.error,
			notebook_id = excluded.notebook_id,
			note_id = excluded.note_id,
			updated_at = excluded.updated_at
	`, record.ID, record.Kind.String(), record.Input, record.Output, record.Title,
		record.Status.String(), record.Error, record.NotebookID, record.NoteID,
		record.CreatedAt, record.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving parse record: %w", err)
	}
	return nil
}

// Get retrieves a parse record by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.ParseRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, kind, input, output, title, status, error, notebook_id, note_id, created_at, updated_at
		FROM parse_history WHERE id = ?
	`, id)

	record, err := scanParseRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning parse record: %w", err)
	}
	return record, nil
}

// List returns parse records newest first, with the total count.
func (s *historyStore) List(ctx context.Context, limit, offset int) ([]domain.ParseRecord, int, error) {
	var total int
	countRow := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM parse_history")
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting parse records: %w", err)
	}

	query := `
		SELECT id, kind, input, output, title, status, error, notebook_id, note_id, created_at, updated_at
		FROM parse_history ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying parse records: %w", err)
	}
	defer rows.Close()

	var records []domain.ParseRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanParseRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning parse record: %w", err)
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating parse records: %w", err)
	}

	return records, total, nil
}

// Delete removes a parse record.
func (s *historyStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM parse_history WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting parse record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Prune deletes the oldest records beyond keep.
func (s *historyStore) Prune(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}

	result, err := s.store.db.ExecContext(ctx, `
		DELETE FROM parse_history WHERE id NOT IN (
			SELECT id FROM parse_history ORDER BY created_at DESC, id DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning parse records: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking prune result: %w", err)
	}
	return int(affected), nil
}

// scanParseRecord reads one parse history row.
func scanParseRecord(row rowScanner) (*domain.ParseRecord, error) {
	var record domain.ParseRecord
	var kind, status string
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&record.ID, &kind, &record.Input, &record.Output, &record.Title,
		&status, &record.Error, &record.NotebookID, &record.NoteID,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	record.Kind = domain.ParseKind(kind)
	record.Status = domain.ParseStatus(status)
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		record.UpdatedAt = updatedAt.Time
	}
	return &record, nil
}
