package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

// recordJSON is the wire form of a parse record.
type recordJSON struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Input      string `json:"input"`
	Output     string `json:"output,omitempty"`
	Title      string `json:"title,omitempty"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	NotebookID string `json:"notebook_id,omitempty"`
	NoteID     string `json:"note_id,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func toRecordJSON(r *domain.ParseRecord) recordJSON {
	return recordJSON{
		ID:         r.ID,
		Kind:       r.Kind.String(),
		Input:      r.Input,
		Output:     r.Output,
		Title:      r.Title,
		Status:     r.Status.String(),
		Error:      r.Error,
		NotebookID: r.NotebookID,
		NoteID:     r.NoteID,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
}

// noteJSON is the wire form of a note.
type noteJSON struct {
	ID         string   `json:"id"`
	NotebookID string   `json:"notebook_id,omitempty"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	SourceURL  string   `json:"source_url,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

func toNoteJSON(n *domain.Note) noteJSON {
	return noteJSON{
		ID:         n.ID,
		NotebookID: n.NotebookID,
		Title:      n.Title,
		Content:    n.Content,
		SourceURL:  n.SourceURL,
		Tags:       n.Tags,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  n.UpdatedAt.Format(time.RFC3339),
	}
}

// notebookJSON is the wire form of a notebook.
type notebookJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	NoteCount   int    `json:"note_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toNotebookJSON(n *domain.Notebook) notebookJSON {
	return notebookJSON{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		NoteCount:   n.NoteCount,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   n.UpdatedAt.Format(time.RFC3339),
	}
}

func parsePagination(r *http.Request, defaultLimit int) (int, int) {
	q := r.URL.Query()
	limit := defaultLimit
	offset := 0

	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Parse and history handlers.

type parseRequest struct {
	Input string `json:"input"`
	Kind  string `json:"kind,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Input == "" {
		respondError(w, http.StatusBadRequest, "input is required")
		return
	}

	kind := domain.ParseKind(req.Kind)
	if !kind.IsValid() {
		kind = domain.ParseKindText
	}

	record, err := s.ports.Parse.Submit(r.Context(), kind, req.Input)
	if err != nil {
		// The pipeline records its own failures; return the failed record
		// when there is one so the caller sees the history entry.
		if record == nil {
			respondDomainError(w, err)
			return
		}
	}

	respondJSON(w, http.StatusOK, toRecordJSON(record))
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r, 20)

	records, total, err := s.ports.Parse.History(r.Context(), limit, offset)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]recordJSON, len(records))
	for i := range records {
		items[i] = toRecordJSON(&records[i])
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"items":  items,
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	record, err := s.ports.Parse.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toRecordJSON(record))
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := s.ports.Parse.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

type fileRequest struct {
	NotebookID string `json:"notebook_id"`
}

func (s *Server) handleFileRecord(w http.ResponseWriter, r *http.Request) {
	var req fileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.NotebookID == "" {
		respondError(w, http.StatusBadRequest, "notebook_id is required")
		return
	}

	note, err := s.ports.Parse.File(r.Context(), chi.URLParam(r, "id"), req.NotebookID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toNoteJSON(note))
}

// Note handlers.

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r, 20)
	notebookID := r.URL.Query().Get("notebook")

	notes, total, err := s.ports.Note.List(r.Context(), notebookID, limit, offset)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]noteJSON, len(notes))
	for i := range notes {
		items[i] = toNoteJSON(&notes[i])
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"items":  items,
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

type noteRequest struct {
	NotebookID string   `json:"notebook_id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	SourceURL  string   `json:"source_url"`
	Tags       []string `json:"tags"`
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := s.ports.Note.Create(r.Context(), domain.Note{
		NotebookID: req.NotebookID,
		Title:      req.Title,
		Content:    req.Content,
		SourceURL:  req.SourceURL,
		Tags:       req.Tags,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toNoteJSON(note))
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	note, err := s.ports.Note.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toNoteJSON(note))
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := s.ports.Note.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	note.NotebookID = req.NotebookID
	note.Title = req.Title
	note.Content = req.Content
	note.SourceURL = req.SourceURL
	note.Tags = req.Tags

	updated, err := s.ports.Note.Update(r.Context(), *note)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toNoteJSON(updated))
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := s.ports.Note.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Notebook handlers.

func (s *Server) handleListNotebooks(w http.ResponseWriter, r *http.Request) {
	notebooks, err := s.ports.Notebook.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]notebookJSON, len(notebooks))
	for i := range notebooks {
		items[i] = toNotebookJSON(&notebooks[i])
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

type notebookRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleCreateNotebook(w http.ResponseWriter, r *http.Request) {
	var req notebookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	notebook, err := s.ports.Notebook.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toNotebookJSON(notebook))
}

func (s *Server) handleRenameNotebook(w http.ResponseWriter, r *http.Request) {
	var req notebookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	notebook, err := s.ports.Notebook.Rename(r.Context(), chi.URLParam(r, "id"), req.Name, req.Description)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toNotebookJSON(notebook))
}

func (s *Server) handleDeleteNotebook(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"

	if err := s.ports.Notebook.Delete(r.Context(), chi.URLParam(r, "id"), force); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Settings handlers.

type settingsLLMJSON struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	BaseURL  string `json:"base_url,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
}

type settingsCaptureJSON struct {
	GitHubToken    string `json:"github_token,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type settingsServerJSON struct {
	Addr string `json:"addr"`
}

type settingsHistoryJSON struct {
	MaxEntries int `json:"max_entries"`
}

// settingsJSON is the wire form of the application settings. Secrets are
// masked on the way out; an empty secret on the way in keeps the stored one.
type settingsJSON struct {
	LLM     settingsLLMJSON     `json:"llm"`
	Capture settingsCaptureJSON `json:"capture"`
	Server  settingsServerJSON  `json:"server"`
	History settingsHistoryJSON `json:"history"`
}

func toSettingsJSON(s *domain.AppSettings) settingsJSON {
	return settingsJSON{
		LLM: settingsLLMJSON{
			Provider: string(s.LLM.Provider),
			Model:    s.LLM.Model,
			BaseURL:  s.LLM.BaseURL,
			APIKey:   maskSecret(s.LLM.APIKey),
		},
		Capture: settingsCaptureJSON{
			GitHubToken:    maskSecret(s.Capture.GitHubToken),
			TimeoutSeconds: s.Capture.TimeoutSeconds,
		},
		Server: settingsServerJSON{
			Addr: s.Server.Addr,
		},
		History: settingsHistoryJSON{
			MaxEntries: s.History.MaxEntries,
		},
	}
}

// maskSecret hides all but the edges of a stored secret. Empty stays empty so
// omitempty drops the field.
func maskSecret(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// secretChanged reports whether an incoming secret should replace the stored
// one. Empty and masked forms mean "keep what is there".
func secretChanged(incoming, stored string) bool {
	return incoming != "" && incoming != maskSecret(stored)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	if s.ports.Settings == nil {
		respondError(w, http.StatusInternalServerError, "settings service not configured")
		return
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toSettingsJSON(settings))
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	if s.ports.Settings == nil {
		respondError(w, http.StatusInternalServerError, "settings service not configured")
		return
	}

	var req settingsJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if req.LLM.Provider != "" {
		provider := domain.AIProvider(req.LLM.Provider)
		if !provider.IsValid() {
			respondError(w, http.StatusBadRequest, "unknown provider: "+req.LLM.Provider)
			return
		}
		settings.LLM.Provider = provider
	}
	if req.LLM.Model != "" {
		settings.LLM.Model = req.LLM.Model
	}
	settings.LLM.BaseURL = req.LLM.BaseURL
	if secretChanged(req.LLM.APIKey, settings.LLM.APIKey) {
		settings.LLM.APIKey = req.LLM.APIKey
	}
	if secretChanged(req.Capture.GitHubToken, settings.Capture.GitHubToken) {
		settings.Capture.GitHubToken = req.Capture.GitHubToken
	}
	if req.Capture.TimeoutSeconds > 0 {
		settings.Capture.TimeoutSeconds = req.Capture.TimeoutSeconds
	}
	if req.Server.Addr != "" {
		settings.Server.Addr = req.Server.Addr
	}
	// Zero means "not provided"; a negative value disables pruning.
	if req.History.MaxEntries != 0 {
		settings.History.MaxEntries = req.History.MaxEntries
	}

	if err := s.ports.Settings.Save(settings); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toSettingsJSON(settings))
}
