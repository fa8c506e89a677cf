// Package httpapi exposes parse, history, note, and notebook operations as a
// local JSON API. It is meant for browser extensions and other tooling on the
// same machine; bind it to loopback.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces the API serves.
type Ports struct {
	Parse    driving.ParseService
	Note     driving.NoteService
	Notebook driving.NotebookService
	Settings driving.SettingsService
}

// Server is the local HTTP API server.
type Server struct {
	router *chi.Mux
	ports  *Ports
}

// NewServer creates the API server and sets up its routes.
func NewServer(ports *Ports) *Server {
	s := &Server{
		router: chi.NewRouter(),
		ports:  ports,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	s.router.Get("/health", s.handleHealth)

	s.router.Post("/parse", s.handleParse)
	s.router.Get("/history", s.handleListHistory)
	s.router.Get("/history/{id}", s.handleGetRecord)
	s.router.Delete("/history/{id}", s.handleDeleteRecord)
	s.router.Post("/history/{id}/file", s.handleFileRecord)

	s.router.Get("/notes", s.handleListNotes)
	s.router.Post("/notes", s.handleCreateNote)
	s.router.Get("/notes/{id}", s.handleGetNote)
	s.router.Put("/notes/{id}", s.handleUpdateNote)
	s.router.Delete("/notes/{id}", s.handleDeleteNote)

	s.router.Get("/notebooks", s.handleListNotebooks)
	s.router.Post("/notebooks", s.handleCreateNotebook)
	s.router.Put("/notebooks/{id}", s.handleRenameNotebook)
	s.router.Delete("/notebooks/{id}", s.handleDeleteNotebook)

	s.router.Get("/settings", s.handleGetSettings)
	s.router.Put("/settings", s.handleUpdateSettings)
}

// Router returns the underlying handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves the API on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, _ := json.Marshal(payload) //nolint:errcheck
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response) //nolint:errcheck
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps domain errors onto HTTP status codes.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnsupportedType):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrNotebookNotEmpty),
		errors.Is(err, domain.ErrRecordNotFiled):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		respondError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, domain.ErrLLMUnavailable):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
