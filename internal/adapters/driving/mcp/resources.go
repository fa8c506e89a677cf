package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Clipfold resources.
	uriScheme = "clipfold://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing notebooks.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "notebooks",
		Name:        "notebooks",
		Description: "List of all notebooks with note counts",
		MIMEType:    "application/json",
	}, s.handleNotebooksResource)

	// Template for the notes in a notebook.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "notebooks/{notebookId}/notes",
		Name:        "notebook-notes",
		Description: "Notes filed into a specific notebook",
		MIMEType:    "application/json",
	}, s.handleNotebookNotesResource)

	// Template for note content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "notes/{noteId}",
		Name:        "note-content",
		Description: "Content of a specific note",
		MIMEType:    "text/plain",
	}, s.handleNoteContentResource)
}

// handleNotebooksResource returns a list of all notebooks.
func (s *Server) handleNotebooksResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Notebook == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	notebooks, err := s.ports.Notebook.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notebooks: %w", err)
	}

	// Build simplified notebook list.
	type notebookInfo struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		NoteCount   int    `json:"note_count"`
	}

	infos := make([]notebookInfo, len(notebooks))
	for i := range notebooks {
		infos[i] = notebookInfo{
			ID:          notebooks[i].ID,
			Name:        notebooks[i].Name,
			Description: notebooks[i].Description,
			NoteCount:   notebooks[i].NoteCount,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling notebooks: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleNotebookNotesResource returns the notes in a specific notebook.
func (s *Server) handleNotebookNotesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Note == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract notebookId from URI: clipfold://notebooks/{notebookId}/notes
	notebookID := extractNotebookID(req.Params.URI)
	if notebookID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	notes, _, err := s.ports.Note.List(ctx, notebookID, 100, 0)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	// Build simplified note list.
	type noteInfo struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		SourceURL string `json:"source_url,omitempty"`
	}

	infos := make([]noteInfo, len(notes))
	for i := range notes {
		infos[i] = noteInfo{
			ID:        notes[i].ID,
			Title:     notes[i].DisplayTitle(),
			SourceURL: notes[i].SourceURL,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling notes: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleNoteContentResource returns the content of a specific note.
func (s *Server) handleNoteContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Note == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract noteId from URI: clipfold://notes/{noteId}
	noteID := extractNoteID(req.Params.URI)
	if noteID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	note, err := s.ports.Note.Get(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("getting note: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     note.Content,
		}},
	}, nil
}

// extractNotebookID extracts the notebook ID from a URI like clipfold://notebooks/{notebookId}/notes.
func extractNotebookID(uri string) string {
	const prefix = uriScheme + "notebooks/"
	const suffix = "/notes"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}

// extractNoteID extracts the note ID from a URI like clipfold://notes/{noteId}.
func extractNoteID(uri string) string {
	const prefix = uriScheme + "notes/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
