package domain

import (
	"strings"
	"time"
)

// Note is a curated piece of content filed into a notebook.
type Note struct {
	// ID is the unique identifier for the note.
	ID string

	// NotebookID is the owning notebook. Empty means the note sits in the
	// inbox, not yet filed anywhere.
	NotebookID string

	// Title is the human-readable title.
	Title string

	// Content is the note body as cleaned text.
	Content string

	// SourceURL is the link the content was captured from, if any.
	SourceURL string

	// Tags are free-form labels attached by the user.
	Tags []string

	// CreatedAt is when the note was created.
	CreatedAt time.Time

	// UpdatedAt is when the note was last modified.
	UpdatedAt time.Time
}

// Validate checks the note for required fields.
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" && strings.TrimSpace(n.Content) == "" {
		return ErrInvalidInput
	}
	return nil
}

// DisplayTitle returns the title, falling back to a content snippet when the
// title is empty.
func (n *Note) DisplayTitle() string {
	if t := strings.TrimSpace(n.Title); t != "" {
		return t
	}
	return Snippet(n.Content, 60)
}

// Snippet returns the first line of s truncated to max runes, with an
// ellipsis when content was cut.
func Snippet(s string, max int) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = strings.TrimSpace(s[:idx])
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
