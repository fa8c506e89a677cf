package domain

import (
	"strings"
	"time"
)

// ParseKind identifies what the user submitted for parsing.
type ParseKind string

// Available parse kinds.
const (
	// ParseKindLink is a pasted URL whose page is captured and summarised.
	ParseKindLink ParseKind = "link"

	// ParseKindText is pasted raw text summarised as-is.
	ParseKindText ParseKind = "text"
)

// IsValid returns true if the parse kind is recognised.
func (k ParseKind) IsValid() bool {
	switch k {
	case ParseKindLink, ParseKindText:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ParseKind) String() string {
	return string(k)
}

// ParseStatus is the lifecycle state of a parse record.
type ParseStatus string

// Available parse statuses.
const (
	// ParseStatusPending means the AI pipeline has not finished yet.
	ParseStatusPending ParseStatus = "pending"

	// ParseStatusDone means cleaned output is available.
	ParseStatusDone ParseStatus = "done"

	// ParseStatusFailed means the pipeline errored; Error holds the reason.
	ParseStatusFailed ParseStatus = "failed"
)

// IsValid returns true if the parse status is recognised.
func (s ParseStatus) IsValid() bool {
	switch s {
	case ParseStatusPending, ParseStatusDone, ParseStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ParseStatus) String() string {
	return string(s)
}

// ParseRecord is one entry in the parse/assignment history: a submission,
// its cleaned AI output, and where it ended up.
type ParseRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// Kind says whether Input is a link or raw text.
	Kind ParseKind

	// Input is the submitted URL or text, verbatim.
	Input string

	// Output is the normalised human-readable result.
	Output string

	// Title is the derived heading for list display.
	Title string

	// Status is the lifecycle state.
	Status ParseStatus

	// Error holds the failure reason when Status is failed.
	Error string

	// NotebookID is set once the record has been filed.
	NotebookID string

	// NoteID is the note created when the record was filed.
	NoteID string

	// CreatedAt is when the submission was made.
	CreatedAt time.Time

	// UpdatedAt is when the record last changed state.
	UpdatedAt time.Time
}

// Validate checks the record for required fields.
func (r *ParseRecord) Validate() error {
	if !r.Kind.IsValid() || strings.TrimSpace(r.Input) == "" {
		return ErrInvalidInput
	}
	return nil
}

// Filed reports whether the record has been filed into a notebook.
func (r *ParseRecord) Filed() bool {
	return r.NoteID != ""
}
