package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown provider or capture type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Parsing and summarisation are disabled without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrRateLimited indicates an upstream API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrNotebookNotEmpty indicates a notebook still holds notes and was
	// not deleted. Pass force to detach the notes and delete anyway.
	ErrNotebookNotEmpty = errors.New("notebook is not empty")

	// ErrRecordNotFiled indicates a parse record is not in a state that
	// can be filed into a notebook (still pending, or failed).
	ErrRecordNotFiled = errors.New("parse record cannot be filed")
)
