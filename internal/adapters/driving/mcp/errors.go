// Package mcp provides an MCP (Model Context Protocol) server adapter for Clipfold.
// It enables AI assistants like Claude to parse content and browse notes.
package mcp

import "errors"

// ErrMissingParseService is returned when the parse service is not provided.
var ErrMissingParseService = errors.New("mcp: parse service is required")
