package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/llmtext"
)

// ParseInput is the input schema for the parse_content tool.
type ParseInput struct {
	Input string `json:"input" jsonschema:"the link or raw text to parse into a note"`
	Kind  string `json:"kind,omitempty" jsonschema:"how to treat the input: link or text (default: text)"`
}

// ParseOutput is the output schema for the parse_content tool.
type ParseOutput struct {
	RecordID string `json:"record_id"`
	Status   string `json:"status"`
	Title    string `json:"title,omitempty"`
	Output   string `json:"output,omitempty"`
	Error    string `json:"error,omitempty"`
}

// NormaliseInput is the input schema for the normalise_content tool.
type NormaliseInput struct {
	Content string `json:"content" jsonschema:"raw AI service output to clean up into readable text"`
}

// NormaliseOutput is the output schema for the normalise_content tool.
type NormaliseOutput struct {
	Text string `json:"text"`
}

// HistoryInput is the input schema for the list_history tool.
type HistoryInput struct {
	Limit  int `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 10)"`
	Offset int `json:"offset,omitempty" jsonschema:"number of records to skip"`
}

// HistoryOutput is the output schema for the list_history tool.
type HistoryOutput struct {
	Records []HistoryRecordOutput `json:"records"`
	Total   int                   `json:"total"`
}

// HistoryRecordOutput represents a single parse record.
type HistoryRecordOutput struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Status     string `json:"status"`
	Title      string `json:"title,omitempty"`
	Input      string `json:"input"`
	NotebookID string `json:"notebook_id,omitempty"`
	NoteID     string `json:"note_id,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_content",
		Description: "Parse a link or block of text into a cleaned-up note",
	}, s.handleParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalise_content",
		Description: "Recover readable text from malformed or truncated AI service output",
	}, s.handleNormalise)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_history",
		Description: "List past parse results, newest first",
	}, s.handleHistory)
}

// handleParse handles the parse_content tool invocation.
func (s *Server) handleParse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ParseInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	kind := domain.ParseKind(input.Kind)
	if !kind.IsValid() {
		kind = domain.ParseKindText
	}

	record, err := s.ports.Parse.Submit(ctx, kind, input.Input)
	if err != nil {
		// A failed pipeline still yields a record; surface it rather than
		// failing the tool call.
		if record == nil {
			return nil, ParseOutput{}, err
		}
	}

	return nil, ParseOutput{
		RecordID: record.ID,
		Status:   record.Status.String(),
		Title:    record.Title,
		Output:   record.Output,
		Error:    record.Error,
	}, nil
}

// handleNormalise handles the normalise_content tool invocation.
func (s *Server) handleNormalise(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NormaliseInput,
) (*mcp.CallToolResult, NormaliseOutput, error) {
	return nil, NormaliseOutput{Text: llmtext.Normalise(input.Content)}, nil
}

// handleHistory handles the list_history tool invocation.
func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	records, total, err := s.ports.Parse.History(ctx, limit, input.Offset)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	output := HistoryOutput{
		Records: make([]HistoryRecordOutput, len(records)),
		Total:   total,
	}

	for i := range records {
		output.Records[i] = HistoryRecordOutput{
			ID:         records[i].ID,
			Kind:       records[i].Kind.String(),
			Status:     records[i].Status.String(),
			Title:      records[i].Title,
			Input:      records[i].Input,
			NotebookID: records[i].NotebookID,
			NoteID:     records[i].NoteID,
			CreatedAt:  records[i].CreatedAt.Format(time.RFC3339),
		}
	}

	return nil, output, nil
}
