package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driving"
	"github.com/clipfold-labs/clipfold-cli/internal/llmtext"
	"github.com/clipfold-labs/clipfold-cli/internal/logger"
)

// Ensure ParseService implements the interface.
var _ driving.ParseService = (*ParseService)(nil)

// Generation limits for the curation prompt.
const (
	parseMaxTokens   = 2048
	parseTemperature = 0.2

	// maxCaptureChars bounds how much page text is sent to the model.
	maxCaptureChars = 12000
)

const parsePrompt = `You are a note curation assistant. Read the material below and produce a concise, well-structured note in the material's own language: a short title line, then the key points as plain text. Respond with plain text only, no code fences and no JSON.

Material:
%s`

// ParseService runs submissions through capture, the LLM, and content
// normalisation, and manages the parse/assignment history.
type ParseService struct {
	history     driven.HistoryStore
	notes       driven.NoteStore
	notebooks   driven.NotebookStore
	llm         driven.LLMService
	capturers   []driven.Capturer
	promptStore driven.PromptStore
	maxEntries  int
}

// NewParseService creates a new parse service. llm may be nil, in which case
// submissions fail with domain.ErrLLMUnavailable. Capturers are consulted in
// order; the first that supports a URL wins. maxEntries <= 0 disables
// history pruning.
func NewParseService(
	history driven.HistoryStore,
	notes driven.NoteStore,
	notebooks driven.NotebookStore,
	llm driven.LLMService,
	capturers []driven.Capturer,
	maxEntries int,
) *ParseService {
	return &ParseService{
		history:    history,
		notes:      notes,
		notebooks:  notebooks,
		llm:        llm,
		capturers:  capturers,
		maxEntries: maxEntries,
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the service uses the hardcoded default prompt.
func (s *ParseService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (s *ParseService) loadPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}

// Submit sends input through the AI pipeline and records the outcome.
// The record is persisted whether the pipeline succeeds or fails; a failure
// is both stored on the record and returned.
func (s *ParseService) Submit(ctx context.Context, kind domain.ParseKind, input string) (*domain.ParseRecord, error) {
	now := time.Now().UTC()
	record := domain.ParseRecord{
		ID:        uuid.New().String(),
		Kind:      kind,
		Input:     strings.TrimSpace(input),
		Status:    domain.ParseStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	output, title, err := s.runPipeline(ctx, &record)
	record.UpdatedAt = time.Now().UTC()
	if err != nil {
		record.Status = domain.ParseStatusFailed
		record.Error = err.Error()
	} else {
		record.Status = domain.ParseStatusDone
		record.Output = output
		record.Title = title
	}

	if saveErr := s.history.Save(ctx, record); saveErr != nil {
		return nil, fmt.Errorf("saving parse record: %w", saveErr)
	}
	s.prune(ctx)

	if err != nil {
		return &record, fmt.Errorf("parse pipeline: %w", err)
	}
	return &record, nil
}

// runPipeline captures (links only), prompts the LLM and normalises the
// reply. Returns the cleaned output and a derived title.
func (s *ParseService) runPipeline(ctx context.Context, record *domain.ParseRecord) (string, string, error) {
	if s.llm == nil {
		return "", "", domain.ErrLLMUnavailable
	}

	material := record.Input
	capturedTitle := ""

	if record.Kind == domain.ParseKindLink {
		page, err := s.capture(ctx, record.Input)
		if err != nil {
			return "", "", fmt.Errorf("capturing %s: %w", record.Input, err)
		}
		material = page.Text
		capturedTitle = page.Title
	}

	if len(material) > maxCaptureChars {
		material = material[:maxCaptureChars]
	}

	promptTemplate := s.loadPrompt(driven.PromptParse, parsePrompt)

	logger.Debug("parse: prompting %s with %d chars", s.llm.ModelName(), len(material))
	reply, err := s.llm.Generate(ctx, fmt.Sprintf(promptTemplate, material), driven.GenerateOptions{
		MaxTokens:   parseMaxTokens,
		Temperature: parseTemperature,
	})
	if err != nil {
		return "", "", fmt.Errorf("generating: %w", err)
	}

	output := llmtext.Normalise(reply)
	if output == "" {
		// The model produced a structurally valid but empty reply.
		return "", "", fmt.Errorf("%w: model returned no content", domain.ErrInvalidInput)
	}

	return output, deriveTitle(output, capturedTitle), nil
}

// capture picks the first capturer that supports the URL.
func (s *ParseService) capture(ctx context.Context, url string) (*domain.CapturedPage, error) {
	for _, c := range s.capturers {
		if c.Supports(url) {
			return c.Fetch(ctx, url)
		}
	}
	return nil, fmt.Errorf("%w: no capturer for %s", domain.ErrUnsupportedType, url)
}

// deriveTitle prefers an explicit 标题 label in the output, then the first
// output line, then the captured page title.
func deriveTitle(output, capturedTitle string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "标题："); ok {
			if t := strings.TrimSpace(rest); t != "" {
				return domain.Snippet(t, 80)
			}
		}
	}
	if first := domain.Snippet(output, 80); first != "" {
		return first
	}
	return domain.Snippet(capturedTitle, 80)
}

// prune trims the history to the retention limit. Failures are logged and
// swallowed; pruning must never fail a submission.
func (s *ParseService) prune(ctx context.Context) {
	if s.maxEntries <= 0 {
		return
	}
	removed, err := s.history.Prune(ctx, s.maxEntries)
	if err != nil {
		logger.Debug("parse: pruning history: %v", err)
		return
	}
	if removed > 0 {
		logger.Debug("parse: pruned %d history records", removed)
	}
}

// History lists parse records newest first.
func (s *ParseService) History(ctx context.Context, limit, offset int) ([]domain.ParseRecord, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.history.List(ctx, limit, offset)
}

// Get retrieves one parse record.
func (s *ParseService) Get(ctx context.Context, id string) (*domain.ParseRecord, error) {
	return s.history.Get(ctx, id)
}

// Delete removes a parse record. A note already filed from it stays.
func (s *ParseService) Delete(ctx context.Context, id string) error {
	return s.history.Delete(ctx, id)
}

// File turns a done record into a note in the given notebook. Re-filing a
// record moves the existing note instead of duplicating it.
func (s *ParseService) File(ctx context.Context, recordID, notebookID string) (*domain.Note, error) {
	record, err := s.history.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.Status != domain.ParseStatusDone {
		return nil, domain.ErrRecordNotFiled
	}

	if _, err := s.notebooks.Get(ctx, notebookID); err != nil {
		return nil, fmt.Errorf("looking up notebook: %w", err)
	}

	now := time.Now().UTC()
	note := domain.Note{
		ID:         uuid.New().String(),
		NotebookID: notebookID,
		Title:      record.Title,
		Content:    record.Output,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if record.Kind == domain.ParseKindLink {
		note.SourceURL = record.Input
	}

	if record.Filed() {
		// Move the existing note rather than minting a second one.
		existing, err := s.notes.Get(ctx, record.NoteID)
		if err == nil {
			existing.NotebookID = notebookID
			existing.UpdatedAt = now
			note = *existing
		}
	}

	if err := s.notes.Save(ctx, note); err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}

	record.NotebookID = notebookID
	record.NoteID = note.ID
	record.UpdatedAt = now
	if err := s.history.Save(ctx, *record); err != nil {
		return nil, fmt.Errorf("updating parse record: %w", err)
	}

	return &note, nil
}
