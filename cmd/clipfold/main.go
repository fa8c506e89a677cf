// Command clipfold turns pasted links and text into tidy notes.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driven/ai"
	githubcapture "github.com/clipfold-labs/clipfold-cli/internal/adapters/driven/capture/github"
	htmlcapture "github.com/clipfold-labs/clipfold-cli/internal/adapters/driven/capture/html"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driven/config/file"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driven/storage/sqlite"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/cli"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
	"github.com/clipfold-labs/clipfold-cli/internal/core/services"
	"github.com/clipfold-labs/clipfold-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "clipfold: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	// A nil LLM service is fine here; submissions fail with a clear error
	// until the user runs `clipfold settings llm`.
	llmService, err := ai.CreateLLMService(&settings.LLM)
	if err != nil {
		logger.Debug("LLM service unavailable: %v", err)
		llmService = nil
	}
	if llmService != nil {
		defer llmService.Close()
	}

	// The HTML capturer goes last so it acts as the fallback for any URL
	// the specialised capturers decline.
	timeout := time.Duration(settings.Capture.TimeoutSeconds) * time.Second
	capturers := []driven.Capturer{
		githubcapture.New(ctx, settings.Capture.GitHubToken),
		htmlcapture.New(timeout),
	}

	parseService := services.NewParseService(
		store.HistoryStore(),
		store.NoteStore(),
		store.NotebookStore(),
		llmService,
		capturers,
		settings.History.MaxEntries,
	)

	if promptStore, err := file.NewPromptStore(""); err == nil {
		parseService.SetPromptStore(promptStore)
	} else {
		logger.Debug("prompt store unavailable, using built-in prompts: %v", err)
	}

	noteService := services.NewNoteService(store.NoteStore(), store.NotebookStore())
	notebookService := services.NewNotebookService(store.NotebookStore(), store.NoteStore())

	cli.SetVersion(version)
	cli.SetConfigWatcher(configStore)
	cli.SetServices(cli.Services{
		Parse:    parseService,
		Note:     noteService,
		Notebook: notebookService,
		Settings: settingsService,
	})
	cli.SetTUIConfig(&cli.TUIConfig{
		ParseService:    parseService,
		NoteService:     noteService,
		NotebookService: notebookService,
		SettingsService: settingsService,
	})

	return cli.Execute()
}
