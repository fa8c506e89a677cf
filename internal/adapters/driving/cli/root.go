// Package cli implements the clipfold command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driving"
	"github.com/clipfold-labs/clipfold-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by the composition root before Execute.
var (
	parseService    driving.ParseService
	noteService     driving.NoteService
	notebookService driving.NotebookService
	settingsService driving.SettingsService
)

// Services bundles everything the commands need.
type Services struct {
	Parse    driving.ParseService
	Note     driving.NoteService
	Notebook driving.NotebookService
	Settings driving.SettingsService
}

// SetServices wires the service implementations into the commands.
func SetServices(s Services) {
	parseService = s.Parse
	noteService = s.Note
	notebookService = s.Notebook
	settingsService = s.Settings
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "clipfold",
	Short: "Turn pasted links and text into tidy notes",
	Long: `Clipfold captures pasted links and raw text, runs them through an AI
model, and files the cleaned-up result into notebooks.

Paste a link or a block of text, review the parsed note in the history,
then file it into a notebook.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
