package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local HTTP API",
	Long: `Start a local HTTP API exposing parse, history, note, and notebook
operations as JSON endpoints. Intended for browser extensions and other
local tooling; the default listener binds to loopback only.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	addr := serveAddr
	if addr == "" {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		addr = settings.Server.Addr
	}

	server := httpapi.NewServer(&httpapi.Ports{
		Parse:    parseService,
		Note:     noteService,
		Notebook: notebookService,
		Settings: settingsService,
	})

	watchConfig(cmd.Context())

	fmt.Fprintf(cmd.OutOrStdout(), "HTTP API listening on http://%s\n", addr)
	return server.Run(cmd.Context(), addr)
}
