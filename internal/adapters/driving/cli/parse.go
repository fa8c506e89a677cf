package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

var (
	parseAsText   bool
	parseJSON     bool
	parseNotebook string
)

var parseCmd = &cobra.Command{
	Use:   "parse [input]",
	Short: "Run a link or text through the AI pipeline",
	Long: `Parses a pasted link or block of text into a cleaned-up note.

Links are fetched and their readable text extracted before the AI model
summarises them. Anything that does not look like a URL is treated as raw
text; use --text to force that.

The result lands in the parse history either way. Use --notebook to file
it into a notebook immediately.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&parseAsText, "text", "t", false, "treat input as raw text even if it looks like a URL")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output the record as JSON")
	parseCmd.Flags().StringVarP(&parseNotebook, "notebook", "b", "", "file the result into this notebook (ID or name)")
	rootCmd.AddCommand(parseCmd)
}

// detectKind treats anything that parses as an http(s) URL as a link.
func detectKind(input string) domain.ParseKind {
	u, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return domain.ParseKindText
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return domain.ParseKindLink
	}
	return domain.ParseKindText
}

func runParse(cmd *cobra.Command, args []string) error {
	if parseService == nil {
		return errors.New("parse service not configured")
	}

	input := args[0]
	kind := detectKind(input)
	if parseAsText {
		kind = domain.ParseKindText
	}

	ctx := cmd.Context()

	record, err := parseService.Submit(ctx, kind, input)
	if err != nil {
		// A failed pipeline still produces a history record.
		if record != nil {
			cmd.PrintErrf("Parse failed (recorded as %s): %v\n", record.ID, err)
		}
		return fmt.Errorf("parse failed: %w", err)
	}

	if parseNotebook != "" {
		notebook, err := resolveNotebook(ctx, cmd, parseNotebook)
		if err != nil {
			return err
		}
		if _, err := parseService.File(ctx, record.ID, notebook.ID); err != nil {
			return fmt.Errorf("filing into notebook: %w", err)
		}
	}

	if parseJSON {
		return printRecordJSON(cmd, record)
	}

	cmd.Printf("Parsed [%s]\n", record.ID)
	if record.Title != "" {
		cmd.Printf("Title: %s\n", record.Title)
	}
	cmd.Println()
	cmd.Println(record.Output)
	if parseNotebook != "" {
		cmd.Printf("\nFiled into notebook %q.\n", parseNotebook)
	} else {
		cmd.Printf("\nFile it with: clipfold history file %s <notebook>\n", record.ID)
	}
	return nil
}

func printRecordJSON(cmd *cobra.Command, record *domain.ParseRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
