package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

var (
	historyLimit  int
	historyOffset int
	historyJSON   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the parse history",
	Long:  `List, inspect, delete, or file past parse results.`,
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List parse records, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [record-id]",
	Short: "Show a parse record in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [record-id]",
	Short: "Delete a parse record",
	Long:  `Removes a record from the history. A note already filed from it stays.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyFileCmd = &cobra.Command{
	Use:   "file [record-id] [notebook]",
	Short: "File a parsed record into a notebook",
	Long: `Turns a successfully parsed record into a note in the given notebook.
The notebook may be given by ID or by name. Filing an already-filed record
moves its note instead of duplicating it.`,
	Args: cobra.ExactArgs(2),
	RunE: runHistoryFile,
}

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	historyCmd.PersistentFlags().IntVar(&historyOffset, "offset", 0, "number of records to skip")
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyFileCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if parseService == nil {
		return errors.New("parse service not configured")
	}

	records, total, err := parseService.History(cmd.Context(), historyLimit, historyOffset)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("History is empty. Parse something with: clipfold parse <link-or-text>")
		return nil
	}

	for i := range records {
		r := &records[i]
		title := r.Title
		if title == "" {
			title = domain.Snippet(r.Input, 60)
		}
		cmd.Printf("  %s  [%-6s]  %s\n", r.ID, r.Status, title)
		if r.Status == domain.ParseStatusFailed && r.Error != "" {
			cmd.Printf("      error: %s\n", r.Error)
		}
		if r.Filed() {
			cmd.Printf("      filed: notebook %s, note %s\n", r.NotebookID, r.NoteID)
		}
	}

	cmd.Printf("\nShowing %d of %d records\n", len(records), total)
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if parseService == nil {
		return errors.New("parse service not configured")
	}

	record, err := parseService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	if historyJSON {
		return printRecordJSON(cmd, record)
	}

	cmd.Printf("Record: %s\n\n", record.ID)
	cmd.Printf("  Kind:     %s\n", record.Kind)
	cmd.Printf("  Status:   %s\n", record.Status)
	cmd.Printf("  Created:  %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Updated:  %s\n", record.UpdatedAt.Format("2006-01-02 15:04:05"))
	if record.Title != "" {
		cmd.Printf("  Title:    %s\n", record.Title)
	}
	if record.Filed() {
		cmd.Printf("  Notebook: %s\n", record.NotebookID)
		cmd.Printf("  Note:     %s\n", record.NoteID)
	}
	if record.Error != "" {
		cmd.Printf("  Error:    %s\n", record.Error)
	}

	cmd.Printf("\nInput:\n%s\n", record.Input)
	if record.Output != "" {
		cmd.Printf("\nOutput:\n%s\n", record.Output)
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if parseService == nil {
		return errors.New("parse service not configured")
	}

	if err := parseService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	cmd.Printf("Record %s deleted.\n", args[0])
	return nil
}

func runHistoryFile(cmd *cobra.Command, args []string) error {
	if parseService == nil {
		return errors.New("parse service not configured")
	}

	ctx := cmd.Context()

	notebook, err := resolveNotebook(ctx, cmd, args[1])
	if err != nil {
		return err
	}

	note, err := parseService.File(ctx, args[0], notebook.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFiled) {
			return fmt.Errorf("record %s has no parsed output to file", args[0])
		}
		return fmt.Errorf("failed to file record: %w", err)
	}

	cmd.Printf("Filed as note %s in notebook %q.\n", note.ID, notebook.Name)
	return nil
}
