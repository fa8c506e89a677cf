package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

var (
	notebookJSON        bool
	notebookDescription string
	notebookForce       bool
)

var notebookCmd = &cobra.Command{
	Use:   "notebook",
	Short: "Manage notebooks",
	Long:  `Create, list, rename, or delete notebooks.`,
	RunE:  runNotebookList,
}

var notebookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notebooks with note counts",
	RunE:  runNotebookList,
}

var notebookCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a notebook",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotebookCreate,
}

var notebookRenameCmd = &cobra.Command{
	Use:   "rename [notebook] [new-name]",
	Short: "Rename a notebook",
	Args:  cobra.ExactArgs(2),
	RunE:  runNotebookRename,
}

var notebookDeleteCmd = &cobra.Command{
	Use:   "delete [notebook]",
	Short: "Delete a notebook",
	Long: `Deletes a notebook. A notebook that still holds notes is only deleted
with --force, which moves its notes back to the inbox.`,
	Args: cobra.ExactArgs(1),
	RunE: runNotebookDelete,
}

func init() {
	notebookListCmd.Flags().BoolVar(&notebookJSON, "json", false, "output as JSON")
	notebookCreateCmd.Flags().StringVarP(&notebookDescription, "description", "d", "", "notebook description")
	notebookRenameCmd.Flags().StringVarP(&notebookDescription, "description", "d", "", "new description")
	notebookDeleteCmd.Flags().BoolVarP(&notebookForce, "force", "f", false, "delete even if not empty, detaching its notes")

	notebookCmd.AddCommand(notebookListCmd)
	notebookCmd.AddCommand(notebookCreateCmd)
	notebookCmd.AddCommand(notebookRenameCmd)
	notebookCmd.AddCommand(notebookDeleteCmd)
	rootCmd.AddCommand(notebookCmd)
}

// resolveNotebook accepts a notebook ID or name and returns the notebook.
func resolveNotebook(ctx context.Context, cmd *cobra.Command, ref string) (*domain.Notebook, error) {
	if notebookService == nil {
		return nil, errors.New("notebook service not configured")
	}

	notebook, err := notebookService.Get(ctx, ref)
	if err == nil {
		return notebook, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to get notebook: %w", err)
	}

	// Not an ID; try the name.
	notebooks, err := notebookService.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notebooks: %w", err)
	}
	for i := range notebooks {
		if notebooks[i].Name == ref {
			return &notebooks[i], nil
		}
	}

	cmd.PrintErrf("No notebook %q. Create it with: clipfold notebook create %q\n", ref, ref)
	return nil, fmt.Errorf("notebook %q: %w", ref, domain.ErrNotFound)
}

func runNotebookList(cmd *cobra.Command, _ []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	notebooks, err := notebookService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list notebooks: %w", err)
	}

	if notebookJSON {
		data, err := json.MarshalIndent(notebooks, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal notebooks: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(notebooks) == 0 {
		cmd.Println("No notebooks yet. Create one with: clipfold notebook create <name>")
		return nil
	}

	cmd.Println("Notebooks:")
	cmd.Println()
	for i := range notebooks {
		n := &notebooks[i]
		cmd.Printf("  %s  %s (%d notes)\n", n.ID, n.Name, n.NoteCount)
		if n.Description != "" {
			cmd.Printf("      %s\n", n.Description)
		}
	}
	return nil
}

func runNotebookCreate(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	notebook, err := notebookService.Create(cmd.Context(), args[0], notebookDescription)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("notebook %q already exists", args[0])
		}
		return fmt.Errorf("failed to create notebook: %w", err)
	}

	cmd.Printf("Notebook %q created (%s).\n", notebook.Name, notebook.ID)
	return nil
}

func runNotebookRename(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	ctx := cmd.Context()

	notebook, err := resolveNotebook(ctx, cmd, args[0])
	if err != nil {
		return err
	}

	description := notebook.Description
	if cmd.Flags().Changed("description") {
		description = notebookDescription
	}

	renamed, err := notebookService.Rename(ctx, notebook.ID, args[1], description)
	if err != nil {
		return fmt.Errorf("failed to rename notebook: %w", err)
	}

	cmd.Printf("Notebook renamed to %q.\n", renamed.Name)
	return nil
}

func runNotebookDelete(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	ctx := cmd.Context()

	notebook, err := resolveNotebook(ctx, cmd, args[0])
	if err != nil {
		return err
	}

	if err := notebookService.Delete(ctx, notebook.ID, notebookForce); err != nil {
		if errors.Is(err, domain.ErrNotebookNotEmpty) {
			return fmt.Errorf("notebook %q still holds notes; pass --force to delete it and move them to the inbox", notebook.Name)
		}
		return fmt.Errorf("failed to delete notebook: %w", err)
	}

	cmd.Printf("Notebook %q deleted.\n", notebook.Name)
	return nil
}
