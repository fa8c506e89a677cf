package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

var (
	noteListNotebook string
	noteListAll      bool
	noteLimit        int
	noteOffset       int
	noteJSON         bool

	noteTitle    string
	noteContent  string
	noteNotebook string
	noteTags     []string
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long:  `Create, list, view, edit, or delete notes.`,
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `Lists notes newest first. By default only the inbox (notes not filed
into any notebook) is shown; use --notebook to list a notebook or --all
for everything.`,
	RunE: runNoteList,
}

var noteGetCmd = &cobra.Command{
	Use:   "get [note-id]",
	Short: "Show a note in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteGet,
}

var noteCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note by hand",
	Long:  `Creates a note directly, without going through the parse pipeline.`,
	RunE:  runNoteCreate,
}

var noteEditCmd = &cobra.Command{
	Use:   "edit [note-id]",
	Short: "Edit a note",
	Long:  `Updates the given fields of a note. Flags that are not set leave the field unchanged.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteEdit,
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete [note-id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteDelete,
}

func init() {
	noteListCmd.Flags().StringVarP(&noteListNotebook, "notebook", "b", "", "list notes in this notebook (ID or name)")
	noteListCmd.Flags().BoolVarP(&noteListAll, "all", "a", false, "list notes in every notebook and the inbox")
	noteListCmd.Flags().IntVarP(&noteLimit, "limit", "n", 20, "maximum number of notes")
	noteListCmd.Flags().IntVar(&noteOffset, "offset", 0, "number of notes to skip")
	noteListCmd.Flags().BoolVar(&noteJSON, "json", false, "output as JSON")

	noteCreateCmd.Flags().StringVar(&noteTitle, "title", "", "note title")
	noteCreateCmd.Flags().StringVar(&noteContent, "content", "", "note body")
	noteCreateCmd.Flags().StringVarP(&noteNotebook, "notebook", "b", "", "file into this notebook (ID or name)")
	noteCreateCmd.Flags().StringSliceVar(&noteTags, "tag", nil, "tag to attach (repeatable)")

	noteEditCmd.Flags().StringVar(&noteTitle, "title", "", "new title")
	noteEditCmd.Flags().StringVar(&noteContent, "content", "", "new body")
	noteEditCmd.Flags().StringVarP(&noteNotebook, "notebook", "b", "", "move into this notebook (ID or name)")
	noteEditCmd.Flags().StringSliceVar(&noteTags, "tag", nil, "replacement tags (repeatable)")

	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteGetCmd)
	noteCmd.AddCommand(noteCreateCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteList(cmd *cobra.Command, _ []string) error {
	if noteService == nil {
		return errors.New("note service not configured")
	}

	ctx := cmd.Context()

	// Empty notebook ID is the inbox; "*" means everything.
	notebookID := ""
	scope := "inbox"
	switch {
	case noteListAll:
		notebookID = "*"
		scope = "all notes"
	case noteListNotebook != "":
		notebook, err := resolveNotebook(ctx, cmd, noteListNotebook)
		if err != nil {
			return err
		}
		notebookID = notebook.ID
		scope = fmt.Sprintf("notebook %q", notebook.Name)
	}

	notes, total, err := noteService.List(ctx, notebookID, noteLimit, noteOffset)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if noteJSON {
		data, err := json.MarshalIndent(notes, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal notes: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(notes) == 0 {
		cmd.Printf("No notes in %s.\n", scope)
		return nil
	}

	cmd.Printf("Notes (%s):\n\n", scope)
	for i := range notes {
		n := &notes[i]
		cmd.Printf("  %s  %s\n", n.ID, n.DisplayTitle())
		if len(n.Tags) > 0 {
			cmd.Printf("      tags: %s\n", strings.Join(n.Tags, ", "))
		}
	}
	cmd.Printf("\nShowing %d of %d notes\n", len(notes), total)
	return nil
}

func runNoteGet(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errors.New("note service not configured")
	}

	note, err := noteService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	cmd.Printf("Note: %s\n\n", note.ID)
	cmd.Printf("  Title:    %s\n", note.DisplayTitle())
	if note.NotebookID != "" {
		cmd.Printf("  Notebook: %s\n", note.NotebookID)
	} else {
		cmd.Printf("  Notebook: (inbox)\n")
	}
	if note.SourceURL != "" {
		cmd.Printf("  Source:   %s\n", note.SourceURL)
	}
	if len(note.Tags) > 0 {
		cmd.Printf("  Tags:     %s\n", strings.Join(note.Tags, ", "))
	}
	cmd.Printf("  Created:  %s\n", note.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Updated:  %s\n", note.UpdatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("\n%s\n", note.Content)
	return nil
}

func runNoteCreate(cmd *cobra.Command, _ []string) error {
	if noteService == nil {
		return errors.New("note service not configured")
	}

	ctx := cmd.Context()

	note := domain.Note{
		Title:   noteTitle,
		Content: noteContent,
		Tags:    noteTags,
	}
	if noteNotebook != "" {
		notebook, err := resolveNotebook(ctx, cmd, noteNotebook)
		if err != nil {
			return err
		}
		note.NotebookID = notebook.ID
	}

	created, err := noteService.Create(ctx, note)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	cmd.Printf("Note %s created.\n", created.ID)
	return nil
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errors.New("note service not configured")
	}

	ctx := cmd.Context()

	note, err := noteService.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	if cmd.Flags().Changed("title") {
		note.Title = noteTitle
	}
	if cmd.Flags().Changed("content") {
		note.Content = noteContent
	}
	if cmd.Flags().Changed("tag") {
		note.Tags = noteTags
	}
	if cmd.Flags().Changed("notebook") {
		notebook, err := resolveNotebook(ctx, cmd, noteNotebook)
		if err != nil {
			return err
		}
		note.NotebookID = notebook.ID
	}

	updated, err := noteService.Update(ctx, *note)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	cmd.Printf("Note %s updated.\n", updated.ID)
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errors.New("note service not configured")
	}

	if err := noteService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	cmd.Printf("Note %s deleted.\n", args[0])
	return nil
}
