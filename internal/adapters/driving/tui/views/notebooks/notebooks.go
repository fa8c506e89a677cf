// Package notebooks provides the notebook browser view for the TUI.
package notebooks

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/messages"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/styles"
	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driving"
)

// notesPageSize bounds the notes listed per notebook.
const notesPageSize = 100

// View is the notebook browser. It lists notebooks and drills into the
// notes of the selected one.
type View struct {
	styles          *styles.Styles
	notebookService driving.NotebookService
	noteService     driving.NoteService
	ctx             context.Context

	notebooks []domain.Notebook
	selected  int

	// Drill-down state: when inDetail is true the notes of the selected
	// notebook are shown.
	inDetail     bool
	notes        []domain.Note
	notesTotal   int
	noteSelected int

	width   int
	height  int
	ready   bool
	err     error
	loading bool
}

// NewView creates a new notebooks view.
func NewView(
	s *styles.Styles,
	notebookService driving.NotebookService,
	noteService driving.NoteService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		notebookService: notebookService,
		noteService:     noteService,
		ctx:             context.Background(),
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads the notebooks.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.inDetail = false
	return v.loadNotebooks()
}

// loadNotebooks returns a command that loads all notebooks.
func (v *View) loadNotebooks() tea.Cmd {
	return func() tea.Msg {
		if v.notebookService == nil {
			return messages.NotebooksLoaded{Err: fmt.Errorf("notebook service not available")}
		}

		notebooks, err := v.notebookService.List(v.ctx)
		return messages.NotebooksLoaded{Notebooks: notebooks, Err: err}
	}
}

// loadNotes returns a command that loads the notes of a notebook.
func (v *View) loadNotes(notebookID string) tea.Cmd {
	return func() tea.Msg {
		if v.noteService == nil {
			return messages.NotesLoaded{NotebookID: notebookID, Err: fmt.Errorf("note service not available")}
		}

		notes, total, err := v.noteService.List(v.ctx, notebookID, notesPageSize, 0)
		return messages.NotesLoaded{NotebookID: notebookID, Notes: notes, Total: total, Err: err}
	}
}

// Update handles messages for the notebooks view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if v.inDetail {
			return v.handleDetailKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.NotebooksLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.notebooks = msg.Notebooks
			v.err = nil
			if v.selected >= len(v.notebooks) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.NotesLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.notes = msg.Notes
			v.notesTotal = msg.Total
			v.noteSelected = 0
			v.err = nil
			v.inDetail = true
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in the notebook list.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.notebooks)-1 {
			v.selected++
		}
	case "enter":
		if v.selected < len(v.notebooks) {
			v.loading = true
			return v, v.loadNotes(v.notebooks[v.selected].ID)
		}
	case "r":
		v.loading = true
		return v, v.loadNotebooks()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// handleDetailKeyMsg handles key presses in the notes list.
func (v *View) handleDetailKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.noteSelected > 0 {
			v.noteSelected--
		}
	case "down", "j":
		if v.noteSelected < len(v.notes)-1 {
			v.noteSelected++
		}
	case "esc":
		v.inDetail = false
		v.notes = nil
	}

	return v, nil
}

// View renders the notebooks view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if v.inDetail {
		return v.renderNotes()
	}
	return v.renderNotebooks()
}

// renderNotebooks renders the notebook list.
func (v *View) renderNotebooks() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Notebooks (%d)", len(v.notebooks))))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading notebooks..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.notebooks) == 0:
		b.WriteString(v.styles.Muted.Render("No notebooks yet. Create one with 'clipfold notebook create'."))
	default:
		for i := range v.notebooks {
			b.WriteString(v.renderNotebook(i, &v.notebooks[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] open  [r] reload  [esc] back"))

	return b.String()
}

// renderNotebook renders a single notebook line.
func (v *View) renderNotebook(index int, nb *domain.Notebook) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	label := fmt.Sprintf("%-24s  %d notes", nb.Name, nb.NoteCount)
	if nb.Description != "" {
		label += "  " + nb.Description
	}

	if index == v.selected {
		return v.styles.Selected.Render(indicator + label)
	}
	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-24s  ", nb.Name)) +
		v.styles.Muted.Render(fmt.Sprintf("%d notes  %s", nb.NoteCount, nb.Description))
}

// renderNotes renders the notes of the opened notebook.
func (v *View) renderNotes() string {
	var b strings.Builder

	name := ""
	if v.selected < len(v.notebooks) {
		name = v.notebooks[v.selected].Name
	}
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Notes - %s (%d)", name, v.notesTotal)))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.notes) == 0:
		b.WriteString(v.styles.Muted.Render("No notes in this notebook."))
	default:
		for i := range v.notes {
			b.WriteString(v.renderNote(i, &v.notes[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [esc] back to notebooks"))

	return b.String()
}

// renderNote renders a single note line.
func (v *View) renderNote(index int, note *domain.Note) string {
	indicator := "  "
	if index == v.noteSelected {
		indicator = "> "
	}

	title := note.DisplayTitle()
	maxTitleLen := v.width - 8
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	if index == v.noteSelected {
		return v.styles.Selected.Render(indicator + title)
	}
	return v.styles.Normal.Render(indicator + title)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Notebooks returns the current list of notebooks.
func (v *View) Notebooks() []domain.Notebook {
	return v.notebooks
}

// SelectedIndex returns the currently selected notebook index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedNotebook returns the currently selected notebook.
func (v *View) SelectedNotebook() *domain.Notebook {
	if v.selected < len(v.notebooks) {
		return &v.notebooks[v.selected]
	}
	return nil
}

// InDetail returns whether the notes list is open.
func (v *View) InDetail() bool {
	return v.inDetail
}

// Notes returns the currently loaded notes.
func (v *View) Notes() []domain.Note {
	return v.notes
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
