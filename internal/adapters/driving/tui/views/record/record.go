// Package record provides the parse record detail view component for the TUI.
package record

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

// View is the parse record detail view. It renders the cleaned output with
// scrolling and files the record into a notebook via a picker overlay.
type View struct {
	styles          *styles.Styles
	parseService    driving.ParseService
	notebookService driving.NotebookService
	ctx             context.Context

	record       *domain.ParseRecord
	lines        []string
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error

	// Notebook picker overlay state.
	picking        bool
	notebooks      []domain.Notebook
	pickerSelected int
	filedMessage   string
}

// NewView creates a new record detail view.
func NewView(
	s *styles.Styles,
	parseService driving.ParseService,
	notebookService driving.NotebookService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		parseService:    parseService,
		notebookService: notebookService,
		ctx:             context.Background(),
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetRecord sets the record to display.
func (v *View) SetRecord(record domain.ParseRecord) {
	v.record = &record
	v.scrollOffset = 0
	v.err = nil
	v.picking = false
	v.filedMessage = ""
	v.wrapContent()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// loadNotebooks returns a command that loads notebooks for the picker.
func (v *View) loadNotebooks() tea.Cmd {
	return func() tea.Msg {
		if v.notebookService == nil {
			return messages.NotebooksLoaded{Err: fmt.Errorf("notebook service not available")}
		}

		notebooks, err := v.notebookService.List(v.ctx)
		return messages.NotebooksLoaded{Notebooks: notebooks, Err: err}
	}
}

// fileRecord returns a command that files the record into a notebook.
func (v *View) fileRecord(recordID, notebookID string) tea.Cmd {
	return func() tea.Msg {
		if v.parseService == nil {
			return messages.RecordFiled{RecordID: recordID, Err: fmt.Errorf("parse service not available")}
		}

		note, err := v.parseService.File(v.ctx, recordID, notebookID)
		return messages.RecordFiled{RecordID: recordID, Note: note, Err: err}
	}
}

// Update handles messages for the record detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.wrapContent()
		return v, nil

	case tea.KeyMsg:
		if v.picking {
			return v.handlePickerKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.NotebooksLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.picking = false
		} else {
			v.notebooks = msg.Notebooks
			v.pickerSelected = 0
			v.err = nil
		}
		return v, nil

	case messages.RecordFiled:
		v.picking = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
			if v.record != nil && msg.Note != nil {
				v.record.NoteID = msg.Note.ID
				v.record.NotebookID = msg.Note.NotebookID
			}
			v.filedMessage = "Filed as note"
			if msg.Note != nil {
				v.filedMessage = fmt.Sprintf("Filed as note %s", msg.Note.ID)
			}
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in content mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "pgup", "ctrl+u":
		v.scrollOffset -= v.visibleLines()
		if v.scrollOffset < 0 {
			v.scrollOffset = 0
		}
	case "pgdown", "ctrl+d":
		maxOffset := v.maxScrollOffset()
		v.scrollOffset += v.visibleLines()
		if v.scrollOffset > maxOffset {
			v.scrollOffset = maxOffset
		}
	case "home", "g":
		v.scrollOffset = 0
	case "end", "G":
		v.scrollOffset = v.maxScrollOffset()
	case "f":
		// Only done records can be filed
		if v.record != nil && v.record.Status == domain.ParseStatusDone {
			v.picking = true
			v.pickerSelected = 0
			return v, v.loadNotebooks()
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHistory}
		}
	}

	return v, nil
}

// handlePickerKeyMsg handles key presses while the notebook picker is open.
func (v *View) handlePickerKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.pickerSelected > 0 {
			v.pickerSelected--
		}
	case "down", "j":
		if v.pickerSelected < len(v.notebooks)-1 {
			v.pickerSelected++
		}
	case "enter":
		if v.record != nil && v.pickerSelected < len(v.notebooks) {
			notebook := v.notebooks[v.pickerSelected]
			return v, v.fileRecord(v.record.ID, notebook.ID)
		}
		v.picking = false
	case "esc":
		v.picking = false
	}

	return v, nil
}

// wrapContent wraps the record output to fit the view width.
func (v *View) wrapContent() {
	if v.record == nil || v.record.Output == "" {
		v.lines = nil
		return
	}

	contentWidth := v.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	rawLines := strings.Split(v.record.Output, "\n")
	v.lines = make([]string, 0, len(rawLines))

	for _, line := range rawLines {
		if len(line) <= contentWidth {
			v.lines = append(v.lines, line)
		} else {
			for len(line) > contentWidth {
				v.lines = append(v.lines, line[:contentWidth])
				line = line[contentWidth:]
			}
			if line != "" {
				v.lines = append(v.lines, line)
			}
		}
	}
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 8
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the record detail view.
func (v *View) View() string {
	var b strings.Builder

	// Title
	title := "Record"
	if v.record != nil {
		if v.record.Title != "" {
			title = v.record.Title
		} else {
			title = domain.Snippet(v.record.Input, 60)
		}
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")

	// Metadata line
	if v.record != nil {
		meta := fmt.Sprintf("%s  [%s]", v.record.Kind, v.record.Status)
		if v.record.Filed() {
			meta += "  filed → " + v.record.NotebookID
		}
		b.WriteString(v.styles.Muted.Render(meta))
		b.WriteString("\n")
	}

	// Separator
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n\n")

	// Picker overlay
	if v.picking {
		b.WriteString(v.renderPicker())
		return b.String()
	}

	// Error state
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Failed record: show the reason instead of output
	if v.record != nil && v.record.Status == domain.ParseStatusFailed {
		b.WriteString(v.styles.Error.Render("failed: " + v.record.Error))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Empty output
	if len(v.lines) == 0 {
		b.WriteString(v.styles.Muted.Render("(No output)"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Output content
	visibleLines := v.visibleLines()
	for i := v.scrollOffset; i < len(v.lines) && i < v.scrollOffset+visibleLines; i++ {
		b.WriteString(v.styles.Normal.Render(v.lines[i]))
		b.WriteString("\n")
	}

	// Scroll position indicator
	if len(v.lines) > visibleLines {
		b.WriteString("\n")
		percentage := 0
		if v.maxScrollOffset() > 0 {
			percentage = v.scrollOffset * 100 / v.maxScrollOffset()
		}
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
			percentage,
			v.scrollOffset+1,
			minInt(v.scrollOffset+visibleLines, len(v.lines)),
			len(v.lines))))
	}

	if v.filedMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Success.Render(v.filedMessage))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderPicker renders the notebook picker overlay.
func (v *View) renderPicker() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("File into notebook:"))
	b.WriteString("\n\n")

	if len(v.notebooks) == 0 {
		b.WriteString(v.styles.Muted.Render("No notebooks yet. Create one with 'clipfold notebook create'."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] cancel"))
		return b.String()
	}

	for i, nb := range v.notebooks {
		indicator := "  "
		label := fmt.Sprintf("%s (%d notes)", nb.Name, nb.NoteCount)
		if i == v.pickerSelected {
			indicator = "> "
			b.WriteString(v.styles.Selected.Render(indicator + label))
		} else {
			b.WriteString(v.styles.Normal.Render(indicator + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] file  [esc] cancel"))

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [f] file  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.wrapContent()
}

// Record returns the current record.
func (v *View) Record() *domain.ParseRecord {
	return v.record
}

// Picking returns whether the notebook picker is open.
func (v *View) Picking() bool {
	return v.picking
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
