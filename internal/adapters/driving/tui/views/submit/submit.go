// Package submit provides the link/text submission view for the TUI.
package submit

import (
	"context"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/components/input"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/components/status"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/keymap"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/messages"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/styles"
	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driving"
)

// View represents the submission view with input, result display, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SubmitInput
	statusbar *status.Bar

	parseService driving.ParseService
	ctx          context.Context

	record     *domain.ParseRecord
	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = input mode (typing), false = result mode
	working    bool
}

// NewView creates a new submission view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	parseService driving.ParseService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:       s,
		keymap:       km,
		input:        input.NewSubmitInput(s),
		statusbar:    status.NewBar(s, km),
		parseService: parseService,
		ctx:          context.Background(),
		width:        80,
		height:       24,
		ready:        false,
		focusInput:   true, // Start in input mode
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the submission view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ParseCompleted:
		v.handleParseCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.working = false
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward to input component
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	return v, inputCmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc always signals to go back to menu
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Enter in input mode submits the value
	if msg.Type == tea.KeyEnter && v.focusInput {
		value := strings.TrimSpace(v.input.Value())
		if value == "" || v.working {
			return v, nil
		}
		v.working = true
		v.statusbar.SetState(status.StateWorking)
		v.focusInput = false // Move to result mode while the pipeline runs
		v.input.Blur()
		return v, v.performSubmit(value)
	}

	// Input mode: all keys go to input
	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	switch msg.String() {
	case "n":
		// New submission: clear input and focus it
		v.Reset()
		return v, nil
	}

	return v, nil
}

// performSubmit runs the submission through the pipeline.
func (v *View) performSubmit(value string) tea.Cmd {
	return func() tea.Msg {
		if v.parseService == nil {
			return messages.ErrorOccurred{Err: ErrNoParseService}
		}

		record, err := v.parseService.Submit(v.ctx, detectKind(value), value)
		return messages.ParseCompleted{Record: record, Err: err}
	}
}

// detectKind treats anything that parses as an absolute http(s) URL as a link.
func detectKind(value string) domain.ParseKind {
	u, err := url.Parse(value)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return domain.ParseKindLink
	}
	return domain.ParseKindText
}

// handleParseCompleted processes the pipeline result.
func (v *View) handleParseCompleted(msg messages.ParseCompleted) {
	v.working = false
	v.record = msg.Record

	// A failed run still produced a history record; show the record with its
	// failure reason rather than a bare error.
	if msg.Err != nil && msg.Record == nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	if msg.Record != nil && msg.Record.Status == domain.ParseStatusFailed {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Record.Error)
		return
	}

	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("Done. Press f in History to file it.")
}

// View renders the submission view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	// Header
	header := v.styles.Title.Render("Clipfold")
	sections = append(sections, header, "")

	// Submission input
	sections = append(sections, v.input.View(), "")

	// Error display
	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	// Result display
	if v.working {
		sections = append(sections, v.styles.Muted.Render("Running the pipeline..."))
	} else if v.record != nil {
		sections = append(sections, v.renderRecord())
	}

	// Status bar at bottom
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderRecord renders the parsed record below the input.
func (v *View) renderRecord() string {
	lines := make([]string, 0, 8)

	title := v.record.Title
	if title == "" {
		title = domain.Snippet(v.record.Input, 60)
	}
	lines = append(lines, v.styles.Subtitle.Render(title))

	if v.record.Status == domain.ParseStatusFailed {
		lines = append(lines, v.styles.Error.Render("failed: "+v.record.Error))
	} else {
		lines = append(lines, "")
		contentWidth := v.width - 4
		if contentWidth < 20 {
			contentWidth = 20
		}
		for _, line := range wrapLines(v.record.Output, contentWidth) {
			lines = append(lines, v.styles.Normal.Render(line))
		}
	}

	lines = append(lines, "", v.styles.Help.Render("[n] new submission  [esc] back"))
	return strings.Join(lines, "\n")
}

// wrapLines splits text into lines no wider than width.
func wrapLines(text string, width int) []string {
	rawLines := strings.Split(text, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		for len(line) > width {
			lines = append(lines, line[:width])
			line = line[width:]
		}
		lines = append(lines, line)
	}
	return lines
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Value returns the current input value.
func (v *View) Value() string {
	return v.input.Value()
}

// SetValue sets the input value.
func (v *View) SetValue(value string) {
	v.input.SetValue(value)
}

// Record returns the last parsed record.
func (v *View) Record() *domain.ParseRecord {
	return v.record
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Working returns whether a submission is in flight.
func (v *View) Working() bool {
	return v.working
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.record = nil
	v.err = nil
	v.working = false
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}
