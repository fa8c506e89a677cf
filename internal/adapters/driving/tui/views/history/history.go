// Package history provides the parse history browser view for the TUI.
package history

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/components/list"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/components/status"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/keymap"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/messages"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/styles"
	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driving"
)

// pageSize is the number of records loaded into the browser.
const pageSize = 50

// View is the parse history browser.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.RecordList
	statusbar *status.Bar

	parseService driving.ParseService
	ctx          context.Context

	width   int
	height  int
	ready   bool
	err     error
	loading bool
}

// NewView creates a new history view.
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
		list:         list.NewRecordList(s),
		statusbar:    status.NewBar(s, km),
		parseService: parseService,
		ctx:          context.Background(),
		width:        80,
		height:       24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads the first page of records.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadHistory()
}

// loadHistory returns a command that loads the newest records.
func (v *View) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if v.parseService == nil {
			return messages.HistoryLoaded{Err: fmt.Errorf("parse service not available")}
		}

		records, total, err := v.parseService.History(v.ctx, pageSize, 0)
		return messages.HistoryLoaded{Records: records, Total: total, Err: err}
	}
}

// deleteRecord returns a command that deletes a record.
func (v *View) deleteRecord(id string) tea.Cmd {
	return func() tea.Msg {
		if v.parseService == nil {
			return messages.RecordDeleted{ID: id, Err: fmt.Errorf("parse service not available")}
		}

		err := v.parseService.Delete(v.ctx, id)
		return messages.RecordDeleted{ID: id, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.HistoryLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.err = nil
			v.list.SetRecords(msg.Records, msg.Total)
			v.statusbar.SetState(status.StateRecords)
			v.statusbar.SetRecordCount(msg.Total)
		}
		return v, nil

	case messages.RecordDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		// Reload after deletion
		v.loading = true
		return v, v.loadHistory()

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		v.list.MoveUp()
	case "down", "j":
		v.list.MoveDown()
	case "enter":
		record := v.list.SelectedRecord()
		if record != nil {
			selected := *record
			return v, func() tea.Msg {
				return messages.RecordSelected{Record: selected}
			}
		}
	case "d":
		record := v.list.SelectedRecord()
		if record != nil {
			return v, v.deleteRecord(record.ID)
		}
	case "n":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSubmit}
		}
	case "r":
		v.loading = true
		return v, v.loadHistory()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// View renders the history view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	// Header
	sections = append(sections, v.styles.Title.Render("Parse History"), "")

	switch {
	case v.loading:
		sections = append(sections, v.styles.Muted.Render("Loading history..."))
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case v.list.IsEmpty():
		sections = append(sections, v.styles.Muted.Render("No records yet. Press n to submit something."))
	default:
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "",
		v.styles.Help.Render("[↑/↓] navigate  [enter] open  [d] delete  [n] new  [r] reload  [esc] back"))

	// Status bar at bottom
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.list.SetDimensions(width, height-8) // Reserve space for header, help, status
	v.statusbar.SetWidth(width)
}

// Records returns the currently loaded records.
func (v *View) Records() []domain.ParseRecord {
	return v.list.Records()
}

// SelectedIndex returns the currently selected record index.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedRecord returns the currently selected record.
func (v *View) SelectedRecord() *domain.ParseRecord {
	return v.list.SelectedRecord()
}

// Total returns the total record count reported by the service.
func (v *View) Total() int {
	return v.list.Total()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Loading returns whether a load is in flight.
func (v *View) Loading() bool {
	return v.loading
}
