package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/messages"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/styles"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/views/history"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/views/menu"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/views/notebooks"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/views/record"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/views/settings"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/views/submit"
	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// submitView is the link/text submission view component.
	submitView *submit.View

	// historyView is the parse history browser component.
	historyView *history.View

	// recordView is the parse record detail view component.
	recordView *record.View

	// notebooksView is the notebook browser view component.
	notebooksView *notebooks.View

	// settingsView is the settings display view component.
	settingsView *settings.View

	// selectedRecord tracks the currently opened record for navigation.
	selectedRecord *domain.ParseRecord

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s)
	submitView := submit.NewView(s, nil, ports.Parse)
	historyView := history.NewView(s, nil, ports.Parse)
	recordView := record.NewView(s, ports.Parse, ports.Notebook)
	notebooksView := notebooks.NewView(s, ports.Notebook, ports.Note)
	settingsView := settings.NewView(s, ports.Settings)

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		menuView:      menuView,
		submitView:    submitView,
		historyView:   historyView,
		recordView:    recordView,
		notebooksView: notebooksView,
		settingsView:  settingsView,
		currentView:   messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.submitView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	a.recordView.WithContext(ctx)
	a.notebooksView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("clipfold"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.submitView.SetDimensions(msg.Width, msg.Height)
		a.historyView.SetDimensions(msg.Width, msg.Height)
		a.recordView.SetDimensions(msg.Width, msg.Height)
		a.notebooksView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewSubmit:
			a.submitView, cmd = a.submitView.Update(msg)
			a.err = a.submitView.Err()
			return a, cmd

		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
			return a, cmd

		case messages.ViewRecord:
			a.recordView, cmd = a.recordView.Update(msg)
			return a, cmd

		case messages.ViewNotebooks:
			a.notebooksView, cmd = a.notebooksView.Update(msg)
			return a, cmd

		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewSubmit:
			a.submitView.Reset()
			return a, a.submitView.Init()
		case messages.ViewHistory:
			return a, a.historyView.Init()
		case messages.ViewNotebooks:
			return a, a.notebooksView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewRecord, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.ParseCompleted:
		a.submitView, cmd = a.submitView.Update(msg)
		a.err = a.submitView.Err()
		return a, cmd

	case messages.HistoryLoaded, messages.RecordDeleted:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.RecordSelected:
		// Navigate from history to record detail
		a.selectedRecord = &msg.Record
		a.recordView.SetRecord(msg.Record)
		a.currentView = messages.ViewRecord
		return a, a.recordView.Init()

	case messages.NotebooksLoaded:
		// Both the record view picker and the notebooks view load these
		if a.currentView == messages.ViewRecord {
			a.recordView, cmd = a.recordView.Update(msg)
			return a, cmd
		}
		a.notebooksView, cmd = a.notebooksView.Update(msg)
		return a, cmd

	case messages.NotesLoaded:
		a.notebooksView, cmd = a.notebooksView.Update(msg)
		return a, cmd

	case messages.RecordFiled:
		a.recordView, cmd = a.recordView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewSubmit:
			a.submitView, cmd = a.submitView.Update(msg)
		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
		case messages.ViewRecord:
			a.recordView, cmd = a.recordView.Update(msg)
		case messages.ViewNotebooks:
			a.notebooksView, cmd = a.notebooksView.Update(msg)
		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
		case messages.ViewMenu, messages.ViewHelp:
			// Menu and help don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSubmit:
		a.submitView, cmd = a.submitView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewRecord:
		a.recordView, cmd = a.recordView.Update(msg)
	case messages.ViewNotebooks:
		a.notebooksView, cmd = a.notebooksView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSubmit:
		return a.submitView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewRecord:
		return a.recordView.View()
	case messages.ViewNotebooks:
		return a.notebooksView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Submit:
  (type)      Paste a link or text
  enter       Run the pipeline
  n           New submission
  esc         Back to Menu

History:
  j/k, ↑/↓    Navigate records
  enter       Open record
  d           Delete record
  n           New submission
  r           Reload

Record:
  j/k, ↑/↓    Scroll output
  f           File into a notebook
  esc         Back to History

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SelectedRecord returns the record opened in the detail view, if any.
func (a *App) SelectedRecord() *domain.ParseRecord {
	return a.selectedRecord
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.submitView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
}
