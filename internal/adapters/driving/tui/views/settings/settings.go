// Package settings provides the settings display view for the TUI.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/messages"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/styles"
	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driving"
)

// View is the read-only settings view. Changing settings happens through
// 'clipfold settings'; the TUI only shows the active configuration.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	width    int
	height   int
	ready    bool
	err      error
	loading  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		settingsService: settingsService,
	}
}

// Init initialises the view and loads the settings.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadSettings()
}

// loadSettings returns a command that loads the application settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}

		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			v.loading = true
			return v, v.loadSettings()
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		return v, nil

	case messages.SettingsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case v.settings == nil:
		b.WriteString(v.styles.Muted.Render("No settings loaded."))
	default:
		b.WriteString(v.renderSettings())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[r] reload  [esc] back    edit with 'clipfold settings'"))

	return b.String()
}

// renderSettings renders the settings sections.
func (v *View) renderSettings() string {
	var b strings.Builder
	s := v.settings

	b.WriteString(v.styles.Subtitle.Render("LLM"))
	b.WriteString("\n")
	b.WriteString(v.renderRow("Provider", s.LLM.Provider.Description()))
	b.WriteString(v.renderRow("Model", s.LLM.Model))
	if s.LLM.BaseURL != "" {
		b.WriteString(v.renderRow("Base URL", s.LLM.BaseURL))
	}
	b.WriteString(v.renderRow("API key", maskAPIKey(s.LLM.APIKey)))
	configured := "no"
	if s.LLM.IsConfigured() {
		configured = "yes"
	}
	b.WriteString(v.renderRow("Configured", configured))
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("Capture"))
	b.WriteString("\n")
	b.WriteString(v.renderRow("GitHub token", maskAPIKey(s.Capture.GitHubToken)))
	b.WriteString(v.renderRow("Timeout", fmt.Sprintf("%ds", s.Capture.TimeoutSeconds)))
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("Server"))
	b.WriteString("\n")
	b.WriteString(v.renderRow("Address", s.Server.Addr))
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("History"))
	b.WriteString("\n")
	b.WriteString(v.renderRow("Max entries", fmt.Sprintf("%d", s.History.MaxEntries)))

	return b.String()
}

// renderRow renders a single key/value row.
func (v *View) renderRow(label, value string) string {
	return v.styles.Normal.Render(fmt.Sprintf("  %-14s", label)) +
		v.styles.Muted.Render(value) + "\n"
}

// maskAPIKey hides all but the edges of a key for display.
func maskAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Reset clears any stale state before the view is shown.
func (v *View) Reset() {
	v.err = nil
	v.loading = false
}
