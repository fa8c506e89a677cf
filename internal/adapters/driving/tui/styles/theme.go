// Package styles holds the colour theme and lipgloss styles shared by the
// TUI views.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the clipfold colour palette. Views never use raw colours; they go
// through a Styles built from a Theme so the palette can be swapped in one
// place.
type Theme struct {
	// Primary is the clipfold accent, used for titles and selections.
	Primary lipgloss.Color

	// Secondary marks secondary headers and hints.
	Secondary lipgloss.Color

	// Background and Foreground are the base canvas colours.
	Background lipgloss.Color
	Foreground lipgloss.Color

	// Muted is for metadata and de-emphasised text.
	Muted lipgloss.Color

	// Success, Warning and Error colour the parse record statuses.
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Border frames input fields and panels.
	Border lipgloss.Color
}

// DefaultTheme returns the stock clipfold palette: teal accent on a dark
// paper-like background.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2DD4BF"), // teal
		Secondary:  lipgloss.Color("#818CF8"), // indigo
		Background: lipgloss.Color("#16161E"),
		Foreground: lipgloss.Color("#D8DEE9"),
		Muted:      lipgloss.Color("#5C637A"),
		Success:    lipgloss.Color("#8BD49C"), // done
		Warning:    lipgloss.Color("#EBCB8B"), // pending
		Error:      lipgloss.Color("#E06C75"), // failed
		Border:     lipgloss.Color("#3B4252"),
	}
}

// Styles contains the pre-built lipgloss styles the views render with.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style

	// Selected highlights the cursor row in lists.
	Selected lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// InputField wraps the submit box.
	InputField lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style
	Border    lipgloss.Style
}

// NewStyles builds styles from a theme. A nil theme gets the default palette.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#11111A")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme these styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
