// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/styles"
)

// SubmitInput wraps a bubbles textinput for pasting links or text.
type SubmitInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewSubmitInput creates a new submission input component.
func NewSubmitInput(s *styles.Styles) *SubmitInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Paste a link or text..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 50

	return &SubmitInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the submission input.
func (s *SubmitInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *SubmitInput) Update(msg tea.Msg) (*SubmitInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the submission input.
func (s *SubmitInput) View() string {
	label := s.styles.Title.Render("Input: ")
	input := s.styles.InputField.Render(s.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (s *SubmitInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value.
func (s *SubmitInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (s *SubmitInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SubmitInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SubmitInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the width of the input.
func (s *SubmitInput) SetWidth(width int) {
	s.width = width
	// Account for label and padding
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.textinput.Width = inputWidth
}

// Width returns the current width.
func (s *SubmitInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *SubmitInput) Reset() {
	s.textinput.Reset()
}
