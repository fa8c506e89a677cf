package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/messages"
	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driving/tui/styles"
)

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()
	view := NewView(s)

	require.NotNil(t, view)
	assert.Equal(t, 0, view.Selected())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Init(t *testing.T) {
	view := NewView(nil)

	assert.Nil(t, view.Init())
}

func TestView_Update_NavigateDown(t *testing.T) {
	view := NewView(nil)

	msg := tea.KeyMsg{Type: tea.KeyDown}
	view.Update(msg)

	assert.Equal(t, 1, view.Selected())
}

func TestView_Update_NavigateUp(t *testing.T) {
	view := NewView(nil)
	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	view.Update(tea.KeyMsg{Type: tea.KeyUp})

	assert.Equal(t, 1, view.Selected())
}

func TestView_Update_NavigateUp_AtBoundary(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.KeyMsg{Type: tea.KeyUp})

	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_NavigateDown_AtBoundary(t *testing.T) {
	view := NewView(nil)
	for i := 0; i < 10; i++ {
		view.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	assert.Equal(t, len(view.items)-1, view.Selected())
}

func TestView_Update_VimKeys(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_Enter_SelectsSubmit(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	result := cmd()
	viewChanged, ok := result.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewSubmit, viewChanged.View)
}

func TestView_Update_Enter_SelectsHistory(t *testing.T) {
	view := NewView(nil)
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	result := cmd()
	viewChanged, ok := result.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewHistory, viewChanged.View)
}

func TestView_Update_Enter_QuitItem(t *testing.T) {
	view := NewView(nil)
	// Navigate to the last item, Quit
	for i := 0; i < len(view.items)-1; i++ {
		view.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, cmd)
}

func TestView_Update_Q_Quits(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.NotNil(t, cmd)
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, view.width)
	assert.True(t, view.ready)
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil)

	assert.Contains(t, view.View(), "Initialising")
}

func TestView_View_RendersItems(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	rendered := view.View()

	assert.Contains(t, rendered, "Clipfold")
	assert.Contains(t, rendered, "Clip, Clean, File")
	assert.Contains(t, rendered, "Submit")
	assert.Contains(t, rendered, "History")
	assert.Contains(t, rendered, "Notebooks")
	assert.Contains(t, rendered, "Settings")
	assert.Contains(t, rendered, "Quit")
}

func TestView_View_ShowsCursor(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	rendered := view.View()

	assert.Contains(t, rendered, "> ")
}
