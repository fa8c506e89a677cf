package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_AllColoursSet(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	for name, c := range map[string]lipgloss.Color{
		"Primary":    theme.Primary,
		"Secondary":  theme.Secondary,
		"Background": theme.Background,
		"Foreground": theme.Foreground,
		"Muted":      theme.Muted,
		"Success":    theme.Success,
		"Warning":    theme.Warning,
		"Error":      theme.Error,
		"Border":     theme.Border,
	} {
		assert.NotEmpty(t, string(c), "colour %s is unset", name)
	}
}

func TestDefaultTheme_StatusColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	// done, pending and failed records must be tellable apart, and neither
	// may blend into the accents.
	seen := make(map[string]bool)
	for _, c := range []lipgloss.Color{
		theme.Primary,
		theme.Secondary,
		theme.Success,
		theme.Warning,
		theme.Error,
	} {
		assert.False(t, seen[string(c)], "duplicate colour: %s", string(c))
		seen[string(c)] = true
	}
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilThemeFallsBack(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestStyles_AllStylesInitialised(t *testing.T) {
	styles := DefaultStyles()

	zero := lipgloss.Style{}
	assert.NotEqual(t, zero, styles.Title)
	assert.NotEqual(t, zero, styles.Subtitle)
	assert.NotEqual(t, zero, styles.Normal)
	assert.NotEqual(t, zero, styles.Muted)
	assert.NotEqual(t, zero, styles.Selected)
	assert.NotEqual(t, zero, styles.Error)
	assert.NotEqual(t, zero, styles.Success)
	assert.NotEqual(t, zero, styles.InputField)
	assert.NotEqual(t, zero, styles.StatusBar)
	assert.NotEqual(t, zero, styles.Help)
	assert.NotEqual(t, zero, styles.Border)
}

func TestStyles_CanRenderText(t *testing.T) {
	styles := DefaultStyles()

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Title", styles.Title},
		{"Subtitle", styles.Subtitle},
		{"Normal", styles.Normal},
		{"Muted", styles.Muted},
		{"Selected", styles.Selected},
		{"Error", styles.Error},
		{"Success", styles.Success},
		{"Warning", styles.Warning},
		{"Help", styles.Help},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.style.Render("filed into Reading"))
		})
	}
}
