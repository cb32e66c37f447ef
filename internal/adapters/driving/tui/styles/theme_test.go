package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	require.NotNil(t, theme)

	fields := map[string]lipgloss.Color{
		"Primary":    theme.Primary,
		"Secondary":  theme.Secondary,
		"Background": theme.Background,
		"Foreground": theme.Foreground,
		"Muted":      theme.Muted,
		"Success":    theme.Success,
		"Warning":    theme.Warning,
		"Error":      theme.Error,
		"Border":     theme.Border,
	}
	for name, c := range fields {
		assert.NotEmpty(t, string(c), "colour %s should be set", name)
	}
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := map[lipgloss.Color]string{}
	accents := map[string]lipgloss.Color{
		"Primary":   theme.Primary,
		"Secondary": theme.Secondary,
		"Success":   theme.Success,
		"Warning":   theme.Warning,
		"Error":     theme.Error,
	}
	for name, c := range accents {
		if prev, dup := seen[c]; dup {
			t.Errorf("%s and %s share colour %s", prev, name, c)
		}
		seen[c] = name
	}
}

func TestNewStyles(t *testing.T) {
	theme := DefaultTheme()

	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestDefaultStyles_EveryStyleRenders(t *testing.T) {
	styles := DefaultStyles()
	require.NotNil(t, styles)

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Title", styles.Title},
		{"Normal", styles.Normal},
		{"Muted", styles.Muted},
		{"Question", styles.Question},
		{"Answer", styles.Answer},
		{"Error", styles.Error},
		{"Success", styles.Success},
		{"Warning", styles.Warning},
		{"InputField", styles.InputField},
		{"StatusBar", styles.StatusBar},
		{"Help", styles.Help},
		{"Border", styles.Border},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, lipgloss.Style{}, tt.style, "style should be initialised")
			assert.NotEmpty(t, tt.style.Render("sample"))
		})
	}
}
