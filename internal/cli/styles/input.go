package styles

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "/ "
	_ = ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// NewFilterInput creates the theme picker filter.
func NewFilterInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Filter themes...")
	ti.CharLimit = 128
	return ti
}

// NewColorInput creates an icon color field.
func NewColorInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "#rrggbb, rgb(), hsl() or a color name")
	ti.Prompt = "  "
	ti.CharLimit = 64
	return ti
}

// NewClockInput creates an HH:MM field.
func NewClockInput(theme *Theme, placeholder string) textinput.Model {
	ti := NewStyledInput(theme, placeholder)
	ti.Prompt = IconClock + " "
	ti.CharLimit = 5
	ti.Width = 6
	return ti
}

// InputBox wraps a text input in a styled box.
func (t *Theme) InputBox(input string, focused bool) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	return style.Render(input)
}
