package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Confirm is a yes/no prompt that quits its program once answered.
// The selection starts on "No".
type Confirm struct {
	Message  string
	Yes      bool
	answered bool
	theme    *Theme
	keys     ConfirmKeyMap
}

// ConfirmKeyMap defines keybindings for the prompt.
type ConfirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeyMap returns the default keybindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Toggle:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "switch")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// NewConfirm creates a prompt for message.
func NewConfirm(theme *Theme, message string) Confirm {
	return Confirm{Message: message, theme: theme, keys: DefaultConfirmKeyMap()}
}

// Init implements tea.Model.
func (m Confirm) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Yes):
		m.Yes, m.answered = true, true
	case key.Matches(k, m.keys.No), key.Matches(k, m.keys.Cancel):
		m.Yes, m.answered = false, true
	case key.Matches(k, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(k, m.keys.Confirm):
		m.answered = true
	}
	if m.answered {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Confirm) View() string {
	if m.answered {
		return ""
	}
	t := m.theme

	yes, no := t.BadgeMuted, t.Badge
	if m.Yes {
		yes, no = t.Badge, t.BadgeMuted
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, no.Render(" No "), "  ", yes.Render(" Yes "))

	return t.Box.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title.Render(m.Message),
		"",
		buttons,
		"",
		t.Subtle.Render("y/n or ←/→ to select • enter to confirm • esc to cancel"),
	))
}

// Result reports whether the prompt was answered with yes.
func (m Confirm) Result() bool {
	return m.answered && m.Yes
}
