// Package model holds the bubbletea models behind the interactive commands.
package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/toggley/internal/cli/styles"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/ui/options"
)

type optionRow int

const (
	rowLightTheme optionRow = iota
	rowDarkTheme
	rowLightOverride
	rowLightColor
	rowDarkOverride
	rowDarkColor
	rowScheme
)

type optionsDoneMsg struct {
	err     error
	initial bool
}

// OptionsModel is the interactive preferences page.
// While busy, the controller is owned by the running command and neither
// Update nor View touch it.
type OptionsModel struct {
	ctrl  *options.Controller
	theme *styles.Theme
	keys  styles.OptionsKeyMap
	help  help.Model
	ctx   context.Context

	cursor     int
	lightColor textinput.Model
	darkColor  textinput.Model
	picker     *styles.Picker
	pickerMode entity.Mode

	busy     bool
	showHelp bool
	quitting bool
	err      error
}

// NewOptionsModel creates the preferences page over ctrl.
func NewOptionsModel(ctx context.Context, theme *styles.Theme, ctrl *options.Controller) OptionsModel {
	return OptionsModel{
		ctrl:       ctrl,
		theme:      theme,
		keys:       styles.DefaultOptionsKeyMap(),
		help:       styles.NewStyledHelp(theme),
		ctx:        ctx,
		lightColor: styles.NewColorInput(theme),
		darkColor:  styles.NewColorInput(theme),
		busy:       true,
	}
}

// Err returns the last load error, if the page could not open.
func (m OptionsModel) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m OptionsModel) Init() tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return optionsDoneMsg{err: ctrl.Load(ctx), initial: true}
	}
}

func (m OptionsModel) run(op func(context.Context) error) (OptionsModel, tea.Cmd) {
	m.busy = true
	ctx := m.ctx
	return m, func() tea.Msg {
		return optionsDoneMsg{err: op(ctx)}
	}
}

// Update implements tea.Model.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case optionsDoneMsg:
		m.busy = false
		if msg.initial && msg.err != nil {
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.syncInputs()
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.busy {
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m OptionsModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	picker, cmd := m.picker.Update(msg)
	if !picker.Done() {
		m.picker = &picker
		return m, cmd
	}
	if chosen, ok := picker.Chosen(); ok {
		m.ctrl.Form.SetTheme(m.pickerMode, chosen.ID)
		m.ctrl.Revalidate()
	}
	m.picker = nil
	return m, nil
}

func (m OptionsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()
	row := rows[min(m.cursor, len(rows)-1)]

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(rows)) % len(rows)
		return m.focusRow(), nil
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(rows)
		return m.focusRow(), nil
	case key.Matches(msg, m.keys.Save):
		if !m.ctrl.Revalidate().CanSave {
			return m, nil
		}
		return m.run(m.ctrl.Save)
	case key.Matches(msg, m.keys.Reset):
		return m.run(m.ctrl.Reset)
	case key.Matches(msg, m.keys.Restore):
		return m.run(m.ctrl.RestoreDefaults)
	}

	if row == rowLightColor || row == rowDarkColor {
		return m.updateColor(row, msg)
	}

	if key.Matches(msg, m.keys.Select) {
		return m.activate(row), nil
	}
	return m, nil
}

func (m OptionsModel) activate(row optionRow) OptionsModel {
	form := m.ctrl.Form
	switch row {
	case rowLightTheme, rowDarkTheme:
		mode, title, current := entity.ModeLight, "Light theme", form.LightTheme
		if row == rowDarkTheme {
			mode, title, current = entity.ModeDark, "Dark theme", form.DarkTheme
		}
		p := styles.NewPicker(m.theme, title, form.Themes, current)
		m.picker, m.pickerMode = &p, mode
	case rowLightOverride:
		form.SetOverride(entity.ModeLight, !form.LightColorOverride)
	case rowDarkOverride:
		form.SetOverride(entity.ModeDark, !form.DarkColorOverride)
	case rowScheme:
		form.ToggleSchemeOverride()
	}
	m.ctrl.Revalidate()
	m.syncInputs()
	return m
}

func (m OptionsModel) updateColor(row optionRow, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if row == rowLightColor {
		m.lightColor, cmd = m.lightColor.Update(msg)
		m.ctrl.Form.SetColor(entity.ModeLight, m.lightColor.Value())
	} else {
		m.darkColor, cmd = m.darkColor.Update(msg)
		m.ctrl.Form.SetColor(entity.ModeDark, m.darkColor.Value())
	}
	m.ctrl.Revalidate()
	return m, cmd
}

// rows lists the visible rows; color fields only show while checked.
func (m OptionsModel) rows() []optionRow {
	rows := []optionRow{rowLightTheme, rowDarkTheme, rowLightOverride}
	if m.ctrl.Form.LightColorOverride {
		rows = append(rows, rowLightColor)
	}
	rows = append(rows, rowDarkOverride)
	if m.ctrl.Form.DarkColorOverride {
		rows = append(rows, rowDarkColor)
	}
	return append(rows, rowScheme)
}

func (m OptionsModel) focusRow() OptionsModel {
	rows := m.rows()
	m.cursor = min(m.cursor, len(rows)-1)
	m.lightColor.Blur()
	m.darkColor.Blur()
	switch rows[m.cursor] {
	case rowLightColor:
		m.lightColor.Focus()
	case rowDarkColor:
		m.darkColor.Focus()
	}
	return m
}

// syncInputs copies form values into the text fields after the form
// changed underneath them.
func (m *OptionsModel) syncInputs() {
	m.lightColor.SetValue(m.ctrl.Form.LightColor)
	m.darkColor.SetValue(m.ctrl.Form.DarkColor)
	*m = m.focusRow()
}

// View implements tea.Model.
func (m OptionsModel) View() string {
	if m.quitting {
		return ""
	}
	if m.busy {
		return m.theme.Subtle.Render("  working...")
	}
	if m.picker != nil {
		return m.picker.View()
	}

	form := m.ctrl.Form
	rows := m.rows()
	label := lipgloss.NewStyle().Width(18)

	var b strings.Builder
	b.WriteString(m.theme.BoxHeader.Render("toggley preferences"))
	b.WriteString("\n")

	for i, row := range rows {
		var line string
		switch row {
		case rowLightTheme:
			line = label.Render("Light theme") + m.theme.Normal.Render(form.ThemeName(form.LightTheme))
		case rowDarkTheme:
			line = label.Render("Dark theme") + m.theme.Normal.Render(form.ThemeName(form.DarkTheme))
		case rowLightOverride:
			line = m.theme.Checkbox(form.LightColorOverride, "Override light theme icon color")
		case rowLightColor:
			line = m.lightColor.View()
		case rowDarkOverride:
			line = m.theme.Checkbox(form.DarkColorOverride, "Override dark theme icon color")
		case rowDarkColor:
			line = m.darkColor.View()
		case rowScheme:
			line = label.Render("Page color scheme") + m.theme.Normal.Render(schemeLabel(form.SchemeOverride))
		}
		if i == m.cursor {
			b.WriteString(m.theme.ListItemSelected.Render(styles.IconCursor + " " + line))
		} else {
			b.WriteString(m.theme.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if status := renderStatus(m.theme, m.ctrl.Status); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return b.String()
}

func schemeLabel(s entity.SchemeOverride) string {
	if s == entity.SchemeOverrideFirefox {
		return "follow Firefox"
	}
	return "follow toggley mode"
}

func renderStatus(theme *styles.Theme, status options.Status) string {
	switch status.Kind {
	case options.StatusSuccess:
		return theme.SuccessStyle.Render(styles.IconCheck + " " + status.Text)
	case options.StatusError:
		lines := make([]string, 0, len(status.Messages)+1)
		if status.Text != "" {
			lines = append(lines, theme.ErrorStyle.Render(styles.IconX+" "+status.Text))
		}
		for _, msg := range status.Messages {
			lines = append(lines, theme.WarningStyle.Render(styles.IconInfo+" "+msg))
		}
		return strings.Join(lines, "\n")
	}
	return ""
}
