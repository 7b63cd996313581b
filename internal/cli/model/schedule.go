package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/toggley/internal/cli/styles"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/ui/options"
)

type scheduleDoneMsg struct {
	err    error
	loaded bool
}

// ScheduleModel edits the light/dark switch times.
type ScheduleModel struct {
	ctrl  *options.Controller
	theme *styles.Theme
	keys  styles.ScheduleKeyMap
	help  help.Model
	ctx   context.Context

	inputs [2]textinput.Model
	focus  int

	busy     bool
	quitting bool
	err      error
}

// NewScheduleModel creates the schedule editor over ctrl.
func NewScheduleModel(ctx context.Context, theme *styles.Theme, ctrl *options.Controller) ScheduleModel {
	return ScheduleModel{
		ctrl:  ctrl,
		theme: theme,
		keys:  styles.DefaultScheduleKeyMap(),
		help:  styles.NewStyledHelp(theme),
		ctx:   ctx,
		inputs: [2]textinput.Model{
			styles.NewClockInput(theme, entity.DefaultLightTime),
			styles.NewClockInput(theme, entity.DefaultDarkTime),
		},
		busy: true,
	}
}

// Err returns the load error that closed the editor, if any.
func (m ScheduleModel) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m ScheduleModel) Init() tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return scheduleDoneMsg{err: ctrl.LoadSchedule(ctx), loaded: true}
	}
}

// Update implements tea.Model.
func (m ScheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scheduleDoneMsg:
		m.busy = false
		if msg.loaded {
			if msg.err != nil {
				m.err = msg.err
				m.quitting = true
				return m, tea.Quit
			}
			m.inputs[0].SetValue(m.ctrl.Schedule.Light)
			m.inputs[1].SetValue(m.ctrl.Schedule.Dark)
			m.setFocus(0)
		}
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
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.setFocus(1 - m.focus)
			return m, nil
		case key.Matches(msg, m.keys.Save):
			m.busy = true
			ctrl, ctx := m.ctrl, m.ctx
			return m, func() tea.Msg {
				return scheduleDoneMsg{err: ctrl.SaveSchedule(ctx)}
			}
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.ctrl.Schedule.Light = m.inputs[0].Value()
		m.ctrl.Schedule.Dark = m.inputs[1].Value()
		return m, cmd
	}
	return m, nil
}

func (m *ScheduleModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// View implements tea.Model.
func (m ScheduleModel) View() string {
	if m.quitting {
		return ""
	}
	if m.busy {
		return m.theme.Subtle.Render("  working...")
	}

	var b strings.Builder
	b.WriteString(m.theme.BoxHeader.Render("Theme schedule"))
	b.WriteString("\n")
	labels := [2]string{
		styles.IconSun + " Light theme at",
		styles.IconMoon + " Dark theme at",
	}
	for i, input := range m.inputs {
		b.WriteString(m.theme.Normal.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.theme.InputBox(input.View(), i == m.focus))
		b.WriteString("\n")
	}
	if status := renderStatus(m.theme, m.ctrl.Status); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}
