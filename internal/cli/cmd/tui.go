package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/toggley/internal/cli"
	"github.com/bnema/toggley/internal/cli/styles"
)

// confirm asks a yes/no question on the terminal.
func confirm(a *cli.App, message string) (bool, error) {
	final, err := tea.NewProgram(styles.NewConfirm(a.Theme, message)).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	c, ok := final.(styles.Confirm)
	return ok && c.Result(), nil
}

// errModel is a model that remembers why it quit.
type errModel interface {
	tea.Model
	Err() error
}

// runTUI runs m full screen and returns the error it quit with.
func runTUI(a *cli.App, m errModel) error {
	if !a.Interactive() {
		return fmt.Errorf("this command needs an interactive terminal")
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	if fm, ok := final.(errModel); ok {
		return fm.Err()
	}
	return nil
}
