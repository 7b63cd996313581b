package colorscheme

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	detectorNameTerminal = "terminal"
	priorityTerminal     = 50
)

// TerminalDetector asks the controlling terminal for its background color.
// The query runs once; terminals do not announce later changes.
type TerminalDetector struct {
	isTerminal func() bool
	query      func() bool

	once sync.Once
	dark bool
}

// NewTerminalDetector creates a detector for the process's stdout terminal.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{
		isTerminal: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		query: lipgloss.HasDarkBackground,
	}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string {
	return detectorNameTerminal
}

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int {
	return priorityTerminal
}

// Available implements port.ColorSchemeDetector. A daemon started
// without a terminal never uses this detector.
func (d *TerminalDetector) Available() bool {
	return d.isTerminal()
}

// Detect implements port.ColorSchemeDetector.
func (d *TerminalDetector) Detect() (prefersDark, ok bool) {
	if !d.isTerminal() {
		return false, false
	}
	d.once.Do(func() {
		d.dark = d.query()
	})
	return d.dark, true
}
