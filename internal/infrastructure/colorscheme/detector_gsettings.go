package colorscheme

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
	gsettingsTimeout      = 2 * time.Second
)

// CommandRunner runs a command and returns its stdout.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// GsettingsDetector reads org.gnome.desktop.interface color-scheme.
type GsettingsDetector struct {
	run      CommandRunner
	lookPath func(string) (string, error)
}

// NewGsettingsDetector creates a gsettings based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: execRunner, lookPath: exec.LookPath}
}

// NewGsettingsDetectorWithRunner is NewGsettingsDetector with a custom runner.
func NewGsettingsDetectorWithRunner(run CommandRunner) *GsettingsDetector {
	return &GsettingsDetector{
		run:      run,
		lookPath: func(string) (string, error) { return "gsettings", nil },
	}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
func (d *GsettingsDetector) Available() bool {
	_, err := d.lookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector. "default" means the desktop
// expresses no preference, which is reported as no answer.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), gsettingsTimeout)
	defer cancel()

	output, err := d.run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err != nil {
		return false, false
	}

	switch strings.Trim(strings.TrimSpace(string(output)), `'"`) {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}
