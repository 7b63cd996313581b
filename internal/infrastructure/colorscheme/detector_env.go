package colorscheme

import (
	"os"
	"strings"
)

const (
	detectorNameEnv = "env"
	priorityEnv     = 20
)

// EnvDetector reads TOGGLEY_COLOR_SCHEME, then GTK_THEME.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates an environment based detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// NewEnvDetectorWithLookup is NewEnvDetector with a custom lookup.
func NewEnvDetectorWithLookup(getenv func(string) string) *EnvDetector {
	return &EnvDetector{getenv: getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.ColorSchemeDetector.
func (d *EnvDetector) Available() bool {
	return d.getenv("TOGGLEY_COLOR_SCHEME") != "" || d.getenv("GTK_THEME") != ""
}

// Detect implements port.ColorSchemeDetector.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	switch strings.ToLower(strings.TrimSpace(d.getenv("TOGGLEY_COLOR_SCHEME"))) {
	case "dark", "prefer-dark":
		return true, true
	case "light", "prefer-light":
		return false, true
	}

	gtkTheme := d.getenv("GTK_THEME")
	if gtkTheme == "" {
		return false, false
	}
	// Adwaita:dark, Breeze-Dark and friends
	return strings.Contains(strings.ToLower(gtkTheme), "dark"), true
}
