package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the theme mode the extension keeps the browser in.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// ErrInvalidMode is returned when a string does not name a known mode.
var ErrInvalidMode = errors.New("invalid mode")

// ParseMode converts a stored or user-supplied string into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// IsValid reports whether m is one of the three known modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeLight, ModeDark, ModeSystem:
		return true
	}
	return false
}

// Toggled returns the mode a manual click switches to.
// Light and dark alternate. From system, the click re-enters the
// light/dark cycle at the opposite of what the desktop currently shows.
func (m Mode) Toggled(ambientDark bool) Mode {
	switch m {
	case ModeDark:
		return ModeLight
	case ModeLight:
		return ModeDark
	default:
		if ambientDark {
			return ModeLight
		}
		return ModeDark
	}
}

// ColorScheme is the content color-scheme value the host understands for m.
func (m Mode) ColorScheme() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	default:
		return "auto"
	}
}

func (m Mode) String() string {
	return string(m)
}
