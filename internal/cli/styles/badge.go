package styles

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/bnema/toggley/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// ModeIcon returns the glyph icon for mode.
func ModeIcon(mode entity.Mode) string {
	switch mode {
	case entity.ModeDark:
		return IconMoon
	case entity.ModeSystem:
		return IconBolt
	default:
		return IconSun
	}
}

// ModeBadge renders mode with its icon.
func (t *Theme) ModeBadge(mode entity.Mode) string {
	return t.Badge.Render(ModeIcon(mode) + " " + string(mode))
}

// Checkbox renders a checked or empty box followed by label.
func (t *Theme) Checkbox(checked bool, label string) string {
	if checked {
		return t.Highlight.Render(IconCheckboxChecked) + " " + t.Normal.Render(label)
	}
	return t.Subtle.Render(IconCheckboxEmpty) + " " + t.Normal.Render(label)
}

// RelativeTime formats tm relative to now ("3 minutes ago").
func RelativeTime(tm, now time.Time) string {
	if tm.IsZero() {
		return "never"
	}
	return humanize.RelTime(tm, now, "ago", "from now")
}
