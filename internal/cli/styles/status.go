package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/bnema/toggley/internal/domain/entity"
)

// StatusRenderer renders the daemon status.
type StatusRenderer struct {
	theme *Theme
	now   func() time.Time
}

// NewStatusRenderer creates a status renderer.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme, now: time.Now}
}

// Render formats status as aligned key/value lines.
func (r *StatusRenderer) Render(status *entity.Status) string {
	now := r.now()
	key := r.theme.Subtle
	val := r.theme.Normal

	host := r.theme.ErrorStyle.Render(IconX + " disconnected")
	if status.HostConnected {
		host = r.theme.SuccessStyle.Render(IconCheck + " connected")
	}

	ambient := "light"
	if status.PrefersDark {
		ambient = "dark"
	}
	if status.AmbientSource != "" {
		ambient += " (" + status.AmbientSource + ")"
	}

	lastSwitch := "never"
	if !status.LastSwitch.IsZero() {
		lastSwitch = fmt.Sprintf("%s %s", status.LastSwitchMode, RelativeTime(status.LastSwitch, now))
	}

	rows := [][2]string{
		{"Mode", r.theme.ModeBadge(status.Mode)},
		{"Theme", val.Render(status.ActiveTheme)},
		{"Browser", host},
		{"Ambient", val.Render(ambient)},
		{"Menu", r.theme.Checkbox(status.Menu.SystemChecked, "system") + "  " +
			r.theme.Checkbox(status.Menu.ScheduledChecked, "scheduled")},
		{"Schedule", val.Render(fmt.Sprintf("light %s, dark %s", status.Schedule.Light, status.Schedule.Dark))},
		{"Last switch", val.Render(lastSwitch)},
		{"Uptime", val.Render(strings.TrimSuffix(humanize.RelTime(status.StartedAt, now, "", ""), " "))},
	}
	if len(status.Capabilities) > 0 {
		rows = append(rows, [2]string{"Capabilities", val.Render(strings.Join(status.Capabilities, ", "))})
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row[0]))
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s  %s", key.Render(fmt.Sprintf("%-*s", width, row[0])), row[1]))
	}
	return strings.Join(lines, "\n")
}
