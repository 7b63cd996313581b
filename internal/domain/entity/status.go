package entity

import "time"

// Status is a snapshot of the daemon state for the status command.
type Status struct {
	Mode           Mode      `json:"mode"`
	ActiveTheme    string    `json:"activeTheme"`
	Menu           MenuState `json:"menu"`
	Schedule       Schedule  `json:"schedule"`
	HostConnected  bool      `json:"hostConnected"`
	PrefersDark    bool      `json:"prefersDark"`
	AmbientSource  string    `json:"ambientSource"`
	LastSwitch     time.Time `json:"lastSwitch,omitzero"`
	LastSwitchMode Mode      `json:"lastSwitchMode,omitempty"`
	StartedAt      time.Time `json:"startedAt"`
	Capabilities   []string  `json:"capabilities,omitempty"`
}

// SwitchSource says what triggered a theme switch.
type SwitchSource string

const (
	SwitchSourceToggle   SwitchSource = "toggle"
	SwitchSourceSchedule SwitchSource = "schedule"
	SwitchSourceMenu     SwitchSource = "menu"
	SwitchSourceOptions  SwitchSource = "options"
	SwitchSourceStartup  SwitchSource = "startup"
)

// ThemeSwitch is one activation performed by the daemon.
type ThemeSwitch struct {
	ID         int64        `json:"id"`
	Mode       Mode         `json:"mode"`
	ThemeID    string       `json:"themeId"`
	Source     SwitchSource `json:"source"`
	SwitchedAt time.Time    `json:"switchedAt"`
}
