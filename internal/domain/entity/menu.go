package entity

import "errors"

// ErrUnknownMenuItem is returned for a click on an entry the menu does not have.
var ErrUnknownMenuItem = errors.New("unknown menu item")

// MenuItem identifies an entry of the toolbar button context menu.
type MenuItem string

const (
	MenuUseSystemTheme    MenuItem = "use-system-theme"
	MenuUseScheduledTheme MenuItem = "use-scheduled-theme"
	MenuCustomizeSchedule MenuItem = "customize-schedule"
	MenuModifyPreferences MenuItem = "modify-preferences"
)

// IsCheckbox reports whether the item carries a checked state.
func (m MenuItem) IsCheckbox() bool {
	return m == MenuUseSystemTheme || m == MenuUseScheduledTheme
}

// MenuState is the checked state of the two checkbox entries.
// At most one of them is checked at any time.
type MenuState struct {
	SystemChecked    bool `json:"systemChecked"`
	ScheduledChecked bool `json:"scheduledChecked"`
}

// Apply returns the state after the user set item to checked.
func (s MenuState) Apply(item MenuItem, checked bool) MenuState {
	switch item {
	case MenuUseSystemTheme:
		s.SystemChecked = checked
		if checked {
			s.ScheduledChecked = false
		}
	case MenuUseScheduledTheme:
		s.ScheduledChecked = checked
		if checked {
			s.SystemChecked = false
		}
	}
	return s
}
