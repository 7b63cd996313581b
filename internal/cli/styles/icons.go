package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconPlug    = "" // plug
	IconClock   = "" // clock

	IconSun  = "" // sun
	IconMoon = "" // moon
	IconBolt = "" // bolt

	IconCheckboxEmpty   = "" // unchecked
	IconCheckboxChecked = "" // checked

	IconCursor = "" // chevron-right
)
