package entity

// ThemeTypeTheme is the extension type of installable browser themes.
const ThemeTypeTheme = "theme"

// ThemeEntry is one installed extension as reported by the host.
type ThemeEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
}

// IsTheme reports whether the entry is a theme rather than another add-on.
func (t ThemeEntry) IsTheme() bool {
	return t.Type == ThemeTypeTheme
}

// FilterThemes keeps theme entries only, dropping any id in exclude.
func FilterThemes(entries []ThemeEntry, exclude ...string) []ThemeEntry {
	skip := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}

	themes := make([]ThemeEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsTheme() {
			continue
		}
		if _, ok := skip[e.ID]; ok {
			continue
		}
		themes = append(themes, e)
	}
	return themes
}

// FindTheme returns the entry with id, if present.
func FindTheme(entries []ThemeEntry, id string) (ThemeEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return ThemeEntry{}, false
}

// EnabledTheme returns the id of the single enabled theme.
// ok is false when no theme, or more than one, is enabled.
func EnabledTheme(entries []ThemeEntry) (id string, ok bool) {
	for _, e := range entries {
		if !e.IsTheme() || !e.Enabled {
			continue
		}
		if ok {
			return "", false
		}
		id, ok = e.ID, true
	}
	return id, ok
}

// ModeFromTheme derives the current mode from the enabled theme id.
// The directory is authoritative; anything unrecognized reads as light.
func ModeFromTheme(activeID string, prefs Preferences, systemThemeID string) Mode {
	switch activeID {
	case "":
		return ModeLight
	case prefs.DarkTheme:
		return ModeDark
	case prefs.LightTheme:
		return ModeLight
	case systemThemeID:
		return ModeSystem
	default:
		return ModeLight
	}
}

// ThemeColors is the subset of the active theme palette used for the icon.
type ThemeColors struct {
	Icons       *ColorValue `json:"icons,omitempty"`
	ToolbarText *ColorValue `json:"toolbar_text,omitempty"`
}
