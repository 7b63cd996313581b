package entity

import (
	"strings"

	"github.com/bnema/toggley/internal/domain/validation"
)

// Storage keys of the synced preferences scope.
const (
	KeyLightTheme                 = "lightTheme"
	KeyDarkTheme                  = "darkTheme"
	KeyLightColorOverride         = "lightColorOverride"
	KeyDarkColorOverride          = "darkColorOverride"
	KeyLightColor                 = "lightColor"
	KeyDarkColor                  = "darkColor"
	KeyLastUsed                   = "lastUsed"
	KeyPrefersColorSchemeOverride = "prefersColorSchemeOverride"
)

// Host theme ids shipped with the browser.
const (
	DefaultLightTheme = "firefox-compact-light@mozilla.org"
	DefaultDarkTheme  = "firefox-compact-dark@mozilla.org"
	HostDefaultTheme  = "default-theme@mozilla.org"
)

// SchemeOverride selects who controls the content prefers-color-scheme value.
type SchemeOverride string

const (
	SchemeOverrideToggley SchemeOverride = "toggley"
	SchemeOverrideFirefox SchemeOverride = "firefox"
)

// Preferences is the typed view of the synced preference set.
type Preferences struct {
	LightTheme                 string         `json:"lightTheme" yaml:"lightTheme" toml:"lightTheme"`
	DarkTheme                  string         `json:"darkTheme" yaml:"darkTheme" toml:"darkTheme"`
	LightColorOverride         bool           `json:"lightColorOverride" yaml:"lightColorOverride" toml:"lightColorOverride"`
	DarkColorOverride          bool           `json:"darkColorOverride" yaml:"darkColorOverride" toml:"darkColorOverride"`
	LightColor                 string         `json:"lightColor" yaml:"lightColor" toml:"lightColor"`
	DarkColor                  string         `json:"darkColor" yaml:"darkColor" toml:"darkColor"`
	LastUsed                   Mode           `json:"lastUsed" yaml:"lastUsed" toml:"lastUsed"`
	PrefersColorSchemeOverride SchemeOverride `json:"prefersColorSchemeOverride" yaml:"prefersColorSchemeOverride" toml:"prefersColorSchemeOverride"`
}

// DefaultPreferences returns the preference set written on first run and on restore.
func DefaultPreferences() Preferences {
	return Preferences{
		LightTheme:                 DefaultLightTheme,
		DarkTheme:                  DefaultDarkTheme,
		LightColorOverride:         false,
		DarkColorOverride:          false,
		LightColor:                 "",
		DarkColor:                  "",
		LastUsed:                   ModeLight,
		PrefersColorSchemeOverride: SchemeOverrideToggley,
	}
}

// ThemeFor returns the theme id that represents mode.
// System mode maps to systemThemeID, usually the host default theme.
func (p Preferences) ThemeFor(mode Mode, systemThemeID string) string {
	switch mode {
	case ModeDark:
		return p.DarkTheme
	case ModeSystem:
		return systemThemeID
	default:
		return p.LightTheme
	}
}

// Override returns the effective icon color override for mode, or "".
func (p Preferences) Override(mode Mode) string {
	switch mode {
	case ModeLight:
		if p.LightColorOverride {
			return p.LightColor
		}
	case ModeDark:
		if p.DarkColorOverride {
			return p.DarkColor
		}
	}
	return ""
}

// ToMap flattens p into the storage key/value layout.
func (p Preferences) ToMap() map[string]any {
	return map[string]any{
		KeyLightTheme:                 p.LightTheme,
		KeyDarkTheme:                  p.DarkTheme,
		KeyLightColorOverride:         p.LightColorOverride,
		KeyDarkColorOverride:          p.DarkColorOverride,
		KeyLightColor:                 p.LightColor,
		KeyDarkColor:                  p.DarkColor,
		KeyLastUsed:                   string(p.LastUsed),
		KeyPrefersColorSchemeOverride: string(p.PrefersColorSchemeOverride),
	}
}

// PreferencesFromMap decodes a storage mapping.
// Missing keys and values of the wrong type take their default.
func PreferencesFromMap(values map[string]any) Preferences {
	p := DefaultPreferences()

	p.LightTheme = stringOr(values[KeyLightTheme], p.LightTheme)
	p.DarkTheme = stringOr(values[KeyDarkTheme], p.DarkTheme)
	p.LightColorOverride = boolOr(values[KeyLightColorOverride], p.LightColorOverride)
	p.DarkColorOverride = boolOr(values[KeyDarkColorOverride], p.DarkColorOverride)
	p.LightColor = stringOr(values[KeyLightColor], p.LightColor)
	p.DarkColor = stringOr(values[KeyDarkColor], p.DarkColor)

	if mode, err := ParseMode(stringOr(values[KeyLastUsed], "")); err == nil {
		p.LastUsed = mode
	}

	switch SchemeOverride(stringOr(values[KeyPrefersColorSchemeOverride], "")) {
	case SchemeOverrideFirefox:
		p.PrefersColorSchemeOverride = SchemeOverrideFirefox
	case SchemeOverrideToggley:
		p.PrefersColorSchemeOverride = SchemeOverrideToggley
	}

	return p
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

func boolOr(v any, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// Messages reported by Validate.
const (
	MsgThemesMustDiffer  = "Light and dark themes must be different"
	MsgInvalidDarkColor  = "Invalid dark theme icon color"
	MsgInvalidLightColor = "Invalid light theme icon color"
)

// Validate returns the user-facing problems that block saving p.
// An empty list means p can be saved.
func (p Preferences) Validate() []string {
	var problems []string
	if p.LightTheme == p.DarkTheme {
		problems = append(problems, MsgThemesMustDiffer)
	}
	if p.DarkColorOverride {
		if c := strings.TrimSpace(p.DarkColor); c != "" && !validation.IsCSSColor(c) {
			problems = append(problems, MsgInvalidDarkColor)
		}
	}
	if p.LightColorOverride {
		if c := strings.TrimSpace(p.LightColor); c != "" && !validation.IsCSSColor(c) {
			problems = append(problems, MsgInvalidLightColor)
		}
	}
	return problems
}

// Normalized trims the color fields and unchecks any override whose
// color is empty.
func (p Preferences) Normalized() Preferences {
	p.LightColor = strings.TrimSpace(p.LightColor)
	p.DarkColor = strings.TrimSpace(p.DarkColor)
	if p.LightColor == "" {
		p.LightColorOverride = false
	}
	if p.DarkColor == "" {
		p.DarkColorOverride = false
	}
	return p
}
