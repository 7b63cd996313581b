// Package options holds the editable state behind the preferences and
// schedule pages, independent of how they are drawn.
package options

import (
	"strings"

	"github.com/bnema/toggley/internal/domain/entity"
)

// Validation is the outcome of checking the form.
type Validation struct {
	CanSave  bool
	Messages []string
}

// Form is the preferences page state.
type Form struct {
	Themes []entity.ThemeEntry

	LightTheme         string
	DarkTheme          string
	LightColorOverride bool
	DarkColorOverride  bool
	LightColor         string
	DarkColor          string
	SchemeOverride     entity.SchemeOverride

	hidden []string
}

// NewForm creates an empty form. Theme ids in hidden never appear in the
// pickers; the host default theme is always hidden.
func NewForm(hidden ...string) *Form {
	return &Form{
		hidden:         append([]string{entity.HostDefaultTheme}, hidden...),
		SchemeOverride: entity.SchemeOverrideToggley,
	}
}

// Load fills the form from the installed extensions and the stored preferences.
// A saved theme id that is no longer installed falls back to the first entry.
func (f *Form) Load(installed []entity.ThemeEntry, prefs entity.Preferences) {
	f.Themes = entity.FilterThemes(installed, f.hidden...)

	f.LightTheme = f.pick(prefs.LightTheme)
	f.DarkTheme = f.pick(prefs.DarkTheme)
	f.LightColorOverride = prefs.LightColorOverride
	f.DarkColorOverride = prefs.DarkColorOverride
	f.LightColor = prefs.LightColor
	f.DarkColor = prefs.DarkColor

	if prefs.PrefersColorSchemeOverride == entity.SchemeOverrideFirefox {
		f.SchemeOverride = entity.SchemeOverrideFirefox
	} else {
		f.SchemeOverride = entity.SchemeOverrideToggley
	}
}

func (f *Form) pick(id string) string {
	if _, ok := entity.FindTheme(f.Themes, id); ok || len(f.Themes) == 0 {
		return id
	}
	return f.Themes[0].ID
}

// ThemeName returns the display name for id, or id itself when unknown.
func (f *Form) ThemeName(id string) string {
	if t, ok := entity.FindTheme(f.Themes, id); ok && t.Name != "" {
		return t.Name
	}
	return id
}

// SetTheme selects the theme used for mode (light or dark).
func (f *Form) SetTheme(mode entity.Mode, id string) {
	if mode == entity.ModeDark {
		f.DarkTheme = id
		return
	}
	f.LightTheme = id
}

// SetOverride checks or unchecks the icon color override of mode.
// Unchecking clears the color field.
func (f *Form) SetOverride(mode entity.Mode, checked bool) {
	switch mode {
	case entity.ModeDark:
		f.DarkColorOverride = checked
		if !checked {
			f.DarkColor = ""
		}
	case entity.ModeLight:
		f.LightColorOverride = checked
		if !checked {
			f.LightColor = ""
		}
	}
}

// SetColor edits the override color field of mode.
func (f *Form) SetColor(mode entity.Mode, value string) {
	if mode == entity.ModeDark {
		f.DarkColor = value
		return
	}
	f.LightColor = value
}

// ToggleSchemeOverride flips who controls prefers-color-scheme.
func (f *Form) ToggleSchemeOverride() {
	if f.SchemeOverride == entity.SchemeOverrideFirefox {
		f.SchemeOverride = entity.SchemeOverrideToggley
		return
	}
	f.SchemeOverride = entity.SchemeOverrideFirefox
}

// Preferences returns the form content as a preference set, unnormalized.
// LastUsed is left empty: the daemon owns it.
func (f *Form) Preferences() entity.Preferences {
	return entity.Preferences{
		LightTheme:                 f.LightTheme,
		DarkTheme:                  f.DarkTheme,
		LightColorOverride:         f.LightColorOverride,
		DarkColorOverride:          f.DarkColorOverride,
		LightColor:                 f.LightColor,
		DarkColor:                  f.DarkColor,
		PrefersColorSchemeOverride: f.SchemeOverride,
	}
}

// Validate reports every problem that blocks saving.
func (f *Form) Validate() Validation {
	messages := f.Preferences().Validate()
	return Validation{CanSave: len(messages) == 0, Messages: messages}
}

// Submit prepares the preference set to persist. Override boxes whose
// field is empty are unchecked on the form as well. Nothing changes when
// the form does not validate.
func (f *Form) Submit() (entity.Preferences, Validation) {
	v := f.Validate()
	if !v.CanSave {
		return entity.Preferences{}, v
	}

	if strings.TrimSpace(f.LightColor) == "" {
		f.SetOverride(entity.ModeLight, false)
	}
	if strings.TrimSpace(f.DarkColor) == "" {
		f.SetOverride(entity.ModeDark, false)
	}

	prefs := f.Preferences().Normalized()
	if !prefs.LightColorOverride {
		prefs.LightColor = ""
	}
	if !prefs.DarkColorOverride {
		prefs.DarkColor = ""
	}
	return prefs, v
}
