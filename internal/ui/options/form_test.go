package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toggley/internal/domain/entity"
)

func installed() []entity.ThemeEntry {
	return []entity.ThemeEntry{
		{ID: entity.HostDefaultTheme, Name: "System theme", Type: entity.ThemeTypeTheme},
		{ID: "alpenglow@mozilla.org", Name: "Alpenglow", Type: entity.ThemeTypeTheme},
		{ID: entity.DefaultLightTheme, Name: "Light", Type: entity.ThemeTypeTheme, Enabled: true},
		{ID: entity.DefaultDarkTheme, Name: "Dark", Type: entity.ThemeTypeTheme},
		{ID: "ublock@raymondhill.net", Name: "uBlock Origin", Type: "extension"},
	}
}

func TestForm_LoadHidesDefaultAndNonThemes(t *testing.T) {
	f := NewForm()
	f.Load(installed(), entity.DefaultPreferences())

	ids := make([]string, 0, len(f.Themes))
	for _, th := range f.Themes {
		ids = append(ids, th.ID)
	}
	assert.Equal(t, []string{"alpenglow@mozilla.org", entity.DefaultLightTheme, entity.DefaultDarkTheme}, ids)
	assert.Equal(t, entity.DefaultLightTheme, f.LightTheme)
	assert.Equal(t, entity.DefaultDarkTheme, f.DarkTheme)
	assert.Equal(t, "Dark", f.ThemeName(f.DarkTheme))
}

func TestForm_LoadFallsBackToFirstThemeForStaleIDs(t *testing.T) {
	prefs := entity.DefaultPreferences()
	prefs.DarkTheme = "uninstalled@example.org"

	f := NewForm()
	f.Load(installed(), prefs)

	assert.Equal(t, entity.DefaultLightTheme, f.LightTheme)
	assert.Equal(t, "alpenglow@mozilla.org", f.DarkTheme)
}

func TestForm_LoadWithoutThemesKeepsSavedIDs(t *testing.T) {
	f := NewForm()
	f.Load(nil, entity.DefaultPreferences())

	assert.Empty(t, f.Themes)
	assert.Equal(t, entity.DefaultLightTheme, f.LightTheme)
}

func TestForm_LoadSchemeOverride(t *testing.T) {
	prefs := entity.DefaultPreferences()
	prefs.PrefersColorSchemeOverride = entity.SchemeOverrideFirefox

	f := NewForm()
	f.Load(installed(), prefs)
	assert.Equal(t, entity.SchemeOverrideFirefox, f.SchemeOverride)

	f.ToggleSchemeOverride()
	assert.Equal(t, entity.SchemeOverrideToggley, f.SchemeOverride)
}

func TestForm_Validate(t *testing.T) {
	tests := []struct {
		name     string
		edit     func(*Form)
		canSave  bool
		messages []string
	}{
		{
			name:    "defaults",
			edit:    func(*Form) {},
			canSave: true,
		},
		{
			name: "same theme twice",
			edit: func(f *Form) {
				f.SetTheme(entity.ModeDark, entity.DefaultLightTheme)
			},
			messages: []string{entity.MsgThemesMustDiffer},
		},
		{
			name: "same theme blocks even with valid colors",
			edit: func(f *Form) {
				f.SetTheme(entity.ModeDark, entity.DefaultLightTheme)
				f.SetOverride(entity.ModeLight, true)
				f.SetColor(entity.ModeLight, "#fff")
			},
			messages: []string{entity.MsgThemesMustDiffer},
		},
		{
			name: "bad colors in both fields",
			edit: func(f *Form) {
				f.SetOverride(entity.ModeLight, true)
				f.SetColor(entity.ModeLight, "blurple")
				f.SetOverride(entity.ModeDark, true)
				f.SetColor(entity.ModeDark, "#12")
			},
			messages: []string{entity.MsgInvalidDarkColor, entity.MsgInvalidLightColor},
		},
		{
			name: "bad color ignored while unchecked",
			edit: func(f *Form) {
				f.SetColor(entity.ModeDark, "blurple")
			},
			canSave: true,
		},
		{
			name: "checked but empty is fine",
			edit: func(f *Form) {
				f.SetOverride(entity.ModeDark, true)
			},
			canSave: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm()
			f.Load(installed(), entity.DefaultPreferences())
			tt.edit(f)

			v := f.Validate()
			assert.Equal(t, tt.canSave, v.CanSave)
			assert.Equal(t, tt.messages, v.Messages)
		})
	}
}

func TestForm_UncheckClearsField(t *testing.T) {
	f := NewForm()
	f.SetOverride(entity.ModeLight, true)
	f.SetColor(entity.ModeLight, "red")

	f.SetOverride(entity.ModeLight, false)

	assert.False(t, f.LightColorOverride)
	assert.Empty(t, f.LightColor)
}

func TestForm_SubmitUnchecksEmptyOverrides(t *testing.T) {
	prefs := entity.DefaultPreferences()
	prefs.LastUsed = entity.ModeDark

	f := NewForm()
	f.Load(installed(), prefs)
	f.SetOverride(entity.ModeLight, true)
	f.SetColor(entity.ModeLight, "   ")
	f.SetOverride(entity.ModeDark, true)
	f.SetColor(entity.ModeDark, " rgb(10, 20, 30) ")

	got, v := f.Submit()

	require.True(t, v.CanSave)
	assert.False(t, got.LightColorOverride)
	assert.Empty(t, got.LightColor)
	assert.True(t, got.DarkColorOverride)
	assert.Equal(t, "rgb(10, 20, 30)", got.DarkColor)
	assert.Empty(t, got.LastUsed, "last used mode is never submitted")
	assert.False(t, f.LightColorOverride, "form box is unchecked too")
}

func TestForm_SubmitInvalidLeavesFormUntouched(t *testing.T) {
	f := NewForm()
	f.Load(installed(), entity.DefaultPreferences())
	f.SetTheme(entity.ModeLight, entity.DefaultDarkTheme)
	f.SetOverride(entity.ModeDark, true)

	_, v := f.Submit()

	assert.False(t, v.CanSave)
	assert.True(t, f.DarkColorOverride)
}
