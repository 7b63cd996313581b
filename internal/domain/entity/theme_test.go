package entity_test

import (
	"testing"

	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func sampleEntries() []entity.ThemeEntry {
	return []entity.ThemeEntry{
		{ID: entity.HostDefaultTheme, Name: "System theme", Type: entity.ThemeTypeTheme},
		{ID: entity.DefaultLightTheme, Name: "Light", Type: entity.ThemeTypeTheme, Enabled: true},
		{ID: entity.DefaultDarkTheme, Name: "Dark", Type: entity.ThemeTypeTheme},
		{ID: "ublock@example", Name: "uBlock", Type: "extension", Enabled: true},
	}
}

func TestFilterThemes(t *testing.T) {
	got := entity.FilterThemes(sampleEntries(), entity.HostDefaultTheme)

	assert.Len(t, got, 2)
	assert.Equal(t, entity.DefaultLightTheme, got[0].ID)
	assert.Equal(t, entity.DefaultDarkTheme, got[1].ID)
}

func TestEnabledTheme(t *testing.T) {
	id, ok := entity.EnabledTheme(sampleEntries())
	assert.True(t, ok)
	assert.Equal(t, entity.DefaultLightTheme, id)

	entries := sampleEntries()
	entries[2].Enabled = true
	_, ok = entity.EnabledTheme(entries)
	assert.False(t, ok, "two enabled themes are ambiguous")

	_, ok = entity.EnabledTheme(nil)
	assert.False(t, ok)
}

func TestModeFromTheme(t *testing.T) {
	prefs := entity.DefaultPreferences()

	assert.Equal(t, entity.ModeDark, entity.ModeFromTheme(entity.DefaultDarkTheme, prefs, entity.HostDefaultTheme))
	assert.Equal(t, entity.ModeLight, entity.ModeFromTheme(entity.DefaultLightTheme, prefs, entity.HostDefaultTheme))
	assert.Equal(t, entity.ModeSystem, entity.ModeFromTheme(entity.HostDefaultTheme, prefs, entity.HostDefaultTheme))
	assert.Equal(t, entity.ModeLight, entity.ModeFromTheme("other@example", prefs, entity.HostDefaultTheme))
	assert.Equal(t, entity.ModeLight, entity.ModeFromTheme("", prefs, entity.HostDefaultTheme))
}

func TestMenuState_Apply(t *testing.T) {
	var s entity.MenuState

	s = s.Apply(entity.MenuUseScheduledTheme, true)
	assert.Equal(t, entity.MenuState{ScheduledChecked: true}, s)

	s = s.Apply(entity.MenuUseSystemTheme, true)
	assert.Equal(t, entity.MenuState{SystemChecked: true}, s)

	s = s.Apply(entity.MenuUseSystemTheme, false)
	assert.Equal(t, entity.MenuState{}, s)

	s = s.Apply(entity.MenuCustomizeSchedule, true)
	assert.Equal(t, entity.MenuState{}, s)
}

func TestGlyphMapping(t *testing.T) {
	g := entity.DefaultGlyphMapping()

	assert.Equal(t, entity.GlyphMoon, g.For(entity.ModeLight))
	assert.Equal(t, entity.GlyphSun, g.For(entity.ModeDark))
	assert.Equal(t, entity.GlyphBolt, g.For(entity.ModeSystem))

	_, err := entity.ParseGlyph("star")
	assert.Error(t, err)
}
