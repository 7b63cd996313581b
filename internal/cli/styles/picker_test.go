package styles

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toggley/internal/domain/entity"
)

func pickerThemes() []entity.ThemeEntry {
	return []entity.ThemeEntry{
		{ID: "alpenglow@mozilla.org", Name: "Alpenglow", Type: entity.ThemeTypeTheme},
		{ID: entity.DefaultLightTheme, Name: "Light", Type: entity.ThemeTypeTheme},
		{ID: entity.DefaultDarkTheme, Name: "Dark", Type: entity.ThemeTypeTheme},
		{ID: "nord@example.org", Name: "Nord Polar Night", Type: entity.ThemeTypeTheme},
	}
}

func typeInto(p Picker, text string) Picker {
	for _, r := range text {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func TestPicker_StartsOnSelected(t *testing.T) {
	p := NewPicker(NewTheme(true), "Dark theme", pickerThemes(), entity.DefaultDarkTheme)

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	chosen, ok := p.Chosen()
	require.True(t, ok)
	assert.Equal(t, entity.DefaultDarkTheme, chosen.ID)
}

func TestPicker_FuzzyFilter(t *testing.T) {
	p := NewPicker(NewTheme(true), "Dark theme", pickerThemes(), "")

	p = typeInto(p, "nordp")

	require.NotEmpty(t, p.Matches())
	assert.Equal(t, "nord@example.org", p.Matches()[0].Theme.ID)
	assert.NotEmpty(t, p.Matches()[0].Matched)

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	chosen, ok := p.Chosen()
	require.True(t, ok)
	assert.Equal(t, "nord@example.org", chosen.ID)
}

func TestPicker_NoMatchesCannotChoose(t *testing.T) {
	p := NewPicker(NewTheme(false), "Light theme", pickerThemes(), "")

	p = typeInto(p, "zzzz")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, p.Matches())
	assert.False(t, p.Done())
	assert.Contains(t, p.View(), "no matching themes")
}

func TestPicker_Navigation(t *testing.T) {
	p := NewPicker(NewTheme(true), "Light theme", pickerThemes(), "")

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	chosen, ok := p.Chosen()
	require.True(t, ok)
	assert.Equal(t, entity.DefaultLightTheme, chosen.ID)
}

func TestPicker_Cancel(t *testing.T) {
	p := NewPicker(NewTheme(true), "Light theme", pickerThemes(), "")

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, p.Done())
	assert.True(t, p.Canceled)
	_, ok := p.Chosen()
	assert.False(t, ok)
}

func TestStatusRenderer(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewStatusRenderer(NewTheme(true))
	r.now = func() time.Time { return now }

	out := r.Render(&entity.Status{
		Mode:           entity.ModeDark,
		ActiveTheme:    entity.DefaultDarkTheme,
		HostConnected:  true,
		PrefersDark:    true,
		AmbientSource:  "browser",
		Schedule:       entity.DefaultSchedule(),
		LastSwitch:     now.Add(-3 * time.Minute),
		LastSwitchMode: entity.ModeDark,
		StartedAt:      now.Add(-2 * time.Hour),
		Capabilities:   []string{"menus"},
	})

	assert.Contains(t, out, entity.DefaultDarkTheme)
	assert.Contains(t, out, "connected")
	assert.Contains(t, out, "dark (browser)")
	assert.Contains(t, out, "3 minutes ago")
	assert.Contains(t, out, "light 06:00, dark 18:00")
	assert.Contains(t, out, "menus")
}

func TestRelativeTime_Zero(t *testing.T) {
	assert.Equal(t, "never", RelativeTime(time.Time{}, time.Now()))
}

func TestConfirm_DefaultsToNo(t *testing.T) {
	var m tea.Model = NewConfirm(NewTheme(true), "Reset?")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.False(t, m.(Confirm).Result())
}

func TestConfirm_ToggleThenConfirm(t *testing.T) {
	var m tea.Model = NewConfirm(NewTheme(true), "Reset?")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, m.View(), "Reset?")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.(Confirm).Result())
	assert.Empty(t, m.View())
}

func TestConfirm_EscapeCancels(t *testing.T) {
	var m tea.Model = NewConfirm(NewTheme(false), "Reset?")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	assert.True(t, m.(Confirm).Result())

	m = NewConfirm(NewTheme(false), "Reset?")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.(Confirm).Result())
}

func TestConfigSchemaRenderer_GroupsInOrder(t *testing.T) {
	r := NewConfigSchemaRenderer(NewTheme(true))
	keys := []entity.ConfigKeyInfo{
		{Key: "logging.level", Type: "string", Default: "info", Section: "Logging", Values: []string{"debug", "info"}},
		{Key: "api.listen_addr", Type: "string", Default: "127.0.0.1:7878", Section: "API"},
		{Key: "logging.format", Type: "string", Default: "console", Section: "Logging"},
	}

	out := r.Render(keys)

	assert.Less(t, strings.Index(out, "Logging"), strings.Index(out, "API"))
	assert.Contains(t, out, "Values: debug, info")
	assert.Contains(t, out, "logging.format")

	js, err := r.RenderJSON(keys)
	require.NoError(t, err)
	assert.Contains(t, js, `"key": "api.listen_addr"`)
	assert.Contains(t, NewConfigSchemaRenderer(NewTheme(true)).Render(nil), "No configuration keys found")
}
