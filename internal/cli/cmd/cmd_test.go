package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toggley/internal/domain/entity"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resolveAt, resolveLight, resolveDark = "", entity.DefaultLightTime, entity.DefaultDarkTime
	})
	err := rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"morning", []string{"resolve", "--at", "06:00"}, "light"},
		{"evening", []string{"resolve", "--at", "18:00"}, "dark"},
		{"overnight light", []string{"resolve", "--light", "20:00", "--dark", "08:00", "--at", "02:00"}, "light"},
		{"overnight dark", []string{"resolve", "--light", "20:00", "--dark", "08:00", "--at", "12:00"}, "dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runRoot(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestResolve_RejectsBadInput(t *testing.T) {
	_, err := runRoot(t, "resolve", "--at", "25:00")
	assert.Error(t, err)

	_, err = runRoot(t, "resolve", "--light", "09:00", "--dark", "09:00", "--at", "10:00")
	assert.ErrorIs(t, err, entity.ErrScheduleSameTime)
}

func TestEncodePrefs(t *testing.T) {
	prefs := entity.DefaultPreferences()

	for format, want := range map[string]string{
		"json": `"lightTheme": "` + prefs.LightTheme + `"`,
		"yaml": "lightTheme: " + prefs.LightTheme,
		"toml": "lightTheme = ",
	} {
		var buf bytes.Buffer
		require.NoError(t, encodePrefs(&buf, format, prefs), format)
		assert.Contains(t, buf.String(), want, format)
	}

	assert.Error(t, encodePrefs(&bytes.Buffer{}, "ini", prefs))
}

func TestRenderLocalIcon(t *testing.T) {
	ic, err := renderLocalIcon("dark", "red", 16, entity.DefaultGlyphMapping())
	require.NoError(t, err)
	assert.Equal(t, entity.ModeDark, ic.Mode)
	assert.Equal(t, entity.GlyphSun, ic.Glyph)
	assert.Equal(t, "red", ic.Color)
	assert.Contains(t, ic.SVG, "<svg")

	_, err = renderLocalIcon("dusk", "", 16, entity.DefaultGlyphMapping())
	assert.Error(t, err)

	_, err = renderLocalIcon("light", "not a color", 16, entity.DefaultGlyphMapping())
	assert.Error(t, err)
}
