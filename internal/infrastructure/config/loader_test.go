package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toggley/internal/domain/entity"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	t.Setenv("TOGGLEY_LOG_LEVEL", "")
	t.Setenv("TOGGLEY_LOG_FORMAT", "")
	dir := t.TempDir()
	mgr, err := NewManagerWithDirs(filepath.Join(dir, "config"), filepath.Join(dir, "data"))
	require.NoError(t, err)
	return mgr, dir
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", configName), []byte(body), 0o644))
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	mgr, dir := newTestManager(t)

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, defaultAPIListenAddr, cfg.API.ListenAddr)
	assert.Equal(t, time.Minute, cfg.Schedule.PollInterval)
	assert.Equal(t, entity.DefaultIconSize, cfg.Icon.Size)
	assert.Equal(t, entity.HostDefaultTheme, cfg.Themes.SystemThemeID)
	assert.Equal(t, ThemeDefault, cfg.ColorScheme)
	assert.Equal(t, filepath.Join(dir, "data", databaseName), cfg.Database.Path)

	assert.FileExists(t, filepath.Join(dir, "config", configName))
	assert.FileExists(t, filepath.Join(dir, "config", schemaName))
}

func TestLoad_ReadsFileValues(t *testing.T) {
	mgr, dir := newTestManager(t)
	writeConfig(t, dir, `
color_scheme = "PREFER-DARK"

[api]
listen_addr = "127.0.0.1:9000"

[schedule]
poll_interval = "30s"

[icon]
size = 48

[icon.glyphs]
light = "Sun"
dark = "moon"
system = "bolt"
`)

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "127.0.0.1:9000", cfg.API.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.Schedule.PollInterval)
	assert.Equal(t, 48, cfg.Icon.Size)
	assert.Equal(t, ThemePreferDark, cfg.ColorScheme)
	assert.Equal(t, entity.GlyphMapping{
		Light:  entity.GlyphSun,
		Dark:   entity.GlyphMoon,
		System: entity.GlyphBolt,
	}, cfg.GlyphMapping())
	// untouched sections keep defaults
	assert.Equal(t, defaultBridgePath, cfg.Bridge.Path)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	mgr, dir := newTestManager(t)
	writeConfig(t, dir, "[api]\nlisten_addr = \"127.0.0.1:9000\"\n")
	t.Setenv("TOGGLEY_API_LISTEN_ADDR", "127.0.0.1:9100")
	t.Setenv("TOGGLEY_LOG_LEVEL", "debug")

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "127.0.0.1:9100", cfg.API.ListenAddr)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ReportsAllInvalidValues(t *testing.T) {
	mgr, dir := newTestManager(t)
	writeConfig(t, dir, `
[icon]
size = 4

[schedule]
poll_interval = "10ms"

[api]
listen_addr = "nowhere"
`)

	err := mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "icon.size")
	assert.Contains(t, err.Error(), "schedule.poll_interval")
	assert.Contains(t, err.Error(), "api.listen_addr")
}

func TestLoad_MalformedFile(t *testing.T) {
	mgr, dir := newTestManager(t)
	writeConfig(t, dir, "[api\nlisten_addr = ")

	err := mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestSave_RoundTrip(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Schedule.PollInterval = 5 * time.Second
	cfg.Icon.Glyphs.Light = "sun"
	cfg.ColorScheme = ThemePreferLight
	require.NoError(t, mgr.Save(cfg))

	reloaded, err := NewManagerWithDirs(mgr.configDir, mgr.dataDir)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())

	got := reloaded.Get()
	assert.Equal(t, 5*time.Second, got.Schedule.PollInterval)
	assert.Equal(t, "sun", got.Icon.Glyphs.Light)
	assert.Equal(t, ThemePreferLight, got.ColorScheme)
}

func TestSave_RejectsInvalid(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Icon.Glyphs.Dark = "star"

	err := mgr.Save(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "icon.glyphs.dark")
	assert.Equal(t, "sun", mgr.Get().Icon.Glyphs.Dark)
}

func TestGet_ReturnsCopy(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.API.ListenAddr = "changed"

	assert.Equal(t, defaultAPIListenAddr, mgr.Get().API.ListenAddr)
}

func TestWatch_ReloadsOnExternalChange(t *testing.T) {
	mgr, dir := newTestManager(t)
	require.NoError(t, mgr.Load())
	require.NoError(t, mgr.Watch())

	changed := make(chan *Config, 4)
	mgr.OnConfigChange(func(cfg *Config) { changed <- cfg })

	cfg := DefaultConfig()
	cfg.ColorScheme = ThemePreferDark
	require.NoError(t, WriteConfigOrdered(cfg, filepath.Join(dir, "config", configName)))

	require.Eventually(t, func() bool {
		return mgr.Get().ColorScheme == ThemePreferDark
	}, 5*time.Second, 20*time.Millisecond)

	select {
	case got := <-changed:
		assert.NotNil(t, got)
	case <-time.After(5 * time.Second):
		t.Fatal("callback not notified")
	}
}

func TestMarshalTOML_DurationsAsStrings(t *testing.T) {
	data, err := MarshalTOML(DefaultConfig())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, toml.Unmarshal(data, &doc))

	schedule, ok := doc["schedule"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1m0s", schedule["poll_interval"])
	assert.Equal(t, ThemeDefault, doc["color_scheme"])
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColorScheme = "dark-please"
	cfg.Logging.Format = "TEXT"
	cfg.Icon.Glyphs.System = " Bolt "

	normalizeConfig(cfg)

	assert.Equal(t, ThemeDefault, cfg.ColorScheme)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "bolt", cfg.Icon.Glyphs.System)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bridge path", mutate: func(c *Config) { c.Bridge.Path = "bridge" }, wantErr: "bridge.path"},
		{name: "call timeout", mutate: func(c *Config) { c.Bridge.CallTimeout = 0 }, wantErr: "bridge.call_timeout"},
		{name: "log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "system theme", mutate: func(c *Config) { c.Themes.SystemThemeID = "" }, wantErr: "themes.system_theme_id"},
		{name: "pages", mutate: func(c *Config) { c.Pages.ScheduleURL = " " }, wantErr: "pages.schedule_url"},
		{name: "color scheme", mutate: func(c *Config) { c.ColorScheme = "auto" }, wantErr: "color_scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGlyphMapping_FallsBackPerMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Icon.Glyphs.Light = "sun"
	cfg.Icon.Glyphs.Dark = "nope"

	mapping := cfg.GlyphMapping()

	assert.Equal(t, entity.GlyphSun, mapping.Light)
	assert.Equal(t, entity.DefaultGlyphMapping().Dark, mapping.Dark)
}

func TestJSONSchema(t *testing.T) {
	data, err := JSONSchema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"color_scheme"`)
	assert.Contains(t, s, `"prefer-dark"`)
	assert.Contains(t, s, `"poll_interval"`)
}

func TestSchemaProvider_CoversEveryKey(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.NotEmpty(t, k.Section, k.Key)
		seen[k.Key] = true
	}
	for key := range flattenKeys("", toDocument(DefaultConfig())) {
		assert.True(t, seen[key], "missing schema entry for %s", key)
	}
}

func flattenKeys(prefix string, doc map[string]any) map[string]struct{} {
	out := make(map[string]struct{})
	for k, v := range doc {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			for nk := range flattenKeys(key, nested) {
				out[nk] = struct{}{}
			}
			continue
		}
		out[key] = struct{}{}
	}
	return out
}
