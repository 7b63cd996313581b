package config

import (
	"fmt"

	"github.com/bnema/toggley/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionAppearance = "Appearance"
	SectionLogging    = "Logging"
	SectionBridge     = "Bridge"
	SectionAPI        = "API"
	SectionSchedule   = "Schedule"
	SectionThemes     = "Themes"
	SectionPages      = "Pages"
	SectionDatabase   = "Database"
)

var glyphValues = []string{string(entity.GlyphSun), string(entity.GlyphMoon), string(entity.GlyphBolt)}

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (*SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	d := DefaultConfig()

	return []entity.ConfigKeyInfo{
		{
			Key:         "color_scheme",
			Type:        "string",
			Default:     d.ColorScheme,
			Description: "Ambient color scheme override (default follows the browser and desktop)",
			Values:      []string{ThemeDefault, ThemePreferDark, ThemePreferLight},
			Section:     SectionAppearance,
		},
		{
			Key:         "icon.size",
			Type:        "int",
			Default:     fmt.Sprintf("%d", d.Icon.Size),
			Description: "Toolbar icon size in pixels",
			Range:       fmt.Sprintf("%d-%d", minIconSize, maxIconSize),
			Section:     SectionAppearance,
		},
		{
			Key:         "icon.glyphs.light",
			Type:        "string",
			Default:     d.Icon.Glyphs.Light,
			Description: "Glyph shown while the light theme is active",
			Values:      glyphValues,
			Section:     SectionAppearance,
		},
		{
			Key:         "icon.glyphs.dark",
			Type:        "string",
			Default:     d.Icon.Glyphs.Dark,
			Description: "Glyph shown while the dark theme is active",
			Values:      glyphValues,
			Section:     SectionAppearance,
		},
		{
			Key:         "icon.glyphs.system",
			Type:        "string",
			Default:     d.Icon.Glyphs.System,
			Description: "Glyph shown while the system theme is active",
			Values:      glyphValues,
			Section:     SectionAppearance,
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     d.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     d.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "bridge.path",
			Type:        "string",
			Default:     d.Bridge.Path,
			Description: "HTTP path the browser shim opens its websocket on",
			Section:     SectionBridge,
		},
		{
			Key:         "bridge.call_timeout",
			Type:        "duration",
			Default:     d.Bridge.CallTimeout.String(),
			Description: "Timeout for each request sent to the browser",
			Range:       ">0",
			Section:     SectionBridge,
		},
		{
			Key:         "api.listen_addr",
			Type:        "string",
			Default:     d.API.ListenAddr,
			Description: "Loopback address of the control API and bridge",
			Section:     SectionAPI,
		},
		{
			Key:         "schedule.poll_interval",
			Type:        "duration",
			Default:     d.Schedule.PollInterval.String(),
			Description: "How often the schedule is checked while enabled",
			Range:       ">=" + minPollInterval.String(),
			Section:     SectionSchedule,
		},
		{
			Key:         "themes.system_theme_id",
			Type:        "string",
			Default:     d.Themes.SystemThemeID,
			Description: "Theme activated in system mode",
			Section:     SectionThemes,
		},
		{
			Key:         "pages.options_url",
			Type:        "string",
			Default:     d.Pages.OptionsURL,
			Description: "Page opened by the Modify Preferences menu entry",
			Section:     SectionPages,
		},
		{
			Key:         "pages.schedule_url",
			Type:        "string",
			Default:     d.Pages.ScheduleURL,
			Description: "Page opened by the Customize Schedule menu entry",
			Section:     SectionPages,
		},
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "(XDG data dir)/" + databaseName,
			Description: "SQLite file holding preferences and the switch log",
			Section:     SectionDatabase,
		},
	}
}
