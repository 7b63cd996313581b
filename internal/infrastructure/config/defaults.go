package config

import (
	"time"

	"github.com/bnema/toggley/internal/domain/entity"
)

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	// Bridge defaults
	defaultBridgePath        = "/bridge"
	defaultBridgeCallTimeout = 10 * time.Second

	// API defaults
	defaultAPIListenAddr = "127.0.0.1:7878"

	// Schedule defaults
	defaultPollInterval = time.Minute
	minPollInterval     = time.Second

	// Pages defaults, relative to the extension root
	defaultOptionsURL  = "options/options.html"
	defaultScheduleURL = "options/schedule.html"
)

// DefaultConfig returns the default configuration values.
// Database.Path is left empty and filled from the XDG data dir on load.
func DefaultConfig() *Config {
	glyphs := entity.DefaultGlyphMapping()
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Bridge: BridgeConfig{
			Path:        defaultBridgePath,
			CallTimeout: defaultBridgeCallTimeout,
		},
		API: APIConfig{
			ListenAddr: defaultAPIListenAddr,
		},
		Schedule: ScheduleConfig{
			PollInterval: defaultPollInterval,
		},
		Icon: IconConfig{
			Size: entity.DefaultIconSize,
			Glyphs: GlyphsConfig{
				Light:  string(glyphs.Light),
				Dark:   string(glyphs.Dark),
				System: string(glyphs.System),
			},
		},
		Themes: ThemesConfig{
			SystemThemeID: entity.HostDefaultTheme,
		},
		Pages: PagesConfig{
			OptionsURL:  defaultOptionsURL,
			ScheduleURL: defaultScheduleURL,
		},
		ColorScheme: ThemeDefault,
	}
}

// GlyphMapping converts the configured glyph names. Names that fail to parse
// keep the default for that mode.
func (c *Config) GlyphMapping() entity.GlyphMapping {
	mapping := entity.DefaultGlyphMapping()
	if g, err := entity.ParseGlyph(c.Icon.Glyphs.Light); err == nil {
		mapping.Light = g
	}
	if g, err := entity.ParseGlyph(c.Icon.Glyphs.Dark); err == nil {
		mapping.Dark = g
	}
	if g, err := entity.ParseGlyph(c.Icon.Glyphs.System); err == nil {
		mapping.System = g
	}
	return mapping
}

