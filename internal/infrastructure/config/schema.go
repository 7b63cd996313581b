package config

import "time"

// Config represents the complete configuration for toggley.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Bridge is the websocket endpoint the browser shim connects to.
	Bridge BridgeConfig `mapstructure:"bridge" yaml:"bridge" toml:"bridge" json:"bridge"`
	// API is the local HTTP control surface used by the CLI.
	API      APIConfig      `mapstructure:"api" yaml:"api" toml:"api" json:"api"`
	Schedule ScheduleConfig `mapstructure:"schedule" yaml:"schedule" toml:"schedule" json:"schedule"`
	Icon     IconConfig     `mapstructure:"icon" yaml:"icon" toml:"icon" json:"icon"`
	Themes   ThemesConfig   `mapstructure:"themes" yaml:"themes" toml:"themes" json:"themes"`
	Pages    PagesConfig    `mapstructure:"pages" yaml:"pages" toml:"pages" json:"pages"`
	// ColorScheme overrides ambient detection: default, prefer-dark or prefer-light.
	ColorScheme string `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
}

// Color scheme override values.
const (
	ThemePreferDark  = "prefer-dark"
	ThemePreferLight = "prefer-light"
	ThemeDefault     = "default"
)

// DatabaseConfig holds the settings database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,enum=text"`
}

// BridgeConfig configures the host bridge listener.
type BridgeConfig struct {
	// Path is the HTTP path the shim upgrades to a websocket on.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
	// CallTimeout bounds every request sent to the shim.
	CallTimeout time.Duration `mapstructure:"call_timeout" yaml:"call_timeout" toml:"call_timeout" json:"call_timeout" jsonschema:"type=string"`
}

// APIConfig configures the local control API.
type APIConfig struct {
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr" toml:"listen_addr" json:"listen_addr"`
}

// ScheduleConfig tunes the schedule poller.
type ScheduleConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval" toml:"poll_interval" json:"poll_interval" jsonschema:"type=string"`
}

// IconConfig controls the toolbar icon.
type IconConfig struct {
	Size   int          `mapstructure:"size" yaml:"size" toml:"size" json:"size"`
	Glyphs GlyphsConfig `mapstructure:"glyphs" yaml:"glyphs" toml:"glyphs" json:"glyphs"`
}

// GlyphsConfig maps each mode to a glyph name (sun, moon or bolt).
type GlyphsConfig struct {
	Light  string `mapstructure:"light" yaml:"light" toml:"light" json:"light"`
	Dark   string `mapstructure:"dark" yaml:"dark" toml:"dark" json:"dark"`
	System string `mapstructure:"system" yaml:"system" toml:"system" json:"system"`
}

// ThemesConfig names host themes with special meaning.
type ThemesConfig struct {
	// SystemThemeID is the theme activated for system mode.
	SystemThemeID string `mapstructure:"system_theme_id" yaml:"system_theme_id" toml:"system_theme_id" json:"system_theme_id"`
}

// PagesConfig holds the pages opened from the context menu.
// Relative paths are resolved by the shim against the extension root.
type PagesConfig struct {
	OptionsURL  string `mapstructure:"options_url" yaml:"options_url" toml:"options_url" json:"options_url"`
	ScheduleURL string `mapstructure:"schedule_url" yaml:"schedule_url" toml:"schedule_url" json:"schedule_url"`
}
