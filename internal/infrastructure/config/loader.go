package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	dataDir   string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// skipNextReload suppresses the fsnotify reload caused by our own Save.
	skipNextReload bool
}

// NewManager creates a configuration manager rooted at the XDG directories.
func NewManager() (*Manager, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDirs(dirs.ConfigHome, dirs.DataHome)
}

// NewManagerWithDirs creates a manager that reads config.toml from configDir
// and places the default database under dataDir.
func NewManagerWithDirs(configDir, dataDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// TOGGLEY_API_LISTEN_ADDR, TOGGLEY_SCHEDULE_POLL_INTERVAL, ...
	v.SetEnvPrefix("TOGGLEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with the logger bootstrap.
	if err := v.BindEnv("logging.level", "TOGGLEY_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TOGGLEY_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TOGGLEY_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TOGGLEY_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		dataDir:   dataDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables,
// writing a default file first if none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, dir := range []string{m.configDir, m.dataDir} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to ensure directory %s: %w", dir, err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	m.finish(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// finish fills derived values and normalizes enums.
func (m *Manager) finish(config *Config) {
	if config.Database.Path == "" {
		config.Database.Path = filepath.Join(m.dataDir, databaseName)
	}
	normalizeConfig(config)
}

func normalizeConfig(config *Config) {
	switch strings.ToLower(strings.TrimSpace(config.ColorScheme)) {
	case ThemePreferDark:
		config.ColorScheme = ThemePreferDark
	case ThemePreferLight:
		config.ColorScheme = ThemePreferLight
	default:
		config.ColorScheme = ThemeDefault
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}

	config.Icon.Glyphs.Light = strings.ToLower(strings.TrimSpace(config.Icon.Glyphs.Light))
	config.Icon.Glyphs.Dark = strings.ToLower(strings.TrimSpace(config.Icon.Glyphs.Dark))
	config.Icon.Glyphs.System = strings.ToLower(strings.TrimSpace(config.Icon.Glyphs.System))
	config.Themes.SystemThemeID = strings.TrimSpace(config.Themes.SystemThemeID)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if m.watching {
		m.skipNextReload = true
	}
	if err := WriteConfigOrdered(cfg, m.ConfigFile()); err != nil {
		m.skipNextReload = false
		return err
	}

	if !m.watching {
		return m.reload()
	}
	configCopy := *cfg
	m.config = &configCopy
	return nil
}

// ConfigFile returns the path of the config file this manager reads.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configName)
}

// ConfigDir returns the directory holding config.toml.
func (m *Manager) ConfigDir() string {
	return m.configDir
}

func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, configName)
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if _, err := GenerateSchemaFile(m.configDir); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("database.path", "")

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("bridge.path", defaults.Bridge.Path)
	m.viper.SetDefault("bridge.call_timeout", defaults.Bridge.CallTimeout.String())

	m.viper.SetDefault("api.listen_addr", defaults.API.ListenAddr)

	m.viper.SetDefault("schedule.poll_interval", defaults.Schedule.PollInterval.String())

	m.viper.SetDefault("icon.size", defaults.Icon.Size)
	m.viper.SetDefault("icon.glyphs.light", defaults.Icon.Glyphs.Light)
	m.viper.SetDefault("icon.glyphs.dark", defaults.Icon.Glyphs.Dark)
	m.viper.SetDefault("icon.glyphs.system", defaults.Icon.Glyphs.System)

	m.viper.SetDefault("themes.system_theme_id", defaults.Themes.SystemThemeID)

	m.viper.SetDefault("pages.options_url", defaults.Pages.OptionsURL)
	m.viper.SetDefault("pages.schedule_url", defaults.Pages.ScheduleURL)

	m.viper.SetDefault("color_scheme", defaults.ColorScheme)
}
