package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// WriteConfigOrdered writes cfg to path as TOML. Tables and keys are
// emitted in alphabetical order and durations as strings ("1m0s"), so the
// file round-trips through viper and diffs stay stable.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := MarshalTOML(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MarshalTOML renders cfg the way WriteConfigOrdered stores it.
func MarshalTOML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(toDocument(cfg)); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// toDocument flattens cfg into nested maps; go-toml sorts map keys.
func toDocument(cfg *Config) map[string]any {
	return map[string]any{
		"color_scheme": cfg.ColorScheme,
		"database": map[string]any{
			"path": cfg.Database.Path,
		},
		"logging": map[string]any{
			"level":  cfg.Logging.Level,
			"format": cfg.Logging.Format,
		},
		"bridge": map[string]any{
			"path":         cfg.Bridge.Path,
			"call_timeout": cfg.Bridge.CallTimeout.String(),
		},
		"api": map[string]any{
			"listen_addr": cfg.API.ListenAddr,
		},
		"schedule": map[string]any{
			"poll_interval": cfg.Schedule.PollInterval.String(),
		},
		"icon": map[string]any{
			"size": cfg.Icon.Size,
			"glyphs": map[string]any{
				"light":  cfg.Icon.Glyphs.Light,
				"dark":   cfg.Icon.Glyphs.Dark,
				"system": cfg.Icon.Glyphs.System,
			},
		},
		"themes": map[string]any{
			"system_theme_id": cfg.Themes.SystemThemeID,
		},
		"pages": map[string]any{
			"options_url":  cfg.Pages.OptionsURL,
			"schedule_url": cfg.Pages.ScheduleURL,
		},
	}
}
