package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/bnema/toggley/internal/domain/entity"
)

const (
	minIconSize = 16
	maxIconSize = 512
)

// validateConfig collects every invalid value before failing.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateBridge(config)...)
	validationErrors = append(validationErrors, validateAPI(config)...)
	validationErrors = append(validationErrors, validateSchedule(config)...)
	validationErrors = append(validationErrors, validateIcon(config)...)
	validationErrors = append(validationErrors, validateThemes(config)...)
	validationErrors = append(validationErrors, validatePages(config)...)
	validationErrors = append(validationErrors, validateColorScheme(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, fatal (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json", "text":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateBridge(config *Config) []string {
	var validationErrors []string
	if !strings.HasPrefix(config.Bridge.Path, "/") {
		validationErrors = append(validationErrors, "bridge.path must start with /")
	}
	if config.Bridge.CallTimeout <= 0 {
		validationErrors = append(validationErrors, "bridge.call_timeout must be positive")
	}
	return validationErrors
}

func validateAPI(config *Config) []string {
	if _, _, err := net.SplitHostPort(config.API.ListenAddr); err != nil {
		return []string{fmt.Sprintf("api.listen_addr must be host:port (got %q)", config.API.ListenAddr)}
	}
	return nil
}

func validateSchedule(config *Config) []string {
	if config.Schedule.PollInterval < minPollInterval {
		return []string{fmt.Sprintf("schedule.poll_interval must be at least %s", minPollInterval)}
	}
	return nil
}

func validateIcon(config *Config) []string {
	var validationErrors []string
	if config.Icon.Size < minIconSize || config.Icon.Size > maxIconSize {
		validationErrors = append(validationErrors,
			fmt.Sprintf("icon.size must be between %d and %d", minIconSize, maxIconSize))
	}
	glyphs := map[string]string{
		"icon.glyphs.light":  config.Icon.Glyphs.Light,
		"icon.glyphs.dark":   config.Icon.Glyphs.Dark,
		"icon.glyphs.system": config.Icon.Glyphs.System,
	}
	for _, key := range []string{"icon.glyphs.light", "icon.glyphs.dark", "icon.glyphs.system"} {
		if _, err := entity.ParseGlyph(glyphs[key]); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: %v", key, err))
		}
	}
	return validationErrors
}

func validateThemes(config *Config) []string {
	if config.Themes.SystemThemeID == "" {
		return []string{"themes.system_theme_id cannot be empty"}
	}
	return nil
}

func validatePages(config *Config) []string {
	var validationErrors []string
	if strings.TrimSpace(config.Pages.OptionsURL) == "" {
		validationErrors = append(validationErrors, "pages.options_url cannot be empty")
	}
	if strings.TrimSpace(config.Pages.ScheduleURL) == "" {
		validationErrors = append(validationErrors, "pages.schedule_url cannot be empty")
	}
	return validationErrors
}

func validateColorScheme(config *Config) []string {
	switch config.ColorScheme {
	case ThemeDefault, ThemePreferDark, ThemePreferLight:
		return nil
	}
	return []string{fmt.Sprintf("color_scheme must be default, prefer-dark or prefer-light (got %q)", config.ColorScheme)}
}
