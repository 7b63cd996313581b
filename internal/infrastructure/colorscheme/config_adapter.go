package colorscheme

import (
	"github.com/bnema/toggley/internal/infrastructure/config"
)

// ConfigAdapter reads color_scheme from the live configuration, so a
// reloaded file takes effect on the next Resolve.
type ConfigAdapter struct {
	current func() *config.Config
}

// NewConfigAdapter creates an adapter over a config getter such as
// (*config.Manager).Get.
func NewConfigAdapter(current func() *config.Config) *ConfigAdapter {
	return &ConfigAdapter{current: current}
}

// GetColorScheme implements ConfigProvider.
func (a *ConfigAdapter) GetColorScheme() string {
	if a.current == nil {
		return ""
	}
	cfg := a.current()
	if cfg == nil {
		return ""
	}
	return cfg.ColorScheme
}
