package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/toggley/internal/application/port"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/domain/repository"
	"github.com/bnema/toggley/internal/logging"
)

// IconRefresher re-renders the toolbar icon from current state.
type IconRefresher interface {
	Refresh(ctx context.Context) error
}

// SwitchResult reports what a switch request did.
type SwitchResult struct {
	Mode     entity.Mode `json:"mode"`
	ThemeID  string      `json:"themeId,omitempty"`
	Switched bool        `json:"switched"` // false when a theme is missing and nothing changed
}

// SwitchThemeDeps groups the collaborators of SwitchThemeUseCase.
// SchemeOverride, SwitchLog and Icon are optional.
type SwitchThemeDeps struct {
	Store          *PreferenceStore
	Directory      port.ThemeDirectory
	Ambient        port.ColorSchemeResolver
	SchemeOverride port.ColorSchemeOverride
	SwitchLog      repository.SwitchLogRepository
	Icon           IconRefresher
	SystemThemeID  string
	Now            func() time.Time
}

// SwitchThemeUseCase activates the theme for a mode and records it.
type SwitchThemeUseCase struct {
	deps SwitchThemeDeps

	warnOnce sync.Once
}

// NewSwitchThemeUseCase creates a new theme switching use case.
func NewSwitchThemeUseCase(deps SwitchThemeDeps) *SwitchThemeUseCase {
	if deps.SystemThemeID == "" {
		deps.SystemThemeID = entity.HostDefaultTheme
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &SwitchThemeUseCase{deps: deps}
}

// Toggle flips between light and dark.
// If either configured theme is not installed, nothing changes and no error is returned.
func (uc *SwitchThemeUseCase) Toggle(ctx context.Context) (*SwitchResult, error) {
	log := logging.FromContext(ctx)

	prefs, err := uc.deps.Store.LoadPreferences(ctx)
	if err != nil {
		return nil, err
	}

	for _, id := range []string{prefs.LightTheme, prefs.DarkTheme} {
		if _, err := uc.deps.Directory.Get(ctx, id); err != nil {
			if errors.Is(err, port.ErrThemeNotFound) {
				log.Debug().Str("theme_id", id).Msg("toggle aborted: theme not installed")
				return &SwitchResult{Mode: prefs.LastUsed}, nil
			}
			return nil, fmt.Errorf("failed to look up theme %s: %w", id, err)
		}
	}

	target := prefs.LastUsed.Toggled(uc.ambientDark())
	return uc.activate(ctx, prefs, target, entity.SwitchSourceToggle)
}

// Apply switches to an explicit mode.
// A missing target theme aborts silently like Toggle.
func (uc *SwitchThemeUseCase) Apply(ctx context.Context, mode entity.Mode, source entity.SwitchSource) (*SwitchResult, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidMode, mode)
	}

	prefs, err := uc.deps.Store.LoadPreferences(ctx)
	if err != nil {
		return nil, err
	}

	themeID := prefs.ThemeFor(mode, uc.deps.SystemThemeID)
	if _, err := uc.deps.Directory.Get(ctx, themeID); err != nil {
		if errors.Is(err, port.ErrThemeNotFound) {
			logging.FromContext(ctx).Debug().
				Str("mode", mode.String()).
				Str("theme_id", themeID).
				Msg("switch aborted: theme not installed")
			return &SwitchResult{Mode: mode, ThemeID: themeID}, nil
		}
		return nil, fmt.Errorf("failed to look up theme %s: %w", themeID, err)
	}

	return uc.activate(ctx, prefs, mode, source)
}

// ActivateLastUsed re-applies the persisted mode.
func (uc *SwitchThemeUseCase) ActivateLastUsed(ctx context.Context, source entity.SwitchSource) (*SwitchResult, error) {
	prefs, err := uc.deps.Store.LoadPreferences(ctx)
	if err != nil {
		return nil, err
	}
	return uc.Apply(ctx, prefs.LastUsed, source)
}

func (uc *SwitchThemeUseCase) activate(
	ctx context.Context,
	prefs entity.Preferences,
	mode entity.Mode,
	source entity.SwitchSource,
) (*SwitchResult, error) {
	log := logging.FromContext(ctx)
	themeID := prefs.ThemeFor(mode, uc.deps.SystemThemeID)

	if err := uc.deps.Directory.Activate(ctx, themeID); err != nil {
		return nil, fmt.Errorf("failed to activate theme %s: %w", themeID, err)
	}
	if err := uc.deps.Store.SetLastUsed(ctx, mode); err != nil {
		return nil, err
	}

	log.Info().
		Str("mode", mode.String()).
		Str("theme_id", themeID).
		Str("source", string(source)).
		Msg("theme switched")

	uc.applyColorScheme(ctx, prefs.PrefersColorSchemeOverride, mode)

	if uc.deps.SwitchLog != nil {
		sw := &entity.ThemeSwitch{Mode: mode, ThemeID: themeID, Source: source, SwitchedAt: uc.deps.Now()}
		if err := uc.deps.SwitchLog.Record(ctx, sw); err != nil {
			log.Warn().Err(err).Msg("failed to record theme switch")
		}
	}

	if uc.deps.Icon != nil {
		if err := uc.deps.Icon.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to refresh icon after switch")
		}
	}

	return &SwitchResult{Mode: mode, ThemeID: themeID, Switched: true}, nil
}

func (uc *SwitchThemeUseCase) applyColorScheme(ctx context.Context, pref entity.SchemeOverride, mode entity.Mode) {
	log := logging.FromContext(ctx)
	override := uc.deps.SchemeOverride
	if override == nil {
		return
	}
	if !override.SupportsColorSchemeOverride() {
		uc.warnOnce.Do(func() {
			log.Warn().Msg("browser cannot override the content color scheme; skipping")
		})
		return
	}

	scheme := "auto"
	if pref == entity.SchemeOverrideToggley {
		scheme = mode.ColorScheme()
	}
	if err := override.SetContentColorScheme(ctx, scheme); err != nil {
		log.Warn().Err(err).Str("scheme", scheme).Msg("failed to set content color scheme")
	}
}

func (uc *SwitchThemeUseCase) ambientDark() bool {
	if uc.deps.Ambient == nil {
		return false
	}
	return uc.deps.Ambient.Resolve().PrefersDark
}
