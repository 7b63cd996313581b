package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/toggley/internal/application/port"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/logging"
)

// ValidationError carries the user-facing messages that blocked a save.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid preferences: " + strings.Join(e.Messages, "; ")
}

// ManagePreferencesUseCase backs the preferences and schedule pages.
type ManagePreferencesUseCase struct {
	store     *PreferenceStore
	directory port.ThemeDirectory
	switcher  *SwitchThemeUseCase
	icon      IconRefresher
	hidden    []string
}

// NewManagePreferencesUseCase creates a new preferences use case.
// hiddenThemes are never offered as choices (the host default theme).
func NewManagePreferencesUseCase(
	store *PreferenceStore,
	directory port.ThemeDirectory,
	switcher *SwitchThemeUseCase,
	icon IconRefresher,
	hiddenThemes ...string,
) *ManagePreferencesUseCase {
	if len(hiddenThemes) == 0 {
		hiddenThemes = []string{entity.HostDefaultTheme}
	}
	return &ManagePreferencesUseCase{
		store:     store,
		directory: directory,
		switcher:  switcher,
		icon:      icon,
		hidden:    hiddenThemes,
	}
}

// ListThemes returns the themes the user may pick from.
func (uc *ManagePreferencesUseCase) ListThemes(ctx context.Context) ([]entity.ThemeEntry, error) {
	entries, err := uc.directory.ListThemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	return entity.FilterThemes(entries, uc.hidden...), nil
}

// Load returns the stored preferences.
func (uc *ManagePreferencesUseCase) Load(ctx context.Context) (entity.Preferences, error) {
	return uc.store.LoadPreferences(ctx)
}

// Save validates and persists prefs, then re-activates the last used mode
// so a changed theme choice takes effect immediately. The stored last used
// mode always wins over the one carried by prefs.
func (uc *ManagePreferencesUseCase) Save(ctx context.Context, prefs entity.Preferences) (entity.Preferences, error) {
	log := logging.FromContext(ctx)

	if problems := prefs.Validate(); len(problems) > 0 {
		return entity.Preferences{}, &ValidationError{Messages: problems}
	}
	prefs = prefs.Normalized()

	current, err := uc.store.LoadPreferences(ctx)
	if err != nil {
		return entity.Preferences{}, err
	}
	prefs.LastUsed = current.LastUsed

	if err := uc.store.SavePreferences(ctx, prefs); err != nil {
		return entity.Preferences{}, err
	}
	log.Info().Str("light", prefs.LightTheme).Str("dark", prefs.DarkTheme).Msg("preferences saved")

	if _, err := uc.switcher.ActivateLastUsed(ctx, entity.SwitchSourceOptions); err != nil {
		return prefs, fmt.Errorf("failed to apply preferences: %w", err)
	}
	if uc.icon != nil {
		if err := uc.icon.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to refresh icon after save")
		}
	}
	return prefs, nil
}

// RestoreDefaults resets the preference set, enables the default light
// theme and re-renders the icon.
func (uc *ManagePreferencesUseCase) RestoreDefaults(ctx context.Context) (entity.Preferences, error) {
	defaults, err := uc.store.RestoreDefaults(ctx)
	if err != nil {
		return entity.Preferences{}, err
	}

	if err := uc.directory.Activate(ctx, defaults.LightTheme); err != nil {
		if !errors.Is(err, port.ErrThemeNotFound) {
			return defaults, fmt.Errorf("failed to enable default theme: %w", err)
		}
		logging.FromContext(ctx).Warn().Str("theme_id", defaults.LightTheme).Msg("default light theme not installed")
	}

	if uc.icon != nil {
		if err := uc.icon.Refresh(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to refresh icon after restore")
		}
	}

	logging.FromContext(ctx).Info().Msg("preferences restored to defaults")
	return defaults, nil
}

// LoadSchedule returns the stored schedule.
func (uc *ManagePreferencesUseCase) LoadSchedule(ctx context.Context) (entity.Schedule, error) {
	return uc.store.LoadSchedule(ctx)
}

// SaveSchedule validates and persists the schedule. The poller picks it
// up on its next tick.
func (uc *ManagePreferencesUseCase) SaveSchedule(ctx context.Context, schedule entity.Schedule) error {
	if err := uc.store.SaveSchedule(ctx, schedule); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().Str("light", schedule.Light).Str("dark", schedule.Dark).Msg("schedule saved")
	return nil
}
