package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/domain/repository"
	"github.com/bnema/toggley/internal/logging"
)

// StorageChange describes a successful write to the preference store.
type StorageChange struct {
	Scope repository.Scope
	Keys  []string
}

// PreferenceStore is the typed boundary over the settings repository.
// Values are decoded and validated once here; callers only see entities.
type PreferenceStore struct {
	repo repository.SettingsRepository

	mu        sync.RWMutex
	observers []func(context.Context, StorageChange)
}

// NewPreferenceStore creates a store backed by repo.
func NewPreferenceStore(repo repository.SettingsRepository) *PreferenceStore {
	return &PreferenceStore{repo: repo}
}

// OnChange registers an observer called after every successful write.
func (s *PreferenceStore) OnChange(fn func(context.Context, StorageChange)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// LoadPreferences reads the synced preferences, filling absent keys with defaults.
func (s *PreferenceStore) LoadPreferences(ctx context.Context) (entity.Preferences, error) {
	values, err := s.repo.Get(ctx, repository.ScopeSync, entity.DefaultPreferences().ToMap())
	if err != nil {
		return entity.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	return entity.PreferencesFromMap(values), nil
}

// SavePreferences writes the full preference set.
func (s *PreferenceStore) SavePreferences(ctx context.Context, prefs entity.Preferences) error {
	return s.set(ctx, repository.ScopeSync, prefs.ToMap())
}

// SetLastUsed persists the mode most recently applied.
func (s *PreferenceStore) SetLastUsed(ctx context.Context, mode entity.Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidMode, mode)
	}
	return s.set(ctx, repository.ScopeSync, map[string]any{entity.KeyLastUsed: string(mode)})
}

// RestoreDefaults clears the synced scope and immediately writes the full
// default mapping, so no reader ever sees a partially populated set.
func (s *PreferenceStore) RestoreDefaults(ctx context.Context) (entity.Preferences, error) {
	defaults := entity.DefaultPreferences()
	if err := s.repo.Clear(ctx, repository.ScopeSync); err != nil {
		return entity.Preferences{}, fmt.Errorf("failed to clear preferences: %w", err)
	}
	if err := s.set(ctx, repository.ScopeSync, defaults.ToMap()); err != nil {
		return entity.Preferences{}, err
	}
	return defaults, nil
}

// LoadSchedule reads the device-local schedule.
func (s *PreferenceStore) LoadSchedule(ctx context.Context) (entity.Schedule, error) {
	values, err := s.repo.Get(ctx, repository.ScopeLocal, map[string]any{
		entity.KeyThemeSchedule: entity.DefaultSchedule().ToMap(),
	})
	if err != nil {
		return entity.Schedule{}, fmt.Errorf("failed to load schedule: %w", err)
	}
	return entity.ScheduleFromValue(values[entity.KeyThemeSchedule]), nil
}

// SaveSchedule validates and writes the schedule.
func (s *PreferenceStore) SaveSchedule(ctx context.Context, schedule entity.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	return s.set(ctx, repository.ScopeLocal, map[string]any{entity.KeyThemeSchedule: schedule.ToMap()})
}

// ScheduleEnabled reports whether scheduled switching was left on.
func (s *PreferenceStore) ScheduleEnabled(ctx context.Context) (bool, error) {
	values, err := s.repo.Get(ctx, repository.ScopeLocal, map[string]any{entity.KeyScheduleEnabled: false})
	if err != nil {
		return false, fmt.Errorf("failed to load schedule state: %w", err)
	}
	enabled, _ := values[entity.KeyScheduleEnabled].(bool)
	return enabled, nil
}

// SetScheduleEnabled persists the scheduled switching flag.
func (s *PreferenceStore) SetScheduleEnabled(ctx context.Context, enabled bool) error {
	return s.set(ctx, repository.ScopeLocal, map[string]any{entity.KeyScheduleEnabled: enabled})
}

func (s *PreferenceStore) set(ctx context.Context, scope repository.Scope, values map[string]any) error {
	if err := s.repo.Set(ctx, scope, values); err != nil {
		return fmt.Errorf("failed to write %s settings: %w", scope, err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	logging.FromContext(ctx).Debug().Str("scope", string(scope)).Strs("keys", keys).Msg("settings written")

	s.mu.RLock()
	observers := make([]func(context.Context, StorageChange), len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	change := StorageChange{Scope: scope, Keys: keys}
	for _, fn := range observers {
		fn(ctx, change)
	}
	return nil
}
