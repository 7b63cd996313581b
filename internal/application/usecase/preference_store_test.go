package usecase_test

import (
	"context"
	"testing"

	"github.com/bnema/toggley/internal/application/usecase"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/domain/repository"
	repomocks "github.com/bnema/toggley/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreferenceStore_LoadDefaultsOnEmptyStore(t *testing.T) {
	ctx := testContext()
	store := usecase.NewPreferenceStore(newMemorySettings())

	prefs, err := store.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPreferences(), prefs)

	schedule, err := store.LoadSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSchedule(), schedule)

	enabled, err := store.ScheduleEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestPreferenceStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := testContext()
	store := usecase.NewPreferenceStore(newMemorySettings())

	prefs := entity.Preferences{
		LightTheme:                 "a@example",
		DarkTheme:                  "b@example",
		LightColorOverride:         true,
		DarkColorOverride:          true,
		LightColor:                 "#111111",
		DarkColor:                  "hsl(0 0% 90%)",
		LastUsed:                   entity.ModeSystem,
		PrefersColorSchemeOverride: entity.SchemeOverrideFirefox,
	}
	require.NoError(t, store.SavePreferences(ctx, prefs))

	got, err := store.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs, got)
}

func TestPreferenceStore_SaveScheduleValidates(t *testing.T) {
	ctx := testContext()
	repo := newMemorySettings()
	store := usecase.NewPreferenceStore(repo)

	err := store.SaveSchedule(ctx, entity.Schedule{Light: "09:00", Dark: "09:00"})
	assert.ErrorIs(t, err, entity.ErrScheduleSameTime)
	assert.Zero(t, repo.keys(repository.ScopeLocal))

	require.NoError(t, store.SaveSchedule(ctx, entity.Schedule{Light: "07:30", Dark: "20:15"}))
	got, err := store.LoadSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Schedule{Light: "07:30", Dark: "20:15"}, got)
}

func TestPreferenceStore_SetLastUsedRejectsInvalidMode(t *testing.T) {
	store := usecase.NewPreferenceStore(newMemorySettings())
	err := store.SetLastUsed(testContext(), entity.Mode("sepia"))
	assert.ErrorIs(t, err, entity.ErrInvalidMode)
}

func TestPreferenceStore_RestoreDefaultsClearsThenWritesFullSet(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	store := usecase.NewPreferenceStore(repo)

	var order []string
	repo.EXPECT().Clear(mock.Anything, repository.ScopeSync).
		Run(func(context.Context, repository.Scope) { order = append(order, "clear") }).
		Return(nil)
	repo.EXPECT().Set(mock.Anything, repository.ScopeSync, entity.DefaultPreferences().ToMap()).
		Run(func(context.Context, repository.Scope, map[string]any) { order = append(order, "set") }).
		Return(nil)

	prefs, err := store.RestoreDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPreferences(), prefs)
	assert.Equal(t, []string{"clear", "set"}, order)
}

func TestPreferenceStore_RestoreDefaultsLeavesExactlyDefaults(t *testing.T) {
	ctx := testContext()
	repo := newMemorySettings()
	store := usecase.NewPreferenceStore(repo)

	custom := entity.DefaultPreferences()
	custom.DarkTheme = "custom@example"
	custom.DarkColorOverride = true
	custom.DarkColor = "red"
	require.NoError(t, store.SavePreferences(ctx, custom))
	require.NoError(t, repo.Set(ctx, repository.ScopeSync, map[string]any{"legacyKey": 1}))

	_, err := store.RestoreDefaults(ctx)
	require.NoError(t, err)

	got, err := store.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPreferences(), got)
	assert.Equal(t, len(entity.DefaultPreferences().ToMap()), repo.keys(repository.ScopeSync))
}

func TestPreferenceStore_ObserversSeeSuccessfulWritesOnly(t *testing.T) {
	ctx := testContext()
	repo := newMemorySettings()
	store := usecase.NewPreferenceStore(repo)

	var changes []usecase.StorageChange
	store.OnChange(func(_ context.Context, c usecase.StorageChange) {
		changes = append(changes, c)
	})

	require.NoError(t, store.SetLastUsed(ctx, entity.ModeDark))
	require.NoError(t, store.SetScheduleEnabled(ctx, true))

	repo.failSet = true
	assert.Error(t, store.SetLastUsed(ctx, entity.ModeLight))

	require.Len(t, changes, 2)
	assert.Equal(t, repository.ScopeSync, changes[0].Scope)
	assert.Equal(t, []string{entity.KeyLastUsed}, changes[0].Keys)
	assert.Equal(t, repository.ScopeLocal, changes[1].Scope)
	assert.Equal(t, []string{entity.KeyScheduleEnabled}, changes[1].Keys)
}

func TestPreferenceStore_LoadWrapsRepositoryError(t *testing.T) {
	repo := newMemorySettings()
	repo.failGet = true
	store := usecase.NewPreferenceStore(repo)

	_, err := store.LoadPreferences(testContext())
	assert.ErrorIs(t, err, errStorage)
}
