package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/domain/repository"
	"github.com/bnema/toggley/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/toggley/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestSettingsRepository_GetReturnsDefaultsWhenEmpty(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "toggley.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewSettingsRepository(db)

	defaults := entity.DefaultPreferences().ToMap()
	got, err := repo.Get(ctx, repository.ScopeSync, defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, got)
}

func TestSettingsRepository_TypePreservingRoundTrip(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "toggley.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewSettingsRepository(db)

	prefs := entity.Preferences{
		LightTheme:                 "light@example",
		DarkTheme:                  "dark@example",
		LightColorOverride:         true,
		LightColor:                 "#00ff00",
		LastUsed:                   entity.ModeDark,
		PrefersColorSchemeOverride: entity.SchemeOverrideFirefox,
	}
	require.NoError(t, repo.Set(ctx, repository.ScopeSync, prefs.ToMap()))

	got, err := repo.Get(ctx, repository.ScopeSync, entity.DefaultPreferences().ToMap())
	require.NoError(t, err)
	assert.Equal(t, true, got[entity.KeyLightColorOverride])
	assert.Equal(t, false, got[entity.KeyDarkColorOverride])
	assert.Equal(t, prefs, entity.PreferencesFromMap(got))
}

func TestSettingsRepository_ScopesAreIsolated(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "toggley.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewSettingsRepository(db)

	schedule := entity.Schedule{Light: "07:00", Dark: "19:30"}
	require.NoError(t, repo.Set(ctx, repository.ScopeLocal, map[string]any{
		entity.KeyThemeSchedule:   schedule.ToMap(),
		entity.KeyScheduleEnabled: true,
	}))
	require.NoError(t, repo.Set(ctx, repository.ScopeSync, map[string]any{entity.KeyLastUsed: "dark"}))

	require.NoError(t, repo.Clear(ctx, repository.ScopeSync))

	local, err := repo.Get(ctx, repository.ScopeLocal, map[string]any{
		entity.KeyThemeSchedule:   entity.DefaultSchedule().ToMap(),
		entity.KeyScheduleEnabled: false,
	})
	require.NoError(t, err)
	assert.Equal(t, schedule, entity.ScheduleFromValue(local[entity.KeyThemeSchedule]))
	assert.Equal(t, true, local[entity.KeyScheduleEnabled])

	synced, err := repo.Get(ctx, repository.ScopeSync, map[string]any{entity.KeyLastUsed: "light"})
	require.NoError(t, err)
	assert.Equal(t, "light", synced[entity.KeyLastUsed])
}

func TestSettingsRepository_SetOverwrites(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "toggley.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewSettingsRepository(db)

	require.NoError(t, repo.Set(ctx, repository.ScopeSync, map[string]any{entity.KeyLastUsed: "dark"}))
	require.NoError(t, repo.Set(ctx, repository.ScopeSync, map[string]any{entity.KeyLastUsed: "system"}))

	got, err := repo.Get(ctx, repository.ScopeSync, map[string]any{entity.KeyLastUsed: "light"})
	require.NoError(t, err)
	assert.Equal(t, "system", got[entity.KeyLastUsed])
}

func TestSwitchLogRepository(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "toggley.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewSwitchLogRepository(db)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	base := time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Record(ctx, &entity.ThemeSwitch{
		Mode: entity.ModeLight, ThemeID: entity.DefaultLightTheme, Source: entity.SwitchSourceSchedule, SwitchedAt: base,
	}))
	require.NoError(t, repo.Record(ctx, &entity.ThemeSwitch{
		Mode: entity.ModeDark, ThemeID: entity.DefaultDarkTheme, Source: entity.SwitchSourceToggle, SwitchedAt: base.Add(time.Hour),
	}))

	latest, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, entity.ModeDark, latest.Mode)
	assert.Equal(t, entity.SwitchSourceToggle, latest.Source)
	assert.True(t, latest.SwitchedAt.Equal(base.Add(time.Hour)))

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	_, err = repo.Recent(ctx, 0)
	assert.Error(t, err)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "toggley.db")

	db, err := sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	require.NoError(t, sqlite.RunMigrations(ctx, db))

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)

	migrations, err := sqlite.LoadMigrations()
	require.NoError(t, err)
	assert.Equal(t, migrations[len(migrations)-1].Version, version)
	require.NoError(t, db.Close())
}
