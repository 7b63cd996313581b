package usecase_test

import (
	"errors"
	"testing"

	"github.com/bnema/toggley/internal/application/port"
	portmocks "github.com/bnema/toggley/internal/application/port/mocks"
	"github.com/bnema/toggley/internal/application/usecase"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type prefsFixture struct {
	settings  *memorySettings
	store     *usecase.PreferenceStore
	directory *portmocks.MockThemeDirectory
	icon      *countingRefresher
	uc        *usecase.ManagePreferencesUseCase
}

func newPrefsFixture(t *testing.T) *prefsFixture {
	t.Helper()
	f := &prefsFixture{
		settings:  newMemorySettings(),
		directory: portmocks.NewMockThemeDirectory(t),
		icon:      &countingRefresher{},
	}
	f.store = usecase.NewPreferenceStore(f.settings)
	switcher := usecase.NewSwitchThemeUseCase(usecase.SwitchThemeDeps{
		Store:     f.store,
		Directory: f.directory,
	})
	f.uc = usecase.NewManagePreferencesUseCase(f.store, f.directory, switcher, f.icon)
	return f
}

func TestManagePreferences_ListThemesHidesHostDefault(t *testing.T) {
	f := newPrefsFixture(t)
	f.directory.EXPECT().ListThemes(mock.Anything).Return([]entity.ThemeEntry{
		*themeEntry(entity.DefaultLightTheme, true),
		*themeEntry(entity.HostDefaultTheme, false),
		{ID: "ublock@example.com", Name: "uBlock", Type: "extension"},
		*themeEntry(entity.DefaultDarkTheme, false),
	}, nil)

	themes, err := f.uc.ListThemes(testContext())
	require.NoError(t, err)

	ids := make([]string, 0, len(themes))
	for _, th := range themes {
		ids = append(ids, th.ID)
	}
	assert.Equal(t, []string{entity.DefaultLightTheme, entity.DefaultDarkTheme}, ids)
}

func TestManagePreferences_SaveRejectsInvalid(t *testing.T) {
	ctx := testContext()
	f := newPrefsFixture(t)

	prefs := entity.DefaultPreferences()
	prefs.DarkTheme = prefs.LightTheme
	prefs.DarkColor = "not-a-color"
	prefs.DarkColorOverride = true

	_, err := f.uc.Save(ctx, prefs)

	var verr *usecase.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{entity.MsgThemesMustDiffer, entity.MsgInvalidDarkColor}, verr.Messages)
	assert.Zero(t, f.settings.keys(repository.ScopeSync), "nothing is written")
}

func TestManagePreferences_SaveAppliesLastUsed(t *testing.T) {
	ctx := testContext()
	f := newPrefsFixture(t)
	require.NoError(t, f.store.SetLastUsed(ctx, entity.ModeDark))

	f.directory.EXPECT().Get(mock.Anything, "midnight@example.com").Return(themeEntry("midnight@example.com", false), nil)
	f.directory.EXPECT().Activate(mock.Anything, "midnight@example.com").Return(nil).Once()

	prefs := entity.DefaultPreferences()
	prefs.DarkTheme = "midnight@example.com"
	prefs.LastUsed = ""
	prefs.DarkColor = "  #123456 "
	prefs.LightColorOverride = true

	saved, err := f.uc.Save(ctx, prefs)
	require.NoError(t, err)

	assert.Equal(t, entity.ModeDark, saved.LastUsed, "stored mode is kept")
	assert.Equal(t, "#123456", saved.DarkColor)
	assert.False(t, saved.LightColorOverride, "override without a color is dropped")
	assert.Equal(t, 1, f.icon.count())

	stored, err := f.store.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, stored)
}

func TestManagePreferences_SaveKeepsStoredLastUsed(t *testing.T) {
	ctx := testContext()
	f := newPrefsFixture(t)

	// The form was loaded while light was active, then the toolbar toggled to dark.
	form, err := f.store.LoadPreferences(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.ModeLight, form.LastUsed)
	require.NoError(t, f.store.SetLastUsed(ctx, entity.ModeDark))

	f.directory.EXPECT().Get(mock.Anything, entity.DefaultDarkTheme).Return(themeEntry(entity.DefaultDarkTheme, false), nil)
	f.directory.EXPECT().Activate(mock.Anything, entity.DefaultDarkTheme).Return(nil).Once()

	saved, err := f.uc.Save(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, entity.ModeDark, saved.LastUsed)

	stored, err := f.store.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ModeDark, stored.LastUsed)
}

func TestManagePreferences_RestoreDefaults(t *testing.T) {
	ctx := testContext()
	f := newPrefsFixture(t)

	custom := entity.DefaultPreferences()
	custom.LightTheme = "paper@example.com"
	custom.LastUsed = entity.ModeDark
	require.NoError(t, f.store.SavePreferences(ctx, custom))

	f.directory.EXPECT().Activate(mock.Anything, entity.DefaultLightTheme).Return(nil).Once()

	defaults, err := f.uc.RestoreDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPreferences(), defaults)
	assert.Equal(t, 1, f.icon.count())

	stored, err := f.store.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPreferences(), stored)
}

func TestManagePreferences_RestoreDefaultsToleratesMissingTheme(t *testing.T) {
	f := newPrefsFixture(t)
	f.directory.EXPECT().Activate(mock.Anything, entity.DefaultLightTheme).Return(port.ErrThemeNotFound)

	_, err := f.uc.RestoreDefaults(testContext())
	assert.NoError(t, err)
}

func TestManagePreferences_RestoreDefaultsActivationError(t *testing.T) {
	f := newPrefsFixture(t)
	boom := errors.New("denied")
	f.directory.EXPECT().Activate(mock.Anything, entity.DefaultLightTheme).Return(boom)

	_, err := f.uc.RestoreDefaults(testContext())
	assert.ErrorIs(t, err, boom)
}

func TestManagePreferences_Schedule(t *testing.T) {
	ctx := testContext()
	f := newPrefsFixture(t)

	got, err := f.uc.LoadSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSchedule(), got)

	require.NoError(t, f.uc.SaveSchedule(ctx, entity.Schedule{Light: "07:30", Dark: "19:45"}))
	got, err = f.uc.LoadSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Schedule{Light: "07:30", Dark: "19:45"}, got)

	err = f.uc.SaveSchedule(ctx, entity.Schedule{Light: "08:00", Dark: "08:00"})
	assert.ErrorIs(t, err, entity.ErrScheduleSameTime)
}
