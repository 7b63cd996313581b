package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/toggley/internal/application/port"
	portmocks "github.com/bnema/toggley/internal/application/port/mocks"
	"github.com/bnema/toggley/internal/application/usecase"
	"github.com/bnema/toggley/internal/domain/entity"
	repomocks "github.com/bnema/toggley/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type switchFixture struct {
	store     *usecase.PreferenceStore
	directory *portmocks.MockThemeDirectory
	ambient   *portmocks.MockColorSchemeResolver
	icon      *countingRefresher
	uc        *usecase.SwitchThemeUseCase
}

func newSwitchFixture(t *testing.T, extra func(*usecase.SwitchThemeDeps)) *switchFixture {
	t.Helper()
	f := &switchFixture{
		store:     usecase.NewPreferenceStore(newMemorySettings()),
		directory: portmocks.NewMockThemeDirectory(t),
		ambient:   portmocks.NewMockColorSchemeResolver(t),
		icon:      &countingRefresher{},
	}
	deps := usecase.SwitchThemeDeps{
		Store:     f.store,
		Directory: f.directory,
		Ambient:   f.ambient,
		Icon:      f.icon,
	}
	if extra != nil {
		extra(&deps)
	}
	f.uc = usecase.NewSwitchThemeUseCase(deps)
	return f
}

func (f *switchFixture) expectBothThemesInstalled() {
	f.directory.EXPECT().Get(mock.Anything, entity.DefaultLightTheme).Return(themeEntry(entity.DefaultLightTheme, true), nil)
	f.directory.EXPECT().Get(mock.Anything, entity.DefaultDarkTheme).Return(themeEntry(entity.DefaultDarkTheme, false), nil)
}

func TestSwitchTheme_ToggleLightToDark(t *testing.T) {
	ctx := testContext()
	f := newSwitchFixture(t, nil)

	f.expectBothThemesInstalled()
	f.ambient.EXPECT().Resolve().Return(port.ColorSchemePreference{PrefersDark: false, Source: "test"})
	f.directory.EXPECT().Activate(mock.Anything, entity.DefaultDarkTheme).Return(nil).Once()

	result, err := f.uc.Toggle(ctx)
	require.NoError(t, err)
	assert.True(t, result.Switched)
	assert.Equal(t, entity.ModeDark, result.Mode)
	assert.Equal(t, entity.DefaultDarkTheme, result.ThemeID)

	prefs, err := f.store.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ModeDark, prefs.LastUsed)
	assert.Equal(t, 1, f.icon.count())
}

func TestSwitchTheme_ToggleTwiceReturnsToStart(t *testing.T) {
	ctx := testContext()
	f := newSwitchFixture(t, nil)

	f.expectBothThemesInstalled()
	f.ambient.EXPECT().Resolve().Return(port.ColorSchemePreference{})
	f.directory.EXPECT().Activate(mock.Anything, entity.DefaultDarkTheme).Return(nil).Once()
	f.directory.EXPECT().Activate(mock.Anything, entity.DefaultLightTheme).Return(nil).Once()

	first, err := f.uc.Toggle(ctx)
	require.NoError(t, err)
	second, err := f.uc.Toggle(ctx)
	require.NoError(t, err)

	assert.Equal(t, entity.ModeDark, first.Mode)
	assert.Equal(t, entity.ModeLight, second.Mode)
}

func TestSwitchTheme_ToggleAbortsWhenThemeMissing(t *testing.T) {
	ctx := testContext()
	f := newSwitchFixture(t, nil)

	f.directory.EXPECT().Get(mock.Anything, entity.DefaultLightTheme).Return(themeEntry(entity.DefaultLightTheme, true), nil)
	f.directory.EXPECT().Get(mock.Anything, entity.DefaultDarkTheme).Return(nil, port.ErrThemeNotFound)

	result, err := f.uc.Toggle(ctx)
	require.NoError(t, err)
	assert.False(t, result.Switched)

	prefs, err := f.store.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ModeLight, prefs.LastUsed)
	f.directory.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
	assert.Zero(t, f.icon.count())
}

func TestSwitchTheme_ToggleFromSystemFollowsAmbient(t *testing.T) {
	ctx := testContext()
	f := newSwitchFixture(t, nil)
	require.NoError(t, f.store.SetLastUsed(ctx, entity.ModeSystem))

	f.expectBothThemesInstalled()
	f.ambient.EXPECT().Resolve().Return(port.ColorSchemePreference{PrefersDark: true, Source: "test"})
	f.directory.EXPECT().Activate(mock.Anything, entity.DefaultLightTheme).Return(nil)

	result, err := f.uc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ModeLight, result.Mode)
}

func TestSwitchTheme_ToggleLookupErrorIsReturned(t *testing.T) {
	f := newSwitchFixture(t, nil)
	boom := errors.New("bridge down")
	f.directory.EXPECT().Get(mock.Anything, entity.DefaultLightTheme).Return(nil, boom)

	_, err := f.uc.Toggle(testContext())
	assert.ErrorIs(t, err, boom)
}

func TestSwitchTheme_ApplySystemUsesSystemTheme(t *testing.T) {
	ctx := testContext()
	f := newSwitchFixture(t, nil)

	f.directory.EXPECT().Get(mock.Anything, entity.HostDefaultTheme).Return(themeEntry(entity.HostDefaultTheme, false), nil)
	f.directory.EXPECT().Activate(mock.Anything, entity.HostDefaultTheme).Return(nil)

	result, err := f.uc.Apply(ctx, entity.ModeSystem, entity.SwitchSourceMenu)
	require.NoError(t, err)
	assert.True(t, result.Switched)

	prefs, err := f.store.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ModeSystem, prefs.LastUsed)
}

func TestSwitchTheme_ApplyRejectsInvalidMode(t *testing.T) {
	f := newSwitchFixture(t, nil)
	_, err := f.uc.Apply(testContext(), entity.Mode("dusk"), entity.SwitchSourceMenu)
	assert.ErrorIs(t, err, entity.ErrInvalidMode)
}

func TestSwitchTheme_ActivationFailureKeepsLastUsed(t *testing.T) {
	ctx := testContext()
	f := newSwitchFixture(t, nil)

	f.directory.EXPECT().Get(mock.Anything, entity.DefaultDarkTheme).Return(themeEntry(entity.DefaultDarkTheme, false), nil)
	f.directory.EXPECT().Activate(mock.Anything, entity.DefaultDarkTheme).Return(errors.New("denied"))

	_, err := f.uc.Apply(ctx, entity.ModeDark, entity.SwitchSourceSchedule)
	require.Error(t, err)

	prefs, err := f.store.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ModeLight, prefs.LastUsed)
}

func TestSwitchTheme_ColorSchemeOverride(t *testing.T) {
	tests := []struct {
		name      string
		supported bool
		pref      entity.SchemeOverride
		want      string
	}{
		{"toggley follows mode", true, entity.SchemeOverrideToggley, "dark"},
		{"firefox hands control back", true, entity.SchemeOverrideFirefox, "auto"},
		{"unsupported host is skipped", false, entity.SchemeOverrideToggley, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			override := portmocks.NewMockColorSchemeOverride(t)
			f := newSwitchFixture(t, func(d *usecase.SwitchThemeDeps) { d.SchemeOverride = override })

			prefs := entity.DefaultPreferences()
			prefs.PrefersColorSchemeOverride = tt.pref
			require.NoError(t, f.store.SavePreferences(ctx, prefs))

			f.directory.EXPECT().Get(mock.Anything, entity.DefaultDarkTheme).Return(themeEntry(entity.DefaultDarkTheme, false), nil)
			f.directory.EXPECT().Activate(mock.Anything, entity.DefaultDarkTheme).Return(nil)
			override.EXPECT().SupportsColorSchemeOverride().Return(tt.supported)
			if tt.want != "" {
				override.EXPECT().SetContentColorScheme(mock.Anything, tt.want).Return(nil).Once()
			}

			_, err := f.uc.Apply(ctx, entity.ModeDark, entity.SwitchSourceToggle)
			require.NoError(t, err)
		})
	}
}

func TestSwitchTheme_RecordsSwitch(t *testing.T) {
	ctx := testContext()
	switchLog := repomocks.NewMockSwitchLogRepository(t)
	fixed := time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)
	f := newSwitchFixture(t, func(d *usecase.SwitchThemeDeps) {
		d.SwitchLog = switchLog
		d.Now = func() time.Time { return fixed }
	})

	f.directory.EXPECT().Get(mock.Anything, entity.DefaultDarkTheme).Return(themeEntry(entity.DefaultDarkTheme, false), nil)
	f.directory.EXPECT().Activate(mock.Anything, entity.DefaultDarkTheme).Return(nil)
	switchLog.EXPECT().Record(mock.Anything, &entity.ThemeSwitch{
		Mode:       entity.ModeDark,
		ThemeID:    entity.DefaultDarkTheme,
		Source:     entity.SwitchSourceSchedule,
		SwitchedAt: fixed,
	}).Return(errors.New("disk full"))

	result, err := f.uc.Apply(ctx, entity.ModeDark, entity.SwitchSourceSchedule)
	require.NoError(t, err, "a failed log write does not fail the switch")
	assert.True(t, result.Switched)
}

func TestSwitchTheme_ActivateLastUsed(t *testing.T) {
	ctx := testContext()
	f := newSwitchFixture(t, nil)
	require.NoError(t, f.store.SetLastUsed(ctx, entity.ModeDark))

	f.directory.EXPECT().Get(mock.Anything, entity.DefaultDarkTheme).Return(themeEntry(entity.DefaultDarkTheme, true), nil)
	f.directory.EXPECT().Activate(mock.Anything, entity.DefaultDarkTheme).Return(nil)

	result, err := f.uc.ActivateLastUsed(ctx, entity.SwitchSourceStartup)
	require.NoError(t, err)
	assert.Equal(t, entity.ModeDark, result.Mode)
}
