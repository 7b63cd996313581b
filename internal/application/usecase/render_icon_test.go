package usecase_test

import (
	"errors"
	"testing"

	"github.com/bnema/toggley/internal/application/port"
	portmocks "github.com/bnema/toggley/internal/application/port/mocks"
	"github.com/bnema/toggley/internal/application/usecase"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type iconFixture struct {
	store     *usecase.PreferenceStore
	directory *portmocks.MockThemeDirectory
	palette   *portmocks.MockThemePaletteSource
	ambient   *portmocks.MockColorSchemeResolver
	renderer  *portmocks.MockIconRenderer
	surface   *portmocks.MockIconSurface
	uc        *usecase.RenderIconUseCase
}

func newIconFixture(t *testing.T) *iconFixture {
	t.Helper()
	f := &iconFixture{
		store:     usecase.NewPreferenceStore(newMemorySettings()),
		directory: portmocks.NewMockThemeDirectory(t),
		palette:   portmocks.NewMockThemePaletteSource(t),
		ambient:   portmocks.NewMockColorSchemeResolver(t),
		renderer:  portmocks.NewMockIconRenderer(t),
		surface:   portmocks.NewMockIconSurface(t),
	}
	f.uc = usecase.NewRenderIconUseCase(usecase.RenderIconDeps{
		Store:     f.store,
		Directory: f.directory,
		Palette:   f.palette,
		Ambient:   f.ambient,
		Renderer:  f.renderer,
		Surface:   f.surface,
	})
	return f
}

func renderedIcon(glyph entity.Glyph, stroke string, size int) (*entity.Icon, error) {
	return &entity.Icon{Glyph: glyph, Color: stroke, Size: size, SVG: "<svg/>"}, nil
}

func TestRenderIcon_CurrentMode(t *testing.T) {
	tests := []struct {
		name   string
		active string
		ok     bool
		want   entity.Mode
	}{
		{"dark theme enabled", entity.DefaultDarkTheme, true, entity.ModeDark},
		{"light theme enabled", entity.DefaultLightTheme, true, entity.ModeLight},
		{"host default enabled", entity.HostDefaultTheme, true, entity.ModeSystem},
		{"unrelated theme", "other@example.com", true, entity.ModeLight},
		{"nothing enabled", "", false, entity.ModeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIconFixture(t)
			f.directory.EXPECT().Active(mock.Anything).Return(tt.active, tt.ok, nil)

			mode, err := f.uc.CurrentMode(testContext())
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestRenderIcon_RefreshUsesPaletteColor(t *testing.T) {
	f := newIconFixture(t)

	f.directory.EXPECT().Active(mock.Anything).Return(entity.DefaultDarkTheme, true, nil)
	f.palette.EXPECT().CurrentColors(mock.Anything).Return(entity.ThemeColors{
		Icons: entity.RGBColor(1, 0.5, 0),
	}, nil)
	f.ambient.EXPECT().Resolve().Return(port.ColorSchemePreference{})
	f.renderer.EXPECT().Render(entity.GlyphSun, "rgb(255, 128, 0)", entity.DefaultIconSize).RunAndReturn(renderedIcon)
	f.surface.EXPECT().SetIcon(mock.Anything, mock.MatchedBy(func(icon *entity.Icon) bool {
		return icon.Mode == entity.ModeDark && icon.Glyph == entity.GlyphSun
	})).Return(nil)

	require.NoError(t, f.uc.Refresh(testContext()))
}

func TestRenderIcon_OverrideWinsOverPalette(t *testing.T) {
	ctx := testContext()
	f := newIconFixture(t)

	prefs := entity.DefaultPreferences()
	prefs.LightColor = "#ff0000"
	prefs.LightColorOverride = true
	require.NoError(t, f.store.SavePreferences(ctx, prefs))

	f.palette.EXPECT().CurrentColors(mock.Anything).Return(entity.ThemeColors{Icons: entity.CSSColor("blue")}, nil)
	f.ambient.EXPECT().Resolve().Return(port.ColorSchemePreference{})
	f.renderer.EXPECT().Render(entity.GlyphMoon, "#ff0000", entity.DefaultIconSize).RunAndReturn(renderedIcon)

	light := entity.ModeLight
	icon, err := f.uc.Compose(ctx, &light)
	require.NoError(t, err)
	assert.Equal(t, entity.ModeLight, icon.Mode)
}

func TestRenderIcon_PaletteErrorFallsBack(t *testing.T) {
	f := newIconFixture(t)

	f.palette.EXPECT().CurrentColors(mock.Anything).Return(entity.ThemeColors{}, errors.New("no theme"))
	f.ambient.EXPECT().Resolve().Return(port.ColorSchemePreference{PrefersDark: true})
	f.renderer.EXPECT().Render(entity.GlyphBolt, entity.FallbackIconColorDark, entity.DefaultIconSize).RunAndReturn(renderedIcon)

	system := entity.ModeSystem
	icon, err := f.uc.Compose(testContext(), &system)
	require.NoError(t, err)
	assert.Equal(t, entity.GlyphBolt, icon.Glyph)
}

func TestRenderIcon_SurfaceErrorIsWrapped(t *testing.T) {
	f := newIconFixture(t)
	boom := errors.New("not connected")

	f.directory.EXPECT().Active(mock.Anything).Return("", false, nil)
	f.palette.EXPECT().CurrentColors(mock.Anything).Return(entity.ThemeColors{}, nil)
	f.ambient.EXPECT().Resolve().Return(port.ColorSchemePreference{})
	f.renderer.EXPECT().Render(entity.GlyphMoon, entity.FallbackIconColorLight, entity.DefaultIconSize).RunAndReturn(renderedIcon)
	f.surface.EXPECT().SetIcon(mock.Anything, mock.Anything).Return(boom)

	err := f.uc.Refresh(testContext())
	assert.ErrorIs(t, err, boom)
}
