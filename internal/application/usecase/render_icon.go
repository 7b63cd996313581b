package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/toggley/internal/application/port"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/logging"
)

// RenderIconDeps groups the collaborators of RenderIconUseCase.
type RenderIconDeps struct {
	Store         *PreferenceStore
	Directory     port.ThemeDirectory
	Palette       port.ThemePaletteSource
	Ambient       port.ColorSchemeResolver
	Renderer      port.IconRenderer
	Surface       port.IconSurface
	Glyphs        entity.GlyphMapping
	SystemThemeID string
	Size          int
}

// RenderIconUseCase keeps the toolbar icon in sync with the active mode.
type RenderIconUseCase struct {
	deps RenderIconDeps
}

// NewRenderIconUseCase creates a new icon rendering use case.
func NewRenderIconUseCase(deps RenderIconDeps) *RenderIconUseCase {
	if deps.SystemThemeID == "" {
		deps.SystemThemeID = entity.HostDefaultTheme
	}
	if deps.Size <= 0 {
		deps.Size = entity.DefaultIconSize
	}
	if deps.Glyphs == (entity.GlyphMapping{}) {
		deps.Glyphs = entity.DefaultGlyphMapping()
	}
	return &RenderIconUseCase{deps: deps}
}

// CurrentMode derives the mode from the enabled theme.
func (uc *RenderIconUseCase) CurrentMode(ctx context.Context) (entity.Mode, error) {
	prefs, err := uc.deps.Store.LoadPreferences(ctx)
	if err != nil {
		return "", err
	}
	active, ok, err := uc.deps.Directory.Active(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read active theme: %w", err)
	}
	if !ok {
		active = ""
	}
	return entity.ModeFromTheme(active, prefs, uc.deps.SystemThemeID), nil
}

// Compose renders the icon for mode without pushing it anywhere.
// A nil mode means the mode derived from the enabled theme.
func (uc *RenderIconUseCase) Compose(ctx context.Context, mode *entity.Mode) (*entity.Icon, error) {
	log := logging.FromContext(ctx)

	prefs, err := uc.deps.Store.LoadPreferences(ctx)
	if err != nil {
		return nil, err
	}

	var current entity.Mode
	if mode != nil {
		current = *mode
	} else {
		current, err = uc.CurrentMode(ctx)
		if err != nil {
			return nil, err
		}
	}

	var colors entity.ThemeColors
	if uc.deps.Palette != nil {
		colors, err = uc.deps.Palette.CurrentColors(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("theme palette unavailable, using fallback color")
			colors = entity.ThemeColors{}
		}
	}

	prefersDark := false
	if uc.deps.Ambient != nil {
		prefersDark = uc.deps.Ambient.Resolve().PrefersDark
	}

	color := entity.ResolveIconColor(prefs.Override(current), colors, prefersDark)
	glyph := uc.deps.Glyphs.For(current)

	icon, err := uc.deps.Renderer.Render(glyph, color, uc.deps.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s icon: %w", glyph, err)
	}
	icon.Mode = current
	return icon, nil
}

// Refresh renders the icon for the current mode and pushes it to the toolbar.
func (uc *RenderIconUseCase) Refresh(ctx context.Context) error {
	icon, err := uc.Compose(ctx, nil)
	if err != nil {
		return err
	}
	if err := uc.deps.Surface.SetIcon(ctx, icon); err != nil {
		return fmt.Errorf("failed to set toolbar icon: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("mode", icon.Mode.String()).
		Str("glyph", string(icon.Glyph)).
		Str("color", icon.Color).
		Msg("toolbar icon updated")
	return nil
}
