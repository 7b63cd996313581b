package port

import (
	"context"

	"github.com/bnema/toggley/internal/domain/entity"
)

// Capability names announced by the browser side on connect.
const (
	CapabilityColorSchemeOverride = "colorSchemeOverride"
	CapabilityMenus               = "menus"
)

// ThemePaletteSource reads the palette of the currently applied theme.
type ThemePaletteSource interface {
	CurrentColors(ctx context.Context) (entity.ThemeColors, error)
}

// IconSurface is the toolbar button whose image the daemon controls.
type IconSurface interface {
	SetIcon(ctx context.Context, icon *entity.Icon) error
}

// MenuSurface mirrors the checkbox state into the toolbar context menu.
type MenuSurface interface {
	UpdateMenu(ctx context.Context, state entity.MenuState) error
}

// PageOpener opens an extension page in a new tab.
type PageOpener interface {
	OpenPage(ctx context.Context, url string) error
}

// ColorSchemeOverride controls the content prefers-color-scheme value.
// Hosts that cannot do this report false from SupportsColorSchemeOverride.
type ColorSchemeOverride interface {
	SupportsColorSchemeOverride() bool
	SetContentColorScheme(ctx context.Context, scheme string) error
}

// IconRenderer draws a glyph with the given stroke color.
type IconRenderer interface {
	Render(glyph entity.Glyph, stroke string, size int) (*entity.Icon, error)
}
