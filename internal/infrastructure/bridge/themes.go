package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/toggley/internal/application/port"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/logging"
)

// ThemeDirectory implements port.ThemeDirectory over the shim's
// management API.
type ThemeDirectory struct {
	server *Server
}

// NewThemeDirectory creates a theme directory backed by server.
func NewThemeDirectory(server *Server) *ThemeDirectory {
	return &ThemeDirectory{server: server}
}

// ListThemes implements port.ThemeDirectory.
func (d *ThemeDirectory) ListThemes(ctx context.Context) ([]entity.ThemeEntry, error) {
	var entries []entity.ThemeEntry
	if err := d.server.Call(ctx, MethodManagementGetAll, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Get implements port.ThemeDirectory.
func (d *ThemeDirectory) Get(ctx context.Context, id string) (*entity.ThemeEntry, error) {
	entries, err := d.ListThemes(ctx)
	if err != nil {
		return nil, err
	}
	entry, ok := entity.FindTheme(entries, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrThemeNotFound, id)
	}
	return &entry, nil
}

// Activate implements port.ThemeDirectory. The browser disables the
// previously enabled theme on its own.
func (d *ThemeDirectory) Activate(ctx context.Context, id string) error {
	entry, err := d.Get(ctx, id)
	if err != nil {
		return err
	}
	if entry.Enabled {
		logging.FromContext(ctx).Debug().Str("theme_id", id).Msg("theme already enabled")
		return nil
	}
	return d.server.Call(ctx, MethodManagementSetEnabled, setEnabledParams{ID: id, Enabled: true}, nil)
}

// Active implements port.ThemeDirectory.
func (d *ThemeDirectory) Active(ctx context.Context) (string, bool, error) {
	entries, err := d.ListThemes(ctx)
	if err != nil {
		return "", false, err
	}
	id, ok := entity.EnabledTheme(entries)
	return id, ok, nil
}

// Palette implements port.ThemePaletteSource.
type Palette struct {
	server *Server
}

// NewPalette creates a palette source backed by server.
func NewPalette(server *Server) *Palette {
	return &Palette{server: server}
}

// CurrentColors returns the icon-relevant colors of the applied theme.
// A theme without colors yields an empty palette.
func (p *Palette) CurrentColors(ctx context.Context) (entity.ThemeColors, error) {
	var current currentTheme
	if err := p.server.Call(ctx, MethodThemeGetCurrent, nil, &current); err != nil {
		return entity.ThemeColors{}, err
	}

	var colors entity.ThemeColors
	if len(current.Colors) == 0 || string(current.Colors) == "null" {
		return colors, nil
	}
	if err := json.Unmarshal(current.Colors, &colors); err != nil {
		return entity.ThemeColors{}, fmt.Errorf("failed to decode theme colors: %w", err)
	}
	return colors, nil
}
