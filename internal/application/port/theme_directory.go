package port

import (
	"context"
	"errors"

	"github.com/bnema/toggley/internal/domain/entity"
)

// ErrThemeNotFound is returned when a theme id is not installed.
var ErrThemeNotFound = errors.New("theme not found")

// ThemeDirectory enumerates and activates the browser's installed themes.
type ThemeDirectory interface {
	// ListThemes returns every installed extension; callers filter by type.
	ListThemes(ctx context.Context) ([]entity.ThemeEntry, error)

	// Get returns the entry for id or ErrThemeNotFound.
	Get(ctx context.Context, id string) (*entity.ThemeEntry, error)

	// Activate enables the theme, which implicitly disables every other
	// theme. Activating the already enabled theme is a no-op.
	Activate(ctx context.Context, id string) error

	// Active returns the id of the single enabled theme.
	// ok is false when none, or more than one, is enabled.
	Active(ctx context.Context) (id string, ok bool, err error)
}
