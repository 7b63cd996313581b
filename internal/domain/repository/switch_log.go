package repository

import (
	"context"

	"github.com/bnema/toggley/internal/domain/entity"
)

// SwitchLogRepository records the theme switches performed by the daemon.
type SwitchLogRepository interface {
	// Record appends a switch.
	Record(ctx context.Context, sw *entity.ThemeSwitch) error

	// Latest returns the most recent switch, or nil if none was recorded.
	Latest(ctx context.Context) (*entity.ThemeSwitch, error)

	// Recent returns up to limit switches, newest first.
	Recent(ctx context.Context, limit int) ([]*entity.ThemeSwitch, error)
}
