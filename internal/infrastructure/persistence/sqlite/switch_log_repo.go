package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/domain/repository"
)

type switchLogRepo struct {
	db *sql.DB
}

// NewSwitchLogRepository creates a SQLite-backed theme switch log.
func NewSwitchLogRepository(db *sql.DB) repository.SwitchLogRepository {
	return &switchLogRepo{db: db}
}

func (r *switchLogRepo) Record(ctx context.Context, sw *entity.ThemeSwitch) error {
	if sw.SwitchedAt.IsZero() {
		sw.SwitchedAt = time.Now()
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO theme_switches (mode, theme_id, source, switched_at) VALUES (?, ?, ?, ?)",
		string(sw.Mode), sw.ThemeID, string(sw.Source), sw.SwitchedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record theme switch: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		sw.ID = id
	}
	return nil
}

func (r *switchLogRepo) Latest(ctx context.Context) (*entity.ThemeSwitch, error) {
	switches, err := r.Recent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(switches) == 0 {
		return nil, nil
	}
	return switches[0], nil
}

func (r *switchLogRepo) Recent(ctx context.Context, limit int) ([]*entity.ThemeSwitch, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, mode, theme_id, source, switched_at
		FROM theme_switches
		ORDER BY switched_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query theme switches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var switches []*entity.ThemeSwitch
	for rows.Next() {
		var (
			sw         entity.ThemeSwitch
			mode, src  string
			switchedAt int64
		)
		if err := rows.Scan(&sw.ID, &mode, &sw.ThemeID, &src, &switchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan theme switch: %w", err)
		}
		sw.Mode = entity.Mode(mode)
		sw.Source = entity.SwitchSource(src)
		sw.SwitchedAt = time.UnixMilli(switchedAt)
		switches = append(switches, &sw)
	}
	return switches, rows.Err()
}
