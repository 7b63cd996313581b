package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/toggley/internal/domain/repository"
	"github.com/bnema/toggley/internal/logging"
)

type settingsRepo struct {
	db *sql.DB
}

// NewSettingsRepository creates a SQLite-backed settings repository.
// Values are stored as JSON text so their type survives a round trip.
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context, scope repository.Scope, defaults map[string]any) (map[string]any, error) {
	log := logging.FromContext(ctx)

	result := make(map[string]any, len(defaults))
	if len(defaults) == 0 {
		return result, nil
	}

	keys := make([]any, 0, len(defaults)+1)
	keys = append(keys, string(scope))
	for k, v := range defaults {
		result[k] = v
		keys = append(keys, k)
	}

	query := "SELECT key, value FROM settings WHERE scope = ? AND key IN (?" +
		strings.Repeat(", ?", len(defaults)-1) + ")"

	rows, err := r.db.QueryContext(ctx, query, keys...)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			log.Warn().Err(err).Str("scope", string(scope)).Str("key", key).Msg("ignoring undecodable setting")
			continue
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settings: %w", err)
	}

	return result, nil
}

func (r *settingsRepo) Set(ctx context.Context, scope repository.Scope, values map[string]any) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("scope", string(scope)).Int("keys", len(values)).Msg("writing settings")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for key, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode setting %q: %w", key, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (scope, key, value, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			string(scope), key, string(raw)); err != nil {
			return fmt.Errorf("failed to write setting %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}

func (r *settingsRepo) Clear(ctx context.Context, scope repository.Scope) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("scope", string(scope)).Msg("clearing settings")

	if _, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE scope = ?", string(scope)); err != nil {
		return fmt.Errorf("failed to clear %s settings: %w", scope, err)
	}
	return nil
}
