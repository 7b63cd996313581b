package repository

import "context"

// Scope names a storage area. Sync values follow the user across devices,
// local values stay on this machine.
type Scope string

const (
	ScopeSync  Scope = "sync"
	ScopeLocal Scope = "local"
)

// SettingsRepository is a typed-value key/value store split into scopes.
// Values keep their JSON type across a round trip.
type SettingsRepository interface {
	// Get returns the stored value for every key of defaults, or the
	// default when the key is absent. The repository never invents a default.
	Get(ctx context.Context, scope Scope, defaults map[string]any) (map[string]any, error)

	// Set writes every key of values in one transaction.
	Set(ctx context.Context, scope Scope, values map[string]any) error

	// Clear removes every key of the scope.
	Clear(ctx context.Context, scope Scope) error
}
