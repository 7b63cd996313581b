package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/bnema/toggley/internal/application/usecase"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/domain/repository"
	"github.com/bnema/toggley/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

var errStorage = errors.New("storage unavailable")

// memorySettings is an in-memory SettingsRepository that round-trips
// values through JSON like the SQLite implementation.
type memorySettings struct {
	mu      sync.Mutex
	data    map[repository.Scope]map[string][]byte
	failGet bool
	failSet bool
}

func newMemorySettings() *memorySettings {
	return &memorySettings{data: map[repository.Scope]map[string][]byte{}}
}

func (m *memorySettings) Get(_ context.Context, scope repository.Scope, defaults map[string]any) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, errStorage
	}
	out := make(map[string]any, len(defaults))
	for k, def := range defaults {
		raw, ok := m.data[scope][k]
		if !ok {
			out[k] = def
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func (m *memorySettings) Set(_ context.Context, scope repository.Scope, values map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errStorage
	}
	if m.data[scope] == nil {
		m.data[scope] = map[string][]byte{}
	}
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		m.data[scope][k] = raw
	}
	return nil
}

func (m *memorySettings) Clear(_ context.Context, scope repository.Scope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, scope)
	return nil
}

func (m *memorySettings) keys(scope repository.Scope) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data[scope])
}

// recordingApplier records requested modes and reports them as switched.
type recordingApplier struct {
	mu      sync.Mutex
	modes   []entity.Mode
	sources []entity.SwitchSource
	abort   bool
	err     error
	onApply func(entity.Mode)
}

func (a *recordingApplier) Apply(_ context.Context, mode entity.Mode, source entity.SwitchSource) (*usecase.SwitchResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return nil, a.err
	}
	a.modes = append(a.modes, mode)
	a.sources = append(a.sources, source)
	if a.onApply != nil {
		a.onApply(mode)
	}
	return &usecase.SwitchResult{Mode: mode, Switched: !a.abort}, nil
}

func (a *recordingApplier) applied() []entity.Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]entity.Mode(nil), a.modes...)
}

type countingRefresher struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.err
}

func (r *countingRefresher) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func themeEntry(id string, enabled bool) *entity.ThemeEntry {
	return &entity.ThemeEntry{ID: id, Name: id, Type: entity.ThemeTypeTheme, Enabled: enabled}
}
