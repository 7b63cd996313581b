// Package colorscheme resolves the ambient light/dark signal from the
// browser, the terminal and the desktop.
package colorscheme

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/toggley/internal/application/port"
)

const (
	// SourceFallback means no detector answered.
	SourceFallback = "fallback"
	// SourceConfig means the configured color_scheme forced the answer.
	SourceConfig = "config"
)

// ConfigProvider exposes the configured color scheme.
type ConfigProvider interface {
	// GetColorScheme returns "default", "prefer-dark" or "prefer-light".
	// "dark" and "light" are accepted as aliases.
	GetColorScheme() string
}

type callbackWrapper struct {
	fn func(port.ColorSchemePreference)
}

// Resolver implements port.ColorSchemeResolver.
// A configured scheme wins over every detector; detectors are asked in
// priority order and the first that answers decides.
type Resolver struct {
	mu        sync.RWMutex
	config    ConfigProvider
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
	callbacks []*callbackWrapper
}

// NewResolver creates a resolver. config may be nil.
func NewResolver(config ConfigProvider) *Resolver {
	return &Resolver{
		config:  config,
		current: fallback(),
	}
}

// fallback is light: a browser without a dark-mode signal renders light.
func fallback() port.ColorSchemePreference {
	return port.ColorSchemePreference{PrefersDark: false, Source: SourceFallback}
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	config := r.config
	detectors := slices.Clone(r.detectors)
	r.mu.RUnlock()
	return resolve(config, detectors)
}

func resolve(config ConfigProvider, detectors []port.ColorSchemeDetector) port.ColorSchemePreference {
	if config != nil {
		switch strings.ToLower(strings.TrimSpace(config.GetColorScheme())) {
		case "prefer-dark", "dark":
			return port.ColorSchemePreference{PrefersDark: true, Source: SourceConfig}
		case "prefer-light", "light":
			return port.ColorSchemePreference{PrefersDark: false, Source: SourceConfig}
		}
	}

	for _, d := range detectors {
		if !d.Available() {
			continue
		}
		if prefersDark, ok := d.Detect(); ok {
			return port.ColorSchemePreference{PrefersDark: prefersDark, Source: d.Name()}
		}
	}
	return fallback()
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
	slices.SortStableFunc(r.detectors, func(a, b port.ColorSchemeDetector) int {
		return cmp.Compare(b.Priority(), a.Priority())
	})
}

// Detectors returns the registered detector names in priority order.
func (r *Resolver) Detectors() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.detectors))
	for _, d := range r.detectors {
		names = append(names, d.Name())
	}
	return names
}

// Refresh implements port.ColorSchemeResolver. Callbacks run only when
// the dark/light answer changed, never while the lock is held.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	pref := r.Resolve()

	r.mu.Lock()
	changed := pref.PrefersDark != r.current.PrefersDark
	r.current = pref
	var callbacks []*callbackWrapper
	if changed {
		callbacks = slices.Clone(r.callbacks)
	}
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(pref)
	}
	return pref
}

// OnChange implements port.ColorSchemeResolver.
func (r *Resolver) OnChange(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.callbacks = slices.DeleteFunc(r.callbacks, func(cb *callbackWrapper) bool {
			return cb == wrapper
		})
	}
}
