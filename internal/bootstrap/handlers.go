package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/toggley/internal/application/dispatch"
	"github.com/bnema/toggley/internal/application/usecase"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/domain/repository"
	"github.com/bnema/toggley/internal/infrastructure/alarm"
	"github.com/bnema/toggley/internal/infrastructure/bridge"
	"github.com/bnema/toggley/internal/infrastructure/config"
	"github.com/bnema/toggley/internal/logging"
)

// iconKeys are the stored keys that change the toolbar icon without a switch.
var iconKeys = []string{
	entity.KeyLightColor,
	entity.KeyDarkColor,
	entity.KeyLightColorOverride,
	entity.KeyDarkColorOverride,
}

func (d *Daemon) registerHandlers() error {
	handlers := map[string]func(context.Context, json.RawMessage) (any, error){
		dispatch.EventStartup:            d.onStartup,
		dispatch.EventBridgeAttached:     d.onBridgeAttached,
		dispatch.EventActionClicked:      d.onToggle,
		dispatch.EventToggle:             d.onToggle,
		dispatch.EventMenusClicked:       d.onMenuClicked,
		dispatch.EventMenuCommand:        d.onMenuClicked,
		dispatch.EventAlarm:              d.onAlarm,
		dispatch.EventThemeUpdated:       d.onThemeUpdated,
		dispatch.EventColorSchemeChanged: d.onColorSchemeChanged,
		dispatch.EventStorageChanged:     d.onStorageChanged,
		dispatch.EventPrefsSave:          d.onPrefsSave,
		dispatch.EventPrefsRestore:       d.onPrefsRestore,
		dispatch.EventScheduleSave:       d.onScheduleSave,
	}
	for eventType, fn := range handlers {
		if err := d.events.RegisterFunc(eventType, fn); err != nil {
			return fmt.Errorf("failed to register %s handler: %w", eventType, err)
		}
	}
	return nil
}

// offline downgrades "no browser attached" to a debug line. Startup work
// is repeated when the shim connects.
func offline(ctx context.Context, err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bridge.ErrNotConnected) {
		logging.FromContext(ctx).Debug().Msg(what + " deferred until the browser connects")
		return nil
	}
	return err
}

func (d *Daemon) onStartup(ctx context.Context, _ json.RawMessage) (any, error) {
	if err := offline(ctx, d.menu.Restore(ctx), "menu sync"); err != nil {
		return nil, fmt.Errorf("failed to restore menu state: %w", err)
	}
	return nil, offline(ctx, d.icon.Refresh(ctx), "icon render")
}

func (d *Daemon) onBridgeAttached(ctx context.Context, _ json.RawMessage) (any, error) {
	log := logging.FromContext(ctx)
	d.resolver.Refresh()

	if err := d.menu.Sync(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to push menu state")
	}
	if d.poller.Enabled() {
		if err := d.poller.Tick(ctx); err != nil {
			log.Warn().Err(err).Msg("schedule check after attach failed")
		}
	}
	return nil, d.icon.Refresh(ctx)
}

func (d *Daemon) onToggle(ctx context.Context, _ json.RawMessage) (any, error) {
	result, err := d.switcher.Toggle(ctx)
	if err != nil {
		return nil, err
	}
	if err := d.menu.Reconcile(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to reconcile menu after toggle")
	}
	return result, nil
}

func (d *Daemon) onMenuClicked(ctx context.Context, payload json.RawMessage) (any, error) {
	var click bridge.MenuClicked
	if err := json.Unmarshal(payload, &click); err != nil {
		return nil, fmt.Errorf("failed to decode menu click: %w", err)
	}
	if err := d.menu.Click(ctx, entity.MenuItem(click.Item), click.Checked); err != nil {
		return nil, err
	}
	return d.menu.State(), nil
}

func (d *Daemon) onAlarm(ctx context.Context, payload json.RawMessage) (any, error) {
	var fired alarm.Fired
	if err := json.Unmarshal(payload, &fired); err != nil {
		return nil, fmt.Errorf("failed to decode alarm: %w", err)
	}
	if fired.Name != usecase.CheckThemeAlarm {
		logging.FromContext(ctx).Debug().Str("alarm", fired.Name).Msg("ignoring unknown alarm")
		return nil, nil
	}
	return nil, offline(ctx, d.poller.Tick(ctx), "schedule check")
}

func (d *Daemon) onThemeUpdated(ctx context.Context, _ json.RawMessage) (any, error) {
	return nil, offline(ctx, d.icon.Refresh(ctx), "icon render")
}

func (d *Daemon) onColorSchemeChanged(ctx context.Context, _ json.RawMessage) (any, error) {
	pref := d.resolver.Refresh()
	logging.FromContext(ctx).Debug().Bool("prefers_dark", pref.PrefersDark).Str("source", pref.Source).
		Msg("ambient color scheme changed")
	return nil, offline(ctx, d.icon.Refresh(ctx), "icon render")
}

func (d *Daemon) onStorageChanged(ctx context.Context, payload json.RawMessage) (any, error) {
	var change usecase.StorageChange
	if err := json.Unmarshal(payload, &change); err != nil {
		return nil, fmt.Errorf("failed to decode storage change: %w", err)
	}
	if change.Scope != repository.ScopeSync {
		return nil, nil
	}
	if !slices.ContainsFunc(change.Keys, func(k string) bool { return slices.Contains(iconKeys, k) }) {
		return nil, nil
	}
	return nil, offline(ctx, d.icon.Refresh(ctx), "icon render")
}

func (d *Daemon) onPrefsSave(ctx context.Context, payload json.RawMessage) (any, error) {
	var prefs entity.Preferences
	if err := json.Unmarshal(payload, &prefs); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}
	saved, err := d.prefs.Save(ctx, prefs)
	if err != nil {
		return nil, err
	}
	if err := d.menu.Reconcile(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to reconcile menu after save")
	}
	return saved, nil
}

func (d *Daemon) onPrefsRestore(ctx context.Context, _ json.RawMessage) (any, error) {
	defaults, err := d.prefs.RestoreDefaults(ctx)
	if err != nil {
		return nil, err
	}
	if err := d.menu.Reconcile(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to reconcile menu after restore")
	}
	return defaults, nil
}

func (d *Daemon) onScheduleSave(ctx context.Context, payload json.RawMessage) (any, error) {
	var schedule entity.Schedule
	if err := json.Unmarshal(payload, &schedule); err != nil {
		return nil, fmt.Errorf("failed to decode schedule: %w", err)
	}
	return nil, d.prefs.SaveSchedule(ctx, schedule)
}

// postStorageChange forwards store writes to the loop as storage.changed.
func (d *Daemon) postStorageChange(ctx context.Context, change usecase.StorageChange) {
	ev, err := dispatch.NewEvent(dispatch.EventStorageChanged, change)
	if err == nil {
		err = d.events.Post(ev)
	}
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to post storage change")
	}
}

// onConfigChange runs on the watcher goroutine; the work itself is queued.
func (d *Daemon) onConfigChange(cfg *config.Config) {
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info().
		Str("color_scheme", cfg.ColorScheme).Msg("configuration reloaded")
	if err := d.events.Post(dispatch.Event{Type: dispatch.EventColorSchemeChanged}); err != nil {
		envLogger := logging.NewFromEnv()
		envLogger.Debug().Err(err).Msg("config change after shutdown")
	}
}
