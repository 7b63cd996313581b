package bootstrap

import (
	"context"
	"fmt"

	"github.com/bnema/toggley/internal/application/dispatch"
	"github.com/bnema/toggley/internal/application/usecase"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/infrastructure/bridge"
	"github.com/bnema/toggley/internal/logging"
)

// backend implements api.Backend. Writes go through the event loop so
// they never interleave with browser events; reads go straight to the
// store and the bridge.
type backend struct {
	d *Daemon
}

func dispatchAs[T any](ctx context.Context, events *dispatch.Dispatcher, eventType string, payload any) (T, error) {
	var zero T
	ev, err := dispatch.NewEvent(eventType, payload)
	if err != nil {
		return zero, err
	}
	value, err := events.Dispatch(ctx, ev)
	if err != nil {
		return zero, err
	}
	if value == nil {
		return zero, nil
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected %s result %T", eventType, value)
	}
	return typed, nil
}

func (b *backend) Status(ctx context.Context) (*entity.Status, error) {
	d := b.d
	log := logging.FromContext(ctx)

	prefs, err := d.store.LoadPreferences(ctx)
	if err != nil {
		return nil, err
	}
	schedule, err := d.store.LoadSchedule(ctx)
	if err != nil {
		return nil, err
	}
	ambient := d.resolver.Resolve()

	status := &entity.Status{
		Mode:          prefs.LastUsed,
		Menu:          d.menu.State(),
		Schedule:      schedule,
		HostConnected: d.bridge.Connected(),
		PrefersDark:   ambient.PrefersDark,
		AmbientSource: ambient.Source,
		StartedAt:     d.startedAt,
		Capabilities:  d.bridge.Capabilities(),
	}

	if status.HostConnected {
		if mode, err := d.icon.CurrentMode(ctx); err == nil {
			status.Mode = mode
		} else {
			log.Debug().Err(err).Msg("mode from enabled theme unavailable")
		}
		if id, ok, err := d.directory.Active(ctx); err == nil && ok {
			status.ActiveTheme = id
		}
	}

	if last, err := d.switchLog.Latest(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to read switch log")
	} else if last != nil {
		status.LastSwitch = last.SwitchedAt
		status.LastSwitchMode = last.Mode
		if status.ActiveTheme == "" {
			status.ActiveTheme = last.ThemeID
		}
	}
	return status, nil
}

func (b *backend) ListThemes(ctx context.Context) ([]entity.ThemeEntry, error) {
	return b.d.prefs.ListThemes(ctx)
}

func (b *backend) LoadPreferences(ctx context.Context) (entity.Preferences, error) {
	return b.d.prefs.Load(ctx)
}

func (b *backend) SavePreferences(ctx context.Context, prefs entity.Preferences) (entity.Preferences, error) {
	return dispatchAs[entity.Preferences](ctx, b.d.events, dispatch.EventPrefsSave, prefs)
}

func (b *backend) RestoreDefaults(ctx context.Context) (entity.Preferences, error) {
	return dispatchAs[entity.Preferences](ctx, b.d.events, dispatch.EventPrefsRestore, nil)
}

func (b *backend) LoadSchedule(ctx context.Context) (entity.Schedule, error) {
	return b.d.prefs.LoadSchedule(ctx)
}

func (b *backend) SaveSchedule(ctx context.Context, schedule entity.Schedule) error {
	_, err := dispatchAs[any](ctx, b.d.events, dispatch.EventScheduleSave, schedule)
	return err
}

func (b *backend) Toggle(ctx context.Context) (*usecase.SwitchResult, error) {
	return dispatchAs[*usecase.SwitchResult](ctx, b.d.events, dispatch.EventToggle, nil)
}

func (b *backend) ClickMenu(ctx context.Context, item entity.MenuItem, checked bool) (entity.MenuState, error) {
	return dispatchAs[entity.MenuState](ctx, b.d.events, dispatch.EventMenuCommand,
		bridge.MenuClicked{Item: string(item), Checked: checked})
}

func (b *backend) Icon(ctx context.Context) (*entity.Icon, error) {
	return b.d.icon.Compose(ctx, nil)
}
