package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/toggley/internal/application/port"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/logging"
)

// ScheduleControl starts and stops scheduled switching.
type ScheduleControl interface {
	Enable(ctx context.Context) error
	Disable(ctx context.Context) error
	Enabled() bool
}

// MenuPages holds the URLs opened by the page entries of the menu.
type MenuPages struct {
	OptionsURL  string
	ScheduleURL string
}

// HandleMenuUseCase reacts to context-menu clicks and keeps the
// "use system theme" and "use scheduled theme" entries mutually exclusive.
type HandleMenuUseCase struct {
	store    *PreferenceStore
	schedule ScheduleControl
	applier  ModeApplier
	menu     port.MenuSurface
	pages    port.PageOpener
	urls     MenuPages

	mu    sync.Mutex
	state entity.MenuState
}

// NewHandleMenuUseCase creates a new menu use case.
func NewHandleMenuUseCase(
	store *PreferenceStore,
	schedule ScheduleControl,
	applier ModeApplier,
	menu port.MenuSurface,
	pages port.PageOpener,
	urls MenuPages,
) *HandleMenuUseCase {
	return &HandleMenuUseCase{
		store:    store,
		schedule: schedule,
		applier:  applier,
		menu:     menu,
		pages:    pages,
		urls:     urls,
	}
}

// State returns the current checkbox state.
func (uc *HandleMenuUseCase) State() entity.MenuState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// Click handles a menu entry. checked is ignored for page entries.
func (uc *HandleMenuUseCase) Click(ctx context.Context, item entity.MenuItem, checked bool) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("item", string(item)).Bool("checked", checked).Msg("menu clicked")

	switch item {
	case entity.MenuUseSystemTheme:
		return uc.setSystem(ctx, checked)
	case entity.MenuUseScheduledTheme:
		return uc.setScheduled(ctx, checked)
	case entity.MenuCustomizeSchedule:
		return uc.open(ctx, uc.urls.ScheduleURL)
	case entity.MenuModifyPreferences:
		return uc.open(ctx, uc.urls.OptionsURL)
	default:
		return fmt.Errorf("%w: %q", entity.ErrUnknownMenuItem, item)
	}
}

func (uc *HandleMenuUseCase) setSystem(ctx context.Context, checked bool) error {
	if checked {
		if err := uc.schedule.Disable(ctx); err != nil {
			return err
		}
		uc.setState(uc.State().Apply(entity.MenuUseSystemTheme, true))
		result, err := uc.applier.Apply(ctx, entity.ModeSystem, entity.SwitchSourceMenu)
		if err != nil {
			return err
		}
		if !result.Switched {
			// No system theme installed: the checkbox must not claim otherwise.
			uc.setState(uc.State().Apply(entity.MenuUseSystemTheme, false))
		}
		return uc.Sync(ctx)
	}

	uc.setState(uc.State().Apply(entity.MenuUseSystemTheme, false))
	prefs, err := uc.store.LoadPreferences(ctx)
	if err != nil {
		return err
	}
	mode := prefs.LastUsed
	if mode == entity.ModeSystem {
		mode = entity.ModeLight
	}
	if _, err := uc.applier.Apply(ctx, mode, entity.SwitchSourceMenu); err != nil {
		return err
	}
	return uc.Sync(ctx)
}

func (uc *HandleMenuUseCase) setScheduled(ctx context.Context, checked bool) error {
	uc.setState(uc.State().Apply(entity.MenuUseScheduledTheme, checked))
	var err error
	if checked {
		err = uc.schedule.Enable(ctx)
	} else {
		err = uc.schedule.Disable(ctx)
	}
	if err != nil {
		return err
	}
	return uc.Sync(ctx)
}

// Restore rebuilds the checkbox state at startup from persisted state and
// re-arms scheduled switching if it was left on.
func (uc *HandleMenuUseCase) Restore(ctx context.Context) error {
	enabled, err := uc.store.ScheduleEnabled(ctx)
	if err != nil {
		return err
	}
	prefs, err := uc.store.LoadPreferences(ctx)
	if err != nil {
		return err
	}

	state := entity.MenuState{}
	switch {
	case enabled:
		state.ScheduledChecked = true
	case prefs.LastUsed == entity.ModeSystem:
		state.SystemChecked = true
	}
	uc.setState(state)

	if enabled {
		if err := uc.schedule.Enable(ctx); err != nil {
			return err
		}
	}
	return uc.Sync(ctx)
}

// Reconcile unchecks "use system theme" once the persisted mode has left
// system, for example after a manual toggle or a restore of defaults.
func (uc *HandleMenuUseCase) Reconcile(ctx context.Context) error {
	state := uc.State()
	if !state.SystemChecked {
		return nil
	}
	prefs, err := uc.store.LoadPreferences(ctx)
	if err != nil {
		return err
	}
	if prefs.LastUsed == entity.ModeSystem {
		return nil
	}
	uc.setState(state.Apply(entity.MenuUseSystemTheme, false))
	return uc.Sync(ctx)
}

// Sync pushes the checkbox state to the browser menu.
func (uc *HandleMenuUseCase) Sync(ctx context.Context) error {
	if uc.menu == nil {
		return nil
	}
	if err := uc.menu.UpdateMenu(ctx, uc.State()); err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}
	return nil
}

func (uc *HandleMenuUseCase) open(ctx context.Context, url string) error {
	if url == "" {
		return fmt.Errorf("no page configured")
	}
	if err := uc.pages.OpenPage(ctx, url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

func (uc *HandleMenuUseCase) setState(s entity.MenuState) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = s
}
