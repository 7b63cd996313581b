package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/toggley/internal/application/port"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/logging"
)

// CheckThemeAlarm is the alarm that drives scheduled switching.
const CheckThemeAlarm = "checkTheme"

// DefaultPollPeriod is how often the schedule is re-evaluated.
const DefaultPollPeriod = time.Minute

// ModeApplier switches the browser to a mode.
type ModeApplier interface {
	Apply(ctx context.Context, mode entity.Mode, source entity.SwitchSource) (*SwitchResult, error)
}

// SchedulePoller applies the schedule once per alarm tick, acting only
// when the resolved mode differs from the last one it applied.
type SchedulePoller struct {
	store   *PreferenceStore
	applier ModeApplier
	alarms  port.AlarmScheduler
	period  time.Duration
	now     func() time.Time

	mu          sync.Mutex
	enabled     bool
	lastApplied entity.Mode
}

// NewSchedulePoller creates a disabled poller.
func NewSchedulePoller(
	store *PreferenceStore,
	applier ModeApplier,
	alarms port.AlarmScheduler,
	period time.Duration,
) *SchedulePoller {
	if period <= 0 {
		period = DefaultPollPeriod
	}
	return &SchedulePoller{
		store:   store,
		applier: applier,
		alarms:  alarms,
		period:  period,
		now:     time.Now,
	}
}

// SetClock replaces the time source. Used by tests.
func (p *SchedulePoller) SetClock(now func() time.Time) {
	p.now = now
}

// Enabled reports whether scheduled switching is active.
func (p *SchedulePoller) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// LastApplied returns the mode most recently applied by a tick.
func (p *SchedulePoller) LastApplied() entity.Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastApplied
}

// Enable starts scheduled switching: any previous alarm is cleared, the
// last applied mode is forgotten, one tick runs immediately and the
// periodic alarm is armed.
func (p *SchedulePoller) Enable(ctx context.Context) error {
	log := logging.FromContext(ctx)

	p.alarms.Clear(CheckThemeAlarm)

	p.mu.Lock()
	p.enabled = true
	p.lastApplied = ""
	p.mu.Unlock()

	if err := p.store.SetScheduleEnabled(ctx, true); err != nil {
		log.Warn().Err(err).Msg("failed to persist schedule state")
	}

	if err := p.Tick(ctx); err != nil {
		log.Warn().Err(err).Msg("initial schedule check failed")
	}

	if err := p.alarms.Create(CheckThemeAlarm, p.period); err != nil {
		return fmt.Errorf("failed to arm schedule alarm: %w", err)
	}

	log.Info().Dur("period", p.period).Msg("scheduled switching enabled")
	return nil
}

// Disable stops scheduled switching.
func (p *SchedulePoller) Disable(ctx context.Context) error {
	p.alarms.Clear(CheckThemeAlarm)

	p.mu.Lock()
	wasEnabled := p.enabled
	p.enabled = false
	p.mu.Unlock()

	if err := p.store.SetScheduleEnabled(ctx, false); err != nil {
		return err
	}
	if wasEnabled {
		logging.FromContext(ctx).Info().Msg("scheduled switching disabled")
	}
	return nil
}

// Tick re-reads the schedule and applies the resolved mode if it changed.
// Ticks while disabled are ignored.
func (p *SchedulePoller) Tick(ctx context.Context) error {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	enabled, last := p.enabled, p.lastApplied
	p.mu.Unlock()
	if !enabled {
		log.Debug().Msg("schedule tick ignored: scheduling disabled")
		return nil
	}

	schedule, err := p.store.LoadSchedule(ctx)
	if err != nil {
		return err
	}

	mode, err := schedule.ModeAtTime(p.now())
	if err != nil {
		return fmt.Errorf("failed to resolve schedule: %w", err)
	}
	if mode == last {
		return nil
	}

	result, err := p.applier.Apply(ctx, mode, entity.SwitchSourceSchedule)
	if err != nil {
		return err
	}
	if !result.Switched {
		return nil
	}

	p.mu.Lock()
	p.lastApplied = mode
	p.mu.Unlock()

	log.Debug().Str("mode", mode.String()).Msg("schedule applied")
	return nil
}
