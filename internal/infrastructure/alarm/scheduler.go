// Package alarm provides named periodic timers that fire into the event loop.
package alarm

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/toggley/internal/application/dispatch"
	"github.com/bnema/toggley/internal/logging"
)

// Poster enqueues an event on the loop.
type Poster interface {
	Post(event dispatch.Event) error
}

// Fired is the payload of an alarm event.
type Fired struct {
	Name string    `json:"name"`
	At   time.Time `json:"at"`
}

type entry struct {
	period time.Duration
	cancel context.CancelFunc
}

// Scheduler implements port.AlarmScheduler on time.Ticker.
type Scheduler struct {
	poster Poster

	mu     sync.Mutex
	ctx    context.Context
	alarms map[string]entry
}

// NewScheduler creates a scheduler posting to poster.
func NewScheduler(poster Poster) *Scheduler {
	return &Scheduler{
		poster: poster,
		alarms: make(map[string]entry),
	}
}

// Start sets the parent context of all alarms. Alarms created before
// Start run under context.Background.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = ctx
	logging.FromContext(ctx).Debug().Msg("alarm scheduler started")
}

// Create arms name to fire every period, replacing any existing alarm.
func (s *Scheduler) Create(name string, period time.Duration) error {
	if name == "" {
		return errors.New("alarm name cannot be empty")
	}
	if period <= 0 {
		return errors.New("alarm period must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.alarms[name]; ok {
		old.cancel()
	}

	parent := s.ctx
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	s.alarms[name] = entry{period: period, cancel: cancel}

	go s.run(ctx, name, period)

	logging.FromContext(parent).Debug().Str("alarm", name).Dur("period", period).Msg("alarm armed")
	return nil
}

// Clear cancels name and reports whether it existed.
func (s *Scheduler) Clear(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.alarms[name]
	if !ok {
		return false
	}
	e.cancel()
	delete(s.alarms, name)
	return true
}

// Active returns the names of armed alarms and their periods.
func (s *Scheduler) Active() map[string]time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]time.Duration, len(s.alarms))
	for name, e := range s.alarms {
		out[name] = e.period
	}
	return out
}

// Stop cancels every alarm.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, e := range s.alarms {
		e.cancel()
		delete(s.alarms, name)
	}
}

func (s *Scheduler) run(ctx context.Context, name string, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			ev, err := dispatch.NewEvent(dispatch.EventAlarm, Fired{Name: name, At: now})
			if err == nil {
				err = s.poster.Post(ev)
			}
			if err != nil {
				logging.FromContext(ctx).Warn().Err(err).Str("alarm", name).Msg("failed to deliver alarm")
				if errors.Is(err, dispatch.ErrStopped) {
					return
				}
			}
		}
	}
}
