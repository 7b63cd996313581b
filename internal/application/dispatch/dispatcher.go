// Package dispatch runs every browser, timer and control event on a single
// goroutine so handlers never observe each other half-way through.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/toggley/internal/logging"
)

// Event types handled by the daemon.
const (
	EventActionClicked      = "action.clicked"
	EventMenusClicked       = "menus.clicked"
	EventAlarm              = "alarm"
	EventStorageChanged     = "storage.changed"
	EventThemeUpdated       = "theme.updated"
	EventColorSchemeChanged = "colorscheme.changed"
	EventStartup            = "startup"

	EventPrefsSave      = "prefs.save"
	EventPrefsRestore   = "prefs.restore"
	EventScheduleSave   = "schedule.save"
	EventToggle         = "toggle"
	EventMenuCommand    = "menu.command"
	EventBridgeAttached = "bridge.attached"
)

var (
	// ErrNoHandler is returned by Dispatch when nothing is registered for the event type.
	ErrNoHandler = errors.New("no handler registered")
	// ErrStopped is returned when posting to a dispatcher whose loop has exited.
	ErrStopped = errors.New("dispatcher stopped")
)

// Event is one unit of work for the loop.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEvent marshals payload into an Event.
func NewEvent(eventType string, payload any) (Event, error) {
	if payload == nil {
		return Event{Type: eventType}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}
	return Event{Type: eventType, Payload: raw}, nil
}

// Decode unmarshals the payload into v. An empty payload leaves v untouched.
func (e Event) Decode(v any) error {
	if len(e.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.Type, err)
	}
	return nil
}

// Handler processes one event.
type Handler interface {
	Handle(ctx context.Context, payload json.RawMessage) (any, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Handle calls f(ctx, payload).
func (f HandlerFunc) Handle(ctx context.Context, payload json.RawMessage) (any, error) {
	return f(ctx, payload)
}

// Result is what a handler produced.
type Result struct {
	Value any
	Err   error
}

type job struct {
	event Event
	reply chan Result
}

// Dispatcher is an unbounded FIFO drained by one goroutine.
type Dispatcher struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []job
	handlers map[string]Handler
	closed   bool
	done     chan struct{}
}

// New creates a dispatcher. Call Run to start processing.
func New() *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]Handler),
		done:     make(chan struct{}),
	}
	d.cond = sync.NewCond(&d.mu)
	return d
}

// Register installs the handler for an event type, replacing any previous one.
func (d *Dispatcher) Register(eventType string, handler Handler) error {
	if eventType == "" {
		return errors.New("event type cannot be empty")
	}
	if handler == nil {
		return errors.New("event handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = handler
	return nil
}

// RegisterFunc is Register for a plain function.
func (d *Dispatcher) RegisterFunc(eventType string, fn func(ctx context.Context, payload json.RawMessage) (any, error)) error {
	if fn == nil {
		return errors.New("event handler cannot be nil")
	}
	return d.Register(eventType, HandlerFunc(fn))
}

// Post enqueues an event without waiting. It never blocks.
func (d *Dispatcher) Post(event Event) error {
	return d.enqueue(job{event: event})
}

// Dispatch enqueues an event and waits for its handler to finish.
// Calling it from inside a handler deadlocks; handlers use Post.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) (any, error) {
	reply := make(chan Result, 1)
	if err := d.enqueue(job{event: event, reply: reply}); err != nil {
		return nil, err
	}
	select {
	case res := <-reply:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (d *Dispatcher) enqueue(j job) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrStopped
	}
	d.queue = append(d.queue, j)
	d.cond.Signal()
	return nil
}

// Pending returns the number of queued events.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// Done is closed once Run has returned.
func (d *Dispatcher) Done() <-chan struct{} {
	return d.done
}

// Run processes events until ctx is cancelled. Events still queued at that
// point are answered with ErrStopped.
func (d *Dispatcher) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "dispatcher")
	log := logging.FromContext(ctx)
	defer close(d.done)

	stop := context.AfterFunc(ctx, func() {
		d.mu.Lock()
		d.closed = true
		d.cond.Broadcast()
		d.mu.Unlock()
	})
	defer stop()

	log.Debug().Msg("event loop started")
	for {
		j, ok := d.next()
		if !ok {
			break
		}
		d.process(ctx, j)
	}

	d.mu.Lock()
	d.closed = true
	rest := d.queue
	d.queue = nil
	d.mu.Unlock()

	for _, j := range rest {
		if j.reply != nil {
			j.reply <- Result{Err: ErrStopped}
		}
	}
	log.Debug().Int("dropped", len(rest)).Msg("event loop stopped")
	return nil
}

func (d *Dispatcher) next() (job, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for len(d.queue) == 0 && !d.closed {
		d.cond.Wait()
	}
	if d.closed {
		return job{}, false
	}
	j := d.queue[0]
	d.queue[0] = job{}
	d.queue = d.queue[1:]
	return j, true
}

func (d *Dispatcher) process(ctx context.Context, j job) {
	res := d.invoke(ctx, j.event)
	if j.reply != nil {
		j.reply <- res
	}
}

// invoke is the error boundary for a single event.
func (d *Dispatcher) invoke(ctx context.Context, event Event) (res Result) {
	ctx = logging.WithEvent(ctx, event.Type)
	log := logging.FromContext(ctx)

	d.mu.Lock()
	handler, ok := d.handlers[event.Type]
	d.mu.Unlock()
	if !ok {
		log.Warn().Msg("no handler for event")
		return Result{Err: fmt.Errorf("%w for %q", ErrNoHandler, event.Type)}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("event handler panicked")
			res = Result{Err: fmt.Errorf("handler for %q panicked: %v", event.Type, r)}
		}
	}()

	value, err := handler.Handle(ctx, event.Payload)
	if err != nil {
		log.Error().Err(err).Msg("event handler failed")
	}
	return Result{Value: value, Err: err}
}
