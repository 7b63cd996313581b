package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/bnema/toggley/internal/application/dispatch"
	"github.com/bnema/toggley/internal/logging"
)

// ErrNotConnected is returned by calls made while no shim is attached.
var ErrNotConnected = errors.New("browser bridge not connected")

// DefaultCallTimeout bounds a single request to the shim.
const DefaultCallTimeout = 10 * time.Second

// Poster enqueues an event on the loop.
type Poster interface {
	Post(event dispatch.Event) error
}

// peer is one shim connection. Writes are serialized by writeMu.
type peer struct {
	id string
	ws *websocket.Conn

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan Frame
	caps    []string
	closed  chan struct{}
}

func (p *peer) writeJSON(v any) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	return p.ws.WriteJSON(v)
}

// Server accepts shim connections. Only one shim is attached at a time;
// a new connection replaces the previous one.
type Server struct {
	events   Poster
	timeout  time.Duration
	upgrader websocket.Upgrader
	baseCtx  context.Context

	mu      sync.RWMutex
	current *peer
	ambient *bool

	warnMu sync.Mutex
	warned map[string]bool
}

// NewServer creates a bridge server that forwards shim events to events.
func NewServer(ctx context.Context, events Poster) *Server {
	if ctx == nil {
		ctx = context.Background()
	}
	s := &Server{
		events:  events,
		timeout: DefaultCallTimeout,
		baseCtx: logging.WithComponent(ctx, "bridge"),
		warned:  make(map[string]bool),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     checkOrigin,
	}
	return s
}

// SetCallTimeout changes the per-request timeout.
func (s *Server) SetCallTimeout(d time.Duration) {
	if d > 0 {
		s.timeout = d
	}
}

// checkOrigin admits extension pages, loopback pages and clients that send
// no Origin header at all.
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "moz-extension", "chrome-extension":
		return true
	case "http", "https":
		host := u.Hostname()
		return host == "localhost" || host == "127.0.0.1" || host == "::1"
	}
	return false
}

// Connected reports whether a shim is attached.
func (s *Server) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Capabilities returns what the attached shim announced.
func (s *Server) Capabilities() []string {
	p := s.peer()
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.caps)
}

// HasCapability reports whether the attached shim announced name.
func (s *Server) HasCapability(name string) bool {
	return slices.Contains(s.Capabilities(), name)
}

// AmbientDark returns the last dark-mode signal reported by the shim.
func (s *Server) AmbientDark() (prefersDark, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.ambient == nil {
		return false, false
	}
	return *s.ambient, true
}

func (s *Server) peer() *peer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// ServeHTTP upgrades the request and runs the connection until it closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.FromContext(s.baseCtx).Warn().Err(err).Msg("bridge upgrade failed")
		return
	}

	p := &peer{
		id:      uuid.NewString(),
		ws:      ws,
		pending: make(map[string]chan Frame),
		closed:  make(chan struct{}),
	}
	ctx := logging.WithConnID(s.baseCtx, p.id)
	log := logging.FromContext(ctx)

	s.mu.Lock()
	old := s.current
	s.current = p
	s.ambient = nil
	s.mu.Unlock()
	if old != nil {
		log.Info().Str("replaced", old.id).Msg("new shim connection replaces the previous one")
		_ = old.ws.Close()
	}

	log.Info().Str("remote", r.RemoteAddr).Msg("shim connected")
	s.readLoop(ctx, p)

	s.mu.Lock()
	if s.current == p {
		s.current = nil
		s.ambient = nil
	}
	s.mu.Unlock()

	close(p.closed)
	_ = ws.Close()
	log.Info().Msg("shim disconnected")
}

func (s *Server) readLoop(ctx context.Context, p *peer) {
	log := logging.FromContext(ctx)
	for {
		var frame Frame
		if err := p.ws.ReadJSON(&frame); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Msg("bridge read ended")
			}
			return
		}

		switch frame.Type {
		case FrameHello:
			s.handleHello(ctx, p, frame.Payload)
		case FrameResponse:
			p.mu.Lock()
			ch, ok := p.pending[frame.ID]
			delete(p.pending, frame.ID)
			p.mu.Unlock()
			if !ok {
				log.Debug().Str("id", frame.ID).Msg("response for unknown request")
				continue
			}
			ch <- frame
		case FrameEvent:
			s.handleEvent(ctx, frame)
		default:
			log.Warn().Str("type", frame.Type).Msg("unknown bridge frame")
		}
	}
}

func (s *Server) handleHello(ctx context.Context, p *peer, payload json.RawMessage) {
	log := logging.FromContext(ctx)

	var hello Hello
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &hello); err != nil {
			log.Warn().Err(err).Msg("invalid hello payload")
			return
		}
	}

	p.mu.Lock()
	p.caps = hello.Capabilities
	p.mu.Unlock()

	s.mu.Lock()
	if s.current == p {
		s.ambient = hello.PrefersDark
	}
	s.mu.Unlock()

	log.Info().Strs("capabilities", hello.Capabilities).Str("user_agent", hello.UserAgent).Msg("shim hello")
	s.post(ctx, dispatch.Event{Type: dispatch.EventBridgeAttached, Payload: payload})
}

func (s *Server) handleEvent(ctx context.Context, frame Frame) {
	if frame.Event == "" {
		logging.FromContext(ctx).Warn().Msg("bridge event without a name")
		return
	}
	if frame.Event == EventColorSchemeChanged {
		var changed ColorSchemeChanged
		if err := json.Unmarshal(frame.Payload, &changed); err == nil {
			s.mu.Lock()
			s.ambient = &changed.PrefersDark
			s.mu.Unlock()
		}
	}
	s.post(ctx, dispatch.Event{Type: frame.Event, Payload: frame.Payload})
}

func (s *Server) post(ctx context.Context, ev dispatch.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Post(ev); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("event", ev.Type).Msg("failed to forward bridge event")
	}
}

// Call sends a request to the shim and decodes the result into out.
// out may be nil when the result is not needed.
func (s *Server) Call(ctx context.Context, method string, params, out any) error {
	p := s.peer()
	if p == nil {
		return ErrNotConnected
	}

	frame := Frame{Type: FrameRequest, ID: uuid.NewString(), Method: method}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("failed to encode %s params: %w", method, err)
		}
		frame.Params = raw
	}

	ch := make(chan Frame, 1)
	p.mu.Lock()
	p.pending[frame.ID] = ch
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		delete(p.pending, frame.ID)
		p.mu.Unlock()
	}()

	if err := p.writeJSON(frame); err != nil {
		return fmt.Errorf("failed to send %s: %w", method, err)
	}

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	var resp Frame
	select {
	case resp = <-ch:
	case <-p.closed:
		return ErrNotConnected
	case <-timer.C:
		return fmt.Errorf("%s timed out after %s", method, s.timeout)
	case <-ctx.Done():
		return ctx.Err()
	}

	if resp.Error != "" {
		return &RemoteError{Method: method, Message: resp.Error}
	}
	if out == nil || len(resp.Result) == 0 || string(resp.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", method, err)
	}
	return nil
}

// warnOnce logs a missing capability the first time it is hit.
func (s *Server) warnOnce(ctx context.Context, capability string) {
	s.warnMu.Lock()
	defer s.warnMu.Unlock()
	if s.warned[capability] {
		return
	}
	s.warned[capability] = true
	logging.FromContext(ctx).Warn().Str("capability", capability).Msg("browser lacks capability; feature skipped")
}

// Close drops the current connection.
func (s *Server) Close() error {
	p := s.peer()
	if p == nil {
		return nil
	}
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown")
	_ = p.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return p.ws.Close()
}
