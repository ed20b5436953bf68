package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/glamorous-css/website/internal/nav"
	"github.com/glamorous-css/website/internal/telemetry"
	"github.com/glamorous-css/website/pkg/render"
)

// ErrClosed is returned by Send after the session has ended.
var ErrClosed = errors.New("live: session closed")

// SessionConfig holds the connection timeouts.
type SessionConfig struct {
	// ReadTimeout bounds the wait for the next client frame or pong.
	ReadTimeout time.Duration

	// WriteTimeout bounds every write.
	WriteTimeout time.Duration

	// HeartbeatInterval is the ping period. It must be shorter than
	// ReadTimeout.
	HeartbeatInterval time.Duration
}

// DefaultSessionConfig returns the timeouts used when none are configured.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
	}
}

// Session binds one NavBar instance to one connection.
type Session struct {
	conn     *websocket.Conn
	config   SessionConfig
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	renderer *render.Renderer

	bar *nav.NavBar

	mu     sync.Mutex // serializes writes
	closed atomic.Bool
	done   chan struct{}
}

// NewSession wraps conn. The bar is attached later with Attach because its
// search bootstrap needs the session as its sink.
func NewSession(conn *websocket.Conn, config SessionConfig, logger *slog.Logger, metrics *telemetry.Metrics) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		conn:     conn,
		config:   config,
		logger:   logger,
		metrics:  metrics,
		renderer: render.NewRenderer(render.RendererConfig{}),
		done:     make(chan struct{}),
	}
}

// Attach sets the bar served by this session.
func (s *Session) Attach(bar *nav.NavBar) {
	s.bar = bar
}

// Send writes msg as a JSON text frame. It implements search.Sink.
func (s *Session) Send(msg any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return ErrClosed
	}
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout)); err != nil {
		s.metrics.WebSocketError(err)
		return fmt.Errorf("live: set write deadline: %w", err)
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.metrics.WebSocketError(err)
		return fmt.Errorf("live: write: %w", err)
	}
	return nil
}

// Run serves the session until the connection ends or ctx is cancelled.
// It pushes the first render, mounts the bar, then handles client events
// one at a time.
func (s *Session) Run(ctx context.Context) error {
	if s.bar == nil {
		return errors.New("live: no bar attached")
	}
	s.metrics.SessionOpened()
	defer s.metrics.SessionClosed()
	defer s.Close()

	unsubscribe := s.bar.OnChange(func(nav.State) {
		if err := s.push(); err != nil {
			s.logger.Warn("push failed", "error", err)
		}
	})
	defer unsubscribe()

	if err := s.push(); err != nil {
		return err
	}
	if err := s.bar.Commit(); err != nil {
		s.metrics.BootstrapFailed()
		s.logger.Error("search bootstrap failed", "path", s.bar.Props().Pathname, "error", err)
	}

	go s.heartbeat()
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.done:
		}
	}()

	return s.readLoop(ctx)
}

// Close ends the session and disposes the bar. It is idempotent.
func (s *Session) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	close(s.done)

	s.mu.Lock()
	s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	s.mu.Unlock()
	s.conn.Close()

	if s.bar != nil {
		s.bar.Dispose()
	}
}

func (s *Session) readLoop(ctx context.Context) error {
	s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	})

	for {
		var msg Message
		if err := s.conn.ReadJSON(&msg); err != nil {
			if s.closed.Load() {
				return nil
			}
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				s.metrics.WebSocketError(err)
				s.logger.Warn("read error", "error", err)
			}
			return nil
		}
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		s.handle(ctx, msg)
	}
}

func (s *Session) handle(ctx context.Context, msg Message) {
	if msg.Type != TypeEvent {
		s.logger.Debug("ignoring message", "type", msg.Type)
		return
	}

	_, span := telemetry.StartEvent(ctx, msg.Action, s.bar.Props().Pathname)
	ok := s.bar.Dispatch(msg.Action)
	s.metrics.Event(msg.Action, ok)

	var err error
	if !ok {
		err = fmt.Errorf("unknown action %q", msg.Action)
		s.logger.Debug("unknown action", "action", msg.Action)
		if sendErr := s.Send(Message{Type: TypeError, Error: err.Error()}); sendErr != nil {
			s.logger.Warn("error reply failed", "error", sendErr)
		}
	}
	telemetry.End(span, err)
}

func (s *Session) push() error {
	html, err := s.renderer.RenderToString(s.bar.Render())
	if err != nil {
		return fmt.Errorf("live: render: %w", err)
	}
	if err := s.Send(Message{Type: TypeRender, HTML: html}); err != nil {
		return err
	}
	s.metrics.RenderSent()
	return nil
}

func (s *Session) heartbeat() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.config.WriteTimeout))
			s.mu.Unlock()
			if err != nil {
				s.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}
