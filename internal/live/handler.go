package live

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/glamorous-css/website/internal/nav"
	"github.com/glamorous-css/website/internal/search"
	"github.com/glamorous-css/website/internal/telemetry"
)

// Builder creates the bar for a new connection. sink delivers messages to
// the connected browser and is meant for the bar's search bootstrap.
type Builder func(r *http.Request, sink search.Sink) (*nav.NavBar, error)

// Handler upgrades requests and runs one Session per connection.
type Handler struct {
	Build    Builder
	Config   SessionConfig
	Logger   *slog.Logger
	Metrics  *telemetry.Metrics
	Upgrader websocket.Upgrader
}

// NewHandler returns a handler with default timeouts.
func NewHandler(build Builder, logger *slog.Logger, metrics *telemetry.Metrics) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Build:   build,
		Config:  DefaultSessionConfig(),
		Logger:  logger.With("component", "live"),
		Metrics: metrics,
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		h.Logger.Debug("upgrade failed", "error", err)
		return
	}

	logger := h.Logger.With("remote", r.RemoteAddr)
	s := NewSession(conn, h.Config, logger, h.Metrics)

	bar, err := h.Build(r, s)
	if err != nil {
		logger.Warn("bad session request", "error", err)
		s.Send(Message{Type: TypeError, Error: err.Error()})
		s.Close()
		return
	}
	s.Attach(bar)

	if err := s.Run(r.Context()); err != nil {
		logger.Warn("session ended", "error", err)
	}
}
