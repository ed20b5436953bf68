// Package server serves the website: documentation pages, the live
// navigation endpoint, embedded assets, metrics and health checks.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glamorous-css/website/internal/assets"
	"github.com/glamorous-css/website/internal/live"
	"github.com/glamorous-css/website/internal/locale"
	"github.com/glamorous-css/website/internal/pages"
	"github.com/glamorous-css/website/internal/telemetry"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address.
	Addr string

	// ReadHeaderTimeout bounds request header reads.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// Session holds the live session timeouts.
	Session live.SessionConfig
}

// DefaultConfig returns a config listening on :8080.
func DefaultConfig() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		Session:           live.DefaultSessionConfig(),
	}
}

// Server is the website HTTP server.
type Server struct {
	config   Config
	site     *pages.Site
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	gatherer prometheus.Gatherer

	router     chi.Router
	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry registers the metrics with reg and serves reg on /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.metrics = telemetry.NewMetrics(telemetry.WithRegistry(reg))
		s.gatherer = reg
	}
}

// New creates a server for site.
func New(site *pages.Site, config Config, opts ...Option) *Server {
	s := &Server{
		config: config,
		site:   site,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = telemetry.NewMetrics()
		s.gatherer = prometheus.DefaultGatherer
	}
	s.logger = s.logger.With("component", "server")
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.Middleware)
	r.Use(telemetry.Tracing)

	if s.site.Live {
		for _, p := range pages.All {
			r.Get(p.Path, s.handlePage(p))
		}
	} else {
		// Each locale under its own prefix, as in a static export.
		for _, tag := range s.site.Locales.Supported() {
			base := s.site.LocaleBase(tag)
			for _, p := range pages.All {
				r.Get(locale.Prefixed(base, p.Path), s.handleStaticPage(p, tag))
			}
		}
	}
	r.NotFound(s.handleNotFound)

	if s.site.Live {
		lh := live.NewHandler(s.buildBar, s.logger, s.metrics)
		lh.Config = s.config.Session
		r.Handle(pages.LivePath, lh)
	}

	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assets.FS()))))
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	return r
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Shutdown gracefully shuts down the server. Live sessions end when their
// request context is cancelled.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}
