// Package telemetry holds the Prometheus metrics and OpenTelemetry tracing
// shared by the page handlers and the live nav sessions.
package telemetry

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "website").
	Namespace string

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "website",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the site collectors.
type Metrics struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	liveSessions      prometheus.Gauge
	navEvents         *prometheus.CounterVec
	rendersSent       prometheus.Counter
	bootstrapFailures prometheus.Counter
	wsErrors          *prometheus.CounterVec
}

// NewMetrics registers the collectors with the configured registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status code",
		}, []string{"route", "code"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   config.Buckets,
		}, []string{"route"}),

		liveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "live_sessions",
			Help:      "Number of open live nav sessions",
		}),

		navEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "nav_events_total",
			Help:      "Total number of nav events by action and status",
		}, []string{"action", "status"}),

		rendersSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "nav_renders_sent_total",
			Help:      "Total number of nav fragments pushed to clients",
		}),

		bootstrapFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "search_bootstrap_failures_total",
			Help:      "Total number of failed search widget bootstraps",
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "websocket_errors_total",
			Help:      "Total WebSocket errors by type",
		}, []string{"type"}),
	}
}

// SessionOpened records a new live session.
func (m *Metrics) SessionOpened() {
	if m != nil {
		m.liveSessions.Inc()
	}
}

// SessionClosed records the end of a live session.
func (m *Metrics) SessionClosed() {
	if m != nil {
		m.liveSessions.Dec()
	}
}

// Event records one dispatched nav event.
func (m *Metrics) Event(action string, ok bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "unknown"
		action = "other"
	}
	m.navEvents.WithLabelValues(action, status).Inc()
}

// RenderSent records a pushed fragment.
func (m *Metrics) RenderSent() {
	if m != nil {
		m.rendersSent.Inc()
	}
}

// BootstrapFailed records a failed mount.
func (m *Metrics) BootstrapFailed() {
	if m != nil {
		m.bootstrapFailures.Inc()
	}
}

// WebSocketError records a transport failure by type.
func (m *Metrics) WebSocketError(err error) {
	if m != nil {
		m.wsErrors.WithLabelValues(categorizeError(err)).Inc()
	}
}

// Middleware records request counts and durations labelled by chi route
// pattern, which keeps label cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := routePattern(r)
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// categorizeError returns a category for the error type.
func categorizeError(err error) string {
	var timeout interface{ Timeout() bool }
	switch {
	case err == nil:
		return "none"
	case errors.As(err, &timeout) && timeout.Timeout():
		return "timeout"
	case errors.Is(err, http.ErrHijacked):
		return "hijacked"
	default:
		return "io"
	}
}
