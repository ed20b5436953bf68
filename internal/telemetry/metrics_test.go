package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return NewMetrics(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))
}

func TestMetricsSessionGauge(t *testing.T) {
	m := newTestMetrics(t)
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.liveSessions))
}

func TestMetricsEvents(t *testing.T) {
	m := newTestMetrics(t)
	m.Event("toggle", true)
	m.Event("toggle", true)
	m.Event("nonsense", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.navEvents.WithLabelValues("toggle", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.navEvents.WithLabelValues("other", "unknown")))
}

func TestMetricsCounters(t *testing.T) {
	m := newTestMetrics(t)
	m.RenderSent()
	m.BootstrapFailed()
	m.WebSocketError(errors.New("broken pipe"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.rendersSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bootstrapFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.wsErrors.WithLabelValues("io")))
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SessionOpened()
		m.SessionClosed()
		m.Event("toggle", true)
		m.RenderSent()
		m.BootstrapFailed()
		m.WebSocketError(context.DeadlineExceeded)
	})
}

func TestMetricsMiddlewareUsesRoutePattern(t *testing.T) {
	m := newTestMetrics(t)
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/docs/{page}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, p := range []string{"/docs/a", "/docs/b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/docs/{page}", "418")))
}

func TestCategorizeError(t *testing.T) {
	assert.Equal(t, "none", categorizeError(nil))
	assert.Equal(t, "timeout", categorizeError(timeoutErr{}))
	assert.Equal(t, "io", categorizeError(errors.New("eof")))
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "i/o timeout" }
func (timeoutErr) Timeout() bool { return true }
