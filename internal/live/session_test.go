package live

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamorous-css/website/internal/content"
	"github.com/glamorous-css/website/internal/nav"
	"github.com/glamorous-css/website/internal/search"
	"github.com/glamorous-css/website/internal/telemetry"
	"github.com/glamorous-css/website/internal/theme"
)

func testBuilder(cfg search.Config) Builder {
	return func(r *http.Request, sink search.Sink) (*nav.NavBar, error) {
		path := r.URL.Query().Get("path")
		if path == "" {
			return nil, errors.New("missing path")
		}
		return nav.New(nav.Props{Pathname: path, Top: path == "/"}, nav.Options{
			Theme:   theme.Default(),
			Content: content.Nav{Home: "Home", Basics: "Basics", Search: "Search"},
			Search:  search.NewDocSearch(cfg, sink),
			LiveURL: "/_nav/live",
		}), nil
	}
}

func startServer(t *testing.T, build Builder) string {
	t.Helper()
	metrics := telemetry.NewMetrics(telemetry.WithRegistry(prometheus.NewRegistry()))
	h := NewHandler(build, nil, metrics)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	var msg map[string]any
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestSessionLifecycle(t *testing.T) {
	url := startServer(t, testBuilder(search.Config{APIKey: "key", IndexName: "glamorous"}))
	conn := dial(t, url+"?path=/basics")

	first := readMessage(t, conn)
	assert.Equal(t, TypeRender, first["type"])
	html := first["html"].(string)
	assert.Contains(t, html, `id="nav-style"`)
	assert.Contains(t, html, `aria-expanded="false"`)
	assert.NotContains(t, html, `data-open`)

	boot := readMessage(t, conn)
	assert.Equal(t, "docsearch", boot["type"])
	assert.Equal(t, "key", boot["apiKey"])
	assert.Equal(t, "glamorous", boot["indexName"])
	assert.Equal(t, ".algolia_searchbox", boot["inputSelector"])

	require.NoError(t, conn.WriteJSON(Message{Type: TypeEvent, Action: "toggle"}))
	opened := readMessage(t, conn)
	assert.Equal(t, TypeRender, opened["type"])
	assert.Contains(t, opened["html"], `data-open="true"`)
	assert.Contains(t, opened["html"], `aria-expanded="true"`)

	require.NoError(t, conn.WriteJSON(Message{Type: TypeEvent, Action: "toggle"}))
	closed := readMessage(t, conn)
	assert.NotContains(t, closed["html"], `data-open`)
}

// listMarkup returns the page list of a rendered bar, which the client keeps
// in place across renders.
func listMarkup(t *testing.T, html string) string {
	t.Helper()
	start := strings.Index(html, `id="nav-links"`)
	end := strings.LastIndex(html, "</nav>")
	require.True(t, start >= 0 && end > start, "no list in %q", html)
	return html[start:end]
}

func TestSessionToggleKeepsListMarkup(t *testing.T) {
	url := startServer(t, testBuilder(search.Config{APIKey: "key", IndexName: "glamorous"}))
	conn := dial(t, url+"?path=/basics")

	first := readMessage(t, conn)["html"].(string)
	readMessage(t, conn) // docsearch
	assert.Contains(t, first, `id="nav-search"`)
	assert.Contains(t, first, `id="nav-toggle"`)

	require.NoError(t, conn.WriteJSON(Message{Type: TypeEvent, Action: "toggle"}))
	opened := readMessage(t, conn)
	require.Equal(t, TypeRender, opened["type"])

	assert.Equal(t, listMarkup(t, first), listMarkup(t, opened["html"].(string)))
}

func TestSessionBootstrapsOnce(t *testing.T) {
	url := startServer(t, testBuilder(search.Config{APIKey: "key", IndexName: "glamorous"}))
	conn := dial(t, url+"?path=/")

	readMessage(t, conn) // render
	readMessage(t, conn) // docsearch

	for i := 0; i < 3; i++ {
		require.NoError(t, conn.WriteJSON(Message{Type: TypeEvent, Action: "toggle"}))
		msg := readMessage(t, conn)
		assert.Equal(t, TypeRender, msg["type"])
	}
}

func TestSessionUnknownAction(t *testing.T) {
	url := startServer(t, testBuilder(search.Config{APIKey: "key", IndexName: "glamorous"}))
	conn := dial(t, url+"?path=/api")

	readMessage(t, conn)
	readMessage(t, conn)

	require.NoError(t, conn.WriteJSON(Message{Type: TypeEvent, Action: "shake"}))
	msg := readMessage(t, conn)
	assert.Equal(t, TypeError, msg["type"])
	assert.Contains(t, msg["error"], "shake")
}

func TestSessionBootstrapFailureKeepsServing(t *testing.T) {
	url := startServer(t, testBuilder(search.Config{}))
	conn := dial(t, url+"?path=/api")

	first := readMessage(t, conn)
	assert.Equal(t, TypeRender, first["type"])

	require.NoError(t, conn.WriteJSON(Message{Type: TypeEvent, Action: "toggle"}))
	msg := readMessage(t, conn)
	assert.Equal(t, TypeRender, msg["type"])
	assert.Contains(t, msg["html"], `data-open="true"`)
}

func TestSessionBuildError(t *testing.T) {
	url := startServer(t, testBuilder(search.Config{}))
	conn := dial(t, url)

	msg := readMessage(t, conn)
	assert.Equal(t, TypeError, msg["type"])
	assert.Equal(t, "missing path", msg["error"])
}

func TestSessionSendAfterClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := (&websocket.Upgrader{}).Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s := NewSession(conn, DefaultSessionConfig(), nil, nil)
		s.Close()
		s.Close()
		if !errors.Is(s.Send(Message{Type: TypeRender}), ErrClosed) {
			t.Error("expected ErrClosed")
		}
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}

func TestSessionSendOnBrokenConn(t *testing.T) {
	errCh := make(chan error, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := (&websocket.Upgrader{}).Upgrade(w, r, nil)
		if err != nil {
			errCh <- err
			return
		}
		conn.UnderlyingConn().Close()
		errCh <- NewSession(conn, DefaultSessionConfig(), nil, nil).Send(Message{Type: TypeRender})
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrClosed)
		assert.True(t, strings.HasPrefix(err.Error(), "live: "), err.Error())
	case <-time.After(5 * time.Second):
		t.Fatal("send did not return")
	}
}
