package config

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/glamorous-css/website/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadEnv(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, DefaultLargeBreakpoint, cfg.LargeBreakpoint)
	assert.Equal(t, language.English, cfg.Locale())
	assert.True(t, cfg.Live)
	assert.False(t, cfg.Prefetch)
	assert.False(t, cfg.Search.Enabled())
	assert.Equal(t, ".algolia_searchbox", cfg.Search.InputSelector)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.LiveHeartbeat)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadEnv(map[string]string{
		"WEBSITE_ADDR":             "127.0.0.1:9000",
		"WEBSITE_LOG_FORMAT":       "json",
		"WEBSITE_LARGE_BREAKPOINT": "900",
		"WEBSITE_DEFAULT_LOCALE":   "pt-BR",
		"WEBSITE_LIVE":             "false",
		"USE_PREFETCH":             "true",
		"ALGOLIA_API_KEY":          "key",
		"ALGOLIA_INDEX_NAME":       "glamorous",
		"WEBSITE_S3_BUCKET":        "site",
		"WEBSITE_BASE_PATH":        "/docs",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 900, cfg.LargeBreakpoint)
	assert.Equal(t, language.MustParse("pt-BR"), cfg.Locale())
	assert.False(t, cfg.Live)
	assert.True(t, cfg.Prefetch)
	assert.True(t, cfg.Search.Enabled())
	assert.Equal(t, "site", cfg.Export.Bucket)
	assert.Equal(t, "/docs", cfg.Export.Base)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		code string
	}{
		{"address without port", map[string]string{"WEBSITE_ADDR": "localhost"}, "W001"},
		{"unknown level", map[string]string{"WEBSITE_LOG_LEVEL": "loud"}, "W002"},
		{"unknown format", map[string]string{"WEBSITE_LOG_FORMAT": "xml"}, "W003"},
		{"zero breakpoint", map[string]string{"WEBSITE_LARGE_BREAKPOINT": "0"}, "W004"},
		{"half search config", map[string]string{"ALGOLIA_API_KEY": "key"}, "W005"},
		{"bad locale", map[string]string{"WEBSITE_DEFAULT_LOCALE": "not a locale"}, "W006"},
		{"bad number", map[string]string{"WEBSITE_LARGE_BREAKPOINT": "wide"}, "W007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEnv(tt.vars)
			require.Error(t, err)

			var se *errors.SiteError
			require.True(t, stderrors.As(err, &se), "want SiteError, got %T", err)
			assert.Equal(t, tt.code, se.Code)
		})
	}
}
