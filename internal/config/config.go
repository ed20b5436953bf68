package config

import (
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/glamorous-css/website/internal/errors"
)

const (
	// DefaultAddr is the default listen address.
	DefaultAddr = ":8080"

	// DefaultLargeBreakpoint is the width in pixels at which the navigation
	// switches to its large layout.
	DefaultLargeBreakpoint = 1024
)

// Config is the complete website configuration.
type Config struct {
	// Addr is the server listen address.
	Addr string `env:"WEBSITE_ADDR" envDefault:":8080"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"WEBSITE_LOG_LEVEL" envDefault:"info"`

	// LogFormat is text or json.
	LogFormat string `env:"WEBSITE_LOG_FORMAT" envDefault:"text"`

	// LargeBreakpoint is the large-viewport threshold in pixels.
	LargeBreakpoint int `env:"WEBSITE_LARGE_BREAKPOINT" envDefault:"1024"`

	// DefaultLocale is used when a request names no supported locale.
	DefaultLocale string `env:"WEBSITE_DEFAULT_LOCALE" envDefault:"en"`

	// Live enables the WebSocket navigation session.
	Live bool `env:"WEBSITE_LIVE" envDefault:"true"`

	// Prefetch marks page links for prefetching.
	Prefetch bool `env:"USE_PREFETCH"`

	Search SearchConfig
	Server ServerConfig
	Export ExportConfig
}

// SearchConfig identifies the DocSearch index.
type SearchConfig struct {
	APIKey        string `env:"ALGOLIA_API_KEY"`
	IndexName     string `env:"ALGOLIA_INDEX_NAME"`
	InputSelector string `env:"ALGOLIA_INPUT_SELECTOR" envDefault:".algolia_searchbox"`
}

// Enabled reports whether search is configured.
func (s SearchConfig) Enabled() bool {
	return s.APIKey != "" && s.IndexName != ""
}

// ServerConfig holds the HTTP timeouts.
type ServerConfig struct {
	ReadHeaderTimeout time.Duration `env:"WEBSITE_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"WEBSITE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LiveReadTimeout   time.Duration `env:"WEBSITE_LIVE_READ_TIMEOUT" envDefault:"60s"`
	LiveWriteTimeout  time.Duration `env:"WEBSITE_LIVE_WRITE_TIMEOUT" envDefault:"10s"`
	LiveHeartbeat     time.Duration `env:"WEBSITE_LIVE_HEARTBEAT" envDefault:"30s"`
}

// ExportConfig is the default static export target.
type ExportConfig struct {
	Bucket string `env:"WEBSITE_S3_BUCKET"`
	Prefix string `env:"WEBSITE_S3_PREFIX"`
	// Base is the URL path the exported site is served under.
	Base string `env:"WEBSITE_BASE_PATH"`
}

// Load parses the process environment and validates the result.
func Load() (*Config, error) {
	return LoadEnv(nil)
}

// LoadEnv parses vars instead of the process environment when vars is not
// nil.
func LoadEnv(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{}
	if vars != nil {
		opts.Environment = vars
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.New("W007").Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, port, err := net.SplitHostPort(c.Addr); err != nil || port == "" {
		return errors.New("W001").WithDetail("address %q has no port", c.Addr)
	}
	if _, ok := LogLevels[strings.ToLower(c.LogLevel)]; !ok {
		return errors.New("W002").WithDetail("got %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return errors.New("W003").WithDetail("got %q", c.LogFormat)
	}
	if c.LargeBreakpoint <= 0 {
		return errors.New("W004").WithDetail("got %d", c.LargeBreakpoint)
	}
	if (c.Search.APIKey == "") != (c.Search.IndexName == "") {
		return errors.New("W005")
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return errors.New("W006").WithDetail("got %q", c.DefaultLocale).Wrap(err)
	}
	return nil
}

// LogLevels lists the accepted log level names.
var LogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Locale returns the parsed default locale.
func (c *Config) Locale() language.Tag {
	tag, err := language.Parse(c.DefaultLocale)
	if err != nil {
		return language.English
	}
	return tag
}
