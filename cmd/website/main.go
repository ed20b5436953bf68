package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/glamorous-css/website/internal/config"
	"github.com/glamorous-css/website/internal/content"
	"github.com/glamorous-css/website/internal/errors"
	"github.com/glamorous-css/website/internal/logging"
	"github.com/glamorous-css/website/internal/pages"
	"github.com/glamorous-css/website/internal/search"
	"github.com/glamorous-css/website/internal/theme"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "website",
		Short: "Serve and publish the glamorous documentation site",
		Long: `website serves the glamorous documentation pages with a live,
server-rendered navigation bar, or exports them as static files to a
directory or an S3 bucket.

Configuration is read from WEBSITE_* environment variables; flags
override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		serveCmd(),
		exportCmd(),
		versionCmd(),
	)
	return root
}

// app is the state shared by the commands after configuration is loaded.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	site   *pages.Site
}

func newApp(cfg *config.Config) (*app, error) {
	logger, err := logging.New(os.Stderr, logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return nil, errors.New("W002").Wrap(err)
	}
	slog.SetDefault(logger)

	catalog, err := content.Load()
	if err != nil {
		return nil, errors.New("W040").Wrap(err)
	}

	site := pages.NewSite(theme.New(cfg.LargeBreakpoint, theme.Default().Colors), catalog, cfg.Locale())
	site.Prefetch = cfg.Prefetch
	site.Live = cfg.Live
	site.Search = search.Config{
		APIKey:        cfg.Search.APIKey,
		IndexName:     cfg.Search.IndexName,
		InputSelector: cfg.Search.InputSelector,
	}

	return &app{cfg: cfg, logger: logger, site: site}, nil
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
