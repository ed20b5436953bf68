package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glamorous-css/website/internal/config"
	"github.com/glamorous-css/website/internal/errors"
	"github.com/glamorous-css/website/internal/live"
	"github.com/glamorous-css/website/internal/server"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		noLive   bool
		prefetch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site",
		Long: `Serve the documentation pages, the live navigation endpoint,
embedded assets, Prometheus metrics on /metrics and a health check on
/healthz. The server shuts down gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if noLive {
				cfg.Live = false
			}
			if cmd.Flags().Changed("prefetch") {
				cfg.Prefetch = prefetch
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}

			srv := server.New(a.site, server.Config{
				Addr:              cfg.Addr,
				ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
				ShutdownTimeout:   cfg.Server.ShutdownTimeout,
				Session: live.SessionConfig{
					ReadTimeout:       cfg.Server.LiveReadTimeout,
					WriteTimeout:      cfg.Server.LiveWriteTimeout,
					HeartbeatInterval: cfg.Server.LiveHeartbeat,
				},
			}, server.WithLogger(a.logger))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			info("Listening on %s", cfg.Addr)
			if err := srv.ListenAndServe(ctx); err != nil && err != context.Canceled {
				return errors.New("W041").Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", config.DefaultAddr, "Listen address")
	cmd.Flags().BoolVar(&noLive, "no-live", false, "Render static navigation without the WebSocket session")
	cmd.Flags().BoolVar(&prefetch, "prefetch", false, "Mark page links for prefetching")

	return cmd
}
