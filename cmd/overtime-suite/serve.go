package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/username/overtime-suite/internal/api"
	"github.com/username/overtime-suite/internal/calendar"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("Starting overtime service",
				zap.String("addr", cfg.Server.Addr),
				zap.Int("rate_per_minute", cfg.Server.RatePerMinute),
				zap.Int("burst", cfg.Server.Burst))

			srv := api.NewServer(cfg, calendar.NewWeekendCalendar(logger), logger)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}
