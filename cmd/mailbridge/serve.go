package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/mailbridge/app/bridge"
	"github.com/dmitrymomot/mailbridge/core/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP bridge until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			app, err := bridge.NewApp(bridge.WithConfig(cfg), bridge.WithLogger(log))
			if err != nil {
				log.Error("failed to build application", logger.Error(err))
				return err
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(app.Run(ctx))
			g.Go(func() error {
				select {
				case <-app.Ready():
					log.InfoContext(ctx, "mailbridge listening",
						logger.Addr(app.Addr()),
						slog.String("smtp_host", cfg.SMTP.Host),
						slog.Bool("smtp_tls", cfg.SMTP.UseTLS()),
					)
				case <-ctx.Done():
				}
				return nil
			})

			if err := g.Wait(); err != nil {
				log.Error("server stopped with error", logger.Error(err))
				return err
			}
			return nil
		},
	}
}
