package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailbridge/app/bridge"
	"github.com/dmitrymomot/mailbridge/core/config"
	"github.com/dmitrymomot/mailbridge/core/logger"
	"github.com/dmitrymomot/mailbridge/middleware"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:          "mailbridge",
		Short:        "HTTP to SMTP email bridge",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.AddCommand(serve, newSendCmd(), newVersionCmd())
	return root
}

// loadConfig reads the environment and builds the process logger from it.
func loadConfig() (bridge.Config, *slog.Logger, error) {
	var cfg bridge.Config
	if err := config.Load(&cfg); err != nil {
		return cfg, nil, fmt.Errorf("load configuration: %w", err)
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithOutput(os.Stderr),
		logger.WithAttr(logger.Version(version)),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return cfg, nil, fmt.Errorf("%w: LOG_LEVEL: %v", config.ErrInvalidValue, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}

	log := logger.New(opts...)
	logger.SetAsDefault(log)
	return cfg, log, nil
}
