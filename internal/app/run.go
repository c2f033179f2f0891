package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

type Runner func(ctx context.Context) error

// shutdownGrace bounds how long Run waits for the runner after a signal.
var shutdownGrace = 10 * time.Second

// Run executes run until it returns or the process receives SIGINT/SIGTERM,
// and converts the outcome into an exit code.
func Run(serviceName string, logger zerolog.Logger, run Runner) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runWithContext(ctx, serviceName, logger, run)
}

func runWithContext(ctx context.Context, serviceName string, logger zerolog.Logger, run Runner) int {
	logger.Info().Str("service", serviceName).Msg("starting")

	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx) }()

	select {
	case <-ctx.Done():
		logger.Info().Str("service", serviceName).Msg("shutting down")
		select {
		case err := <-errCh:
			if failed(ctx, err) {
				logger.Error().Err(err).Str("service", serviceName).Msg("failed during shutdown")
				return 1
			}
		case <-time.After(shutdownGrace):
			logger.Warn().Str("service", serviceName).Dur("grace", shutdownGrace).Msg("runner did not stop in time")
		}
		return 0

	case err := <-errCh:
		if failed(ctx, err) {
			logger.Error().Err(err).Str("service", serviceName).Msg("failed")
			return 1
		}
		logger.Info().Str("service", serviceName).Msg("stopped")
		return 0
	}
}

// failed treats the runner returning the context's own error as a clean stop.
func failed(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	return ctx.Err() == nil || !errors.Is(err, ctx.Err())
}
