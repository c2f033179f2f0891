package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/romariotrain/project-media/internal/app"
	"github.com/romariotrain/project-media/internal/config"
	"github.com/romariotrain/project-media/internal/media/httpapi"
	"github.com/romariotrain/project-media/internal/media/repository"
	"github.com/romariotrain/project-media/internal/media/service"
	pg "github.com/romariotrain/project-media/internal/storage/postgres"
)

func newRunner(cfg *config.Config, logger zerolog.Logger) app.Runner {
	return func(ctx context.Context) error {
		var repo repository.MediaRepository

		if cfg.DatabaseURL == "" {
			logger.Warn().Msg("DATABASE_URL is empty, using in-memory store")
			repo = repository.NewMemoryRepository()
		} else {
			db, err := pg.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("db connect: %w", err)
			}
			defer db.Close()

			if err := pg.Migrate(ctx, db); err != nil {
				return fmt.Errorf("db migrate: %w", err)
			}
			repo = pg.NewMediaRepo(db, pg.NewOutboxRepo(db))
		}

		svc := service.New(repo, logger)
		router := httpapi.NewRouter(httpapi.New(svc), logger)

		srv := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info().Str("addr", cfg.HTTPAddr).Msg("http server listening")
			if err := srv.ListenAndServe(); err != nil {
				errCh <- err
			}
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil

		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("listen and serve: %w", err)
		}
	}
}
