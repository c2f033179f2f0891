package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/romariotrain/project-media/internal/app"
	"github.com/romariotrain/project-media/internal/config"
	"github.com/romariotrain/project-media/internal/logging"
	"github.com/romariotrain/project-media/internal/media/kafka"
	"github.com/romariotrain/project-media/internal/media/models"
	"github.com/romariotrain/project-media/internal/media/outbox"
	pg "github.com/romariotrain/project-media/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := logging.New("publish", cfg.LogLevel, os.Stderr)
	os.Exit(app.Run("publish", logger, func(ctx context.Context) error {
		return run(ctx, cfg, logger)
	}))
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is empty")
	}

	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer db.Close()

	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		m := producer.GetMetrics()
		logger.Info().
			Int64("published", m.MessagesPublished).
			Int64("failed", m.MessagesFailed).
			Int64("retries", m.RetriesTotal).
			Dur("avg_publish_time", m.AvgPublishTime).
			Msg("kafka producer stats")
		if err := producer.Close(); err != nil {
			logger.Warn().Err(err).Msg("kafka producer close")
		}
	}()

	if err := producer.HealthCheck(ctx); err != nil {
		logger.Warn().Err(err).Msg("kafka not reachable yet, events stay in outbox")
	}

	types := make([]models.EventType, 0, len(cfg.OutboxTypes))
	for _, t := range cfg.OutboxTypes {
		types = append(types, models.EventType(t))
	}

	publisher, err := outbox.NewPublisher(outbox.PublisherConfig{
		Source:    pg.NewOutboxRepo(db),
		Sink:      producer,
		Interval:  cfg.OutboxInterval,
		BatchSize: cfg.OutboxBatchSize,
		Types:     types,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	return publisher.Start(ctx)
}
