package outbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/romariotrain/project-media/internal/media/models"
	"github.com/romariotrain/project-media/internal/storage/postgres"
)

// Source is the outbox table.
type Source interface {
	GetPending(ctx context.Context, limit int, types ...models.EventType) ([]postgres.OutboxRecord, error)
	MarkProcessed(ctx context.Context, id int64) error
}

// Sink receives event payloads keyed by event id.
type Sink interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// Publisher relays media catalog events from the outbox table to Kafka with
// at-least-once delivery: an event that was published but not marked is
// published again on the next tick, so consumers must be idempotent.
type Publisher struct {
	source    Source
	sink      Sink
	interval  time.Duration
	batchSize int
	types     []models.EventType
	logger    zerolog.Logger
}

// PublisherConfig configures a Publisher. An empty Types relays every event
// type.
type PublisherConfig struct {
	Source    Source
	Sink      Sink
	Interval  time.Duration
	BatchSize int
	Types     []models.EventType
	Logger    zerolog.Logger
}

func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	if cfg.Source == nil {
		return nil, errors.New("outbox source is required")
	}
	if cfg.Sink == nil {
		return nil, errors.New("event sink is required")
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got: %v", cfg.Interval)
	}
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got: %d", cfg.BatchSize)
	}
	for _, t := range cfg.Types {
		if _, ok := models.ParseEventType(string(t)); !ok {
			return nil, fmt.Errorf("unknown event type: %q", t)
		}
	}

	return &Publisher{
		source:    cfg.Source,
		sink:      cfg.Sink,
		interval:  cfg.Interval,
		batchSize: cfg.BatchSize,
		types:     cfg.Types,
		logger:    cfg.Logger.With().Str("component", "outbox_publisher").Logger(),
	}, nil
}

// Start polls the outbox every interval until ctx is canceled. Batch errors are
// logged and do not stop the loop.
func (p *Publisher) Start(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info().
		Dur("interval", p.interval).
		Int("batch_size", p.batchSize).
		Msg("outbox publisher started")

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Err(ctx.Err()).Msg("outbox publisher stopped")
			return ctx.Err()

		case <-ticker.C:
			if _, err := p.PublishBatch(ctx); err != nil {
				p.logger.Error().Err(err).Msg("failed to publish batch")
			}
		}
	}
}

// BatchStats summarizes one PublishBatch call.
type BatchStats struct {
	Total     int
	Published int
	Failed    int
	Marked    int
}

// PublishBatch relays one batch of pending events.
func (p *Publisher) PublishBatch(ctx context.Context) (BatchStats, error) {
	var stats BatchStats

	records, err := p.source.GetPending(ctx, p.batchSize, p.types...)
	if err != nil {
		return stats, fmt.Errorf("get pending records: %w", err)
	}
	stats.Total = len(records)

	if len(records) == 0 {
		p.logger.Debug().Msg("no pending events to publish")
		return stats, nil
	}

	for _, record := range records {
		eventLogger := p.logger.With().
			Str("event_id", record.EventID).
			Str("event_type", string(record.EventType)).
			Str("project_id", record.ProjectID).
			Str("media_id", record.MediaID).
			Int64("outbox_id", record.ID).
			Logger()

		if err := p.sink.Publish(ctx, record.EventID, record.Payload); err != nil {
			eventLogger.Error().Err(err).Msg("failed to publish event")
			stats.Failed++
			continue
		}
		stats.Published++

		if err := p.source.MarkProcessed(ctx, record.ID); err != nil {
			eventLogger.Warn().Err(err).Msg("failed to mark event as processed")
			continue
		}
		stats.Marked++
	}

	p.logger.Info().
		Int("total", stats.Total).
		Int("published", stats.Published).
		Int("failed", stats.Failed).
		Int("marked", stats.Marked).
		Msg("batch processing completed")

	return stats, nil
}
