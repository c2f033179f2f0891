package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/romariotrain/project-media/internal/media/models"
)

// OutboxRepo stores media catalog events written in the same transaction as
// the media change they describe.
type OutboxRepo struct {
	db *sqlx.DB
}

// OutboxRecord is one undelivered catalog event.
type OutboxRecord struct {
	ID         int64            `db:"id"`
	EventID    string           `db:"event_id"`
	EventType  models.EventType `db:"event_type"`
	ProjectID  string           `db:"project_id"`
	MediaID    string           `db:"aggregate_id"`
	Payload    json.RawMessage  `db:"payload"`
	OccurredAt time.Time        `db:"occurred_at"`
}

func NewOutboxRepo(db *sqlx.DB) *OutboxRepo {
	return &OutboxRepo{db: db}
}

// Add writes event in the caller's transaction.
func (r *OutboxRepo) Add(ctx context.Context, tx *sqlx.Tx, event models.DomainEvent) error {
	if _, ok := models.ParseEventType(string(event.EventType())); !ok {
		return fmt.Errorf("outbox add %q: %w", event.EventType(), models.ErrInvalidArgument)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.EventType(), err)
	}

	const q = `
		INSERT INTO outbox (event_id, event_type, project_id, aggregate_id, payload, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.ExecContext(ctx, q,
		event.EventID().String(),
		string(event.EventType()),
		event.ProjectID(),
		event.AggregateID(),
		payload,
		event.OccurredAt(),
	)
	if err != nil {
		return fmt.Errorf("insert outbox %s for media %s: %w", event.EventType(), event.AggregateID(), err)
	}
	return nil
}

// GetPending returns up to limit undelivered events in write order. When types
// is non-empty only those event types are returned; the rest stay pending.
func (r *OutboxRepo) GetPending(ctx context.Context, limit int, types ...models.EventType) ([]OutboxRecord, error) {
	const (
		all = `
		SELECT id, event_id, event_type, project_id, aggregate_id, payload, occurred_at
		FROM outbox
		WHERE processed_at IS NULL
		ORDER BY id ASC
		LIMIT $1
	`
		filtered = `
		SELECT id, event_id, event_type, project_id, aggregate_id, payload, occurred_at
		FROM outbox
		WHERE processed_at IS NULL AND event_type = ANY($2)
		ORDER BY id ASC
		LIMIT $1
	`
	)

	var (
		records []OutboxRecord
		err     error
	)
	if len(types) == 0 {
		err = r.db.SelectContext(ctx, &records, all, limit)
	} else {
		names := make([]string, 0, len(types))
		for _, t := range types {
			names = append(names, string(t))
		}
		err = r.db.SelectContext(ctx, &records, filtered, limit, names)
	}
	if err != nil {
		return nil, fmt.Errorf("get pending events: %w", err)
	}
	return records, nil
}

func (r *OutboxRepo) MarkProcessed(ctx context.Context, id int64) error {
	const q = `
		UPDATE outbox
		SET processed_at = NOW()
		WHERE id = $1 AND processed_at IS NULL
	`

	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("mark event %d processed: %w", id, err)
	}
	return nil
}
