package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/romariotrain/project-media/internal/media/models"
)

const mediaColumns = `id, project_id, url, thumb_url, poster_url, section, tag, file_name,
	original_notes, ai_summary, captured_at, created_at, media_type, duration_ms, mime_type, file_size`

// MediaRepo is the Postgres media store. Creates and deletes write their
// outbox events in the same transaction.
type MediaRepo struct {
	db     *sqlx.DB
	outbox *OutboxRepo
	clock  func() time.Time
	idGen  func() uuid.UUID
}

func NewMediaRepo(db *sqlx.DB, outbox *OutboxRepo) *MediaRepo {
	return &MediaRepo{
		db:     db,
		outbox: outbox,
		clock:  time.Now,
		idGen:  uuid.New,
	}
}

func (r *MediaRepo) CreateMedia(ctx context.Context, m *models.MediaRecord) (*models.MediaRecord, error) {
	if m == nil || m.ProjectID == "" {
		return nil, models.ErrInvalidArgument
	}

	cp := *m
	cp.ID = r.idGen().String()
	cp.CreatedAt = r.clock().UTC().Format(models.TimestampLayout)
	if cp.CapturedAt == "" {
		cp.CapturedAt = cp.CreatedAt
	}

	const q = `
		INSERT INTO media (` + mediaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, q,
		cp.ID, cp.ProjectID, cp.URL, cp.ThumbURL, cp.PosterURL, cp.Section, cp.Tag, cp.FileName,
		cp.OriginalNotes, cp.AISummary, cp.CapturedAt, cp.CreatedAt, cp.MediaType, cp.DurationMs, cp.MimeType, cp.FileSize,
	)
	if err != nil {
		return nil, fmt.Errorf("media create: %w", err)
	}

	if r.outbox != nil {
		if err := r.outbox.Add(ctx, tx, models.NewMediaCreated(&cp)); err != nil {
			return nil, fmt.Errorf("add outbox: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &cp, nil
}

// DeleteMedia removes the ids that exist in projectID and returns them.
// Ids that are not UUIDs cannot exist and are skipped.
func (r *MediaRepo) DeleteMedia(ctx context.Context, projectID string, ids []string) ([]string, error) {
	const q = `
		DELETE FROM media
		WHERE project_id = $1 AND id = $2
		RETURNING id
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	deleted := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			continue
		}

		var got string
		if err := tx.GetContext(ctx, &got, q, projectID, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			return nil, fmt.Errorf("media delete %s: %w", id, err)
		}

		if r.outbox != nil {
			if err := r.outbox.Add(ctx, tx, models.NewMediaDeleted(projectID, id)); err != nil {
				return nil, fmt.Errorf("add outbox: %w", err)
			}
		}
		deleted = append(deleted, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return deleted, nil
}

func (r *MediaRepo) ListMedia(ctx context.Context, projectID string) ([]models.MediaRecord, error) {
	const q = `
		SELECT ` + mediaColumns + `
		FROM media
		WHERE project_id = $1
		ORDER BY seq ASC
	`

	var out []models.MediaRecord
	if err := r.db.SelectContext(ctx, &out, q, projectID); err != nil {
		return nil, fmt.Errorf("media list: %w", err)
	}
	return out, nil
}

func (r *MediaRepo) GetMedia(ctx context.Context, id string) (*models.MediaRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrNotFound
	}

	const q = `
		SELECT ` + mediaColumns + `
		FROM media
		WHERE id = $1
	`

	var m models.MediaRecord
	if err := r.db.GetContext(ctx, &m, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("media get by id: %w", err)
	}
	return &m, nil
}
