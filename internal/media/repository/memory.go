package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/romariotrain/project-media/internal/media/models"
)

type entry struct {
	seq   int64
	media models.MediaRecord
}

type MemoryRepository struct {
	mu    sync.RWMutex
	seq   int64
	data  map[string]*entry
	clock func() time.Time
	idGen func() uuid.UUID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		data:  make(map[string]*entry),
		clock: time.Now,
		idGen: uuid.New,
	}
}

func (r *MemoryRepository) CreateMedia(ctx context.Context, m *models.MediaRecord) (*models.MediaRecord, error) {
	if m == nil || m.ProjectID == "" {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Stored records are copies; callers never share them.
	cp := *m
	cp.ID = r.idGen().String()
	cp.CreatedAt = r.clock().UTC().Format(models.TimestampLayout)
	if cp.CapturedAt == "" {
		cp.CapturedAt = cp.CreatedAt
	}

	if _, exists := r.data[cp.ID]; exists {
		return nil, models.ErrConflict
	}

	r.seq++
	r.data[cp.ID] = &entry{seq: r.seq, media: cp}

	out := cp
	return &out, nil
}

func (r *MemoryRepository) DeleteMedia(ctx context.Context, projectID string, ids []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := make([]string, 0, len(ids))
	for _, id := range ids {
		e, ok := r.data[id]
		if !ok || e.media.ProjectID != projectID {
			continue
		}
		delete(r.data, id)
		deleted = append(deleted, id)
	}
	return deleted, nil
}

func (r *MemoryRepository) ListMedia(ctx context.Context, projectID string) ([]models.MediaRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*entry
	for _, e := range r.data {
		if e.media.ProjectID == projectID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]models.MediaRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.media)
	}
	return out, nil
}

func (r *MemoryRepository) GetMedia(ctx context.Context, id string) (*models.MediaRecord, error) {
	if id == "" {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.data[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	// Return a copy so callers cannot mutate stored records.
	cp := e.media
	return &cp, nil
}
