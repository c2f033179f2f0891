package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/romariotrain/project-media/internal/media/catalog"
	"github.com/romariotrain/project-media/internal/media/gateway"
	"github.com/romariotrain/project-media/internal/media/models"
	"github.com/romariotrain/project-media/internal/media/query"
	"github.com/romariotrain/project-media/internal/media/repository"
)

// Service keeps the current catalog snapshot of every loaded project and
// reconciles it with the results of the mutation gateway. Snapshots are
// replaced, never modified, so readers can keep using the one they hold.
type Service struct {
	repo   repository.MediaRepository
	gw     *gateway.Gateway
	logger zerolog.Logger

	mu       sync.Mutex
	catalogs map[string]*catalog.Catalog
}

func New(repo repository.MediaRepository, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		gw:       gateway.New(repo, logger),
		logger:   logger.With().Str("component", "media_service").Logger(),
		catalogs: make(map[string]*catalog.Catalog),
	}
}

// Load fetches the project's records from the store and installs them as the
// current snapshot.
func (s *Service) Load(ctx context.Context, projectID string) (*catalog.Catalog, error) {
	if projectID == "" {
		return nil, models.ErrInvalidArgument
	}

	records, err := s.repo.ListMedia(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}

	c, err := catalog.New(projectID, records...)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	s.mu.Lock()
	s.installLocked(c)
	s.mu.Unlock()

	s.logger.Debug().Str("project_id", projectID).Int("count", c.Len()).Msg("catalog loaded")
	return c, nil
}

// Snapshot returns the current snapshot, or an empty one for a project that
// was never loaded.
func (s *Service) Snapshot(projectID string) *catalog.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(projectID)
}

// Record looks id up in the project's current snapshot.
func (s *Service) Record(projectID, id string) (models.MediaRecord, bool) {
	return s.Snapshot(projectID).Get(id)
}

func (s *Service) installLocked(c *catalog.Catalog) {
	s.catalogs[c.ProjectID()] = c
}

func (s *Service) snapshotLocked(projectID string) *catalog.Catalog {
	if c, ok := s.catalogs[projectID]; ok {
		return c
	}
	return catalog.Empty(projectID)
}

// Create sends req through the gateway and appends the created record to the
// latest snapshot. A failed create leaves the snapshot untouched.
func (s *Service) Create(ctx context.Context, projectID string, req models.CreationRequest) (*models.MediaRecord, error) {
	m, err := s.gw.Create(ctx, projectID, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.snapshotLocked(projectID)
	if current.Contains(m.ID) {
		// A Load that ran after the remote create already picked it up.
		return m, nil
	}

	next, err := current.Append(*m)
	if err != nil {
		return nil, err
	}
	s.installLocked(next)
	return m, nil
}

// Delete removes ids through the gateway and drops only the acknowledged ones
// from the latest snapshot.
func (s *Service) Delete(ctx context.Context, projectID string, ids []string) ([]string, error) {
	acked, err := s.gw.BulkDelete(ctx, projectID, ids)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.installLocked(s.snapshotLocked(projectID).Remove(acked))
	s.mu.Unlock()

	return acked, nil
}

// List reads the project straight from the store and derives a view from it
// without installing a snapshot.
func (s *Service) List(ctx context.Context, projectID string, opts query.Options) (query.Result, error) {
	if projectID == "" {
		return query.Result{}, models.ErrInvalidArgument
	}

	records, err := s.repo.ListMedia(ctx, projectID)
	if err != nil {
		return query.Result{}, fmt.Errorf("list media: %w", err)
	}
	return query.View(records, opts), nil
}

// Gallery derives a view from the current snapshot.
func (s *Service) Gallery(projectID string, opts query.Options) query.Result {
	return query.View(s.Snapshot(projectID).Records(), opts)
}

// GetMedia returns one record by id straight from the store.
func (s *Service) GetMedia(ctx context.Context, id string) (*models.MediaRecord, error) {
	if id == "" {
		return nil, models.ErrInvalidArgument
	}
	return s.repo.GetMedia(ctx, id)
}
