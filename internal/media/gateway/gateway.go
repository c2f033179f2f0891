// Package gateway is the only write path from a project catalog to the remote
// media store. It normalizes creation payloads before anything leaves the
// process and never retries: retry policy belongs to the remote client.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/romariotrain/project-media/internal/media/domain"
	"github.com/romariotrain/project-media/internal/media/models"
)

// Remote is the store the gateway writes to. CreateMedia assigns ID and
// CreatedAt. DeleteMedia returns the ids it actually removed.
type Remote interface {
	CreateMedia(ctx context.Context, m *models.MediaRecord) (*models.MediaRecord, error)
	DeleteMedia(ctx context.Context, projectID string, ids []string) ([]string, error)
}

type Gateway struct {
	remote Remote
	logger zerolog.Logger
}

func New(remote Remote, logger zerolog.Logger) *Gateway {
	return &Gateway{
		remote: remote,
		logger: logger.With().Str("component", "media_gateway").Logger(),
	}
}

// Create normalizes req and sends it to the remote store. Normalization errors
// are returned before any remote call. The caller appends the returned record
// to its catalog; the gateway holds no catalog state.
func (g *Gateway) Create(ctx context.Context, projectID string, req models.CreationRequest) (*models.MediaRecord, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("create media: empty project id: %w", models.ErrInvalidArgument)
	}

	m, err := domain.Normalize(req)
	if err != nil {
		g.logger.Debug().Err(err).Str("project_id", projectID).Msg("creation request rejected")
		return nil, err
	}
	m.ProjectID = projectID

	created, err := g.remote.CreateMedia(ctx, m)
	if err != nil {
		g.logger.Warn().Err(err).Str("project_id", projectID).Msg("remote create failed")
		return nil, remoteError("create", err)
	}
	if created == nil || created.ID == "" {
		return nil, &RemoteError{Op: "create", Message: "store returned no media id", Err: errors.New("empty id")}
	}

	g.logger.Debug().
		Str("project_id", projectID).
		Str("media_id", created.ID).
		Str("section", created.Section).
		Msg("media created")
	return created, nil
}

// BulkDelete asks the store to remove ids and returns the subset it
// acknowledged, in request order. Ids the store reports but that were never
// requested are dropped. On error nothing is acknowledged.
func (g *Gateway) BulkDelete(ctx context.Context, projectID string, ids []string) ([]string, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("bulk delete: empty project id: %w", models.ErrInvalidArgument)
	}

	requested := dedupe(ids)
	if len(requested) == 0 {
		return nil, fmt.Errorf("bulk delete: no ids: %w", models.ErrInvalidArgument)
	}

	acked, err := g.remote.DeleteMedia(ctx, projectID, requested)
	if err != nil {
		g.logger.Warn().Err(err).Str("project_id", projectID).Int("requested", len(requested)).Msg("remote delete failed")
		return nil, remoteError("delete", err)
	}

	confirmed := make(map[string]struct{}, len(acked))
	for _, id := range acked {
		confirmed[id] = struct{}{}
	}
	out := make([]string, 0, len(acked))
	for _, id := range requested {
		if _, ok := confirmed[id]; ok {
			out = append(out, id)
		}
	}

	ev := g.logger.Debug()
	if len(out) < len(requested) {
		ev = g.logger.Info()
	}
	ev.Str("project_id", projectID).
		Int("requested", len(requested)).
		Int("acknowledged", len(out)).
		Msg("bulk delete completed")

	return out, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
