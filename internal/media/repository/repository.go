package repository

import (
	"context"

	"github.com/romariotrain/project-media/internal/media/models"
)

// MediaRepository is the remote media store. CreateMedia assigns ID and
// CreatedAt; DeleteMedia returns only the ids it removed.
type MediaRepository interface {
	CreateMedia(ctx context.Context, m *models.MediaRecord) (*models.MediaRecord, error)
	DeleteMedia(ctx context.Context, projectID string, ids []string) ([]string, error)
	ListMedia(ctx context.Context, projectID string) ([]models.MediaRecord, error)
	GetMedia(ctx context.Context, id string) (*models.MediaRecord, error)
}
