package gateway

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/romariotrain/project-media/internal/media/models"
)

type RemoteMock struct {
	mock.Mock
}

func (m *RemoteMock) CreateMedia(ctx context.Context, media *models.MediaRecord) (*models.MediaRecord, error) {
	args := m.Called(ctx, media)
	if v := args.Get(0); v != nil {
		return v.(*models.MediaRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RemoteMock) DeleteMedia(ctx context.Context, projectID string, ids []string) ([]string, error) {
	args := m.Called(ctx, projectID, ids)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}
