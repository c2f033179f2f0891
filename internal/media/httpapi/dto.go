package httpapi

import "github.com/romariotrain/project-media/internal/media/models"

type BulkDeleteRequest = models.BulkDeleteRequest

type BulkDeleteResponse = models.BulkDeleteResponse

type ErrorResponse struct {
	Error string `json:"error"`
}
