package domain

import (
	"strings"

	"github.com/romariotrain/project-media/internal/media/models"
)

// Normalize turns a CreationRequest into a canonical MediaRecord.
//
// For every field accepted under two spellings the local spelling wins when it
// is present, the wire spelling is used otherwise, and the field stays absent
// when neither is set. Section and url are required; every other malformed
// field is treated as absent. The returned record has
// no ID, ProjectID or CreatedAt; those are assigned by the caller and the store.
func Normalize(req models.CreationRequest) (*models.MediaRecord, error) {
	if req.URL == nil || strings.TrimSpace(*req.URL) == "" {
		return nil, &NormalizationError{Field: "url", Kind: ErrMissingURL}
	}
	if req.Section == nil || strings.TrimSpace(*req.Section) == "" {
		return nil, &NormalizationError{Field: "section", Kind: ErrMissingSection}
	}

	m := &models.MediaRecord{
		URL:           *req.URL,
		Section:       *req.Section,
		Tag:           req.Tag,
		MediaType:     ResolveMediaType(req.Local.Type, req.Wire.MediaType),
		OriginalNotes: pick(req.Local.OriginalNotes, req.Wire.Note),
		AISummary:     pick(req.Local.AISummary, req.Wire.AISummary),
		DurationMs:    pick(req.Local.DurationMs, req.Wire.DurationMs),
		MimeType:      pick(req.Local.MimeType, req.Wire.MimeType),
		FileSize:      pick(req.Local.FileSize, req.Wire.FileSize),
		PosterURL:     pick(req.Local.PosterURL, req.Wire.PosterURL),
		ThumbURL:      pick(req.Local.ThumbURL, req.Wire.ThumbURL),
		FileName:      pick(req.Local.FileName, req.Wire.FileName),
	}
	if captured := pick(req.Local.CapturedAt, req.Wire.CapturedAt); captured != nil {
		m.CapturedAt = *captured
	}

	return m, nil
}

func pick[T any](local, wire *T) *T {
	if local != nil {
		return local
	}
	return wire
}
