package models

type MediaType string

const (
	Photo MediaType = "photo"
	Video MediaType = "video"
)

// TimestampLayout is the layout the store uses when it assigns createdAt.
// Fixed millisecond precision keeps lexicographic order equal to time order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// MediaRecord is the canonical representation of one uploaded photo or video.
// Optional fields are nil when absent. Records are treated as immutable once
// created.
type MediaRecord struct {
	ID            string    `json:"id" db:"id"`
	ProjectID     string    `json:"projectId" db:"project_id"`
	URL           string    `json:"url" db:"url"`
	ThumbURL      *string   `json:"thumbUrl,omitempty" db:"thumb_url"`
	PosterURL     *string   `json:"posterUrl,omitempty" db:"poster_url"`
	Section       string    `json:"section" db:"section"`
	Tag           *string   `json:"tag,omitempty" db:"tag"`
	FileName      *string   `json:"fileName,omitempty" db:"file_name"`
	OriginalNotes *string   `json:"originalNotes,omitempty" db:"original_notes"`
	AISummary     *string   `json:"aiSummary,omitempty" db:"ai_summary"`
	CapturedAt    string    `json:"capturedAt" db:"captured_at"`
	CreatedAt     string    `json:"createdAt" db:"created_at"`
	MediaType     MediaType `json:"mediaType" db:"media_type"`
	DurationMs    *int64    `json:"durationMs,omitempty" db:"duration_ms"`
	MimeType      *string   `json:"mimeType,omitempty" db:"mime_type"`
	FileSize      *int64    `json:"fileSize,omitempty" db:"file_size"`
}

// PreviewURL returns the still image to show for the record: the poster when
// present, otherwise the thumbnail, otherwise "".
func (m *MediaRecord) PreviewURL() string {
	if m.PosterURL != nil && *m.PosterURL != "" {
		return *m.PosterURL
	}
	if m.ThumbURL != nil {
		return *m.ThumbURL
	}
	return ""
}

// BulkDeleteRequest is the wire shape of a bulk delete.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkDeleteResponse carries the ids the store confirmed removed.
type BulkDeleteResponse struct {
	IDs []string `json:"ids"`
}
