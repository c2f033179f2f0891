package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// CreationRequest is the inbound payload for a new MediaRecord before
// normalization. Several fields are accepted under two spellings: the local
// camelCase form and the snake_case form used on the wire. Both shapes are
// kept side by side so the normalizer can apply one precedence rule.
type CreationRequest struct {
	URL     *string
	Section *string
	Tag     *string

	Local LocalFields
	Wire  WireFields
}

// LocalFields holds the camelCase spellings.
type LocalFields struct {
	OriginalNotes *string // originalNotes
	AISummary     *string // aiSummary
	DurationMs    *int64  // durationMs
	MimeType      *string // mimeType
	FileSize      *int64  // fileSize
	PosterURL     *string // posterUrl
	ThumbURL      *string // thumbUrl
	FileName      *string // fileName
	Type          *string // type
	CapturedAt    *string // capturedAt
}

// WireFields holds the snake_case spellings.
type WireFields struct {
	Note       *string // note
	AISummary  *string // ai_summary
	DurationMs *int64  // duration_ms
	MimeType   *string // mime_type
	FileSize   *int64  // file_size
	PosterURL  *string // poster_url
	ThumbURL   *string // thumb_url
	FileName   *string // file_name
	MediaType  *string // media_type
	CapturedAt *string // captured_at
}

// UnmarshalJSON decodes both spellings. A value of the wrong JSON type or an
// explicit null is treated as absent; only a body that is not a JSON object
// fails.
func (r *CreationRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("creation request: %w", err)
	}

	*r = CreationRequest{
		URL:     optString(raw["url"]),
		Section: optString(raw["section"]),
		Tag:     optString(raw["tag"]),
		Local: LocalFields{
			OriginalNotes: optString(raw["originalNotes"]),
			AISummary:     optString(raw["aiSummary"]),
			DurationMs:    optInt64(raw["durationMs"]),
			MimeType:      optString(raw["mimeType"]),
			FileSize:      optInt64(raw["fileSize"]),
			PosterURL:     optString(raw["posterUrl"]),
			ThumbURL:      optString(raw["thumbUrl"]),
			FileName:      optString(raw["fileName"]),
			Type:          optString(raw["type"]),
			CapturedAt:    optString(raw["capturedAt"]),
		},
		Wire: WireFields{
			Note:       optString(raw["note"]),
			AISummary:  optString(raw["ai_summary"]),
			DurationMs: optInt64(raw["duration_ms"]),
			MimeType:   optString(raw["mime_type"]),
			FileSize:   optInt64(raw["file_size"]),
			PosterURL:  optString(raw["poster_url"]),
			ThumbURL:   optString(raw["thumb_url"]),
			FileName:   optString(raw["file_name"]),
			MediaType:  optString(raw["media_type"]),
			CapturedAt: optString(raw["captured_at"]),
		},
	}
	return nil
}

// MarshalJSON emits every present field under the spelling it was given.
func (r CreationRequest) MarshalJSON() ([]byte, error) {
	out := make(map[string]any)
	put := func(key string, v any) {
		switch p := v.(type) {
		case *string:
			if p != nil {
				out[key] = *p
			}
		case *int64:
			if p != nil {
				out[key] = *p
			}
		}
	}

	put("url", r.URL)
	put("section", r.Section)
	put("tag", r.Tag)

	put("originalNotes", r.Local.OriginalNotes)
	put("aiSummary", r.Local.AISummary)
	put("durationMs", r.Local.DurationMs)
	put("mimeType", r.Local.MimeType)
	put("fileSize", r.Local.FileSize)
	put("posterUrl", r.Local.PosterURL)
	put("thumbUrl", r.Local.ThumbURL)
	put("fileName", r.Local.FileName)
	put("type", r.Local.Type)
	put("capturedAt", r.Local.CapturedAt)

	put("note", r.Wire.Note)
	put("ai_summary", r.Wire.AISummary)
	put("duration_ms", r.Wire.DurationMs)
	put("mime_type", r.Wire.MimeType)
	put("file_size", r.Wire.FileSize)
	put("poster_url", r.Wire.PosterURL)
	put("thumb_url", r.Wire.ThumbURL)
	put("file_name", r.Wire.FileName)
	put("media_type", r.Wire.MediaType)
	put("captured_at", r.Wire.CapturedAt)

	return json.Marshal(out)
}

// RequestFromRecord rebuilds a local-spelling request from a normalized
// record, used when a record has to travel to the store again.
func RequestFromRecord(m *MediaRecord) CreationRequest {
	url, section := m.URL, m.Section
	mediaType := string(m.MediaType)
	req := CreationRequest{
		URL:     &url,
		Section: &section,
		Tag:     m.Tag,
		Local: LocalFields{
			OriginalNotes: m.OriginalNotes,
			AISummary:     m.AISummary,
			DurationMs:    m.DurationMs,
			MimeType:      m.MimeType,
			FileSize:      m.FileSize,
			PosterURL:     m.PosterURL,
			ThumbURL:      m.ThumbURL,
			FileName:      m.FileName,
			Type:          &mediaType,
		},
	}
	if m.CapturedAt != "" {
		capturedAt := m.CapturedAt
		req.Local.CapturedAt = &capturedAt
	}
	return req
}

func optString(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func optInt64(raw json.RawMessage) *int64 {
	if len(raw) == 0 {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil
	}
	if v, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return &v
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return nil
	}
	v := int64(f)
	return &v
}
