// Package query derives gallery views from catalog records: free-text search,
// section grouping and recency ordering. All functions are pure and never
// modify their input.
package query

import (
	"strings"

	"github.com/romariotrain/project-media/internal/media/models"
)

// Field names a searchable record field.
type Field string

const (
	FieldOriginalNotes Field = "originalNotes"
	FieldAISummary     Field = "aiSummary"
	FieldTag           Field = "tag"
	FieldSection       Field = "section"
	FieldFileName      Field = "fileName"
)

// FilterBySearch keeps the records whose notes, AI summary, tag, section or
// file name contain query, case-insensitively. A blank query returns records
// unchanged. Result order follows input order.
func FilterBySearch(records []models.MediaRecord, query string) []models.MediaRecord {
	q := normalizeQuery(query)
	if q == "" {
		return records
	}

	out := make([]models.MediaRecord, 0, len(records))
	for i := range records {
		if len(matched(&records[i], q, true)) > 0 {
			out = append(out, records[i])
		}
	}
	return out
}

// MatchedFields reports which fields of m contain query, in a fixed order.
// It returns nil for a blank query.
func MatchedFields(m *models.MediaRecord, query string) []Field {
	q := normalizeQuery(query)
	if q == "" || m == nil {
		return nil
	}
	return matched(m, q, false)
}

func matched(m *models.MediaRecord, q string, first bool) []Field {
	candidates := []struct {
		field Field
		value *string
	}{
		{FieldOriginalNotes, m.OriginalNotes},
		{FieldAISummary, m.AISummary},
		{FieldTag, m.Tag},
		{FieldSection, &m.Section},
		{FieldFileName, m.FileName},
	}

	var out []Field
	for _, c := range candidates {
		if c.value == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*c.value), q) {
			out = append(out, c.field)
			if first {
				return out
			}
		}
	}
	return out
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
