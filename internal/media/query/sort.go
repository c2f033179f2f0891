package query

import (
	"slices"
	"strings"

	"github.com/romariotrain/project-media/internal/media/models"
)

// CompareCapturedDesc orders by capturedAt, newest first, comparing the
// ISO-8601 strings lexicographically. Equal timestamps compare as 0.
func CompareCapturedDesc(a, b models.MediaRecord) int {
	return strings.Compare(b.CapturedAt, a.CapturedAt)
}

// SortByCapturedDesc returns a new slice ordered by CompareCapturedDesc.
// The sort is stable: records with equal capturedAt keep their input order.
func SortByCapturedDesc(records []models.MediaRecord) []models.MediaRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, CompareCapturedDesc)
	return out
}
