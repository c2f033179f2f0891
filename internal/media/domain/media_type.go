package domain

import (
	"strings"

	"github.com/romariotrain/project-media/internal/media/models"
)

// DefaultMediaType is used when a request carries no usable type information.
const DefaultMediaType = models.Photo

// ParseMediaType reports the media type named by s, case-insensitively.
func ParseMediaType(s string) (models.MediaType, bool) {
	switch t := models.MediaType(strings.ToLower(strings.TrimSpace(s))); t {
	case models.Photo, models.Video:
		return t, true
	default:
		return "", false
	}
}

// ResolveMediaType applies the type precedence: the local "type" spelling,
// then the wire "media_type" spelling, then DefaultMediaType. A spelling that
// does not name a known type counts as absent.
func ResolveMediaType(local, wire *string) models.MediaType {
	for _, v := range []*string{local, wire} {
		if v == nil {
			continue
		}
		if t, ok := ParseMediaType(*v); ok {
			return t
		}
	}
	return DefaultMediaType
}
