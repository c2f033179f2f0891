package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType names a catalog change carried through the outbox.
type EventType string

const (
	EventMediaCreated EventType = "MediaCreated"
	EventMediaDeleted EventType = "MediaDeleted"
)

// ParseEventType accepts the known event type names exactly.
func ParseEventType(s string) (EventType, bool) {
	switch t := EventType(s); t {
	case EventMediaCreated, EventMediaDeleted:
		return t, true
	default:
		return "", false
	}
}

type DomainEvent interface {
	EventID() uuid.UUID
	EventType() EventType
	ProjectID() string
	AggregateID() string
	OccurredAt() time.Time
}

type MediaCreated struct {
	eventID    uuid.UUID
	media      MediaRecord
	occurredAt time.Time
}

func NewMediaCreated(m *MediaRecord) *MediaCreated {
	return &MediaCreated{
		eventID:    uuid.New(),
		media:      *m,
		occurredAt: time.Now().UTC(),
	}
}

func (e *MediaCreated) EventID() uuid.UUID    { return e.eventID }
func (e *MediaCreated) EventType() EventType  { return EventMediaCreated }
func (e *MediaCreated) ProjectID() string     { return e.media.ProjectID }
func (e *MediaCreated) AggregateID() string   { return e.media.ID }
func (e *MediaCreated) OccurredAt() time.Time { return e.occurredAt }

func (e *MediaCreated) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    uuid.UUID `json:"event_id"`
		MediaID    string    `json:"media_id"`
		ProjectID  string    `json:"project_id"`
		Section    string    `json:"section"`
		MediaType  MediaType `json:"media_type"`
		OccurredAt time.Time `json:"occurred_at"`
	}{
		EventID:    e.eventID,
		MediaID:    e.media.ID,
		ProjectID:  e.media.ProjectID,
		Section:    e.media.Section,
		MediaType:  e.media.MediaType,
		OccurredAt: e.occurredAt,
	})
}

type MediaDeleted struct {
	eventID    uuid.UUID
	mediaID    string
	projectID  string
	occurredAt time.Time
}

func NewMediaDeleted(projectID, mediaID string) *MediaDeleted {
	return &MediaDeleted{
		eventID:    uuid.New(),
		mediaID:    mediaID,
		projectID:  projectID,
		occurredAt: time.Now().UTC(),
	}
}

func (e *MediaDeleted) EventID() uuid.UUID    { return e.eventID }
func (e *MediaDeleted) EventType() EventType  { return EventMediaDeleted }
func (e *MediaDeleted) ProjectID() string     { return e.projectID }
func (e *MediaDeleted) AggregateID() string   { return e.mediaID }
func (e *MediaDeleted) OccurredAt() time.Time { return e.occurredAt }

func (e *MediaDeleted) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    uuid.UUID `json:"event_id"`
		MediaID    string    `json:"media_id"`
		ProjectID  string    `json:"project_id"`
		OccurredAt time.Time `json:"occurred_at"`
	}{
		EventID:    e.eventID,
		MediaID:    e.mediaID,
		ProjectID:  e.projectID,
		OccurredAt: e.occurredAt,
	})
}
