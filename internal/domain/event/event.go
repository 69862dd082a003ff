// Package event holds notifications raised after state changes, published on the event bus.
package event

import (
	"time"

	"github.com/google/uuid"
)

type Event interface {
	EventID() string
	EventName() string
	OccurredAt() time.Time
	// SubjectID identifies the record the event is about.
	SubjectID() string
}

// Base carries the envelope fields shared by every event.
type Base struct {
	ID      string    `json:"event_id"`
	At      time.Time `json:"occurred_at"`
	Subject string    `json:"subject_id"`
}

// NewBase stamps a new time-ordered event id.
func NewBase(subjectID string, occurredAt time.Time) Base {
	return Base{
		ID:      uuid.Must(uuid.NewV7()).String(),
		At:      occurredAt.UTC(),
		Subject: subjectID,
	}
}

func (e Base) EventID() string       { return e.ID }
func (e Base) OccurredAt() time.Time { return e.At }
func (e Base) SubjectID() string     { return e.Subject }
