package usecase

import (
	"context"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/domain/event"
)

type ContactRepository interface {
	// Save stores the message and fills in its ID.
	Save(ctx context.Context, msg *domain.ContactMessage) error
}

// EventPublisher publishes domain events to the event bus.
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}
