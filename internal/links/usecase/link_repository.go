package usecase

import (
	"context"

	"portfolio-backend/internal/domain"
)

type LinkRepository interface {
	// Save stores a new link and fills in its ID.
	Save(ctx context.Context, link *domain.Link) error
	// FindByLinkID returns the link regardless of its active or expiry state.
	FindByLinkID(ctx context.Context, linkID string) (*domain.Link, error)
	// SetActive toggles is_active; ErrLinkNotFound if no row matches.
	SetActive(ctx context.Context, linkID string, active bool) error
}

// ClickRecorder stores a click event and bumps the link counter as one unit.
type ClickRecorder interface {
	Record(ctx context.Context, click domain.ClickEvent) error
}
