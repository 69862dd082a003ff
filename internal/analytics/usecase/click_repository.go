package usecase

import (
	"context"
	"time"

	"portfolio-backend/internal/domain"
)

// ClickRepository writes click events.
type ClickRepository interface {
	// InsertClick stores the event and increments the link's click_count in one
	// transaction. It returns domain.ErrLinkNotFound, storing nothing, when no link matches.
	InsertClick(ctx context.Context, click domain.ClickEvent) error
}

// ReportRepository serves the read-only analytics queries.
type ReportRepository interface {
	LinkWithClicks(ctx context.Context, linkID string) (*domain.LinkWithClicks, error)
	AllLinksWithClicks(ctx context.Context) ([]domain.LinkWithClicks, error)
	AllMessages(ctx context.Context) ([]domain.ContactMessage, error)

	DailyClicksSince(ctx context.Context, since time.Time) ([]domain.DailyClicks, error)
	ProjectTypeStats(ctx context.Context) ([]domain.ProjectTypeStats, error)
	TopActiveLinks(ctx context.Context, limit int) ([]domain.TopLink, error)
	Engagement(ctx context.Context) (*domain.Engagement, error)
	RecentClicks(ctx context.Context, since time.Time, limit int) ([]domain.Activity, error)
	RecentMessages(ctx context.Context, since time.Time, limit int) ([]domain.Activity, error)

	DailyVisitors(ctx context.Context, linkID string, limit int) ([]domain.DailyVisitors, error)
	TopReferers(ctx context.Context, linkID string, limit int) ([]domain.RefererCount, error)
	CountByDevice(ctx context.Context, linkID string) ([]domain.GroupCount, error)
	CountBySource(ctx context.Context, linkID string) ([]domain.GroupCount, error)
}
