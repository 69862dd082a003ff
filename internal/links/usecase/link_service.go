package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LinkService creates and resolves generated project links.
type LinkService struct {
	repo     LinkRepository
	recorder ClickRecorder
	logger   *zap.Logger
	nowFunc  func() time.Time
}

// NewLinkService creates a new link service
func NewLinkService(repo LinkRepository, recorder ClickRecorder, logger *zap.Logger) *LinkService {
	return &LinkService{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
		nowFunc:  time.Now,
	}
}

// WithClock replaces the time source. Used by tests and the demo seeder.
func (s *LinkService) WithClock(now func() time.Time) *LinkService {
	s.nowFunc = now
	return s
}

// CreateLinkInput carries the fields of a link generation request.
type CreateLinkInput struct {
	ProjectName   string
	ProjectType   string
	OriginalURL   string
	Description   string
	ExpiresInDays *int
}

// CreatedLink is what callers get back from Create.
type CreatedLink struct {
	LinkID    string     `json:"link_id"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// Visit describes who followed a link.
type Visit struct {
	IPAddress string
	UserAgent string
	Referer   string
}

// Create validates the input and stores a new active link with a fresh identifier.
// A zero ExpiresInDays is treated like an absent one.
func (s *LinkService) Create(ctx context.Context, in CreateLinkInput) (*CreatedLink, error) {
	projectName := strings.TrimSpace(in.ProjectName)
	projectType := strings.TrimSpace(in.ProjectType)
	if projectName == "" {
		return nil, fmt.Errorf("%w: projectName is required", domain.ErrValidation)
	}
	if projectType == "" {
		return nil, fmt.Errorf("%w: projectType is required", domain.ErrValidation)
	}

	now := s.nowFunc().UTC()

	var expiresAt *time.Time
	if in.ExpiresInDays != nil && *in.ExpiresInDays != 0 {
		t := now.AddDate(0, 0, *in.ExpiresInDays)
		expiresAt = &t
	}

	// UUIDv4 space makes collisions negligible; no retry.
	link := &domain.Link{
		LinkID:      uuid.NewString(),
		ProjectName: projectName,
		ProjectType: projectType,
		OriginalURL: optional(in.OriginalURL),
		Description: optional(in.Description),
		CreatedAt:   now,
		ExpiresAt:   expiresAt,
		IsActive:    true,
	}

	if err := s.repo.Save(ctx, link); err != nil {
		return nil, fmt.Errorf("save link: %w", err)
	}

	s.logger.Info("link generated",
		zap.String("link_id", link.LinkID),
		zap.String("project_name", link.ProjectName),
	)

	return &CreatedLink{LinkID: link.LinkID, ExpiresAt: expiresAt}, nil
}

// Resolve returns the link if it can be followed and records the visit.
// Inactive and expired links report domain.ErrLinkNotFound like missing ones.
// The returned ClickCount includes this visit when it was recorded.
func (s *LinkService) Resolve(ctx context.Context, linkID string, visit Visit) (*domain.Link, error) {
	link, err := s.repo.FindByLinkID(ctx, linkID)
	if err != nil {
		return nil, err
	}

	now := s.nowFunc().UTC()
	if !link.Resolvable(now) {
		return nil, domain.ErrLinkNotFound
	}

	click := domain.ClickEvent{
		LinkID:    link.LinkID,
		IPAddress: visit.IPAddress,
		UserAgent: visit.UserAgent,
		Referer:   optional(visit.Referer),
		ClickedAt: now,
	}

	// A broken analytics pipeline must not block the redirect.
	if err := s.recorder.Record(ctx, click); err != nil {
		s.logger.Error("failed to record click",
			zap.String("link_id", link.LinkID),
			zap.Error(err),
		)
		return link, nil
	}

	link.ClickCount++
	return link, nil
}

// SetActive enables or disables a link.
func (s *LinkService) SetActive(ctx context.Context, linkID string, active bool) error {
	if err := s.repo.SetActive(ctx, linkID, active); err != nil {
		return err
	}

	s.logger.Info("link status changed",
		zap.String("link_id", linkID),
		zap.Bool("is_active", active),
	)
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
