package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/domain/event"

	"go.uber.org/zap"
)

// ContactService stores contact form submissions and announces them.
type ContactService struct {
	repo      ContactRepository
	publisher EventPublisher
	logger    *zap.Logger
	nowFunc   func() time.Time
}

// NewContactService creates a new contact service
func NewContactService(repo ContactRepository, publisher EventPublisher, logger *zap.Logger) *ContactService {
	return &ContactService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		nowFunc:   time.Now,
	}
}

// WithClock replaces the time source.
func (s *ContactService) WithClock(now func() time.Time) *ContactService {
	s.nowFunc = now
	return s
}

type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit stores an unread message and publishes contact.submitted.
// The message is kept even if the event cannot be published.
func (s *ContactService) Submit(ctx context.Context, in SubmitInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: s.nowFunc().UTC(),
		Status:    domain.MessageStatusUnread,
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}

	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("save contact message: %w", err)
	}

	s.logger.Info("contact message stored",
		zap.Int64("id", msg.ID),
		zap.String("email", msg.Email),
	)

	evt := event.NewContactSubmitted(msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt)
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Error("failed to publish contact event",
			zap.Int64("id", msg.ID),
			zap.Error(err),
		)
	}

	return msg, nil
}
