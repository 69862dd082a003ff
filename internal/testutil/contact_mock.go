package testutil

import (
	"context"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/domain/event"

	"github.com/stretchr/testify/mock"
)

// MockContactRepository is a testify mock for contact/usecase.ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Save(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockEventPublisher is a testify mock for the event bus publisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, e event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
