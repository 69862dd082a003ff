package testutil

import (
	"context"

	"portfolio-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockLinkRepository is a testify mock for links/usecase.LinkRepository.
type MockLinkRepository struct {
	mock.Mock
}

func (m *MockLinkRepository) Save(ctx context.Context, link *domain.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockLinkRepository) FindByLinkID(ctx context.Context, linkID string) (*domain.Link, error) {
	args := m.Called(ctx, linkID)
	link, _ := args.Get(0).(*domain.Link)
	return link, args.Error(1)
}

func (m *MockLinkRepository) SetActive(ctx context.Context, linkID string, active bool) error {
	args := m.Called(ctx, linkID, active)
	return args.Error(0)
}

// MockClickRecorder is a testify mock for links/usecase.ClickRecorder.
type MockClickRecorder struct {
	mock.Mock
}

func (m *MockClickRecorder) Record(ctx context.Context, click domain.ClickEvent) error {
	args := m.Called(ctx, click)
	return args.Error(0)
}
