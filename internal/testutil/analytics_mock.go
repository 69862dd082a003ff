package testutil

import (
	"context"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockClickRepository is a testify mock for analytics/usecase.ClickRepository.
type MockClickRepository struct {
	mock.Mock
}

func (m *MockClickRepository) InsertClick(ctx context.Context, click domain.ClickEvent) error {
	args := m.Called(ctx, click)
	return args.Error(0)
}

// MockReportRepository is a testify mock for analytics/usecase.ReportRepository.
// Slice and pointer results may be given as untyped nil.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) LinkWithClicks(ctx context.Context, linkID string) (*domain.LinkWithClicks, error) {
	args := m.Called(ctx, linkID)
	v, _ := args.Get(0).(*domain.LinkWithClicks)
	return v, args.Error(1)
}

func (m *MockReportRepository) AllLinksWithClicks(ctx context.Context) ([]domain.LinkWithClicks, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.LinkWithClicks)
	return v, args.Error(1)
}

func (m *MockReportRepository) AllMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.ContactMessage)
	return v, args.Error(1)
}

func (m *MockReportRepository) DailyClicksSince(ctx context.Context, since time.Time) ([]domain.DailyClicks, error) {
	args := m.Called(ctx, since)
	v, _ := args.Get(0).([]domain.DailyClicks)
	return v, args.Error(1)
}

func (m *MockReportRepository) ProjectTypeStats(ctx context.Context) ([]domain.ProjectTypeStats, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.ProjectTypeStats)
	return v, args.Error(1)
}

func (m *MockReportRepository) TopActiveLinks(ctx context.Context, limit int) ([]domain.TopLink, error) {
	args := m.Called(ctx, limit)
	v, _ := args.Get(0).([]domain.TopLink)
	return v, args.Error(1)
}

func (m *MockReportRepository) Engagement(ctx context.Context) (*domain.Engagement, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).(*domain.Engagement)
	return v, args.Error(1)
}

func (m *MockReportRepository) RecentClicks(ctx context.Context, since time.Time, limit int) ([]domain.Activity, error) {
	args := m.Called(ctx, since, limit)
	v, _ := args.Get(0).([]domain.Activity)
	return v, args.Error(1)
}

func (m *MockReportRepository) RecentMessages(ctx context.Context, since time.Time, limit int) ([]domain.Activity, error) {
	args := m.Called(ctx, since, limit)
	v, _ := args.Get(0).([]domain.Activity)
	return v, args.Error(1)
}

func (m *MockReportRepository) DailyVisitors(ctx context.Context, linkID string, limit int) ([]domain.DailyVisitors, error) {
	args := m.Called(ctx, linkID, limit)
	v, _ := args.Get(0).([]domain.DailyVisitors)
	return v, args.Error(1)
}

func (m *MockReportRepository) TopReferers(ctx context.Context, linkID string, limit int) ([]domain.RefererCount, error) {
	args := m.Called(ctx, linkID, limit)
	v, _ := args.Get(0).([]domain.RefererCount)
	return v, args.Error(1)
}

func (m *MockReportRepository) CountByDevice(ctx context.Context, linkID string) ([]domain.GroupCount, error) {
	args := m.Called(ctx, linkID)
	v, _ := args.Get(0).([]domain.GroupCount)
	return v, args.Error(1)
}

func (m *MockReportRepository) CountBySource(ctx context.Context, linkID string) ([]domain.GroupCount, error) {
	args := m.Called(ctx, linkID)
	v, _ := args.Get(0).([]domain.GroupCount)
	return v, args.Error(1)
}

// MockDeviceDetector is a testify mock for analytics/usecase.DeviceDetector.
type MockDeviceDetector struct {
	mock.Mock
}

func (m *MockDeviceDetector) DetectDevice(userAgent string) string {
	return m.Called(userAgent).String(0)
}

// MockRefererClassifier is a testify mock for analytics/usecase.RefererClassifier.
type MockRefererClassifier struct {
	mock.Mock
}

func (m *MockRefererClassifier) ClassifySource(referer string) string {
	return m.Called(referer).String(0)
}
