package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/links/usecase"
	"portfolio-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func setupService(t *testing.T) (*usecase.LinkService, *testutil.MockLinkRepository, *testutil.MockClickRecorder) {
	repo := &testutil.MockLinkRepository{}
	recorder := &testutil.MockClickRecorder{}
	t.Cleanup(func() {
		repo.AssertExpectations(t)
		recorder.AssertExpectations(t)
	})
	service := usecase.NewLinkService(repo, recorder, zap.NewNop()).
		WithClock(func() time.Time { return fixedNow })
	return service, repo, recorder
}

func intPtr(v int) *int { return &v }

// TestCreate_ValidInput_SavesActiveLink verifies a new link is stored active with zero clicks
func TestCreate_ValidInput_SavesActiveLink(t *testing.T) {
	service, repo, _ := setupService(t)
	ctx := context.Background()

	var saved *domain.Link
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Link")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Link) }).
		Return(nil)

	result, err := service.Create(ctx, usecase.CreateLinkInput{
		ProjectName: "Sales Dashboard",
		ProjectType: "Visualization",
		OriginalURL: "https://github.com/example/sales-dashboard",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, saved.LinkID, result.LinkID)
	assert.Len(t, result.LinkID, 36)
	assert.Nil(t, result.ExpiresAt)
	assert.True(t, saved.IsActive)
	assert.Equal(t, int64(0), saved.ClickCount)
	assert.Equal(t, "https://github.com/example/sales-dashboard", *saved.OriginalURL)
	assert.Nil(t, saved.Description)
	assert.Equal(t, fixedNow, saved.CreatedAt)
}

// TestCreate_ExpiresInDays_ComputesExpiry verifies absolute expiry computation
func TestCreate_ExpiresInDays_ComputesExpiry(t *testing.T) {
	testCases := []struct {
		name string
		days *int
		want *time.Time
	}{
		{name: "seven days", days: intPtr(7), want: ptrTime(fixedNow.Add(7 * 24 * time.Hour))},
		{name: "already expired", days: intPtr(-1), want: ptrTime(fixedNow.Add(-24 * time.Hour))},
		{name: "zero means none", days: intPtr(0), want: nil},
		{name: "absent", days: nil, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, repo, _ := setupService(t)
			ctx := context.Background()
			repo.On("Save", ctx, mock.AnythingOfType("*domain.Link")).Return(nil)

			result, err := service.Create(ctx, usecase.CreateLinkInput{
				ProjectName:   "Portfolio Website",
				ProjectType:   "Web Development",
				ExpiresInDays: tc.days,
			})

			require.NoError(t, err)
			assert.Equal(t, tc.want, result.ExpiresAt)
		})
	}
}

// TestCreate_LargeExpiresInDays_DoesNotOverflow verifies far-future expiry stays in the future
func TestCreate_LargeExpiresInDays_DoesNotOverflow(t *testing.T) {
	service, repo, _ := setupService(t)
	ctx := context.Background()
	var saved *domain.Link
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Link")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Link) }).
		Return(nil)

	result, err := service.Create(ctx, usecase.CreateLinkInput{
		ProjectName:   "Archive",
		ProjectType:   "Research",
		ExpiresInDays: intPtr(200000),
	})

	require.NoError(t, err)
	require.NotNil(t, result.ExpiresAt)
	assert.True(t, result.ExpiresAt.After(fixedNow))
	assert.Equal(t, fixedNow.AddDate(0, 0, 200000), *result.ExpiresAt)
	require.NotNil(t, saved)
	assert.True(t, saved.Resolvable(fixedNow))
}

// TestCreate_MissingFields_ReturnsValidationError verifies required fields
func TestCreate_MissingFields_ReturnsValidationError(t *testing.T) {
	testCases := []struct {
		name  string
		input usecase.CreateLinkInput
		field string
	}{
		{name: "no project name", input: usecase.CreateLinkInput{ProjectType: "Research"}, field: "projectName"},
		{name: "blank project name", input: usecase.CreateLinkInput{ProjectName: "   ", ProjectType: "Research"}, field: "projectName"},
		{name: "no project type", input: usecase.CreateLinkInput{ProjectName: "Weather Model"}, field: "projectType"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, _, _ := setupService(t)

			result, err := service.Create(context.Background(), tc.input)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

// TestCreate_RepositoryError_ReturnsError verifies storage errors propagate
func TestCreate_RepositoryError_ReturnsError(t *testing.T) {
	service, repo, _ := setupService(t)
	ctx := context.Background()
	repoErr := errors.New("disk full")
	repo.On("Save", ctx, mock.Anything).Return(repoErr)

	result, err := service.Create(ctx, usecase.CreateLinkInput{ProjectName: "A", ProjectType: "B"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, repoErr)
}

// TestResolve_ActiveLink_RecordsClick verifies the click is recorded and reflected in the count
func TestResolve_ActiveLink_RecordsClick(t *testing.T) {
	service, repo, recorder := setupService(t)
	ctx := context.Background()

	repo.On("FindByLinkID", ctx, "link-1").Return(&domain.Link{
		LinkID:     "link-1",
		IsActive:   true,
		ClickCount: 4,
	}, nil)
	recorder.On("Record", ctx, mock.MatchedBy(func(c domain.ClickEvent) bool {
		return c.LinkID == "link-1" &&
			c.IPAddress == "10.0.0.1" &&
			c.UserAgent == "Mozilla/5.0" &&
			c.Referer == nil &&
			c.ClickedAt.Equal(fixedNow)
	})).Return(nil)

	link, err := service.Resolve(ctx, "link-1", usecase.Visit{IPAddress: "10.0.0.1", UserAgent: "Mozilla/5.0"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), link.ClickCount)
}

// TestResolve_Unresolvable_ReturnsNotFound verifies missing, inactive and expired links look the same
func TestResolve_Unresolvable_ReturnsNotFound(t *testing.T) {
	past := fixedNow.Add(-time.Minute)

	testCases := []struct {
		name    string
		link    *domain.Link
		findErr error
	}{
		{name: "missing", findErr: domain.ErrLinkNotFound},
		{name: "inactive", link: &domain.Link{LinkID: "x", IsActive: false}},
		{name: "expired", link: &domain.Link{LinkID: "x", IsActive: true, ExpiresAt: &past}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, repo, _ := setupService(t)
			ctx := context.Background()
			repo.On("FindByLinkID", ctx, "x").Return(tc.link, tc.findErr)

			link, err := service.Resolve(ctx, "x", usecase.Visit{})

			assert.Nil(t, link)
			assert.ErrorIs(t, err, domain.ErrLinkNotFound)
		})
	}
}

// TestResolve_RecorderFails_StillResolves verifies recorder errors are swallowed
func TestResolve_RecorderFails_StillResolves(t *testing.T) {
	service, repo, recorder := setupService(t)
	ctx := context.Background()

	repo.On("FindByLinkID", ctx, "link-1").Return(&domain.Link{LinkID: "link-1", IsActive: true, ClickCount: 2}, nil)
	recorder.On("Record", ctx, mock.Anything).Return(errors.New("database is locked"))

	link, err := service.Resolve(ctx, "link-1", usecase.Visit{Referer: "https://google.com"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), link.ClickCount)
}

// TestSetActive_DelegatesToRepository verifies the admin toggle
func TestSetActive_DelegatesToRepository(t *testing.T) {
	service, repo, _ := setupService(t)
	ctx := context.Background()
	repo.On("SetActive", ctx, "link-1", false).Return(nil)

	err := service.SetActive(ctx, "link-1", false)

	assert.NoError(t, err)
}

func ptrTime(t time.Time) *time.Time { return &t }
