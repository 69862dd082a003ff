package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	trendDays        = 30
	activityDays     = 7
	activityLimit    = 20
	topLinksLimit    = 10
	detailDaysLimit  = 30
	topReferersLimit = 10
)

// AnalyticsService answers read-only analytics queries. Every call hits the
// store; nothing is cached.
type AnalyticsService struct {
	repo    ReportRepository
	nowFunc func() time.Time
}

func NewAnalyticsService(repo ReportRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo, nowFunc: time.Now}
}

// WithClock replaces the time source.
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.nowFunc = now
	return s
}

// LinkSummary returns the link with its click total counted from the event log.
func (s *AnalyticsService) LinkSummary(ctx context.Context, linkID string) (*domain.LinkWithClicks, error) {
	return s.repo.LinkWithClicks(ctx, linkID)
}

// AllLinks returns every link, newest first.
func (s *AnalyticsService) AllLinks(ctx context.Context) ([]domain.LinkWithClicks, error) {
	return s.repo.AllLinksWithClicks(ctx)
}

// AllMessages returns every contact message, newest first.
func (s *AnalyticsService) AllMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.repo.AllMessages(ctx)
}

// Dashboard runs the dashboard queries concurrently and assembles the result.
// Any failing query fails the whole dashboard.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	today := startOfDay(s.nowFunc())
	trendSince := today.AddDate(0, 0, -trendDays)
	activitySince := today.AddDate(0, 0, -activityDays)

	var (
		dashboard domain.Dashboard
		clicks    []domain.Activity
		messages  []domain.Activity
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		trends, err := s.repo.DailyClicksSince(ctx, trendSince)
		dashboard.ClickTrends = trends
		return err
	})
	g.Go(func() error {
		types, err := s.repo.ProjectTypeStats(ctx)
		dashboard.ProjectTypes = types
		return err
	})
	g.Go(func() error {
		top, err := s.repo.TopActiveLinks(ctx, topLinksLimit)
		dashboard.TopLinks = top
		return err
	})
	g.Go(func() error {
		engagement, err := s.repo.Engagement(ctx)
		if err != nil {
			return err
		}
		dashboard.Engagement = *engagement
		return nil
	})
	g.Go(func() error {
		var err error
		clicks, err = s.repo.RecentClicks(ctx, activitySince, activityLimit)
		return err
	})
	g.Go(func() error {
		var err error
		messages, err = s.repo.RecentMessages(ctx, activitySince, activityLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboard.RecentActivity = mergeActivity(activityLimit, clicks, messages)
	return &dashboard, nil
}

// DetailedLinkAnalytics returns per-day traffic, referers and breakdowns for one link.
func (s *AnalyticsService) DetailedLinkAnalytics(ctx context.Context, linkID string) (*domain.LinkAnalytics, error) {
	link, err := s.repo.LinkWithClicks(ctx, linkID)
	if err != nil {
		return nil, err
	}

	result := domain.LinkAnalytics{Link: link.Link}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		daily, err := s.repo.DailyVisitors(ctx, linkID, detailDaysLimit)
		result.ClickAnalytics = daily
		return err
	})
	g.Go(func() error {
		referers, err := s.repo.TopReferers(ctx, linkID, topReferersLimit)
		result.Referrers = referers
		return err
	})
	g.Go(func() error {
		devices, err := s.repo.CountByDevice(ctx, linkID)
		result.DeviceTypes = breakdown(devices)
		return err
	})
	g.Go(func() error {
		sources, err := s.repo.CountBySource(ctx, linkID)
		result.TrafficSources = breakdown(sources)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

// mergeActivity merges feeds newest first and keeps at most limit entries.
func mergeActivity(limit int, feeds ...[]domain.Activity) []domain.Activity {
	merged := lo.Flatten(feeds)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// breakdown attaches percentages of the group total, rounded to two decimals.
func breakdown(groups []domain.GroupCount) []domain.BreakdownItem {
	total := lo.SumBy(groups, func(g domain.GroupCount) int64 { return g.Count })
	if total == 0 {
		return []domain.BreakdownItem{}
	}

	return lo.Map(groups, func(g domain.GroupCount, _ int) domain.BreakdownItem {
		pct := float64(g.Count) / float64(total) * 100
		return domain.BreakdownItem{
			Value:      g.Value,
			Count:      g.Count,
			Percentage: math.Round(pct*100) / 100,
		}
	})
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
