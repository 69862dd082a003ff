package http_test

import (
	"net/http"
	"testing"
	"time"

	httphandler "portfolio-backend/internal/delivery/http"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/problemdetails"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario_SalesDashboardThreeVisitors verifies totals and unique visitors for today
func TestScenario_SalesDashboardThreeVisitors(t *testing.T) {
	srv := setupServer(t, 100)
	linkID := srv.generateLink(t, map[string]any{
		"projectName": "Sales Dashboard",
		"projectType": "Visualization",
		"originalUrl": "https://github.com/example/sales-dashboard",
	})

	for _, ip := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		rr := srv.do(t, http.MethodGet, "/api/redirect/"+linkID, nil, "X-Real-IP", ip)
		require.Equal(t, http.StatusFound, rr.Code)
	}

	summary := decode[httphandler.LinkSummaryResponse](t, srv.do(t, http.MethodGet, "/api/analytics/"+linkID, nil))
	assert.Equal(t, int64(3), summary.TotalClicks)
	assert.Equal(t, "Sales Dashboard", summary.ProjectName)
	assert.True(t, summary.IsActive)

	detail := decode[domain.LinkAnalytics](t, srv.do(t, http.MethodGet, "/api/analytics/detailed/"+linkID, nil))
	require.NotEmpty(t, detail.ClickAnalytics)
	assert.Equal(t, srv.clock.Now().Format("2006-01-02"), detail.ClickAnalytics[0].Date)
	assert.Equal(t, int64(3), detail.ClickAnalytics[0].Clicks)
	assert.Equal(t, int64(3), detail.ClickAnalytics[0].UniqueVisitors)
	assert.Equal(t, int64(3), detail.Link.ClickCount)
}

// TestLinkSummary_CountsEveryResolve verifies N resolves give a total of N
func TestLinkSummary_CountsEveryResolve(t *testing.T) {
	srv := setupServer(t, 100)
	linkID := srv.generateLink(t, map[string]any{"projectName": "Portfolio", "projectType": "Web App"})

	const n = 7
	for i := 0; i < n; i++ {
		require.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/api/redirect/"+linkID, nil).Code)
	}

	summary := decode[httphandler.LinkSummaryResponse](t, srv.do(t, http.MethodGet, "/api/analytics/"+linkID, nil))
	assert.Equal(t, int64(n), summary.TotalClicks)
}

// TestLinkSummary_NotFound verifies a problem response for unknown links
func TestLinkSummary_NotFound(t *testing.T) {
	srv := setupServer(t, 100)

	for _, path := range []string{"/api/analytics/missing", "/api/analytics/detailed/missing"} {
		rr := srv.do(t, http.MethodGet, path, nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		problem := decode[problemdetails.ProblemDetail](t, rr)
		assert.Equal(t, path, problem.Instance)
	}
}

// TestDetailedLinkAnalytics_RefererAndBreakdowns verifies NULL referers are excluded
func TestDetailedLinkAnalytics_RefererAndBreakdowns(t *testing.T) {
	srv := setupServer(t, 100)
	linkID := srv.generateLink(t, map[string]any{"projectName": "Portfolio", "projectType": "Web App"})

	iphone := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	srv.do(t, http.MethodGet, "/api/redirect/"+linkID, nil, "Referer", "https://www.google.com/search?q=portfolio", "User-Agent", iphone)
	srv.do(t, http.MethodGet, "/api/redirect/"+linkID, nil, "User-Agent", iphone)
	srv.do(t, http.MethodGet, "/api/redirect/"+linkID, nil)

	rr := srv.do(t, http.MethodGet, "/api/analytics/detailed/"+linkID, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	detail := decode[domain.LinkAnalytics](t, rr)
	require.Len(t, detail.Referrers, 1)
	assert.Equal(t, "https://www.google.com/search?q=portfolio", detail.Referrers[0].Referer)

	sources := lo.SliceToMap(detail.TrafficSources, func(b domain.BreakdownItem) (string, int64) { return b.Value, b.Count })
	assert.Equal(t, map[string]int64{"Search": 1, "Direct": 2}, sources)

	devices := lo.SliceToMap(detail.DeviceTypes, func(b domain.BreakdownItem) (string, int64) { return b.Value, b.Count })
	assert.Equal(t, int64(2), devices["Mobile"])
	total := lo.SumBy(detail.DeviceTypes, func(b domain.BreakdownItem) float64 { return b.Percentage })
	assert.InDelta(t, 100, total, 0.02)
}

// TestDashboard_EngagementMatchesLinks verifies total clicks equal the sum over all links
func TestDashboard_EngagementMatchesLinks(t *testing.T) {
	srv := setupServer(t, 100)
	a := srv.generateLink(t, map[string]any{"projectName": "A", "projectType": "Web App"})
	b := srv.generateLink(t, map[string]any{"projectName": "B", "projectType": "Data Analysis"})
	for i := 0; i < 3; i++ {
		srv.do(t, http.MethodGet, "/api/redirect/"+a, nil)
	}
	srv.do(t, http.MethodGet, "/api/redirect/"+b, nil)

	rr := srv.do(t, http.MethodGet, "/api/dashboard/analytics", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	dashboard := decode[domain.Dashboard](t, rr)
	links := decode[[]domain.LinkWithClicks](t, srv.do(t, http.MethodGet, "/api/admin/links", nil))
	sum := lo.SumBy(links, func(l domain.LinkWithClicks) int64 { return l.ClickCount })

	assert.Equal(t, sum, dashboard.Engagement.TotalClicks)
	assert.Equal(t, int64(2), dashboard.Engagement.TotalLinks)
	assert.Equal(t, int64(2), dashboard.Engagement.ActiveLinks)
	assert.InDelta(t, 2.0, dashboard.Engagement.AvgClicks, 0.0001)
	require.Len(t, dashboard.ClickTrends, 1)
	assert.Equal(t, int64(4), dashboard.ClickTrends[0].Clicks)
	require.Len(t, dashboard.TopLinks, 2)
	assert.Equal(t, a, dashboard.TopLinks[0].LinkID)
	assert.Equal(t, "Web App", dashboard.ProjectTypes[0].ProjectType)
	assert.Len(t, dashboard.RecentActivity, 4)
}

// TestDashboard_EmptyStore verifies zeros and empty arrays
func TestDashboard_EmptyStore(t *testing.T) {
	srv := setupServer(t, 100)

	rr := srv.do(t, http.MethodGet, "/api/dashboard/analytics", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"clickTrends": [],
		"projectTypes": [],
		"topLinks": [],
		"engagement": {"total_links": 0, "total_clicks": 0, "avg_clicks": 0, "active_links": 0},
		"recentActivity": []
	}`, rr.Body.String())
}

// TestDashboard_RecentMessagesNewestFirst verifies message activity ordering
func TestDashboard_RecentMessagesNewestFirst(t *testing.T) {
	srv := setupServer(t, 100)
	for _, name := range []string{"Ann", "Bob"} {
		rr := srv.do(t, http.MethodPost, "/api/contact", map[string]any{
			"name":    name,
			"email":   "visitor@example.com",
			"subject": "Hello",
			"message": "Great work",
		})
		require.Equal(t, http.StatusOK, rr.Code)
		srv.clock.Advance(time.Minute)
	}

	dashboard := decode[domain.Dashboard](t, srv.do(t, http.MethodGet, "/api/dashboard/analytics", nil))

	require.Len(t, dashboard.RecentActivity, 2)
	assert.Equal(t, domain.ActivityMessage, dashboard.RecentActivity[0].Type)
	assert.Equal(t, "New message from Bob", dashboard.RecentActivity[0].Description)
	assert.Equal(t, "visitor@example.com", dashboard.RecentActivity[0].Actor)
	assert.Equal(t, "New message from Ann", dashboard.RecentActivity[1].Description)
}

// TestDashboard_StorageFailure verifies a generic 500 without partial results
func TestDashboard_StorageFailure(t *testing.T) {
	srv := setupServer(t, 100)
	require.NoError(t, srv.db.Close())

	rr := srv.do(t, http.MethodGet, "/api/dashboard/analytics", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	problem := decode[problemdetails.ProblemDetail](t, rr)
	assert.Equal(t, "Failed to load dashboard", problem.Detail)
}
