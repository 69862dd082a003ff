package http_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	httphandler "portfolio-backend/internal/delivery/http"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/problemdetails"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateLink_ReturnsGeneratedURL verifies the create response shape
func TestGenerateLink_ReturnsGeneratedURL(t *testing.T) {
	srv := setupServer(t, 100)

	rr := srv.do(t, http.MethodPost, "/api/generate-link", map[string]any{
		"projectName": "Sales Dashboard",
		"projectType": "Visualization",
		"originalUrl": "https://github.com/example/sales-dashboard",
	})

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[httphandler.GenerateLinkResponse](t, rr)
	assert.True(t, resp.Success)
	assert.Len(t, resp.LinkID, 36)
	assert.Equal(t, testBaseURL+"/api/redirect/"+resp.LinkID, resp.GeneratedURL)
	assert.Nil(t, resp.ExpiresAt)
	assert.Equal(t, "Link generated successfully", resp.Message)
}

// TestGenerateLink_ExpiresInDays verifies the absolute expiry is returned
func TestGenerateLink_ExpiresInDays(t *testing.T) {
	srv := setupServer(t, 100)

	rr := srv.do(t, http.MethodPost, "/api/generate-link", map[string]any{
		"projectName":   "Churn Model",
		"projectType":   "Machine Learning",
		"expiresInDays": 7,
	})

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[httphandler.GenerateLinkResponse](t, rr)
	require.NotNil(t, resp.ExpiresAt)
	assert.WithinDuration(t, srv.clock.Now().Add(7*24*time.Hour), *resp.ExpiresAt, time.Second)
}

// TestGenerateLink_ValidationErrors verifies missing fields produce field-level problems
func TestGenerateLink_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{name: "missing project name", body: map[string]any{"projectType": "Web App"}, field: "projectName"},
		{name: "missing project type", body: map[string]any{"projectName": "Site"}, field: "projectType"},
		{name: "bad url", body: map[string]any{"projectName": "Site", "projectType": "Web App", "originalUrl": "javascript:alert(1)"}, field: "originalUrl"},
		{name: "expiry too far", body: map[string]any{"projectName": "Site", "projectType": "Web App", "expiresInDays": 40000}, field: "expiresInDays"},
		{name: "expiry too far back", body: map[string]any{"projectName": "Site", "projectType": "Web App", "expiresInDays": -40000}, field: "expiresInDays"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := setupServer(t, 100)

			rr := srv.do(t, http.MethodPost, "/api/generate-link", tc.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
			problem := decode[problemdetails.ProblemDetail](t, rr)
			require.Len(t, problem.Errors, 1)
			assert.Equal(t, tc.field, problem.Errors[0].Field)
		})
	}
}

// TestGenerateLink_BlankNameRejectedByService verifies whitespace-only names are rejected
func TestGenerateLink_BlankNameRejectedByService(t *testing.T) {
	srv := setupServer(t, 100)

	rr := srv.do(t, http.MethodPost, "/api/generate-link", map[string]any{"projectName": "   ", "projectType": "Web App"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	problem := decode[problemdetails.ProblemDetail](t, rr)
	assert.Contains(t, problem.Detail, "projectName")
}

// TestGenerateLink_InvalidJSON verifies malformed bodies are rejected
func TestGenerateLink_InvalidJSON(t *testing.T) {
	srv := setupServer(t, 100)

	rr := srv.do(t, http.MethodPost, "/api/generate-link", "{not json")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	problem := decode[problemdetails.ProblemDetail](t, rr)
	assert.Contains(t, problem.Type, problemdetails.TypeInvalidRequest)
}

// TestRedirect_WithOriginalURL verifies a 302 and a recorded click
func TestRedirect_WithOriginalURL(t *testing.T) {
	srv := setupServer(t, 100)
	linkID := srv.generateLink(t, map[string]any{
		"projectName": "Sales Dashboard",
		"projectType": "Visualization",
		"originalUrl": "https://github.com/example/sales-dashboard",
	})

	rr := srv.do(t, http.MethodGet, "/api/redirect/"+linkID, nil)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://github.com/example/sales-dashboard", rr.Header().Get("Location"))

	summary := decode[httphandler.LinkSummaryResponse](t, srv.do(t, http.MethodGet, "/api/analytics/"+linkID, nil))
	assert.Equal(t, int64(1), summary.TotalClicks)
}

// TestRedirect_ProjectPage verifies links without a target render an escaped page
func TestRedirect_ProjectPage(t *testing.T) {
	srv := setupServer(t, 100)
	linkID := srv.generateLink(t, map[string]any{
		"projectName": "<Sales> Dashboard",
		"projectType": "Visualization",
	})

	rr := srv.do(t, http.MethodGet, "/api/redirect/"+linkID, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "&lt;Sales&gt; Dashboard")
	assert.NotContains(t, body, "<Sales>")
	assert.Contains(t, body, "No description available.")
	assert.Contains(t, body, "<strong>Clicks:</strong> 1")
	assert.Contains(t, body, "June 10, 2024")
}

// TestRedirect_NotFoundCasesAreIdentical verifies missing, expired and inactive links look the same
func TestRedirect_NotFoundCasesAreIdentical(t *testing.T) {
	srv := setupServer(t, 100)

	expired := srv.generateLink(t, map[string]any{"projectName": "Old", "projectType": "Web App", "expiresInDays": -1})
	inactive := srv.generateLink(t, map[string]any{"projectName": "Hidden", "projectType": "Web App"})
	rr := srv.do(t, http.MethodPatch, "/api/admin/links/"+inactive, map[string]any{"isActive": false})
	require.Equal(t, http.StatusOK, rr.Code)

	missing := srv.do(t, http.MethodGet, "/api/redirect/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), "Link Not Found or Expired")

	for _, id := range []string{expired, inactive} {
		rr := srv.do(t, http.MethodGet, "/api/redirect/"+id, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, missing.Body.String(), rr.Body.String())
	}

	// Failed resolutions record nothing
	summary := decode[httphandler.LinkSummaryResponse](t, srv.do(t, http.MethodGet, "/api/analytics/"+expired, nil))
	assert.Zero(t, summary.TotalClicks)
}

// TestRedirect_ReactivatedLinkResolves verifies the admin toggle works both ways
func TestRedirect_ReactivatedLinkResolves(t *testing.T) {
	srv := setupServer(t, 100)
	linkID := srv.generateLink(t, map[string]any{"projectName": "Toggle", "projectType": "Web App"})

	srv.do(t, http.MethodPatch, "/api/admin/links/"+linkID, map[string]any{"isActive": false})
	rr := srv.do(t, http.MethodPatch, "/api/admin/links/"+linkID, map[string]any{"isActive": true})

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[httphandler.SetLinkStatusResponse](t, rr)
	assert.True(t, resp.IsActive)
	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/api/redirect/"+linkID, nil).Code)
}

// TestSetLinkStatus_Errors verifies unknown links and missing fields
func TestSetLinkStatus_Errors(t *testing.T) {
	srv := setupServer(t, 100)

	rr := srv.do(t, http.MethodPatch, "/api/admin/links/missing", map[string]any{"isActive": false})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))

	rr = srv.do(t, http.MethodPatch, "/api/admin/links/missing", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	problem := decode[problemdetails.ProblemDetail](t, rr)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "isActive", problem.Errors[0].Field)
}

// TestListLinks_IncludesLiveClickCounts verifies the admin listing
func TestListLinks_IncludesLiveClickCounts(t *testing.T) {
	srv := setupServer(t, 100)
	first := srv.generateLink(t, map[string]any{"projectName": "First", "projectType": "Web App"})
	srv.clock.Advance(time.Minute)
	second := srv.generateLink(t, map[string]any{"projectName": "Second", "projectType": "Web App"})
	srv.do(t, http.MethodGet, "/api/redirect/"+first, nil)

	rr := srv.do(t, http.MethodGet, "/api/admin/links", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	links := decode[[]domain.LinkWithClicks](t, rr)
	require.Len(t, links, 2)
	assert.Equal(t, second, links[0].LinkID)
	assert.Equal(t, first, links[1].LinkID)
	assert.Equal(t, int64(1), links[1].TotalClicks)
	assert.Equal(t, int64(1), links[1].ClickCount)
	assert.True(t, strings.HasPrefix(body, "["))
}
