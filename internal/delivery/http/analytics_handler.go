package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// LinkSummaryResponse is the body of GET /api/analytics/{linkId}.
type LinkSummaryResponse struct {
	LinkID      string     `json:"linkId"`
	ProjectName string     `json:"projectName"`
	ProjectType string     `json:"projectType"`
	TotalClicks int64      `json:"totalClicks"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	IsActive    bool       `json:"isActive"`
}

// LinkSummary handles GET /api/analytics/{linkId}
func (h *Handler) LinkSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analytics.LinkSummary(r.Context(), chi.URLParam(r, "linkId"))
	if err != nil {
		h.writeError(w, r, err, "Failed to load link analytics")
		return
	}

	writeJSON(w, http.StatusOK, LinkSummaryResponse{
		LinkID:      summary.LinkID,
		ProjectName: summary.ProjectName,
		ProjectType: summary.ProjectType,
		TotalClicks: summary.TotalClicks,
		CreatedAt:   summary.CreatedAt,
		ExpiresAt:   summary.ExpiresAt,
		IsActive:    summary.IsActive,
	})
}

// DetailedLinkAnalytics handles GET /api/analytics/detailed/{linkId}
func (h *Handler) DetailedLinkAnalytics(w http.ResponseWriter, r *http.Request) {
	detail, err := h.analytics.DetailedLinkAnalytics(r.Context(), chi.URLParam(r, "linkId"))
	if err != nil {
		h.writeError(w, r, err, "Failed to load link analytics")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Dashboard handles GET /api/dashboard/analytics
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.analytics.Dashboard(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Failed to load dashboard")
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

// ListLinks handles GET /api/admin/links
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.analytics.AllLinks(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Failed to list links")
		return
	}
	writeJSON(w, http.StatusOK, links)
}

// ListMessages handles GET /api/admin/messages
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.analytics.AllMessages(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Failed to list messages")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
