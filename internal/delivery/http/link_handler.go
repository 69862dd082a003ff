package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"portfolio-backend/internal/domain"
	linkusecase "portfolio-backend/internal/links/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GenerateLinkRequest is the body of POST /api/generate-link.
type GenerateLinkRequest struct {
	ProjectName   string `json:"projectName" validate:"required,max=200"`
	ProjectType   string `json:"projectType" validate:"required,max=100"`
	OriginalURL   string `json:"originalUrl" validate:"omitempty,http_url,max=2048"`
	Description   string `json:"description" validate:"max=5000"`
	ExpiresInDays *int   `json:"expiresInDays" validate:"omitempty,min=-36500,max=36500"`
}

type GenerateLinkResponse struct {
	Success      bool       `json:"success"`
	LinkID       string     `json:"linkId"`
	GeneratedURL string     `json:"generatedUrl"`
	ExpiresAt    *time.Time `json:"expiresAt"`
	Message      string     `json:"message"`
}

// GenerateLink handles POST /api/generate-link
func (h *Handler) GenerateLink(w http.ResponseWriter, r *http.Request) {
	var req GenerateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidation(w, r, err)
		return
	}

	created, err := h.links.Create(r.Context(), linkusecase.CreateLinkInput{
		ProjectName:   req.ProjectName,
		ProjectType:   req.ProjectType,
		OriginalURL:   req.OriginalURL,
		Description:   req.Description,
		ExpiresInDays: req.ExpiresInDays,
	})
	if err != nil {
		h.writeError(w, r, err, "Failed to generate link")
		return
	}

	writeJSON(w, http.StatusOK, GenerateLinkResponse{
		Success:      true,
		LinkID:       created.LinkID,
		GeneratedURL: h.requestBaseURL(r) + "/api/redirect/" + created.LinkID,
		ExpiresAt:    created.ExpiresAt,
		Message:      "Link generated successfully",
	})
}

// Redirect handles GET /api/redirect/{linkId}. Links with a target URL are
// redirected; the rest get a generated project page.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "linkId")

	link, err := h.links.Resolve(r.Context(), linkID, linkusecase.Visit{
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
		Referer:   r.Referer(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			h.renderPage(w, http.StatusNotFound, notFoundPage, nil)
			return
		}
		h.logger.Error("failed to resolve link", zap.String("link_id", linkID), zap.Error(err))
		h.renderPage(w, http.StatusInternalServerError, errorPage, nil)
		return
	}

	if link.OriginalURL != nil {
		http.Redirect(w, r, *link.OriginalURL, http.StatusFound)
		return
	}

	h.renderPage(w, http.StatusOK, projectPage, newProjectView(link))
}

// SetLinkStatusRequest is the body of PATCH /api/admin/links/{linkId}.
type SetLinkStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type SetLinkStatusResponse struct {
	Success  bool   `json:"success"`
	LinkID   string `json:"linkId"`
	IsActive bool   `json:"isActive"`
}

// SetLinkStatus handles PATCH /api/admin/links/{linkId}
func (h *Handler) SetLinkStatus(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "linkId")

	var req SetLinkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w, r)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidation(w, r, err)
		return
	}

	if err := h.links.SetActive(r.Context(), linkID, *req.IsActive); err != nil {
		h.writeError(w, r, err, "Failed to update link")
		return
	}

	writeJSON(w, http.StatusOK, SetLinkStatusResponse{
		Success:  true,
		LinkID:   linkID,
		IsActive: *req.IsActive,
	})
}
