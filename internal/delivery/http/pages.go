package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"portfolio-backend/internal/domain"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const portfolioPath = "/portfolio.html"

var (
	projectPage  = mustPage("templates/project.html")
	notFoundPage = mustPage("templates/not_found.html")
	errorPage    = mustPage("templates/error.html")
)

func mustPage(name string) *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/layout.html", name))
}

type pageView struct {
	BackURL string
}

type projectView struct {
	BackURL     string
	ProjectName string
	ProjectType string
	Description string
	CreatedAt   string
	Clicks      int64
}

func newProjectView(link *domain.Link) projectView {
	description := "No description available."
	if link.Description != nil {
		description = *link.Description
	}
	return projectView{
		BackURL:     portfolioPath,
		ProjectName: link.ProjectName,
		ProjectType: link.ProjectType,
		Description: description,
		CreatedAt:   link.CreatedAt.Format("January 2, 2006"),
		Clicks:      link.ClickCount,
	}
}

// renderPage renders into a buffer first so a template error still yields a clean 500.
func (h *Handler) renderPage(w http.ResponseWriter, status int, page *template.Template, data any) {
	if data == nil {
		data = pageView{BackURL: portfolioPath}
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
