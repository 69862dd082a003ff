package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RouterConfig carries the cross-cutting settings of the router.
type RouterConfig struct {
	FrontendURL string
	// Metrics is optional; without it /metrics is not served.
	Metrics *Metrics
}

// NewRouter creates a new Chi router with all middleware and routes
func NewRouter(handler *Handler, logger *zap.Logger, rateLimiter *RateLimiter, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)
	r.Use(CORS(cfg.FrontendURL))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	// Health checks bypass the rate limiter
	r.Get("/healthz", handler.Healthz)
	r.Get("/readyz", handler.Readyz)
	r.Get("/api/health", handler.Health)

	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Middleware)

		r.Post("/api/contact", handler.SubmitContact)
		r.Post("/api/generate-link", handler.GenerateLink)
		r.Get("/api/redirect/{linkId}", handler.Redirect)

		r.Get("/api/analytics/{linkId}", handler.LinkSummary)
		r.Get("/api/analytics/detailed/{linkId}", handler.DetailedLinkAnalytics)
		r.Get("/api/dashboard/analytics", handler.Dashboard)

		r.Get("/api/admin/links", handler.ListLinks)
		r.Patch("/api/admin/links/{linkId}", handler.SetLinkStatus)
		r.Get("/api/admin/messages", handler.ListMessages)
	})

	return r
}
