package http

import (
	"context"
	"net"
	"net/http"
	"reflect"
	"strings"
	"time"

	analyticsusecase "portfolio-backend/internal/analytics/usecase"
	contactusecase "portfolio-backend/internal/contact/usecase"
	"portfolio-backend/internal/domain"
	linkusecase "portfolio-backend/internal/links/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type LinkService interface {
	Create(ctx context.Context, in linkusecase.CreateLinkInput) (*linkusecase.CreatedLink, error)
	Resolve(ctx context.Context, linkID string, visit linkusecase.Visit) (*domain.Link, error)
	SetActive(ctx context.Context, linkID string, active bool) error
}

type AnalyticsService interface {
	LinkSummary(ctx context.Context, linkID string) (*domain.LinkWithClicks, error)
	AllLinks(ctx context.Context) ([]domain.LinkWithClicks, error)
	AllMessages(ctx context.Context) ([]domain.ContactMessage, error)
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	DetailedLinkAnalytics(ctx context.Context, linkID string) (*domain.LinkAnalytics, error)
}

type ContactService interface {
	Submit(ctx context.Context, in contactusecase.SubmitInput) (*domain.ContactMessage, error)
}

// Pinger reports whether the database is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

var (
	_ LinkService      = (*linkusecase.LinkService)(nil)
	_ AnalyticsService = (*analyticsusecase.AnalyticsService)(nil)
	_ ContactService   = (*contactusecase.ContactService)(nil)
)

// HandlerConfig holds settings the handlers need from the environment.
type HandlerConfig struct {
	// BaseURL prefixes generated links. Empty means derive it from the request.
	BaseURL string
}

// Handler serves the portfolio API.
type Handler struct {
	links     LinkService
	analytics AnalyticsService
	contact   ContactService
	db        Pinger
	baseURL   string
	validate  *validator.Validate
	logger    *zap.Logger
	nowFunc   func() time.Time
}

// NewHandler creates a new Handler
func NewHandler(
	links LinkService,
	analytics AnalyticsService,
	contact ContactService,
	db Pinger,
	cfg HandlerConfig,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		links:     links,
		analytics: analytics,
		contact:   contact,
		db:        db,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		validate:  newValidator(),
		logger:    logger,
		nowFunc:   time.Now,
	}
}

// newValidator reports field names as they appear in JSON.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// clientIP strips the port that RemoteAddr carries unless RealIP replaced it.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// requestBaseURL is the configured base URL or the scheme and host of the request.
func (h *Handler) requestBaseURL(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
