package http_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"portfolio-backend/internal/analytics/enrichment"
	analyticssqlite "portfolio-backend/internal/analytics/repository/sqlite"
	analyticsusecase "portfolio-backend/internal/analytics/usecase"
	contactsqlite "portfolio-backend/internal/contact/repository/sqlite"
	contactusecase "portfolio-backend/internal/contact/usecase"
	"portfolio-backend/internal/database"
	httphandler "portfolio-backend/internal/delivery/http"
	"portfolio-backend/internal/infra/eventbus"
	linksqlite "portfolio-backend/internal/links/repository/sqlite"
	linkusecase "portfolio-backend/internal/links/usecase"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBaseURL = "http://localhost:3000"

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testServer struct {
	router http.Handler
	db     *sql.DB
	clock  *testClock
}

// setupServer wires the real stack on an in-memory database.
func setupServer(t *testing.T, requestsPerWindow int) *testServer {
	t.Helper()

	db, err := database.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	clock := &testClock{now: time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)}
	logger := zap.NewNop()

	recorder := analyticsusecase.NewRecorder(
		analyticssqlite.NewClickRepository(db),
		enrichment.NewDeviceDetector(),
		enrichment.NewRefererClassifier(),
	)
	links := linkusecase.NewLinkService(linksqlite.NewLinkRepository(db), recorder, logger).WithClock(clock.Now)
	analytics := analyticsusecase.NewAnalyticsService(analyticssqlite.NewReportRepository(db)).WithClock(clock.Now)

	bus := eventbus.NewEventBus(watermill.NopLogger{})
	t.Cleanup(func() { bus.Close() })
	contact := contactusecase.NewContactService(contactsqlite.NewContactRepository(db), bus, logger).WithClock(clock.Now)

	handler := httphandler.NewHandler(links, analytics, contact, db, httphandler.HandlerConfig{BaseURL: testBaseURL}, logger)
	limiter := httphandler.NewRateLimiter(requestsPerWindow, time.Minute)
	t.Cleanup(limiter.Stop)

	return &testServer{
		router: httphandler.NewRouter(handler, logger, limiter, httphandler.RouterConfig{
			FrontendURL: "*",
			Metrics:     httphandler.NewMetrics(prometheus.NewRegistry()),
		}),
		db:     db,
		clock:  clock,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}

// generateLink creates a link through the API and returns its identifier.
func (s *testServer) generateLink(t *testing.T, body map[string]any) string {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/generate-link", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[httphandler.GenerateLinkResponse](t, rr).LinkID
}
