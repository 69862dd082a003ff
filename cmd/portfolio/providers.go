package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	httpdelivery "portfolio-backend/internal/delivery/http"
	"portfolio-backend/internal/notify"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// provideDB opens the database, creating its directory and schema as needed.
func provideDB(cfg *config.Config, logger *zap.Logger) (*sql.DB, func(), error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		return nil, nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := database.OpenDB(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}

	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, err
	}

	logger.Info("database initialized", zap.String("path", cfg.DatabasePath))

	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

func provideMailer(cfg *config.Config, logger *zap.Logger) notify.Mailer {
	return notify.NewMailer(notify.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.User,
		Password: cfg.SMTP.Password,
	}, logger)
}

func provideContactNotifier(mailer notify.Mailer, cfg *config.Config, logger *zap.Logger) *notify.ContactNotifier {
	return notify.NewContactNotifier(mailer, cfg.SMTP.User, cfg.SMTP.AdminEmail, logger)
}

func provideRateLimiter(cfg *config.Config) (*httpdelivery.RateLimiter, func()) {
	rl := httpdelivery.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	return rl, rl.Stop
}

func provideHandlerConfig(cfg *config.Config) httpdelivery.HandlerConfig {
	return httpdelivery.HandlerConfig{BaseURL: cfg.BaseURL}
}

// provideMetrics also exposes Go runtime and process collectors.
func provideMetrics() *httpdelivery.Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return httpdelivery.NewMetrics(reg)
}

func provideRouterConfig(cfg *config.Config, metrics *httpdelivery.Metrics) httpdelivery.RouterConfig {
	return httpdelivery.RouterConfig{FrontendURL: cfg.FrontendURL, Metrics: metrics}
}

func provideHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
