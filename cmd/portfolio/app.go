package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/infra/eventbus"
	"portfolio-backend/internal/notify"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type app struct {
	cfg    *config.Config
	server *http.Server
	bus    *eventbus.EventBus
	events *eventbus.Router
	logger *zap.Logger
}

func newApp(
	cfg *config.Config,
	server *http.Server,
	bus *eventbus.EventBus,
	events *eventbus.Router,
	notifier *notify.ContactNotifier,
	logger *zap.Logger,
) *app {
	events.AddHandler(notifier)

	return &app{
		cfg:    cfg,
		server: server,
		bus:    bus,
		events: events,
		logger: logger,
	}
}

// run serves HTTP until ctx is cancelled or the listener fails, then shuts down
// the server, the event router and the bus in that order.
func (a *app) run(ctx context.Context) error {
	if err := a.startEvents(ctx); err != nil {
		if closeErr := a.bus.Close(); closeErr != nil {
			a.logger.Error("failed to close event bus", zap.Error(closeErr))
		}
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("server starting",
			zap.String("port", a.cfg.Port),
			zap.String("env", a.cfg.Env),
			zap.Int("rate_limit", a.cfg.RateLimit.Requests),
			zap.Duration("rate_limit_window", a.cfg.RateLimit.Window),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("server shutting down")
	case runErr = <-serveErr:
		a.logger.Error("server failed", zap.Error(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server forced to shutdown", zap.Error(err))
	}
	if err := a.events.Close(); err != nil {
		a.logger.Error("failed to close event router", zap.Error(err))
	}
	if err := a.bus.Close(); err != nil {
		a.logger.Error("failed to close event bus", zap.Error(err))
	}

	a.logger.Info("server stopped")
	return runErr
}

// startEvents runs the event router in the background and returns once its
// handlers are subscribed, or with the error that kept it from getting there.
func (a *app) startEvents(ctx context.Context) error {
	routerErr := make(chan error, 1)
	go func() {
		err := a.events.Run(context.Background())
		if err != nil {
			a.logger.Error("event router error", zap.Error(err))
		}
		routerErr <- err
	}()

	select {
	case <-a.events.Running():
		return nil
	case err := <-routerErr:
		if err == nil {
			err = errors.New("stopped before running")
		}
		return fmt.Errorf("start event router: %w", err)
	case <-ctx.Done():
		if err := a.events.Close(); err != nil {
			a.logger.Error("failed to close event router", zap.Error(err))
		}
		return ctx.Err()
	}
}
