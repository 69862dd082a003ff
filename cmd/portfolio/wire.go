//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"database/sql"

	"portfolio-backend/internal/analytics/enrichment"
	analyticssqlite "portfolio-backend/internal/analytics/repository/sqlite"
	analyticsusecase "portfolio-backend/internal/analytics/usecase"
	"portfolio-backend/internal/config"
	contactsqlite "portfolio-backend/internal/contact/repository/sqlite"
	contactusecase "portfolio-backend/internal/contact/usecase"
	httpdelivery "portfolio-backend/internal/delivery/http"
	"portfolio-backend/internal/infra/eventbus"
	linksqlite "portfolio-backend/internal/links/repository/sqlite"
	linkusecase "portfolio-backend/internal/links/usecase"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var repositorySet = wire.NewSet(
	provideDB,
	linksqlite.NewLinkRepository,
	analyticssqlite.NewClickRepository,
	analyticssqlite.NewReportRepository,
	contactsqlite.NewContactRepository,
	wire.Bind(new(linkusecase.LinkRepository), new(*linksqlite.LinkRepository)),
	wire.Bind(new(analyticsusecase.ClickRepository), new(*analyticssqlite.ClickRepository)),
	wire.Bind(new(analyticsusecase.ReportRepository), new(*analyticssqlite.ReportRepository)),
	wire.Bind(new(contactusecase.ContactRepository), new(*contactsqlite.ContactRepository)),
)

var usecaseSet = wire.NewSet(
	enrichment.NewDeviceDetector,
	enrichment.NewRefererClassifier,
	analyticsusecase.NewRecorder,
	analyticsusecase.NewAnalyticsService,
	linkusecase.NewLinkService,
	contactusecase.NewContactService,
	wire.Bind(new(analyticsusecase.DeviceDetector), new(*enrichment.DeviceDetector)),
	wire.Bind(new(analyticsusecase.RefererClassifier), new(*enrichment.RefererClassifier)),
	wire.Bind(new(linkusecase.ClickRecorder), new(*analyticsusecase.Recorder)),
	wire.Bind(new(contactusecase.EventPublisher), new(*eventbus.EventBus)),
)

var httpSet = wire.NewSet(
	provideHandlerConfig,
	provideMetrics,
	provideRouterConfig,
	provideRateLimiter,
	provideHTTPServer,
	httpdelivery.NewHandler,
	httpdelivery.NewRouter,
	wire.Bind(new(httpdelivery.LinkService), new(*linkusecase.LinkService)),
	wire.Bind(new(httpdelivery.AnalyticsService), new(*analyticsusecase.AnalyticsService)),
	wire.Bind(new(httpdelivery.ContactService), new(*contactusecase.ContactService)),
	wire.Bind(new(httpdelivery.Pinger), new(*sql.DB)),
)

var notifySet = wire.NewSet(
	provideMailer,
	provideContactNotifier,
)

// wireApp builds the portfolio application.
func wireApp(*config.Config, *zap.Logger) (*app, func(), error) {
	panic(wire.Build(
		repositorySet,
		usecaseSet,
		httpSet,
		notifySet,
		eventbus.ProviderSet,
		newApp,
	))
}
