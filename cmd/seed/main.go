package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"portfolio-backend/internal/analytics/enrichment"
	analyticssqlite "portfolio-backend/internal/analytics/repository/sqlite"
	analyticsusecase "portfolio-backend/internal/analytics/usecase"
	"portfolio-backend/internal/config"
	contactsqlite "portfolio-backend/internal/contact/repository/sqlite"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/demo"
	linksqlite "portfolio-backend/internal/links/repository/sqlite"

	"go.uber.org/zap"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 picks one")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		logger.Fatal("failed to create data directory", zap.Error(err))
	}

	db, err := database.OpenDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	recorder := analyticsusecase.NewRecorder(
		analyticssqlite.NewClickRepository(db),
		enrichment.NewDeviceDetector(),
		enrichment.NewRefererClassifier(),
	)
	seeder := demo.NewSeeder(
		linksqlite.NewLinkRepository(db),
		recorder,
		contactsqlite.NewContactRepository(db),
		*seed,
		logger,
	)

	if _, err := seeder.Seed(context.Background()); err != nil {
		logger.Error("failed to generate demo data", zap.Error(err))
		db.Close()
		os.Exit(1)
	}

	logger.Info("demo data written", zap.String("path", cfg.DatabasePath))
}
