package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"cardfinder/internal/catalog"
	"cardfinder/internal/cli"
	"cardfinder/internal/config"
	"cardfinder/internal/database"
	"cardfinder/internal/repositories"
	"cardfinder/internal/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.LoadEnv()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		return 2
	}

	logger := newLogger(&cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to open preference storage", "error", err)
		return 1
	}
	defer db.Close()

	cat, err := catalog.Load(ctx, catalog.Files(cfg.Catalog.CardsPath, cfg.Catalog.PaymentsPath, cfg.Catalog.MerchantsPath))
	if err != nil {
		logger.Error("failed to load card catalog", "error", err)
		return 1
	}

	reg := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(reg)
	events := services.NewSearchLogger(logger)

	preferences := services.NewPreferenceService(
		repositories.NewPreferenceRepository(db.DB), cat, events, metrics, cfg.Search.HistorySize)
	dispatcher := services.NewSearchDispatcher(
		services.NewSearchService(cat, cfg.Search), preferences, metrics, events, cfg.Search)

	app := cli.New(cli.Options{
		Dispatcher:  dispatcher,
		Browse:      services.NewBrowseService(cat, preferences, cfg.App.Locale),
		Preferences: preferences,
		Catalog:     cat,
		Gatherer:    reg,
		Logger:      logger,
		Stdin:       os.Stdin,
	})
	return app.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func newLogger(cfg *config.AppConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
