package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/minerahub/dashboard/backend/internal/repositories"
	"github.com/minerahub/dashboard/backend/internal/router"
	"github.com/minerahub/dashboard/backend/internal/services"
	"github.com/minerahub/dashboard/backend/internal/simulator"
	"github.com/minerahub/dashboard/backend/internal/store"
	"github.com/minerahub/dashboard/backend/pkg/config"
	"github.com/minerahub/dashboard/backend/pkg/logger"
	"github.com/minerahub/dashboard/backend/validators"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the record source connection
	db, err := config.InitDB(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("Failed to initialize databases", zap.Error(err))
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	snap, err := db.Source().Load(ctx)
	if err != nil {
		zl.Fatal("Failed to load records", zap.String("source", cfg.RecordSource), zap.Error(err))
	}
	zl.Info("Records loaded", zap.String("source", cfg.RecordSource), zap.Any("counts", snap.Counts()))

	sim := simulator.New(
		simulator.WithFailureRate(cfg.FailureRate),
		simulator.WithLatencyScale(cfg.LatencyScale),
		simulator.WithTimeout(cfg.CallTimeout),
		simulator.WithSeed(cfg.SimulatorSeed),
		simulator.WithLogger(zl.Named("simulator")),
	)
	repos := repositories.NewMockRepositories(sim, snap)
	svc := services.New(repos, store.NewOverlay(snap), zl.Named("services"), services.Options{
		FanoutLimit: cfg.FanoutLimit,
	})

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e, cfg, zl)

	// Setup routes and dependencies
	router.SetupRoutes(e, repos, svc, cfg, zl)

	go func() {
		zl.Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("Graceful shutdown failed", zap.Error(err))
	}
}
