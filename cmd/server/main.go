// Package main implements the entry point for the GameForge API server,
// which generates interactive content items with an LLM, runs them through
// human moderation and serves approved items to players.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver

	"github.com/gameforge/gameforge-api/internal/config"
	"github.com/gameforge/gameforge-api/internal/events"
	"github.com/gameforge/gameforge-api/internal/platform/gemini"
	"github.com/gameforge/gameforge-api/internal/platform/logger"
	"github.com/gameforge/gameforge-api/internal/platform/postgres"
	"github.com/gameforge/gameforge-api/internal/platform/s3"
	"github.com/gameforge/gameforge-api/internal/service"
	"github.com/gameforge/gameforge-api/internal/task"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run wires the application together and blocks until shutdown. Separated
// from main so deferred cleanup runs before the process exits.
func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("failed to close database", slog.String("error", closeErr.Error()))
		}
	}()

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Stores
	itemStore := postgres.NewPostgresItemStore(db, appLogger)
	promptStore := postgres.NewPostgresPromptStore(db, appLogger)

	// Audit stream
	emitter := events.NewInMemoryEmitter(appLogger)
	emitter.RegisterHandler(events.NewAuditLogHandler(appLogger))

	// Services
	promptService := service.NewPromptService(promptStore, emitter, appLogger)
	reviewService := service.NewReviewService(itemStore, emitter, appLogger)
	statsService := service.NewStatsService(itemStore, appLogger)
	pickerService := service.NewPickerService(itemStore, appLogger)

	// Generation pipeline
	generator, err := gemini.NewGenerator(ctx, appLogger, cfg.LLM, promptService)
	if err != nil {
		return fmt.Errorf("failed to create content generator: %w", err)
	}

	imageGenerator, err := gemini.NewImageGenerator(ctx, appLogger, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create image generator: %w", err)
	}

	assetStore, err := s3.NewAssetStore(ctx, cfg.Assets, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create asset store: %w", err)
	}

	enricher := task.NewImageEnricher(imageGenerator, assetStore, appLogger)

	queue := task.NewTaskQueue(cfg.Generation.QueueSize, appLogger)
	runner := task.NewRunner(queue, task.RunnerConfig{
		WorkerCount: cfg.Generation.WorkerCount,
	}, appLogger)
	runner.Start()

	orchestrator := task.NewOrchestrator(
		queue,
		generator,
		enricher,
		itemStore,
		time.Duration(cfg.Generation.BatchTimeoutMinutes)*time.Minute,
		appLogger,
	)

	router := buildRouter(routerDeps{
		cfg:           cfg,
		logger:        appLogger,
		orchestrator:  orchestrator,
		emitter:       emitter,
		reviewService: reviewService,
		statsService:  statsService,
		pickerService: pickerService,
		promptService: promptService,
	})

	err = serveHTTP(cfg, appLogger, router)

	// Stop accepting tasks and cancel the workers. Tasks still queued are
	// dropped; only the task each worker is executing runs to completion.
	queue.Close()
	runner.Stop()

	return err
}

// openDatabase opens and pings the Postgres connection pool.
func openDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// serveHTTP runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// gracefully.
func serveHTTP(cfg *config.Config, appLogger *slog.Logger, handler http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("starting server", slog.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-shutdownCh:
		appLogger.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	appLogger.Info("server shutdown completed")
	return nil
}
