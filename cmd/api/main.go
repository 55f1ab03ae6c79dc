// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

// Command api is the entry point for the EventDev HTTP API server.
//
// # Startup Sequence
//
//  1. Load optional .env file (development convenience).
//  2. Initialize structured logger.
//  3. Load configuration from environment variables.
//  4. Connect to PostgreSQL (pgxpool).
//  5. Connect to Redis (draft store).
//  6. Connect to object storage (event images).
//  7. Run database migrations (idempotent).
//  8. Wire HTTP handlers.
//  9. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kenryalonzo/eventdev/internal/api"
	"github.com/kenryalonzo/eventdev/internal/core/booking"
	"github.com/kenryalonzo/eventdev/internal/core/draft"
	"github.com/kenryalonzo/eventdev/internal/core/event"
	"github.com/kenryalonzo/eventdev/internal/platform/config"
	"github.com/kenryalonzo/eventdev/internal/platform/constants"
	"github.com/kenryalonzo/eventdev/internal/platform/email"
	"github.com/kenryalonzo/eventdev/internal/platform/migration"
	pgstore "github.com/kenryalonzo/eventdev/internal/platform/postgres"
	redisstore "github.com/kenryalonzo/eventdev/internal/platform/redis"
	"github.com/kenryalonzo/eventdev/internal/platform/sec"
	"github.com/kenryalonzo/eventdev/internal/platform/storage"
)

func main() {
	// ── 1. Environment File ───────────────────────────────────────────────
	// Missing .env is fine; production injects real environment variables.
	_ = godotenv.Load()

	// ── 2. Logger ─────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[EventDev] service_initializing")

	// ── 3. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 4. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 5. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 6. Object Storage ─────────────────────────────────────────────────
	objects, err := storage.NewMinIOStore(startupCtx, cfg, log)
	must(log, err, "connect to object storage")

	// ── 7. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 8. Token Verifier ─────────────────────────────────────────────────
	// The server only verifies admin tokens; minting happens offline in
	// cmd/admin-token, so no private key is deployed with the API.
	verifier, err := sec.NewVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize token verifier")

	// ── 9. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
		CheckStorage: func() error {
			return objects.Ping(context.Background())
		},
	}, log)

	// ── 10. Domain Wiring ─────────────────────────────────────────────────
	mailer := email.NewMailer(cfg, log)

	draftStore := draft.NewRedisStore(rdb)
	draftService := draft.NewService(draftStore, log)
	draftHandler := draft.NewHandler(draftService)

	eventRepository := event.NewPostgresRepository(pool)
	eventService := event.NewService(eventRepository, objects, draftService, log)
	eventHandler := event.NewHandler(eventService)

	bookingRepository := booking.NewPostgresRepository(pool)
	bookingService := booking.NewService(bookingRepository, eventService, mailer, log)
	bookingHandler := booking.NewHandler(bookingService)

	// ── 11. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Event:     eventHandler,
		Booking:   bookingHandler,
		Draft:     draftHandler,
	}

	server := api.NewServer(context.Background(), cfg, log, verifier, handlers)

	// ── 12. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
