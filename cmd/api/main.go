// Package main is the entry point for the Habit Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/infra/db"
	"github.com/habit-tracker/backend/internal/infra/dependency"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Habit Tracker API",
		"environment", cfg.Server.Environment,
		"storage_driver", cfg.Storage.Driver,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize the configured storage backend
	var storage *dependency.Storage

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		database, err := db.NewPostgresConnection(&cfg.Database)
		if err != nil {
			slog.Error("Database connection failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		// Run database migrations
		if err := database.AutoMigrate(
			&model.HabitModel{},
			&model.ProjectModel{},
			&model.DigestQueueModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		storage = dependency.NewPostgresStorage(database)

	case config.StorageDriverRedis:
		conn, err := db.NewRedisConnection(&cfg.Redis)
		if err != nil {
			slog.Error("Redis connection failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()

		storage = dependency.NewRedisStorage(conn)

	default:
		slog.Error("Unknown storage driver", "driver", cfg.Storage.Driver)
		os.Exit(1)
	}

	// Wire use cases, controllers and the digest worker
	injector, err := dependency.NewInjector(cfg, storage)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Start digest worker if enabled
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.Digest.WorkerEnabled {
		go injector.DigestWorker.Start(workerCtx)
	} else {
		slog.Info("Digest worker disabled")
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
