// Package main implements the entry point for the shelf API server,
// which exposes the store, item, and tag catalog over HTTP with JWT
// authentication.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/harwick/shelf-api/internal/config"
	"github.com/harwick/shelf-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run wires the full application and blocks until shutdown. Split from
// main so the exit path stays testable.
func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"redis_configured", cfg.Redis.URL != "",
		"mailgun_configured", cfg.Mailgun.Domain != "")

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if os.Getenv("SHELF_SKIP_MIGRATIONS") == "" {
		if err := runMigrations(db, appLogger); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	} else {
		slog.Info("skipping migrations", "reason", "SHELF_SKIP_MIGRATIONS set")
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
