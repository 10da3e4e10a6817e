// Package main implements the entry point for the posts API server, which
// serves CRUD operations over users and the posts they write.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/dave-vazquez/lambda-posts/internal/config"
	"github.com/dave-vazquez/lambda-posts/internal/platform/logger"
	"github.com/dave-vazquez/lambda-posts/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status, version) and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		log.Fatalf("posts api: %v", err)
	}
}

// run loads configuration, sets up logging, and either runs a migration
// command or serves HTTP until interrupted.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver))

	if migrateCmd != "" {
		return runMigrations(ctx, cfg, appLogger, migrateCmd)
	}

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx, defaultShutdownSignals)
}

// runMigrations executes a single goose command against the configured database.
func runMigrations(ctx context.Context, cfg *config.Config, appLogger *slog.Logger, command string) error {
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations require database.driver %q, got %q",
			config.DriverPostgres, cfg.Database.Driver)
	}

	db, err := setupAppDatabase(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	if err := postgres.Migrate(ctx, db, command, appLogger); err != nil {
		return err
	}
	appLogger.Info("Migration command completed", slog.String("command", command))
	return nil
}
