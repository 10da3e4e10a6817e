package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/dave-vazquez/lambda-posts/internal/config"
	"github.com/dave-vazquez/lambda-posts/internal/platform/memory"
	"github.com/dave-vazquez/lambda-posts/internal/platform/postgres"
	"github.com/dave-vazquez/lambda-posts/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the memory driver is selected.
	db *sql.DB

	userStore store.UserStore
	postStore store.PostStore
}

// newApplication creates a new application instance with the stores for the
// configured database driver.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	switch cfg.Database.Driver {
	case config.DriverMemory:
		mem := memory.New()
		app.userStore = mem.Users()
		app.postStore = mem.Posts()
		logger.Warn("Using in-memory store; data is lost on restart")

	case config.DriverPostgres:
		db, err := setupAppDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		app.db = db

		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, db, postgres.MigrateUp, logger); err != nil {
				app.cleanup()
				return nil, fmt.Errorf("failed to apply migrations: %w", err)
			}
		}

		app.userStore = postgres.NewPostgresUserStore(db, logger)
		app.postStore = postgres.NewPostgresPostStore(db, logger)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled or one of signals arrives, then
// shuts down gracefully and releases resources.
func (app *application) Run(ctx context.Context, signals []os.Signal) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router, signals); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", slog.String("error", err.Error()))
		}
		app.db = nil
	}
}
