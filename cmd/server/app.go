package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/forum-api/internal/config"
	"github.com/phrazzld/forum-api/internal/platform/postgres"
	"github.com/phrazzld/forum-api/internal/store"
)

// pinger reports whether the database is reachable.
type pinger interface {
	PingContext(ctx context.Context) error
}

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// health is checked by GET /health; it is db in production.
	health pinger

	questionStore store.QuestionStore
	answerStore   store.AnswerStore
}

// newApplication creates a new application instance with the stores bound to db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		health:        db,
		questionStore: postgres.NewPostgresQuestionStore(db, logger),
		answerStore:   postgres.NewPostgresAnswerStore(db, logger),
	}

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
