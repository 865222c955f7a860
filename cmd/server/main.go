// Package main implements the entry point for the forum API server, which
// serves questions and their answers over HTTP/JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload" // load .env before reading config

	"github.com/phrazzld/forum-api/internal/config"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a database migration command and exit ("+strings.Join(postgres.MigrationCommands, ", ")+")",
	)
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		slog.Error("Forum API server failed", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and then either runs a
// single migration command or serves HTTP until shutdown.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database connection", "error", err)
			}
		}()
		return postgres.RunMigrations(ctx, db, migrateCmd, log)
	}

	app := newApplication(cfg, log, db)
	return app.Run(ctx)
}
