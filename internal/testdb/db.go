//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/forum-api/internal/platform/postgres"
)

var migrateOnce sync.Once

// GetTestDatabaseURL returns the database URL for integration tests, or an
// empty string when none is configured.
func GetTestDatabaseURL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("FORUM_TEST_DB_URL")
}

// GetTestDBWithT opens a connection to the test database, applies the
// embedded migrations once per process, and registers cleanup with t.
// The test is skipped when no database URL is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		t.Fatalf("failed to ping test database: %v", err)
	}

	var migrateErr error
	migrateOnce.Do(func() {
		migrateErr = postgres.RunMigrations(ctx, db, "up", nil)
	})
	if migrateErr != nil {
		_ = db.Close()
		t.Fatalf("failed to migrate test database: %v", migrateErr)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("warning: failed to close test database: %v", err)
		}
	})

	return db
}
