package postgres

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/phrazzld/forum-api/internal/platform/postgres/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogGooseLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &slogGooseLogger{logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	l.Printf("OK   %s\n", "00001_create_questions.sql")
	l.Fatalf("failed to run %s", "00002_create_answers.sql")

	out := buf.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, "OK   00001_create_questions.sql")
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, "failed to run 00002_create_answers.sql")
}

func TestRunMigrationsRejectsUnknownCommand(t *testing.T) {
	err := RunMigrations(context.Background(), nil, "create", slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command: create")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_questions.sql", "00002_create_answers.sql"}, files)

	for _, name := range files {
		body, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}
