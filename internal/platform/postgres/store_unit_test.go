package postgres

import (
	"database/sql"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPostgresQuestionStore(t *testing.T) {
	assert.Panics(t, func() { NewPostgresQuestionStore(nil, slog.Default()) })

	s := NewPostgresQuestionStore(&sql.DB{}, nil)
	assert.NotNil(t, s.db)
	assert.NotNil(t, s.logger, "nil logger falls back to the default")
}

func TestNewPostgresAnswerStore(t *testing.T) {
	assert.Panics(t, func() { NewPostgresAnswerStore(nil, slog.Default()) })

	s := NewPostgresAnswerStore(&sql.DB{}, nil)
	assert.NotNil(t, s.db)
	assert.NotNil(t, s.logger)
}
