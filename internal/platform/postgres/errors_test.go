package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/forum-api/internal/platform/postgres"
	"github.com/phrazzld/forum-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock PgError creation helper
func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "questions",
		ColumnName:     "description",
		ConstraintName: "questions_description_check",
	}
}

// MockResult implements sql.Result for testing
type MockResult struct {
	rowsAffected int64
	err          error
}

func (m MockResult) LastInsertId() (int64, error) {
	return 0, m.err
}

func (m MockResult) RowsAffected() (int64, error) {
	return m.rowsAffected, m.err
}

func TestMapError(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection refused")
	unique := newPgError("23505")

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{name: "nil error", err: nil, wantNil: true},
		{name: "no rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{name: "foreign key violation", err: newPgError("23503"), wantIs: store.ErrInvalidEntity},
		{name: "check violation", err: newPgError("23514"), wantIs: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError("23502"), wantIs: store.ErrInvalidEntity},
		{name: "string too long", err: newPgError("22001"), wantIs: store.ErrInvalidEntity},
		{name: "wrapped check violation", err: fmt.Errorf("insert: %w", newPgError("23514")), wantIs: store.ErrInvalidEntity},
		{name: "unmapped error passes through", err: plain, wantIs: plain},
		{name: "unique violation passes through", err: unique, wantIs: unique},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := postgres.MapError(tc.err)
			if tc.wantNil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.wantIs)
		})
	}
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	n, err := postgres.CheckRowsAffected(MockResult{rowsAffected: 3}, store.ErrAnswersNotFound)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = postgres.CheckRowsAffected(MockResult{rowsAffected: 0}, store.ErrAnswersNotFound)
	assert.ErrorIs(t, err, store.ErrAnswersNotFound)

	_, err = postgres.CheckRowsAffected(MockResult{rowsAffected: 0}, nil)
	assert.ErrorIs(t, err, store.ErrNotFound)

	resultErr := errors.New("driver does not support RowsAffected")
	_, err = postgres.CheckRowsAffected(MockResult{err: resultErr}, nil)
	assert.ErrorIs(t, err, resultErr)

	_, err = postgres.CheckRowsAffected(nil, nil)
	assert.Error(t, err)
}
