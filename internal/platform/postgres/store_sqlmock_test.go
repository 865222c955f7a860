package postgres_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/platform/postgres"
	"github.com/phrazzld/forum-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	questionCols = []string{"id", "title", "description", "category"}
	answerCols   = []string{"id", "question_id", "content"}
)

const sampleDescription = "What is the capital of Australia?"

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func TestQuestionStore_Search_BindsFiltersInOrder(t *testing.T) {
	tests := []struct {
		name      string
		filter    store.QuestionFilter
		predicate string
		args      []driver.Value
	}{
		{
			name:      "title only",
			filter:    store.QuestionFilter{Title: "capital"},
			predicate: "WHERE 1=1 AND title ILIKE $1 ORDER BY id",
			args:      []driver.Value{"%capital%"},
		},
		{
			name:      "category only",
			filter:    store.QuestionFilter{Category: "music"},
			predicate: "WHERE 1=1 AND category ILIKE $1 ORDER BY id",
			args:      []driver.Value{"%music%"},
		},
		{
			name:      "title and category",
			filter:    store.QuestionFilter{Title: "capital", Category: "Geo"},
			predicate: "WHERE 1=1 AND title ILIKE $1 AND category ILIKE $2 ORDER BY id",
			args:      []driver.Value{"%capital%", "%Geo%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			s := postgres.NewPostgresQuestionStore(db, nil)

			mock.ExpectQuery(regexp.QuoteMeta(tt.predicate)).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(questionCols).
					AddRow(int64(3), "Capitals", sampleDescription, "Geography"))

			found, err := s.Search(context.Background(), tt.filter)
			require.NoError(t, err)
			require.Len(t, found, 1)
			assert.Equal(t, int64(3), found[0].ID)
		})
	}
}

func TestQuestionStore_List_EmptyIsNotNil(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresQuestionStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM questions ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(questionCols))

	found, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestQuestionStore_Create_ReturnsAssignedID(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresQuestionStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO questions (title, description, category)")).
		WithArgs("Capitals", sampleDescription, "Geography").
		WillReturnRows(sqlmock.NewRows(questionCols).
			AddRow(int64(11), "Capitals", sampleDescription, "Geography"))

	q := &domain.Question{Title: "Capitals", Description: sampleDescription, Category: "Geography"}
	require.NoError(t, s.Create(context.Background(), q))
	assert.Equal(t, int64(11), q.ID)
}

func TestQuestionStore_Create_InvalidNeverReachesDatabase(t *testing.T) {
	db, _ := newMockDB(t)
	s := postgres.NewPostgresQuestionStore(db, nil)

	err := s.Create(context.Background(), &domain.Question{Title: "Capitals", Description: "short", Category: "Geography"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestQuestionStore_Create_MapsDriverErrors(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresQuestionStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO questions")).
		WillReturnError(&pgconn.PgError{Code: "22001", Message: "value too long for type character varying(255)"})

	q := &domain.Question{Title: "Capitals", Description: sampleDescription, Category: "Geography"}
	err := s.Create(context.Background(), q)

	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	var storeErr *store.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "create", storeErr.Operation)
}

func TestQuestionStore_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresQuestionStore(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM questions WHERE id = $1")).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(questionCols).
				AddRow(int64(4), "Capitals", sampleDescription, "Geography"))

		q, err := s.GetByID(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, "Capitals", q.Title)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresQuestionStore(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM questions WHERE id = $1")).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(questionCols))

		_, err := s.GetByID(context.Background(), 4)
		assert.ErrorIs(t, err, store.ErrQuestionNotFound)
	})

	t.Run("driver failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresQuestionStore(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM questions WHERE id = $1")).
			WillReturnError(errors.New("connection reset by peer"))

		_, err := s.GetByID(context.Background(), 4)
		require.Error(t, err)
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestQuestionStore_Update_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresQuestionStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE questions")).
		WithArgs(int64(9), "Capitals", sampleDescription, "Geography").
		WillReturnRows(sqlmock.NewRows(questionCols))

	err := s.Update(context.Background(), &domain.Question{
		ID: 9, Title: "Capitals", Description: sampleDescription, Category: "Geography",
	})
	assert.ErrorIs(t, err, store.ErrQuestionNotFound)
}

func TestQuestionStore_Delete_RemovesAnswersInSameStatement(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresQuestionStore(db, nil)

	mock.ExpectQuery(`DELETE FROM answers WHERE question_id = \$1 \) DELETE FROM questions WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(questionCols).
			AddRow(int64(2), "Capitals", sampleDescription, "Geography"))

	deleted, err := s.Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted.ID)
}

func TestQuestionStore_Exists(t *testing.T) {
	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		err      error
		expected bool
		wantErr  bool
	}{
		{name: "present", rows: sqlmock.NewRows([]string{"id"}).AddRow(int64(1)), expected: true},
		{name: "absent", rows: sqlmock.NewRows([]string{"id"})},
		{name: "failure", err: errors.New("connection refused"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			s := postgres.NewPostgresQuestionStore(db, nil)

			exp := mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM questions WHERE id = $1")).WithArgs(int64(1))
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			exists, err := s.Exists(context.Background(), 1)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestAnswerStore_Create(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresAnswerStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO answers (question_id, content)")).
		WithArgs(int64(1), "Canberra").
		WillReturnRows(sqlmock.NewRows(answerCols).AddRow(int64(5), int64(1), "Canberra"))

	a := &domain.Answer{QuestionID: 1, Content: "Canberra"}
	require.NoError(t, s.Create(context.Background(), a))
	assert.Equal(t, int64(5), a.ID)
}

func TestAnswerStore_ListByQuestion(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresAnswerStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM answers WHERE question_id = $1 ORDER BY id")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(answerCols).
			AddRow(int64(1), int64(1), "Canberra").
			AddRow(int64(2), int64(1), "Not Sydney"))

	answers, err := s.ListByQuestion(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, answers, 2)
}

func TestAnswerStore_DeleteByQuestion(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		want     int64
		wantErr  error
	}{
		{name: "deleted", affected: 3, want: 3},
		{name: "nothing to delete", affected: 0, wantErr: store.ErrAnswersNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			s := postgres.NewPostgresAnswerStore(db, nil)

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM answers WHERE question_id = $1")).
				WithArgs(int64(7)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			n, err := s.DeleteByQuestion(context.Background(), 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}
