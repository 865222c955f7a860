package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/store"
)

const questionColumns = "id, title, description, category"

// PostgresQuestionStore implements the store.QuestionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresQuestionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the QuestionStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresQuestionStore(db store.DBTX, logger *slog.Logger) *PostgresQuestionStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

// Ensure PostgresQuestionStore implements store.QuestionStore interface
var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner, q *domain.Question) error {
	return row.Scan(&q.ID, &q.Title, &q.Description, &q.Category)
}

// Create implements store.QuestionStore.Create
func (s *PostgresQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := question.Validate(); err != nil {
		log.Warn("invalid question rejected before insert", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO questions (title, description, category)
		VALUES ($1, $2, $3)
		RETURNING ` + questionColumns

	row := s.db.QueryRowContext(ctx, query, question.Title, question.Description, question.Category)
	if err := scanQuestion(row, question); err != nil {
		return store.NewStoreError("question", "create", "insert failed", MapError(err))
	}

	log.Debug("question created", slog.Int64("question_id", question.ID))
	return nil
}

// List implements store.QuestionStore.List
func (s *PostgresQuestionStore) List(ctx context.Context) ([]domain.Question, error) {
	query := "SELECT " + questionColumns + " FROM questions ORDER BY id"
	return s.queryQuestions(ctx, "list", query)
}

// Search implements store.QuestionStore.Search
// Each non-empty filter field adds one ILIKE condition; the placeholders are
// numbered by whereClause so title-only and category-only searches both bind $1.
func (s *PostgresQuestionStore) Search(
	ctx context.Context,
	filter store.QuestionFilter,
) ([]domain.Question, error) {
	where := newWhereClause().
		containsFold("title", filter.Title).
		containsFold("category", filter.Category)

	query := "SELECT " + questionColumns + " FROM questions WHERE " + where.String() + " ORDER BY id"

	logger.FromContextOrDefault(ctx, s.logger).Debug("searching questions",
		slog.Int("filter_count", len(where.Args())))

	return s.queryQuestions(ctx, "search", query, where.Args()...)
}

// GetByID implements store.QuestionStore.GetByID
func (s *PostgresQuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	query := "SELECT " + questionColumns + " FROM questions WHERE id = $1"

	var q domain.Question
	if err := scanQuestion(s.db.QueryRowContext(ctx, query, id), &q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrQuestionNotFound
		}
		return nil, store.NewStoreError("question", "get", "select failed", MapError(err))
	}

	return &q, nil
}

// Update implements store.QuestionStore.Update
func (s *PostgresQuestionStore) Update(ctx context.Context, question *domain.Question) error {
	if err := question.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE questions
		SET title = $2, description = $3, category = $4
		WHERE id = $1
		RETURNING ` + questionColumns

	row := s.db.QueryRowContext(ctx, query,
		question.ID, question.Title, question.Description, question.Category)
	if err := scanQuestion(row, question); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrQuestionNotFound
		}
		return store.NewStoreError("question", "update", "update failed", MapError(err))
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("question updated",
		slog.Int64("question_id", question.ID))
	return nil
}

// Delete implements store.QuestionStore.Delete
// Answers of the question are removed by the same statement, so a deleted
// question never leaves orphaned answers behind.
func (s *PostgresQuestionStore) Delete(ctx context.Context, id int64) (*domain.Question, error) {
	query := `
		WITH removed_answers AS (
			DELETE FROM answers WHERE question_id = $1
		)
		DELETE FROM questions
		WHERE id = $1
		RETURNING ` + questionColumns

	var q domain.Question
	if err := scanQuestion(s.db.QueryRowContext(ctx, query, id), &q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrQuestionNotFound
		}
		return nil, store.NewStoreError("question", "delete", "delete failed", MapError(err))
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("question deleted",
		slog.Int64("question_id", id))
	return &q, nil
}

// Exists implements store.QuestionStore.Exists
func (s *PostgresQuestionStore) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM questions WHERE id = $1", id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, store.NewStoreError("question", "exists", "select failed", MapError(err))
	}
	return true, nil
}

func (s *PostgresQuestionStore) queryQuestions(
	ctx context.Context,
	operation string,
	query string,
	args ...any,
) ([]domain.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.NewStoreError("question", operation, "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Error("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	questions := make([]domain.Question, 0)
	for rows.Next() {
		var q domain.Question
		if err := scanQuestion(rows, &q); err != nil {
			return nil, store.NewStoreError("question", operation, "scan failed", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("question", operation, "row iteration failed", err)
	}

	return questions, nil
}
