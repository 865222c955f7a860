package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/store"
)

const answerColumns = "id, question_id, content"

// PostgresAnswerStore implements the store.AnswerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAnswerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAnswerStore creates a new PostgreSQL implementation of the AnswerStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAnswerStore(db store.DBTX, logger *slog.Logger) *PostgresAnswerStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAnswerStore{
		db:     db,
		logger: logger.With(slog.String("component", "answer_store")),
	}
}

// Ensure PostgresAnswerStore implements store.AnswerStore interface
var _ store.AnswerStore = (*PostgresAnswerStore)(nil)

func scanAnswer(row rowScanner, a *domain.Answer) error {
	return row.Scan(&a.ID, &a.QuestionID, &a.Content)
}

// Create implements store.AnswerStore.Create
func (s *PostgresAnswerStore) Create(ctx context.Context, answer *domain.Answer) error {
	if err := answer.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO answers (question_id, content)
		VALUES ($1, $2)
		RETURNING ` + answerColumns

	row := s.db.QueryRowContext(ctx, query, answer.QuestionID, answer.Content)
	if err := scanAnswer(row, answer); err != nil {
		return store.NewStoreError("answer", "create", "insert failed", MapError(err))
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("answer created",
		slog.Int64("answer_id", answer.ID),
		slog.Int64("question_id", answer.QuestionID))
	return nil
}

// ListByQuestion implements store.AnswerStore.ListByQuestion
func (s *PostgresAnswerStore) ListByQuestion(
	ctx context.Context,
	questionID int64,
) ([]domain.Answer, error) {
	query := "SELECT " + answerColumns + " FROM answers WHERE question_id = $1 ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, store.NewStoreError("answer", "list", "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Error("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	answers := make([]domain.Answer, 0)
	for rows.Next() {
		var a domain.Answer
		if err := scanAnswer(rows, &a); err != nil {
			return nil, store.NewStoreError("answer", "list", "scan failed", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("answer", "list", "row iteration failed", err)
	}

	return answers, nil
}

// DeleteByQuestion implements store.AnswerStore.DeleteByQuestion
func (s *PostgresAnswerStore) DeleteByQuestion(ctx context.Context, questionID int64) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM answers WHERE question_id = $1", questionID)
	if err != nil {
		return 0, store.NewStoreError("answer", "delete", "delete failed", MapError(err))
	}

	n, err := CheckRowsAffected(result, store.ErrAnswersNotFound)
	if err != nil {
		return 0, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("answers deleted",
		slog.Int64("question_id", questionID),
		slog.Int64("count", n))
	return n, nil
}
