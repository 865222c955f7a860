package store

import (
	"context"

	"github.com/phrazzld/forum-api/internal/domain"
)

// AnswerStore defines the interface for answer data persistence.
// Answers are only ever addressed through the question they belong to;
// callers are expected to have confirmed the question exists.
type AnswerStore interface {
	// Create inserts the answer and sets its store-assigned ID.
	// Returns ErrInvalidEntity if the answer fails domain validation.
	Create(ctx context.Context, answer *domain.Answer) error

	// ListByQuestion returns all answers of a question ordered by ID.
	// A question without answers yields an empty, non-nil slice.
	ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error)

	// DeleteByQuestion removes all answers of a question and reports how many
	// were removed. Returns ErrAnswersNotFound if there was nothing to delete.
	DeleteByQuestion(ctx context.Context, questionID int64) (int64, error)
}
