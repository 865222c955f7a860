package store

import (
	"context"

	"github.com/phrazzld/forum-api/internal/domain"
)

// QuestionFilter narrows a question search. Empty fields are ignored; each
// non-empty field is matched as a case-insensitive substring.
type QuestionFilter struct {
	Title    string
	Category string
}

// IsEmpty reports whether no filter field is set.
func (f QuestionFilter) IsEmpty() bool {
	return f.Title == "" && f.Category == ""
}

// QuestionStore defines the interface for question data persistence.
type QuestionStore interface {
	// Create inserts the question and sets its store-assigned ID.
	// Returns ErrInvalidEntity if the question fails domain validation.
	Create(ctx context.Context, question *domain.Question) error

	// List returns every question ordered by ID. An empty store yields an
	// empty, non-nil slice.
	List(ctx context.Context) ([]domain.Question, error)

	// Search returns the questions matching every non-empty filter field.
	Search(ctx context.Context, filter QuestionFilter) ([]domain.Question, error)

	// GetByID retrieves a question by its ID.
	// Returns ErrQuestionNotFound if the question does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Question, error)

	// Update replaces title, description and category of the question with
	// question.ID and refreshes question from the stored row.
	// Returns ErrQuestionNotFound if no row was updated.
	Update(ctx context.Context, question *domain.Question) error

	// Delete removes the question together with all of its answers and
	// returns the deleted question.
	// Returns ErrQuestionNotFound if the question does not exist.
	Delete(ctx context.Context, id int64) (*domain.Question, error)

	// Exists reports whether a question with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)
}
