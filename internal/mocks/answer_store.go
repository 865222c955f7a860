package mocks

import (
	"context"

	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/store"
)

// MockAnswerStore implements store.AnswerStore for testing
type MockAnswerStore struct {
	// Function fields for customizable behavior
	CreateFn           func(ctx context.Context, answer *domain.Answer) error
	ListByQuestionFn   func(ctx context.Context, questionID int64) ([]domain.Answer, error)
	DeleteByQuestionFn func(ctx context.Context, questionID int64) (int64, error)

	// Data for default implementation
	Data *ForumData

	// Call counters
	CreateCalls int
}

var _ store.AnswerStore = (*MockAnswerStore)(nil)

// NewMockAnswerStore creates a mock backed by data, or by fresh state when data is nil.
func NewMockAnswerStore(data *ForumData) *MockAnswerStore {
	if data == nil {
		data = NewForumData()
	}
	return &MockAnswerStore{Data: data}
}

// Create implements the AnswerStore interface
func (m *MockAnswerStore) Create(ctx context.Context, answer *domain.Answer) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, answer)
	}

	if err := answer.Validate(); err != nil {
		return store.ErrInvalidEntity
	}

	m.Data.mu.Lock()
	defer m.Data.mu.Unlock()

	m.Data.nextAnswerID++
	answer.ID = m.Data.nextAnswerID
	m.Data.answers[answer.ID] = *answer
	return nil
}

// ListByQuestion implements the AnswerStore interface
func (m *MockAnswerStore) ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	if m.ListByQuestionFn != nil {
		return m.ListByQuestionFn(ctx, questionID)
	}

	m.Data.mu.Lock()
	defer m.Data.mu.Unlock()
	return m.Data.sortedAnswers(questionID), nil
}

// DeleteByQuestion implements the AnswerStore interface
func (m *MockAnswerStore) DeleteByQuestion(ctx context.Context, questionID int64) (int64, error) {
	if m.DeleteByQuestionFn != nil {
		return m.DeleteByQuestionFn(ctx, questionID)
	}

	m.Data.mu.Lock()
	defer m.Data.mu.Unlock()

	var deleted int64
	for id, a := range m.Data.answers {
		if a.QuestionID == questionID {
			delete(m.Data.answers, id)
			deleted++
		}
	}
	if deleted == 0 {
		return 0, store.ErrAnswersNotFound
	}
	return deleted, nil
}
