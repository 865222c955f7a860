package mocks

import (
	"context"
	"strings"

	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/store"
)

// MockQuestionStore implements store.QuestionStore for testing
type MockQuestionStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, question *domain.Question) error
	ListFn    func(ctx context.Context) ([]domain.Question, error)
	SearchFn  func(ctx context.Context, filter store.QuestionFilter) ([]domain.Question, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Question, error)
	UpdateFn  func(ctx context.Context, question *domain.Question) error
	DeleteFn  func(ctx context.Context, id int64) (*domain.Question, error)
	ExistsFn  func(ctx context.Context, id int64) (bool, error)

	// Data for default implementation
	Data *ForumData

	// Call counters
	CreateCalls int
	ExistsCalls int
}

var _ store.QuestionStore = (*MockQuestionStore)(nil)

// NewMockQuestionStore creates a mock backed by data, or by fresh state when data is nil.
func NewMockQuestionStore(data *ForumData) *MockQuestionStore {
	if data == nil {
		data = NewForumData()
	}
	return &MockQuestionStore{Data: data}
}

// Create implements the QuestionStore interface
func (m *MockQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, question)
	}

	if err := question.Validate(); err != nil {
		return store.ErrInvalidEntity
	}

	m.Data.mu.Lock()
	defer m.Data.mu.Unlock()

	m.Data.nextQuestionID++
	question.ID = m.Data.nextQuestionID
	m.Data.questions[question.ID] = *question
	return nil
}

// List implements the QuestionStore interface
func (m *MockQuestionStore) List(ctx context.Context) ([]domain.Question, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.Data.mu.Lock()
	defer m.Data.mu.Unlock()
	return m.Data.sortedQuestions(nil), nil
}

// Search implements the QuestionStore interface using case-insensitive
// substring matching, like ILIKE '%value%'.
func (m *MockQuestionStore) Search(ctx context.Context, filter store.QuestionFilter) ([]domain.Question, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, filter)
	}

	title := strings.ToLower(filter.Title)
	category := strings.ToLower(filter.Category)

	m.Data.mu.Lock()
	defer m.Data.mu.Unlock()
	return m.Data.sortedQuestions(func(q domain.Question) bool {
		if title != "" && !strings.Contains(strings.ToLower(q.Title), title) {
			return false
		}
		if category != "" && !strings.Contains(strings.ToLower(q.Category), category) {
			return false
		}
		return true
	}), nil
}

// GetByID implements the QuestionStore interface
func (m *MockQuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.Data.mu.Lock()
	defer m.Data.mu.Unlock()

	q, ok := m.Data.questions[id]
	if !ok {
		return nil, store.ErrQuestionNotFound
	}
	return &q, nil
}

// Update implements the QuestionStore interface
func (m *MockQuestionStore) Update(ctx context.Context, question *domain.Question) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, question)
	}

	m.Data.mu.Lock()
	defer m.Data.mu.Unlock()

	if _, ok := m.Data.questions[question.ID]; !ok {
		return store.ErrQuestionNotFound
	}
	m.Data.questions[question.ID] = *question
	return nil
}

// Delete implements the QuestionStore interface. Answers of the question
// are removed with it.
func (m *MockQuestionStore) Delete(ctx context.Context, id int64) (*domain.Question, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.Data.mu.Lock()
	defer m.Data.mu.Unlock()

	q, ok := m.Data.questions[id]
	if !ok {
		return nil, store.ErrQuestionNotFound
	}
	for answerID, a := range m.Data.answers {
		if a.QuestionID == id {
			delete(m.Data.answers, answerID)
		}
	}
	delete(m.Data.questions, id)
	return &q, nil
}

// Exists implements the QuestionStore interface
func (m *MockQuestionStore) Exists(ctx context.Context, id int64) (bool, error) {
	m.ExistsCalls++
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}

	m.Data.mu.Lock()
	defer m.Data.mu.Unlock()

	_, ok := m.Data.questions[id]
	return ok, nil
}
