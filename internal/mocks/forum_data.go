package mocks

import (
	"sort"
	"sync"

	"github.com/phrazzld/forum-api/internal/domain"
)

// ForumData is the in-memory state behind the default mock behavior.
type ForumData struct {
	mu             sync.Mutex
	questions      map[int64]domain.Question
	answers        map[int64]domain.Answer
	nextQuestionID int64
	nextAnswerID   int64
}

// NewForumData creates empty in-memory state. IDs start at 1.
func NewForumData() *ForumData {
	return &ForumData{
		questions: make(map[int64]domain.Question),
		answers:   make(map[int64]domain.Answer),
	}
}

// AnswerCount returns the number of stored answers for questionID.
func (d *ForumData) AnswerCount(questionID int64) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	count := 0
	for _, a := range d.answers {
		if a.QuestionID == questionID {
			count++
		}
	}
	return count
}

// sortedQuestions returns questions ordered by ID. Caller holds d.mu.
func (d *ForumData) sortedQuestions(keep func(domain.Question) bool) []domain.Question {
	result := make([]domain.Question, 0, len(d.questions))
	for _, q := range d.questions {
		if keep == nil || keep(q) {
			result = append(result, q)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// sortedAnswers returns answers for questionID ordered by ID. Caller holds d.mu.
func (d *ForumData) sortedAnswers(questionID int64) []domain.Answer {
	result := make([]domain.Answer, 0)
	for _, a := range d.answers {
		if a.QuestionID == questionID {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
