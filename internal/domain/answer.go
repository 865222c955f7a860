package domain

import (
	"fmt"
	"unicode/utf8"
)

// ContentMaxLength is the longest answer body accepted, in characters.
const ContentMaxLength = 300

// Answer-specific validation errors
var (
	// ErrAnswerQuestionIDEmpty is returned when an answer does not reference a question.
	ErrAnswerQuestionIDEmpty = fmt.Errorf("answer question %w", ErrInvalidID)

	// ErrAnswerContentEmpty is returned when an answer has no content.
	ErrAnswerContentEmpty = fmt.Errorf("answer %w", ErrEmptyContent)

	// ErrAnswerContentTooLong is returned when content exceeds ContentMaxLength.
	ErrAnswerContentTooLong = fmt.Errorf(
		"answer content cannot exceed %d characters",
		ContentMaxLength,
	)
)

// Answer is a reply attached to exactly one Question.
type Answer struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Content    string `json:"content"`
}

// NewAnswer creates an Answer for the given question and validates it.
func NewAnswer(questionID int64, content string) (*Answer, error) {
	a := &Answer{
		QuestionID: questionID,
		Content:    content,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks if the Answer has valid data.
func (a *Answer) Validate() error {
	if a.QuestionID <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrAnswerQuestionIDEmpty)
	}

	if a.Content == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrAnswerContentEmpty)
	}

	if utf8.RuneCountInString(a.Content) > ContentMaxLength {
		return fmt.Errorf("%w: %w", ErrValidation, ErrAnswerContentTooLong)
	}

	return nil
}
