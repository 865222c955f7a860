package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Description length bounds, inclusive.
const (
	DescriptionMinLength = 20
	DescriptionMaxLength = 300
)

// Question-specific validation errors
var (
	// ErrQuestionTitleEmpty is returned when a question has no title.
	ErrQuestionTitleEmpty = errors.New("question title cannot be empty")

	// ErrQuestionDescriptionLength is returned when a description falls outside
	// [DescriptionMinLength, DescriptionMaxLength].
	ErrQuestionDescriptionLength = fmt.Errorf(
		"question description must be between %d and %d characters",
		DescriptionMinLength,
		DescriptionMaxLength,
	)

	// ErrQuestionCategoryInvalid is returned when a category is not one of Categories.
	ErrQuestionCategoryInvalid = errors.New("question category is not recognized")
)

// Categories lists the accepted question categories. Matching is exact and
// case-sensitive; "Geography" is the only capitalized entry.
var Categories = []string{
	"Geography",
	"history",
	"science",
	"sports",
	"music",
	"travelling",
	"movies",
	"miscellaneous",
	"technology",
	"cuisine",
	"literature",
}

var categorySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		set[c] = struct{}{}
	}
	return set
}()

// IsValidCategory reports whether category is exactly one of Categories.
func IsValidCategory(category string) bool {
	_, ok := categorySet[category]
	return ok
}

// Question is a forum post that answers hang off.
// Column names double as JSON keys so rows serialize the way they are stored.
type Question struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// NewQuestion creates a Question from user input and validates it.
// The ID stays zero until the store assigns one.
func NewQuestion(title, description, category string) (*Question, error) {
	q := &Question{
		Title:       title,
		Description: description,
		Category:    category,
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks if the Question has valid data.
// Description length is measured in characters, not bytes.
func (q *Question) Validate() error {
	if q.Title == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrQuestionTitleEmpty)
	}

	n := utf8.RuneCountInString(q.Description)
	if n < DescriptionMinLength || n > DescriptionMaxLength {
		return fmt.Errorf("%w: %w", ErrValidation, ErrQuestionDescriptionLength)
	}

	if !IsValidCategory(q.Category) {
		return fmt.Errorf("%w: %w", ErrValidation, ErrQuestionCategoryInvalid)
	}

	return nil
}
