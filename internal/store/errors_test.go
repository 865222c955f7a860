package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "wrapped ErrNotFound", err: fmt.Errorf("lookup: %w", ErrNotFound), expected: true},
		{name: "ErrQuestionNotFound", err: ErrQuestionNotFound, expected: true},
		{name: "wrapped ErrAnswersNotFound", err: fmt.Errorf("delete: %w", ErrAnswersNotFound), expected: true},
		{name: "ErrInvalidEntity", err: ErrInvalidEntity, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNotFoundError(tc.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")

	err := NewStoreError("question", "search", "query failed", cause)
	assert.Equal(t, "search operation on question failed: query failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("answer", "create", "rejected", nil)
	assert.Equal(t, "create operation on answer failed: rejected", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestQuestionFilterIsEmpty(t *testing.T) {
	assert.True(t, QuestionFilter{}.IsEmpty())
	assert.False(t, QuestionFilter{Title: "T"}.IsEmpty())
	assert.False(t, QuestionFilter{Category: "music"}.IsEmpty())
}
