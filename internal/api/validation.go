package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/forum-api/internal/api/shared"
	"github.com/phrazzld/forum-api/internal/store"
)

// ValidateQuestionInput checks a question payload. The first failing rule
// decides the message: missing fields, then description length, then category.
func ValidateQuestionInput(req QuestionRequest) *Rejection {
	err := shared.ValidateRequest(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return rejectWithCause(http.StatusBadRequest, MsgInvalidQuestionData, err)
	}

	var descriptionFailed, categoryFailed bool
	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			return reject(http.StatusBadRequest, MsgInvalidQuestionData)
		}
		switch fe.Field() {
		case "description":
			descriptionFailed = true
		case "category":
			categoryFailed = true
		}
	}

	switch {
	case descriptionFailed:
		return reject(http.StatusBadRequest, MsgInvalidDescription)
	case categoryFailed:
		return reject(http.StatusBadRequest, MsgInvalidCategory)
	default:
		return reject(http.StatusBadRequest, MsgInvalidQuestionData)
	}
}

// ValidateAnswerInput checks an answer payload.
func ValidateAnswerInput(req AnswerRequest) *Rejection {
	err := shared.ValidateRequest(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			if fe.Field() == "content" && fe.Tag() == "max" {
				return reject(http.StatusBadRequest, MsgAnswerTooLong)
			}
		}
	}
	return reject(http.StatusBadRequest, MsgInvalidAnswerData)
}

// ResolveQuestionID parses raw as a question ID and confirms the question
// exists with a single store read.
func ResolveQuestionID(ctx context.Context, questions store.QuestionStore, raw string) (int64, *Rejection) {
	id, ok := parseQuestionID(raw)
	if !ok {
		return 0, reject(http.StatusBadRequest, MsgInvalidQuestionID)
	}

	exists, err := questions.Exists(ctx, id)
	if err != nil {
		return 0, rejectWithCause(http.StatusInternalServerError, MsgUnableToFetchOne, err)
	}
	if !exists {
		return 0, reject(http.StatusNotFound, MsgQuestionNotFound)
	}

	return id, nil
}

// parseQuestionID reads the leading base-10 integer of raw after any leading
// whitespace, so "12abc" is 12 and "1.5" is 1. An optional sign is allowed.
// It fails only when no digits follow, or the value overflows int64.
func parseQuestionID(raw string) (int64, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
