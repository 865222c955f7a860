package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/forum-api/internal/api/shared"
)

// getPathQuestionID extracts the question ID from the URL path the way the
// database reads an integer literal: surrounding whitespace is ignored and
// anything else that is not an integer is an error.
func getPathQuestionID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, QuestionIDParam)
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errMalformedQuestionID, raw)
	}
	return id, nil
}

var errMalformedQuestionID = errors.New("question id is not a valid integer")

// getResolvedQuestionID reads the question ID placed in the context by
// QuestionGuard. It writes a 400 response and returns false when absent,
// which only happens if a route is registered without the guard.
func getResolvedQuestionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := shared.GetQuestionID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidQuestionID)
		return 0, false
	}
	return id, true
}

// decodeQuestionRequest decodes and validates a question payload.
// A body that is not a JSON object counts as missing fields.
func decodeQuestionRequest(r *http.Request) (QuestionRequest, *Rejection) {
	var req QuestionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return req, rejectWithCause(http.StatusBadRequest, MsgInvalidQuestionData, err)
	}
	if rej := ValidateQuestionInput(req); rej != nil {
		return req, rej
	}
	return req, nil
}

// decodeAnswerRequest decodes and validates an answer payload.
func decodeAnswerRequest(r *http.Request) (AnswerRequest, *Rejection) {
	var req AnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return req, rejectWithCause(http.StatusBadRequest, MsgInvalidAnswerData, err)
	}
	if rej := ValidateAnswerInput(req); rej != nil {
		return req, rej
	}
	return req, nil
}
