package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/forum-api/internal/api/shared"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/store"
)

// AnswerHandler handles answer-related HTTP requests. Every route it serves
// must be wrapped by QuestionGuard.RequireQuestion.
type AnswerHandler struct {
	answers store.AnswerStore
	logger  *slog.Logger
}

// NewAnswerHandler creates a new AnswerHandler
func NewAnswerHandler(answers store.AnswerStore, logger *slog.Logger) *AnswerHandler {
	if answers == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("answers store cannot be nil for AnswerHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AnswerHandler")
	}

	return &AnswerHandler{
		answers: answers,
		logger:  logger.With(slog.String("component", "answer_handler")),
	}
}

// CreateAnswer handles POST /questions/{id}/answers requests.
func (h *AnswerHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	questionID, ok := getResolvedQuestionID(w, r)
	if !ok {
		return
	}

	req, rej := decodeAnswerRequest(r)
	if rej != nil {
		writeRejection(w, r, rej)
		return
	}

	answer, err := domain.NewAnswer(questionID, req.Content)
	if err != nil {
		writeRejection(w, r, rejectWithCause(http.StatusBadRequest, MsgInvalidAnswerData, err))
		return
	}

	if err := h.answers.Create(r.Context(), answer); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUnableToCreateAnswer, err)
		return
	}

	log.Info("answer created",
		slog.Int64("question_id", questionID),
		slog.Int64("answer_id", answer.ID))
	shared.RespondWithData(w, r, http.StatusCreated, MsgAnswerCreated, answer)
}

// ListAnswers handles GET /questions/{id}/answers requests. A question with
// no answers yields an empty list.
func (h *AnswerHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	questionID, ok := getResolvedQuestionID(w, r)
	if !ok {
		return
	}

	answers, err := h.answers.ListByQuestion(r.Context(), questionID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUnableToFetchAnswers, err)
		return
	}
	if answers == nil {
		answers = []domain.Answer{}
	}

	shared.RespondWithData(w, r, http.StatusOK, "", answers)
}

// DeleteAnswers handles DELETE /questions/{id}/answers requests. Deleting
// from a question that has no answers is reported as not found.
func (h *AnswerHandler) DeleteAnswers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	questionID, ok := getResolvedQuestionID(w, r)
	if !ok {
		return
	}

	deleted, err := h.answers.DeleteByQuestion(r.Context(), questionID)
	if err != nil {
		if errors.Is(err, store.ErrAnswersNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, MsgQuestionNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUnableToDeleteAnswers, err)
		return
	}

	log.Info("answers deleted",
		slog.Int64("question_id", questionID),
		slog.Int64("count", deleted))
	shared.RespondWithData(w, r, http.StatusOK, MsgAnswersDeleted, nil)
}
