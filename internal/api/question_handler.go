package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/forum-api/internal/api/shared"
	"github.com/phrazzld/forum-api/internal/domain"
	"github.com/phrazzld/forum-api/internal/platform/logger"
	"github.com/phrazzld/forum-api/internal/store"
)

// QuestionHandler handles question-related HTTP requests.
type QuestionHandler struct {
	questions store.QuestionStore
	logger    *slog.Logger
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(questions store.QuestionStore, logger *slog.Logger) *QuestionHandler {
	if questions == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("questions store cannot be nil for QuestionHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for QuestionHandler")
	}

	return &QuestionHandler{
		questions: questions,
		logger:    logger.With(slog.String("component", "question_handler")),
	}
}

// CreateQuestion handles POST /questions requests.
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, rej := decodeQuestionRequest(r)
	if rej != nil {
		writeRejection(w, r, rej)
		return
	}

	question, err := domain.NewQuestion(req.Title, req.Description, req.Category)
	if err != nil {
		writeRejection(w, r, rejectWithCause(http.StatusBadRequest, MsgInvalidQuestionData, err))
		return
	}

	if err := h.questions.Create(r.Context(), question); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUnableToCreate, err)
		return
	}

	log.Info("question created", slog.Int64("question_id", question.ID))
	shared.RespondWithData(w, r, http.StatusCreated, MsgQuestionCreated, question)
}

// ListQuestions handles GET /questions requests. An empty collection is a
// successful response.
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUnableToFetchAll, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "", nonNilQuestions(questions))
}

// SearchQuestions handles GET /questions/search requests. At least one of
// the title and category query parameters must be non-empty.
func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query := r.URL.Query()
	filter := store.QuestionFilter{
		Title:    query.Get("title"),
		Category: query.Get("category"),
	}

	if filter.IsEmpty() {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidSearch)
		return
	}

	questions, err := h.questions.Search(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUnableToFetch, err)
		return
	}

	if len(questions) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgNoQuestionsFound)
		return
	}

	log.Debug("questions matched search",
		slog.String("title", filter.Title),
		slog.String("category", filter.Category),
		slog.Int("count", len(questions)))
	shared.RespondWithData(w, r, http.StatusOK, "", questions)
}

// GetQuestion handles GET /questions/{id} requests.
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := getPathQuestionID(r)
	if err != nil {
		h.respondWithStoreError(w, r, err, MsgUnableToFetch)
		return
	}

	question, err := h.questions.GetByID(r.Context(), id)
	if err != nil {
		h.respondWithStoreError(w, r, err, MsgUnableToFetch)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "", question)
}

// UpdateQuestion handles PUT /questions/{id} requests. The payload goes
// through the same validation as CreateQuestion.
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, rej := decodeQuestionRequest(r)
	if rej != nil {
		writeRejection(w, r, rej)
		return
	}

	id, err := getPathQuestionID(r)
	if err != nil {
		h.respondWithStoreError(w, r, err, MsgUnableToFetch)
		return
	}

	question, err := domain.NewQuestion(req.Title, req.Description, req.Category)
	if err != nil {
		writeRejection(w, r, rejectWithCause(http.StatusBadRequest, MsgInvalidQuestionData, err))
		return
	}
	question.ID = id

	if err := h.questions.Update(r.Context(), question); err != nil {
		h.respondWithStoreError(w, r, err, MsgUnableToFetch)
		return
	}

	log.Info("question updated", slog.Int64("question_id", id))
	shared.RespondWithData(w, r, http.StatusOK, MsgQuestionUpdated, question)
}

// DeleteQuestion handles DELETE /questions/{id} requests. The question's
// answers are removed with it.
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathQuestionID(r)
	if err != nil {
		h.respondWithStoreError(w, r, err, MsgUnableToDelete)
		return
	}

	deleted, err := h.questions.Delete(r.Context(), id)
	if err != nil {
		h.respondWithStoreError(w, r, err, MsgUnableToDelete)
		return
	}

	log.Info("question deleted", slog.Int64("question_id", id))
	shared.RespondWithData(w, r, http.StatusOK, MsgQuestionDeleted, deleted)
}

// respondWithStoreError writes 404 for a missing question and a 500 with
// failureMessage for anything else, including a malformed path ID.
func (h *QuestionHandler) respondWithStoreError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	failureMessage string,
) {
	if store.IsNotFoundError(err) {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgQuestionNotFound)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, failureMessage, err)
}

func nonNilQuestions(questions []domain.Question) []domain.Question {
	if questions == nil {
		return []domain.Question{}
	}
	return questions
}
