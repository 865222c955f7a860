package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/forum-api/internal/api/shared"
	"github.com/phrazzld/forum-api/internal/store"
)

// QuestionIDParam is the chi path parameter holding a question ID.
const QuestionIDParam = "id"

// QuestionGuard protects routes nested under a question. Requests only reach
// the wrapped handler once the path ID resolves to an existing question.
type QuestionGuard struct {
	questions store.QuestionStore
	logger    *slog.Logger
}

// NewQuestionGuard creates a new QuestionGuard.
func NewQuestionGuard(questions store.QuestionStore, logger *slog.Logger) *QuestionGuard {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionGuard{
		questions: questions,
		logger:    logger.With(slog.String("component", "question_guard")),
	}
}

// RequireQuestion is chi middleware that resolves the {id} path parameter and
// stores it in the request context for the next handler.
func (g *QuestionGuard) RequireQuestion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, rej := ResolveQuestionID(r.Context(), g.questions, chi.URLParam(r, QuestionIDParam))
		if rej != nil {
			writeRejection(w, r, rej)
			return
		}

		ctx := shared.SetQuestionID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
