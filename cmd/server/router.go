package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/forum-api/internal/api"
	apiMiddleware "github.com/phrazzld/forum-api/internal/api/middleware"
	"github.com/phrazzld/forum-api/internal/api/shared"
)

const healthCheckTimeout = 2 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)

	questionHandler := api.NewQuestionHandler(app.questionStore, app.logger)
	answerHandler := api.NewAnswerHandler(app.answerStore, app.logger)
	guard := api.NewQuestionGuard(app.questionStore, app.logger)

	r.Route("/api/questions", func(r chi.Router) {
		r.Post("/", questionHandler.CreateQuestion)
		r.Get("/", questionHandler.ListQuestions)
		r.Get("/search", questionHandler.SearchQuestions)

		r.Route("/{"+api.QuestionIDParam+"}", func(r chi.Router) {
			r.Get("/", questionHandler.GetQuestion)
			r.Put("/", questionHandler.UpdateQuestion)
			r.Delete("/", questionHandler.DeleteQuestion)

			r.Route("/answers", func(r chi.Router) {
				r.Use(guard.RequireQuestion)
				r.Post("/", answerHandler.CreateAnswer)
				r.Get("/", answerHandler.ListAnswers)
				r.Delete("/", answerHandler.DeleteAnswers)
			})
		})
	})

	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth reports 200 when the database answers a ping.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if app.health == nil {
		shared.RespondWithError(w, r, http.StatusServiceUnavailable, "Database unavailable.")
		return
	}
	if err := app.health.PingContext(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable.", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
