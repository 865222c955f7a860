package api

import (
	"fmt"
	"net/http"

	"github.com/phrazzld/forum-api/internal/api/shared"
)

// Client-facing messages. These strings are part of the HTTP contract.
const (
	MsgInvalidQuestionData   = "Invalid question data. Please provide title, description and category."
	MsgInvalidDescription    = "Description must be between 20 and 300 characters."
	MsgInvalidCategory       = "Invalid category. Please provide a valid category."
	MsgInvalidQuestionID     = "Invalid question id."
	MsgQuestionNotFound      = "Question not found."
	MsgInvalidSearch         = "Invalid search parameters."
	MsgNoQuestionsFound      = "No questions found."
	MsgInvalidAnswerData     = "Invalid request data."
	MsgAnswerTooLong         = "Content exceeds maximum length of 300 characters."
	MsgUnableToCreate        = "Unable to create question."
	MsgUnableToFetchOne      = "Unable to fetch question."
	MsgUnableToFetchAll      = "Unable to fetch questions"
	MsgUnableToFetch         = "Unable to fetch questions."
	MsgUnableToDelete        = "Unable to delete question."
	MsgUnableToCreateAnswer  = "Unable to create answer."
	MsgUnableToFetchAnswers  = "Unable to fetch answers."
	MsgUnableToDeleteAnswers = "Unable to delete answer."

	MsgQuestionCreated = "Question created successfully"
	MsgQuestionUpdated = "Question updated successfully"
	MsgQuestionDeleted = "Question post has been deleted successfully."
	MsgAnswerCreated   = "Answer created successfully"
	MsgAnswersDeleted  = "All answers for the question have been deleted successfully."
)

// Rejection is a terminal outcome of a validation step. Handlers stop
// processing as soon as one is produced and write it as the response.
type Rejection struct {
	Status  int
	Message string
	// Err is the underlying cause, logged but never sent to the client.
	Err error
}

func (r *Rejection) Error() string {
	if r.Err != nil {
		return fmt.Sprintf("%d %s: %v", r.Status, r.Message, r.Err)
	}
	return fmt.Sprintf("%d %s", r.Status, r.Message)
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

func reject(status int, message string) *Rejection {
	return &Rejection{Status: status, Message: message}
}

func rejectWithCause(status int, message string, err error) *Rejection {
	return &Rejection{Status: status, Message: message, Err: err}
}

// writeRejection renders rej as a JSON error response. Server errors are
// logged with their cause.
func writeRejection(w http.ResponseWriter, r *http.Request, rej *Rejection) {
	if rej.Status >= http.StatusInternalServerError || rej.Err != nil {
		shared.RespondWithErrorAndLog(w, r, rej.Status, rej.Message, rej.Err)
		return
	}
	shared.RespondWithError(w, r, rej.Status, rej.Message)
}
