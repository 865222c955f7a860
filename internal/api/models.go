package api

// QuestionRequest defines the payload for creating or updating a question.
type QuestionRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=20,max=300"`
	Category    string `json:"category"    validate:"required,question_category"`
}

// AnswerRequest defines the payload for posting an answer to a question.
type AnswerRequest struct {
	Content string `json:"content" validate:"required,max=300"`
}
