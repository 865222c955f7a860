package shared

import (
	"context"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// QuestionIDContextKey is the key for a question ID that has been parsed
	// from the path and confirmed to exist
	QuestionIDContextKey ContextKey = "questionID"

	// TraceIDHeader is the response header echoing the request's trace ID
	TraceIDHeader = "X-Trace-ID"
)

// NewTraceID returns a fresh random trace ID.
func NewTraceID() string {
	return uuid.NewString()
}

// SetTraceID adds a trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetQuestionID attaches a resolved question ID to the context.
func SetQuestionID(ctx context.Context, questionID int64) context.Context {
	return context.WithValue(ctx, QuestionIDContextKey, questionID)
}

// GetQuestionID retrieves a resolved question ID from the context.
func GetQuestionID(ctx context.Context) (int64, bool) {
	questionID, ok := ctx.Value(QuestionIDContextKey).(int64)
	return questionID, ok
}
