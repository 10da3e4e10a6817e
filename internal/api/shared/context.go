package shared

import (
	"context"
	"encoding/hex"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the length of a generated trace ID in hex characters
	TraceIDLength = 32
)

// SetTraceID adds a new trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
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

// generateTraceID returns a random (version 4) UUID as 32 hex characters.
func generateTraceID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// valueKey distinguishes request values by their Go type, so each
// instantiation is its own context key.
type valueKey[T any] struct{}

// WithValue attaches a typed value to the context. Validators use it to hand
// the resolved entity or the decoded body to the next handler.
func WithValue[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, valueKey[T]{}, v)
}

// Value returns the value of type T attached with WithValue.
func Value[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(valueKey[T]{}).(T)
	return v, ok
}
