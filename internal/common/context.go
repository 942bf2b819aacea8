package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyFileID    contextKey = "file_id"
	ContextKeyLogger    contextKey = "logger"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithFileID adds a file ID to the context
func WithFileID(ctx context.Context, fileID string) context.Context {
	return context.WithValue(ctx, ContextKeyFileID, fileID)
}

// FileIDFromContext extracts the file ID from context
func FileIDFromContext(ctx context.Context) string {
	if fileID, ok := ctx.Value(ContextKeyFileID).(string); ok {
		return fileID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
