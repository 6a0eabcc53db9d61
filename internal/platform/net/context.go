// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyCourseKey ctxKey = "course_key"

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, courseKey string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if courseKey != "" {
		ctx = context.WithValue(ctx, keyCourseKey, courseKey)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// CourseKey returns the course key on the context if present
func CourseKey(ctx context.Context) string {
	if v, ok := ctx.Value(keyCourseKey).(string); ok {
		return v
	}
	return ""
}
