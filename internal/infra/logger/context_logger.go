package logger

import (
	"context"
	"log/slog"
)

type ContextKey string

const (
	// Business context keys for search observability.
	QueryKey        ContextKey = "search.query"
	UserIDKey       ContextKey = "search.user.id"
	ContentTypesKey ContextKey = "search.content_types"
)

// ContextLogger provides context-aware logging with search business context.
type ContextLogger struct {
	logger *slog.Logger
}

// NewContextLogger creates a new context-aware logger
func NewContextLogger(base *slog.Logger) *ContextLogger {
	return &ContextLogger{logger: base}
}

// WithContext returns a logger with context values extracted and added as fields
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	logger := cl.logger

	var fields []any

	if query := ctx.Value(QueryKey); query != nil {
		fields = append(fields, string(QueryKey), query)
	}
	if userID := ctx.Value(UserIDKey); userID != nil {
		fields = append(fields, string(UserIDKey), userID)
	}
	if types := ctx.Value(ContentTypesKey); types != nil {
		fields = append(fields, string(ContentTypesKey), types)
	}

	if len(fields) > 0 {
		logger = logger.With(fields...)
	}

	return logger
}

// WithQuery adds the executing query text to context for observability
func WithQuery(ctx context.Context, query string) context.Context {
	return context.WithValue(ctx, QueryKey, query)
}

// WithUserID adds the resolved caller identity to context for observability
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// WithContentTypes adds the enabled content types to context for observability
func WithContentTypes(ctx context.Context, types []string) context.Context {
	return context.WithValue(ctx, ContentTypesKey, types)
}
