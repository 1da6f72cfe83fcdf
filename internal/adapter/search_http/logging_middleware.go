package search_http

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"search-orchestrator/internal/domain"
	"search-orchestrator/internal/infra/logger"
)

// RequestLogging logs every completed request with the search business
// context (query text, caller identity) attached. Runs after ResolveUserID
// so the identity is already in the request context.
func RequestLogging(base *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(base)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path == "/v1/health" {
				return next(c)
			}

			ctx := req.Context()
			if q := c.QueryParam("q"); q != "" {
				ctx = logger.WithQuery(ctx, q)
			}
			if userID, ok := domain.UserIDFrom(ctx); ok {
				ctx = logger.WithUserID(ctx, userID.String())
			}
			if types := splitCSV(c.QueryParam("types")); len(types) > 0 {
				ctx = logger.WithContentTypes(ctx, types)
			}
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			status := c.Response().Status
			logAttrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", duration.Milliseconds(),
			}
			switch {
			case status >= 500:
				contextLogger.WithContext(ctx).ErrorContext(ctx, "request completed", logAttrs...)
			case status >= 400:
				contextLogger.WithContext(ctx).WarnContext(ctx, "request completed", logAttrs...)
			default:
				contextLogger.WithContext(ctx).InfoContext(ctx, "request completed", logAttrs...)
			}
			return err
		}
	}
}
