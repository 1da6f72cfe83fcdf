package search_http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"search-orchestrator/internal/domain"
)

// UserIDHeader carries the caller identity resolved by the upstream auth
// layer. The engine trusts the header as-is and never authenticates itself.
const UserIDHeader = "X-User-Id"

// ResolveUserID lifts the pre-resolved caller identity from the request
// header into the context. Requests without the header (or with a malformed
// value) proceed anonymously.
func ResolveUserID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(UserIDHeader)
			if raw != "" {
				if userID, err := uuid.Parse(raw); err == nil {
					ctx := domain.SetUserID(c.Request().Context(), userID)
					c.SetRequest(c.Request().WithContext(ctx))
				}
			}
			return next(c)
		}
	}
}
