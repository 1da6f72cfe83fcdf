package search_http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts every operation under /v1.
func RegisterRoutes(e *echo.Echo, h *Handler, log *slog.Logger) {
	v1 := e.Group("/v1", ResolveUserID(), RequestLogging(log))

	v1.GET("/health", h.Health)
	v1.GET("/search", h.Search)
	v1.GET("/search/autocomplete", h.Autocomplete)
	v1.GET("/search/history", h.History)
	v1.GET("/search/popular", h.Popular)
	v1.POST("/search/saved", h.CreateSavedSearch)
	v1.GET("/search/saved", h.ListSavedSearches)
	v1.DELETE("/search/saved/:id", h.DeleteSavedSearch)
}
