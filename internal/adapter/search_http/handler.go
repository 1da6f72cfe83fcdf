package search_http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"search-orchestrator/internal/domain"
	"search-orchestrator/internal/usecase"
)

type Handler struct {
	searchUsecase       usecase.SearchUsecase
	autocompleteUsecase usecase.AutocompleteUsecase
	historyUsecase      usecase.HistoryUsecase
	savedSearchUsecase  usecase.SavedSearchUsecase
	popularUsecase      usecase.PopularUsecase
}

func NewHandler(
	searchUsecase usecase.SearchUsecase,
	autocompleteUsecase usecase.AutocompleteUsecase,
	historyUsecase usecase.HistoryUsecase,
	savedSearchUsecase usecase.SavedSearchUsecase,
	popularUsecase usecase.PopularUsecase,
) *Handler {
	return &Handler{
		searchUsecase:       searchUsecase,
		autocompleteUsecase: autocompleteUsecase,
		historyUsecase:      historyUsecase,
		savedSearchUsecase:  savedSearchUsecase,
		popularUsecase:      popularUsecase,
	}
}

type searchResponse struct {
	Results      []domain.SearchResult `json:"results"`
	ContentTypes []domain.ContentType  `json:"content_types"`
	TotalCount   int                   `json:"total_count"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	TotalPages   int                   `json:"total_pages"`
	TookMs       int64                 `json:"took_ms"`
}

// Search executes one query across the requested content types.
// (GET /v1/search)
func (h *Handler) Search(c echo.Context) error {
	types, err := domain.ParseContentTypes(splitCSV(c.QueryParam("types")))
	if err != nil {
		return writeError(c, err)
	}
	sort, err := domain.ParseSortMode(c.QueryParam("sort"))
	if err != nil {
		return writeError(c, err)
	}
	page, err := intParam(c, "page", 1)
	if err != nil {
		return writeError(c, err)
	}
	pageSize, err := intParam(c, "page_size", domain.DefaultPageSize)
	if err != nil {
		return writeError(c, err)
	}

	query := domain.SearchQuery{
		Text:         c.QueryParam("q"),
		ContentTypes: types,
		Sort:         sort,
		Page:         page,
		PageSize:     pageSize,
	}
	if userID, ok := domain.UserIDFrom(c.Request().Context()); ok {
		query.UserID = &userID
	}

	out, err := h.searchUsecase.Execute(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, searchResponse{
		Results:      out.Results,
		ContentTypes: out.ContentTypes,
		TotalCount:   out.TotalCount,
		Page:         out.Page,
		PageSize:     out.PageSize,
		TotalPages:   out.TotalPages,
		TookMs:       out.Took.Milliseconds(),
	})
}

// Autocomplete serves typeahead suggestions for a prefix.
// (GET /v1/search/autocomplete)
func (h *Handler) Autocomplete(c echo.Context) error {
	limit, err := intParam(c, "limit", domain.DefaultSuggestionLimit)
	if err != nil {
		return writeError(c, err)
	}

	suggestions, err := h.autocompleteUsecase.Execute(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"suggestions": suggestions})
}

// History returns the caller's recent searches, newest first.
// (GET /v1/search/history)
func (h *Handler) History(c echo.Context) error {
	userID, ok := domain.UserIDFrom(c.Request().Context())
	if !ok {
		return writeError(c, domain.ErrUnauthenticated)
	}

	entries, err := h.historyUsecase.ListRecent(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"history": entries})
}

type createSavedSearchRequest struct {
	Name                string   `json:"name"`
	Query               string   `json:"query"`
	ContentTypes        []string `json:"content_types"`
	Sort                string   `json:"sort"`
	NotificationEnabled bool     `json:"notification_enabled"`
}

// CreateSavedSearch stores a named query definition for the caller.
// (POST /v1/search/saved)
func (h *Handler) CreateSavedSearch(c echo.Context) error {
	userID, ok := domain.UserIDFrom(c.Request().Context())
	if !ok {
		return writeError(c, domain.ErrUnauthenticated)
	}

	var req createSavedSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	types, err := domain.ParseContentTypes(req.ContentTypes)
	if err != nil {
		return writeError(c, err)
	}
	sort, err := domain.ParseSortMode(req.Sort)
	if err != nil {
		return writeError(c, err)
	}

	created, err := h.savedSearchUsecase.Create(c.Request().Context(), domain.SavedSearch{
		UserID:              userID,
		Name:                req.Name,
		Query:               req.Query,
		ContentTypes:        types,
		Sort:                sort,
		NotificationEnabled: req.NotificationEnabled,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListSavedSearches returns every saved search the caller owns.
// (GET /v1/search/saved)
func (h *Handler) ListSavedSearches(c echo.Context) error {
	userID, ok := domain.UserIDFrom(c.Request().Context())
	if !ok {
		return writeError(c, domain.ErrUnauthenticated)
	}

	searches, err := h.savedSearchUsecase.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"saved_searches": searches})
}

// DeleteSavedSearch removes one of the caller's saved searches.
// (DELETE /v1/search/saved/:id)
func (h *Handler) DeleteSavedSearch(c echo.Context) error {
	userID, ok := domain.UserIDFrom(c.Request().Context())
	if !ok {
		return writeError(c, domain.ErrUnauthenticated)
	}
	searchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, &domain.ValidationError{Field: "id", Message: "id must be a UUID"})
	}

	if err := h.savedSearchUsecase.Delete(c.Request().Context(), userID, searchID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Popular returns the trending queries over the trailing window.
// (GET /v1/search/popular)
func (h *Handler) Popular(c echo.Context) error {
	entries, err := h.popularUsecase.Execute(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"popular": entries})
}

// Health reports liveness.
// (GET /v1/health)
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps domain errors to HTTP status codes. Unexpected errors
// become opaque 500s so storage details never leak to callers.
func writeError(c echo.Context, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": verr.Message,
			"field": verr.Field,
		})
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrSavedSearchConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrSavedSearchNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func intParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.ValidationError{Field: name, Message: name + " must be an integer"}
	}
	return v, nil
}
