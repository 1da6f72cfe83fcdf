package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// SortMode selects the global ordering applied to the fused result list.
type SortMode string

const (
	SortByRelevance  SortMode = "relevance"
	SortByDate       SortMode = "date"
	SortByPopularity SortMode = "popularity"
)

// ParseSortMode maps a raw sort name to a SortMode, defaulting to relevance.
func ParseSortMode(raw string) (SortMode, error) {
	switch raw {
	case "", string(SortByRelevance):
		return SortByRelevance, nil
	case string(SortByDate):
		return SortByDate, nil
	case string(SortByPopularity):
		return SortByPopularity, nil
	}
	return "", &ValidationError{Field: "sort", Message: "sort must be one of relevance, date, popularity"}
}

const (
	MaxQueryLength  = 500
	MinPageSize     = 1
	MaxPageSize     = 50
	DefaultPageSize = 20
)

// SearchQuery is the validated input of a single search execution.
type SearchQuery struct {
	Text         string
	ContentTypes []ContentType
	Sort         SortMode
	Page         int
	PageSize     int
	UserID       *uuid.UUID
}

// Validate checks the query against the engine's input contract. It returns
// a *ValidationError describing the first violation found.
func (q SearchQuery) Validate() error {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return &ValidationError{Field: "query", Message: "query must not be empty"}
	}
	if utf8.RuneCountInString(text) > MaxQueryLength {
		return &ValidationError{Field: "query", Message: "query exceeds 500 characters"}
	}
	if q.Page < 1 {
		return &ValidationError{Field: "page", Message: "page must be >= 1"}
	}
	if q.PageSize < MinPageSize || q.PageSize > MaxPageSize {
		return &ValidationError{Field: "page_size", Message: "page_size must be between 1 and 50"}
	}
	if len(q.ContentTypes) == 0 {
		return &ValidationError{Field: "content_types", Message: "at least one content type is required"}
	}
	for _, t := range q.ContentTypes {
		if !t.IsValid() {
			return &ValidationError{Field: "content_types", Message: "unknown content type " + string(t)}
		}
	}
	return nil
}

// CandidateLimit is the number of candidates each provider over-fetches so
// the fusion step can paginate the true combined set. Querying every provider
// at offset 0 with page*pageSize candidates keeps deep pages correct.
func (q SearchQuery) CandidateLimit() int {
	return q.Page * q.PageSize
}
