package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxSavedSearchNameLength = 100

// SavedSearch is a named, reusable query definition owned by one user.
// (user_id, name) is unique; the notification flag marks the search for
// future proactive alerting.
type SavedSearch struct {
	ID                  uuid.UUID     `json:"id"`
	UserID              uuid.UUID     `json:"-"`
	Name                string        `json:"name"`
	Query               string        `json:"query"`
	ContentTypes        []ContentType `json:"content_types"`
	Sort                SortMode      `json:"sort"`
	NotificationEnabled bool          `json:"notification_enabled"`
	CreatedAt           time.Time     `json:"created_at"`
}

// Validate checks the saved-search definition before it reaches storage.
func (s SavedSearch) Validate() error {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "name must not be empty"}
	}
	if utf8.RuneCountInString(name) > maxSavedSearchNameLength {
		return &ValidationError{Field: "name", Message: "name exceeds 100 characters"}
	}
	query := strings.TrimSpace(s.Query)
	if query == "" {
		return &ValidationError{Field: "query", Message: "query must not be empty"}
	}
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return &ValidationError{Field: "query", Message: "query exceeds 500 characters"}
	}
	for _, t := range s.ContentTypes {
		if !t.IsValid() {
			return &ValidationError{Field: "content_types", Message: "unknown content type " + string(t)}
		}
	}
	return nil
}
