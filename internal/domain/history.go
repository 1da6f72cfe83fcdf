package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryLimit caps the personal search history to the N most recent
// entries; appending beyond the cap evicts the oldest rows.
const HistoryLimit = 10

// SearchHistoryEntry is one append-only row of a user's personal history.
type SearchHistoryEntry struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"-"`
	Query        string        `json:"query"`
	ContentTypes []ContentType `json:"content_types"`
	ResultCount  int           `json:"result_count"`
	CreatedAt    time.Time     `json:"created_at"`
}
