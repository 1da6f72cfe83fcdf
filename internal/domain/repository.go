package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QueryLogEntry is one row of the raw analytics log. The log feeds the
// popular-searches aggregate and doubles as an audit trail when retained.
type QueryLogEntry struct {
	ID           uuid.UUID
	Query        string
	ContentTypes []ContentType
	Sort         SortMode
	ResultCount  int
	UserID       *uuid.UUID
	CreatedAt    time.Time
}

// QueryLogRepository persists every executed search and serves the derived
// popular-searches aggregate.
type QueryLogRepository interface {
	Record(ctx context.Context, entry QueryLogEntry) error
	PopularSearches(ctx context.Context, window time.Duration, limit int) ([]PopularSearch, error)
	TrimOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// HistoryRepository manages the bounded per-user search history. Append
// inserts the entry and prunes rows beyond keep as one atomic unit.
type HistoryRepository interface {
	Append(ctx context.Context, entry SearchHistoryEntry, keep int) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]SearchHistoryEntry, error)
}

// SavedSearchRepository stores named query definitions. Create returns
// ErrSavedSearchConflict on a duplicate (user, name); Delete returns
// ErrSavedSearchNotFound when the search does not exist or is not owned by
// the caller.
type SavedSearchRepository interface {
	Create(ctx context.Context, s SavedSearch) (SavedSearch, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]SavedSearch, error)
	Delete(ctx context.Context, userID, searchID uuid.UUID) error
}

// PopularSearchCache is a read-through cache in front of the popular
// aggregate. Implementations fail open: a miss or backend error simply
// falls back to recomputation.
type PopularSearchCache interface {
	Get(ctx context.Context, limit int) ([]PopularSearch, bool)
	Set(ctx context.Context, limit int, entries []PopularSearch)
}
