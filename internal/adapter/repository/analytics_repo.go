package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"search-orchestrator/internal/domain"
)

const recordQuerySQL = `
	INSERT INTO search_query_log (id, query, content_types, sort_by, result_count, user_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

const popularSearchesSQL = `
	SELECT query, COUNT(*) AS cnt, MAX(created_at) AS last_searched
	FROM search_query_log
	WHERE created_at > $1
	GROUP BY query
	ORDER BY cnt DESC, last_searched DESC
	LIMIT $2
`

const trimQueryLogSQL = `
	DELETE FROM search_query_log WHERE created_at < $1
`

// QueryLogRepository appends one row per executed search and serves the
// popular-searches aggregate over the raw rows.
type QueryLogRepository struct {
	db DB
}

func NewQueryLogRepository(db DB) *QueryLogRepository {
	return &QueryLogRepository{db: db}
}

func (r *QueryLogRepository) Record(ctx context.Context, entry domain.QueryLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, recordQuerySQL,
		entry.ID,
		entry.Query,
		contentTypeStrings(entry.ContentTypes),
		string(entry.Sort),
		entry.ResultCount,
		entry.UserID,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record search query: %w", err)
	}
	return nil
}

func (r *QueryLogRepository) PopularSearches(ctx context.Context, window time.Duration, limit int) ([]domain.PopularSearch, error) {
	since := time.Now().Add(-window)
	rows, err := r.db.Query(ctx, popularSearchesSQL, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular searches: %w", err)
	}
	defer rows.Close()

	var popular []domain.PopularSearch
	for rows.Next() {
		var p domain.PopularSearch
		if err := rows.Scan(&p.Query, &p.Count, &p.LastSearched); err != nil {
			return nil, fmt.Errorf("failed to scan popular search: %w", err)
		}
		popular = append(popular, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("popular search rows error: %w", err)
	}
	return popular, nil
}

func (r *QueryLogRepository) TrimOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, trimQueryLogSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to trim query log: %w", err)
	}
	return tag.RowsAffected(), nil
}

func contentTypeStrings(types []domain.ContentType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func contentTypesFromStrings(raw []string) []domain.ContentType {
	out := make([]domain.ContentType, len(raw))
	for i, s := range raw {
		out[i] = domain.ContentType(s)
	}
	return out
}
