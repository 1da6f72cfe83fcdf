package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"search-orchestrator/internal/domain"
)

const appendHistorySQL = `
	INSERT INTO search_history (id, user_id, query, content_types, result_count, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
`

const pruneHistorySQL = `
	DELETE FROM search_history
	WHERE user_id = $1
	  AND id NOT IN (
		SELECT id FROM search_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	  )
`

const listHistorySQL = `
	SELECT id, user_id, query, content_types, result_count, created_at
	FROM search_history
	WHERE user_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2
`

// HistoryRepository keeps the bounded per-user history. Insert and prune run
// in one transaction so concurrent searches by the same user cannot grow the
// window past the cap between prunes.
type HistoryRepository struct {
	db DB
}

func NewHistoryRepository(db DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, entry domain.SearchHistoryEntry, keep int) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin history transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, appendHistorySQL,
		entry.ID,
		entry.UserID,
		entry.Query,
		contentTypeStrings(entry.ContentTypes),
		entry.ResultCount,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	if _, err := tx.Exec(ctx, pruneHistorySQL, entry.UserID, keep); err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit history transaction: %w", err)
	}
	return nil
}

func (r *HistoryRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchHistoryEntry, error) {
	rows, err := r.db.Query(ctx, listHistorySQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []domain.SearchHistoryEntry
	for rows.Next() {
		var e domain.SearchHistoryEntry
		var types []string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Query, &types, &e.ResultCount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		e.ContentTypes = contentTypesFromStrings(types)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history rows error: %w", err)
	}
	return entries, nil
}
