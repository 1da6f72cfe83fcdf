package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"search-orchestrator/internal/domain"
)

const uniqueViolationCode = "23505"

const createSavedSearchSQL = `
	INSERT INTO saved_searches (id, user_id, name, query, content_types, sort_by, notification_enabled, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const listSavedSearchesSQL = `
	SELECT id, user_id, name, query, content_types, sort_by, notification_enabled, created_at
	FROM saved_searches
	WHERE user_id = $1
	ORDER BY created_at DESC
`

const deleteSavedSearchSQL = `
	DELETE FROM saved_searches WHERE id = $1 AND user_id = $2
`

// SavedSearchRepository stores named query definitions. Ownership is
// enforced here: deletes are scoped to the owning user, and the
// (user_id, name) unique constraint surfaces as a typed conflict.
type SavedSearchRepository struct {
	db DB
}

func NewSavedSearchRepository(db DB) *SavedSearchRepository {
	return &SavedSearchRepository{db: db}
}

func (r *SavedSearchRepository) Create(ctx context.Context, s domain.SavedSearch) (domain.SavedSearch, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, createSavedSearchSQL,
		s.ID,
		s.UserID,
		s.Name,
		s.Query,
		contentTypeStrings(s.ContentTypes),
		string(s.Sort),
		s.NotificationEnabled,
		s.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.SavedSearch{}, domain.ErrSavedSearchConflict
		}
		return domain.SavedSearch{}, fmt.Errorf("failed to create saved search: %w", err)
	}
	return s, nil
}

func (r *SavedSearchRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error) {
	rows, err := r.db.Query(ctx, listSavedSearchesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}
	defer rows.Close()

	var searches []domain.SavedSearch
	for rows.Next() {
		var s domain.SavedSearch
		var types []string
		var sort string
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Query, &types, &sort,
			&s.NotificationEnabled, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan saved search: %w", err)
		}
		s.ContentTypes = contentTypesFromStrings(types)
		s.Sort = domain.SortMode(sort)
		searches = append(searches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("saved search rows error: %w", err)
	}
	return searches, nil
}

func (r *SavedSearchRepository) Delete(ctx context.Context, userID, searchID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteSavedSearchSQL, searchID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete saved search: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSavedSearchNotFound
	}
	return nil
}
