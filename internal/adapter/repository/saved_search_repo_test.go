package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-orchestrator/internal/domain"
)

func TestSavedSearchRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	userID := uuid.New()
	mock.ExpectExec(`INSERT INTO saved_searches`).
		WithArgs(pgxmock.AnyArg(), userID, "daily golang", "golang", []string{"articles"}, "relevance", false, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewSavedSearchRepository(mock)
	created, err := repo.Create(context.Background(), domain.SavedSearch{
		UserID:       userID,
		Name:         "daily golang",
		Query:        "golang",
		ContentTypes: []domain.ContentType{domain.ContentTypeArticles},
		Sort:         domain.SortByRelevance,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedSearchRepository_CreateDuplicateNameIsConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO saved_searches`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "saved_searches_user_id_name_key"})

	repo := NewSavedSearchRepository(mock)
	_, err = repo.Create(context.Background(), domain.SavedSearch{
		UserID: uuid.New(),
		Name:   "daily golang",
		Query:  "golang",
	})

	assert.ErrorIs(t, err, domain.ErrSavedSearchConflict)
}

func TestSavedSearchRepository_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	userID := uuid.New()
	searchID := uuid.New()
	createdAt := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, user_id, name, query, content_types, sort_by, notification_enabled, created_at`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "name", "query", "content_types", "sort_by", "notification_enabled", "created_at",
		}).AddRow(searchID, userID, "daily golang", "golang", []string{"articles", "jobs"}, "date", true, createdAt))

	repo := NewSavedSearchRepository(mock)
	searches, err := repo.ListByUser(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, searches, 1)
	assert.Equal(t, searchID, searches[0].ID)
	assert.Equal(t, []domain.ContentType{domain.ContentTypeArticles, domain.ContentTypeJobs}, searches[0].ContentTypes)
	assert.Equal(t, domain.SortByDate, searches[0].Sort)
	assert.True(t, searches[0].NotificationEnabled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedSearchRepository_DeleteScopedToOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	userID := uuid.New()
	searchID := uuid.New()
	mock.ExpectExec(`DELETE FROM saved_searches WHERE id = \$1 AND user_id = \$2`).
		WithArgs(searchID, userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewSavedSearchRepository(mock)
	err = repo.Delete(context.Background(), userID, searchID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedSearchRepository_DeleteMissingIsNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM saved_searches`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewSavedSearchRepository(mock)
	err = repo.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrSavedSearchNotFound)
}
