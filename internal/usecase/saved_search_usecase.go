package usecase

import (
	"context"

	"github.com/google/uuid"

	"search-orchestrator/internal/domain"
)

// SavedSearchUsecase manages a user's named query definitions.
type SavedSearchUsecase interface {
	Create(ctx context.Context, s domain.SavedSearch) (domain.SavedSearch, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error)
	Delete(ctx context.Context, userID, searchID uuid.UUID) error
}

type savedSearchUsecase struct {
	repo domain.SavedSearchRepository
}

func NewSavedSearchUsecase(repo domain.SavedSearchRepository) SavedSearchUsecase {
	return &savedSearchUsecase{repo: repo}
}

func (u *savedSearchUsecase) Create(ctx context.Context, s domain.SavedSearch) (domain.SavedSearch, error) {
	if err := s.Validate(); err != nil {
		return domain.SavedSearch{}, err
	}
	if len(s.ContentTypes) == 0 {
		s.ContentTypes = domain.AllContentTypes()
	}
	if s.Sort == "" {
		s.Sort = domain.SortByRelevance
	}
	return u.repo.Create(ctx, s)
}

func (u *savedSearchUsecase) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error) {
	searches, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if searches == nil {
		searches = []domain.SavedSearch{}
	}
	return searches, nil
}

func (u *savedSearchUsecase) Delete(ctx context.Context, userID, searchID uuid.UUID) error {
	return u.repo.Delete(ctx, userID, searchID)
}
