package usecase

import (
	"context"

	"github.com/google/uuid"

	"search-orchestrator/internal/domain"
)

// HistoryUsecase reads the bounded personal search history. Appends happen
// inside search execution, not through this interface.
type HistoryUsecase interface {
	ListRecent(ctx context.Context, userID uuid.UUID) ([]domain.SearchHistoryEntry, error)
}

type historyUsecase struct {
	history domain.HistoryRepository
}

func NewHistoryUsecase(history domain.HistoryRepository) HistoryUsecase {
	return &historyUsecase{history: history}
}

func (u *historyUsecase) ListRecent(ctx context.Context, userID uuid.UUID) ([]domain.SearchHistoryEntry, error) {
	entries, err := u.history.ListRecent(ctx, userID, domain.HistoryLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.SearchHistoryEntry{}
	}
	return entries, nil
}
