package usecase

import (
	"context"
	"log/slog"

	"search-orchestrator/internal/domain"
)

// PopularUsecase serves the trailing-window trending aggregate through a
// read-through cache.
type PopularUsecase interface {
	Execute(ctx context.Context) ([]domain.PopularSearch, error)
}

type popularUsecase struct {
	queryLog domain.QueryLogRepository
	cache    domain.PopularSearchCache
	logger   *slog.Logger
}

// NewPopularUsecase wires the aggregate read path. cache may be nil when no
// cache backend is configured; every call then recomputes from the log.
func NewPopularUsecase(queryLog domain.QueryLogRepository, cache domain.PopularSearchCache, logger *slog.Logger) PopularUsecase {
	return &popularUsecase{queryLog: queryLog, cache: cache, logger: logger}
}

func (u *popularUsecase) Execute(ctx context.Context) ([]domain.PopularSearch, error) {
	if u.cache != nil {
		if entries, ok := u.cache.Get(ctx, domain.PopularLimit); ok {
			return entries, nil
		}
	}

	entries, err := u.queryLog.PopularSearches(ctx, domain.PopularWindow, domain.PopularLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.PopularSearch{}
	}

	if u.cache != nil {
		u.cache.Set(ctx, domain.PopularLimit, entries)
	}
	return entries, nil
}
