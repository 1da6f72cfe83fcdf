package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"search-orchestrator/internal/domain"
	"search-orchestrator/internal/usecase/fusion"
)

// SearchOutput is the fused, paginated answer to one search execution.
type SearchOutput struct {
	Results      []domain.SearchResult
	ContentTypes []domain.ContentType
	TotalCount   int
	Page         int
	PageSize     int
	TotalPages   int
	Took         time.Duration
}

// SearchUsecase executes one query against every enabled content provider
// and fuses the per-provider rankings into a single ordered page.
type SearchUsecase interface {
	Execute(ctx context.Context, query domain.SearchQuery) (*SearchOutput, error)
}

type searchUsecase struct {
	providers     map[domain.ContentType]domain.SearchProvider
	queryLog      domain.QueryLogRepository
	history       domain.HistoryRepository
	budget        time.Duration
	maxCandidates int
	logger        *slog.Logger
}

// NewSearchUsecase wires the orchestrator. budget is the soft latency target
// logged against every execution; maxCandidates bounds the per-provider
// over-fetch on deep pages.
func NewSearchUsecase(
	providers map[domain.ContentType]domain.SearchProvider,
	queryLog domain.QueryLogRepository,
	history domain.HistoryRepository,
	budget time.Duration,
	maxCandidates int,
	logger *slog.Logger,
) SearchUsecase {
	return &searchUsecase{
		providers:     providers,
		queryLog:      queryLog,
		history:       history,
		budget:        budget,
		maxCandidates: maxCandidates,
		logger:        logger,
	}
}

func (u *searchUsecase) Execute(ctx context.Context, query domain.SearchQuery) (*SearchOutput, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	limit := query.CandidateLimit()
	if limit > u.maxCandidates {
		limit = u.maxCandidates
	}

	var mu sync.Mutex
	hitsByType := make(map[domain.ContentType][]domain.RawHit, len(query.ContentTypes))
	totals := make(map[domain.ContentType]int, len(query.ContentTypes))

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range query.ContentTypes {
		provider, ok := u.providers[t]
		if !ok {
			continue
		}
		g.Go(func() error {
			providerStart := time.Now()
			hits, total, err := provider.Search(gctx, query.Text, limit)
			if err != nil {
				u.logger.Warn("provider_search_failed",
					slog.String("content_type", string(t)),
					slog.String("query", query.Text),
					slog.String("error", err.Error()))
				return nil // non-fatal
			}
			mu.Lock()
			hitsByType[t] = hits
			totals[t] = total
			mu.Unlock()
			u.logger.Debug("provider_search_completed",
				slog.String("content_type", string(t)),
				slog.Int("hits", len(hits)),
				slog.Int("total", total),
				slog.Int64("duration_ms", time.Since(providerStart).Milliseconds()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fused := fusion.Fuse(fusion.Input{
		HitsByType: hitsByType,
		Totals:     totals,
		Sort:       query.Sort,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})

	took := time.Since(start)
	if took > u.budget {
		u.logger.Warn("search_budget_exceeded",
			slog.String("query", query.Text),
			slog.Int64("duration_ms", took.Milliseconds()),
			slog.Int64("budget_ms", u.budget.Milliseconds()))
	} else {
		u.logger.Info("search_completed",
			slog.String("query", query.Text),
			slog.Int("total_count", fused.TotalCount),
			slog.Int64("duration_ms", took.Milliseconds()))
	}

	u.recordAnalytics(ctx, query, fused.TotalCount)

	return &SearchOutput{
		Results:      fused.Results,
		ContentTypes: query.ContentTypes,
		TotalCount:   fused.TotalCount,
		Page:         query.Page,
		PageSize:     query.PageSize,
		TotalPages:   fused.TotalPages,
		Took:         took,
	}, nil
}

// recordAnalytics logs the execution for trending aggregation and, for
// authenticated callers, appends to the bounded personal history. Analytics
// failures never fail the search itself.
func (u *searchUsecase) recordAnalytics(ctx context.Context, query domain.SearchQuery, resultCount int) {
	entry := domain.QueryLogEntry{
		Query:        query.Text,
		ContentTypes: query.ContentTypes,
		Sort:         query.Sort,
		ResultCount:  resultCount,
		UserID:       query.UserID,
	}
	if err := u.queryLog.Record(ctx, entry); err != nil {
		u.logger.Warn("query_log_record_failed",
			slog.String("query", query.Text),
			slog.String("error", err.Error()))
	}

	if query.UserID == nil {
		return
	}
	historyEntry := domain.SearchHistoryEntry{
		UserID:       *query.UserID,
		Query:        query.Text,
		ContentTypes: query.ContentTypes,
		ResultCount:  resultCount,
	}
	if err := u.history.Append(ctx, historyEntry, domain.HistoryLimit); err != nil {
		u.logger.Warn("history_append_failed",
			slog.String("user_id", query.UserID.String()),
			slog.String("error", err.Error()))
	}
}
