package di

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"search-orchestrator/internal/adapter/cache"
	"search-orchestrator/internal/adapter/repository"
	"search-orchestrator/internal/domain"
	"search-orchestrator/internal/infra/config"
	"search-orchestrator/internal/usecase"
)

// ApplicationComponents holds all wired dependencies for the application.
type ApplicationComponents struct {
	Providers map[domain.ContentType]domain.SearchProvider

	QueryLogRepo    domain.QueryLogRepository
	HistoryRepo     domain.HistoryRepository
	SavedSearchRepo domain.SavedSearchRepository

	SearchUsecase       usecase.SearchUsecase
	AutocompleteUsecase usecase.AutocompleteUsecase
	HistoryUsecase      usecase.HistoryUsecase
	SavedSearchUsecase  usecase.SavedSearchUsecase
	PopularUsecase      usecase.PopularUsecase
}

// NewApplicationComponents wires all dependencies from config, the database
// pool, and an optional Redis client. rdb may be nil; the popular-searches
// read path then skips caching entirely.
func NewApplicationComponents(cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client, log *slog.Logger) *ApplicationComponents {
	providers := map[domain.ContentType]domain.SearchProvider{
		domain.ContentTypeArticles:     repository.NewArticleProvider(pool),
		domain.ContentTypeForumTopics:  repository.NewForumTopicProvider(pool),
		domain.ContentTypeForumReplies: repository.NewForumReplyProvider(pool),
		domain.ContentTypeJobs:         repository.NewJobProvider(pool),
		domain.ContentTypeUsers:        repository.NewUserProvider(pool),
		domain.ContentTypeCompanies:    repository.NewCompanyProvider(pool),
	}

	queryLogRepo := repository.NewQueryLogRepository(pool)
	historyRepo := repository.NewHistoryRepository(pool)
	savedSearchRepo := repository.NewSavedSearchRepository(pool)

	var popularCache domain.PopularSearchCache
	if rdb != nil {
		popularCache = cache.NewPopularSearchCache(rdb, cfg.PopularCacheTTL, log)
	}

	return &ApplicationComponents{
		Providers:       providers,
		QueryLogRepo:    queryLogRepo,
		HistoryRepo:     historyRepo,
		SavedSearchRepo: savedSearchRepo,

		SearchUsecase:       usecase.NewSearchUsecase(providers, queryLogRepo, historyRepo, cfg.SearchBudget, cfg.MaxCandidates, log),
		AutocompleteUsecase: usecase.NewAutocompleteUsecase(providers, log),
		HistoryUsecase:      usecase.NewHistoryUsecase(historyRepo),
		SavedSearchUsecase:  usecase.NewSavedSearchUsecase(savedSearchRepo),
		PopularUsecase:      usecase.NewPopularUsecase(queryLogRepo, popularCache, log),
	}
}
