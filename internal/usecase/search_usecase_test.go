package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"search-orchestrator/internal/domain"
	"search-orchestrator/internal/usecase"
)

type MockSearchProvider struct {
	mock.Mock
	contentType domain.ContentType
}

func (m *MockSearchProvider) ContentType() domain.ContentType {
	return m.contentType
}

func (m *MockSearchProvider) Search(ctx context.Context, query string, limit int) ([]domain.RawHit, int, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.RawHit), args.Int(1), args.Error(2)
}

func (m *MockSearchProvider) Suggest(ctx context.Context, prefix string, limit int) ([]domain.AutocompleteSuggestion, error) {
	args := m.Called(ctx, prefix, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AutocompleteSuggestion), args.Error(1)
}

type MockQueryLogRepository struct {
	mock.Mock
}

func (m *MockQueryLogRepository) Record(ctx context.Context, entry domain.QueryLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockQueryLogRepository) PopularSearches(ctx context.Context, window time.Duration, limit int) ([]domain.PopularSearch, error) {
	args := m.Called(ctx, window, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PopularSearch), args.Error(1)
}

func (m *MockQueryLogRepository) TrimOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, entry domain.SearchHistoryEntry, keep int) error {
	args := m.Called(ctx, entry, keep)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchHistoryEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SearchHistoryEntry), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func articleRawHit(id string, score float64) domain.RawHit {
	return domain.RawHit{
		ID:    id,
		Type:  domain.ContentTypeArticles,
		Title: "article " + id,
		Score: score,
		Metadata: domain.ResultMetadata{
			CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Article:   &domain.ArticleMeta{},
		},
	}
}

func TestSearch_Execute_FusesAcrossProviders(t *testing.T) {
	articleProvider := &MockSearchProvider{contentType: domain.ContentTypeArticles}
	jobProvider := &MockSearchProvider{contentType: domain.ContentTypeJobs}
	queryLog := new(MockQueryLogRepository)
	history := new(MockHistoryRepository)

	providers := map[domain.ContentType]domain.SearchProvider{
		domain.ContentTypeArticles: articleProvider,
		domain.ContentTypeJobs:     jobProvider,
	}
	uc := usecase.NewSearchUsecase(providers, queryLog, history, 500*time.Millisecond, 500, testLogger())

	ctx := context.Background()
	articleProvider.On("Search", mock.Anything, "golang", 20).Return([]domain.RawHit{
		articleRawHit("a1", 0.8),
	}, 7, nil)
	jobProvider.On("Search", mock.Anything, "golang", 20).Return([]domain.RawHit{
		{
			ID: "j1", Type: domain.ContentTypeJobs, Title: "Go engineer", Score: 0.9,
			Metadata: domain.ResultMetadata{Job: &domain.JobMeta{}},
		},
	}, 3, nil)
	queryLog.On("Record", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.Execute(ctx, domain.SearchQuery{
		Text:         "golang",
		ContentTypes: []domain.ContentType{domain.ContentTypeArticles, domain.ContentTypeJobs},
		Sort:         domain.SortByRelevance,
		Page:         1,
		PageSize:     20,
	})

	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.Equal(t, "j1", out.Results[0].ID)
	assert.Equal(t, "a1", out.Results[1].ID)
	assert.Equal(t, 10, out.TotalCount)
	assert.Equal(t, 1, out.TotalPages)
	assert.Equal(t, []domain.ContentType{domain.ContentTypeArticles, domain.ContentTypeJobs}, out.ContentTypes)
	queryLog.AssertCalled(t, "Record", mock.Anything, mock.MatchedBy(func(e domain.QueryLogEntry) bool {
		return e.Query == "golang" && e.ResultCount == 10
	}))
	history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch_Execute_InvalidQuerySkipsProviders(t *testing.T) {
	articleProvider := &MockSearchProvider{contentType: domain.ContentTypeArticles}
	queryLog := new(MockQueryLogRepository)
	history := new(MockHistoryRepository)

	providers := map[domain.ContentType]domain.SearchProvider{
		domain.ContentTypeArticles: articleProvider,
	}
	uc := usecase.NewSearchUsecase(providers, queryLog, history, 500*time.Millisecond, 500, testLogger())

	_, err := uc.Execute(context.Background(), domain.SearchQuery{
		Text:         "   ",
		ContentTypes: []domain.ContentType{domain.ContentTypeArticles},
		Sort:         domain.SortByRelevance,
		Page:         1,
		PageSize:     20,
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "query", verr.Field)
	articleProvider.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	queryLog.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestSearch_Execute_OnlyRequestedTypesQueried(t *testing.T) {
	articleProvider := &MockSearchProvider{contentType: domain.ContentTypeArticles}
	userProvider := &MockSearchProvider{contentType: domain.ContentTypeUsers}
	queryLog := new(MockQueryLogRepository)
	history := new(MockHistoryRepository)

	providers := map[domain.ContentType]domain.SearchProvider{
		domain.ContentTypeArticles: articleProvider,
		domain.ContentTypeUsers:    userProvider,
	}
	uc := usecase.NewSearchUsecase(providers, queryLog, history, 500*time.Millisecond, 500, testLogger())

	userProvider.On("Search", mock.Anything, "alice", 20).Return([]domain.RawHit{}, 0, nil)
	queryLog.On("Record", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.Execute(context.Background(), domain.SearchQuery{
		Text:         "alice",
		ContentTypes: []domain.ContentType{domain.ContentTypeUsers},
		Sort:         domain.SortByRelevance,
		Page:         1,
		PageSize:     20,
	})

	require.NoError(t, err)
	assert.Empty(t, out.Results)
	assert.Equal(t, 0, out.TotalCount)
	articleProvider.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearch_Execute_FailedProviderDoesNotFailSearch(t *testing.T) {
	articleProvider := &MockSearchProvider{contentType: domain.ContentTypeArticles}
	topicProvider := &MockSearchProvider{contentType: domain.ContentTypeForumTopics}
	queryLog := new(MockQueryLogRepository)
	history := new(MockHistoryRepository)

	providers := map[domain.ContentType]domain.SearchProvider{
		domain.ContentTypeArticles:    articleProvider,
		domain.ContentTypeForumTopics: topicProvider,
	}
	uc := usecase.NewSearchUsecase(providers, queryLog, history, 500*time.Millisecond, 500, testLogger())

	articleProvider.On("Search", mock.Anything, "golang", 20).Return([]domain.RawHit{
		articleRawHit("a1", 0.8),
	}, 1, nil)
	topicProvider.On("Search", mock.Anything, "golang", 20).Return(nil, 0, errors.New("connection refused"))
	queryLog.On("Record", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.Execute(context.Background(), domain.SearchQuery{
		Text:         "golang",
		ContentTypes: []domain.ContentType{domain.ContentTypeArticles, domain.ContentTypeForumTopics},
		Sort:         domain.SortByRelevance,
		Page:         1,
		PageSize:     20,
	})

	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "a1", out.Results[0].ID)
	assert.Equal(t, 1, out.TotalCount)
}

func TestSearch_Execute_AppendsHistoryForAuthenticatedUser(t *testing.T) {
	articleProvider := &MockSearchProvider{contentType: domain.ContentTypeArticles}
	queryLog := new(MockQueryLogRepository)
	history := new(MockHistoryRepository)

	providers := map[domain.ContentType]domain.SearchProvider{
		domain.ContentTypeArticles: articleProvider,
	}
	uc := usecase.NewSearchUsecase(providers, queryLog, history, 500*time.Millisecond, 500, testLogger())

	userID := uuid.New()
	articleProvider.On("Search", mock.Anything, "golang", 20).Return([]domain.RawHit{}, 0, nil)
	queryLog.On("Record", mock.Anything, mock.Anything).Return(nil)
	history.On("Append", mock.Anything, mock.MatchedBy(func(e domain.SearchHistoryEntry) bool {
		return e.UserID == userID && e.Query == "golang"
	}), domain.HistoryLimit).Return(nil)

	_, err := uc.Execute(context.Background(), domain.SearchQuery{
		Text:         "golang",
		ContentTypes: []domain.ContentType{domain.ContentTypeArticles},
		Sort:         domain.SortByRelevance,
		Page:         1,
		PageSize:     20,
		UserID:       &userID,
	})

	require.NoError(t, err)
	history.AssertExpectations(t)
}

func TestSearch_Execute_DeepPageOverfetchesCandidates(t *testing.T) {
	articleProvider := &MockSearchProvider{contentType: domain.ContentTypeArticles}
	queryLog := new(MockQueryLogRepository)
	history := new(MockHistoryRepository)

	providers := map[domain.ContentType]domain.SearchProvider{
		domain.ContentTypeArticles: articleProvider,
	}
	uc := usecase.NewSearchUsecase(providers, queryLog, history, 500*time.Millisecond, 500, testLogger())

	hits := make([]domain.RawHit, 0, 30)
	for i := 0; i < 30; i++ {
		hits = append(hits, articleRawHit(string(rune('a'+i/10))+string(rune('a'+i%10)), 1.0-float64(i)*0.01))
	}
	// page 3 * page_size 10 = 30 candidates requested
	articleProvider.On("Search", mock.Anything, "golang", 30).Return(hits, 42, nil)
	queryLog.On("Record", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.Execute(context.Background(), domain.SearchQuery{
		Text:         "golang",
		ContentTypes: []domain.ContentType{domain.ContentTypeArticles},
		Sort:         domain.SortByRelevance,
		Page:         3,
		PageSize:     10,
	})

	require.NoError(t, err)
	require.Len(t, out.Results, 10)
	assert.Equal(t, 42, out.TotalCount)
	assert.Equal(t, 5, out.TotalPages)
	assert.Equal(t, hits[20].ID, out.Results[0].ID)
}
