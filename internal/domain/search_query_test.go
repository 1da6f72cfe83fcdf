package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-orchestrator/internal/domain"
)

func validQuery() domain.SearchQuery {
	return domain.SearchQuery{
		Text:         "golang concurrency",
		ContentTypes: domain.AllContentTypes(),
		Sort:         domain.SortByRelevance,
		Page:         1,
		PageSize:     20,
	}
}

func TestSearchQuery_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.SearchQuery)
		wantField string
	}{
		{name: "valid query", mutate: func(q *domain.SearchQuery) {}},
		{
			name:      "empty query",
			mutate:    func(q *domain.SearchQuery) { q.Text = "" },
			wantField: "query",
		},
		{
			name:      "blank after trim",
			mutate:    func(q *domain.SearchQuery) { q.Text = "   \t  " },
			wantField: "query",
		},
		{
			name:      "query too long",
			mutate:    func(q *domain.SearchQuery) { q.Text = strings.Repeat("a", 501) },
			wantField: "query",
		},
		{
			name:   "query at max length",
			mutate: func(q *domain.SearchQuery) { q.Text = strings.Repeat("a", 500) },
		},
		{
			// 500 runes of Japanese text is 1500 bytes; the bound counts runes.
			name:   "multibyte query at max length",
			mutate: func(q *domain.SearchQuery) { q.Text = strings.Repeat("検", 500) },
		},
		{
			name:      "multibyte query over max length",
			mutate:    func(q *domain.SearchQuery) { q.Text = strings.Repeat("検", 501) },
			wantField: "query",
		},
		{
			name:   "length counted after trim",
			mutate: func(q *domain.SearchQuery) { q.Text = "  " + strings.Repeat("a", 500) + "  " },
		},
		{
			name:      "page zero",
			mutate:    func(q *domain.SearchQuery) { q.Page = 0 },
			wantField: "page",
		},
		{
			name:      "page size zero",
			mutate:    func(q *domain.SearchQuery) { q.PageSize = 0 },
			wantField: "page_size",
		},
		{
			name:      "page size over cap",
			mutate:    func(q *domain.SearchQuery) { q.PageSize = 51 },
			wantField: "page_size",
		},
		{
			name:      "no content types",
			mutate:    func(q *domain.SearchQuery) { q.ContentTypes = nil },
			wantField: "content_types",
		},
		{
			name:      "unknown content type",
			mutate:    func(q *domain.SearchQuery) { q.ContentTypes = []domain.ContentType{"podcasts"} },
			wantField: "content_types",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuery()
			tt.mutate(&q)

			err := q.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestSavedSearch_ValidateLengthBounds(t *testing.T) {
	base := domain.SavedSearch{Name: "daily", Query: "golang"}

	t.Run("multibyte name at max length", func(t *testing.T) {
		s := base
		s.Name = strings.Repeat("週", 100)
		assert.NoError(t, s.Validate())
	})

	t.Run("multibyte name over max length", func(t *testing.T) {
		s := base
		s.Name = strings.Repeat("週", 101)
		var verr *domain.ValidationError
		require.ErrorAs(t, s.Validate(), &verr)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("multibyte query at max length", func(t *testing.T) {
		s := base
		s.Query = strings.Repeat("検", 500)
		assert.NoError(t, s.Validate())
	})

	t.Run("multibyte query over max length", func(t *testing.T) {
		s := base
		s.Query = strings.Repeat("検", 501)
		var verr *domain.ValidationError
		require.ErrorAs(t, s.Validate(), &verr)
		assert.Equal(t, "query", verr.Field)
	})
}

func TestSearchQuery_CandidateLimit(t *testing.T) {
	q := validQuery()
	q.Page = 3
	q.PageSize = 20
	assert.Equal(t, 60, q.CandidateLimit())
}

func TestParseContentTypes(t *testing.T) {
	t.Run("empty selects all six", func(t *testing.T) {
		types, err := domain.ParseContentTypes(nil)
		require.NoError(t, err)
		assert.Len(t, types, 6)
	})

	t.Run("subset preserved in order", func(t *testing.T) {
		types, err := domain.ParseContentTypes([]string{"jobs", "articles"})
		require.NoError(t, err)
		assert.Equal(t, []domain.ContentType{domain.ContentTypeJobs, domain.ContentTypeArticles}, types)
	})

	t.Run("duplicates collapsed", func(t *testing.T) {
		types, err := domain.ParseContentTypes([]string{"jobs", "jobs"})
		require.NoError(t, err)
		assert.Equal(t, []domain.ContentType{domain.ContentTypeJobs}, types)
	})

	t.Run("unknown rejected", func(t *testing.T) {
		_, err := domain.ParseContentTypes([]string{"podcasts"})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "content_types", verr.Field)
	})
}

func TestParseSortMode(t *testing.T) {
	sort, err := domain.ParseSortMode("")
	require.NoError(t, err)
	assert.Equal(t, domain.SortByRelevance, sort)

	sort, err = domain.ParseSortMode("date")
	require.NoError(t, err)
	assert.Equal(t, domain.SortByDate, sort)

	_, err = domain.ParseSortMode("newest")
	assert.Error(t, err)
}
