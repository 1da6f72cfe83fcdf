package repository

import (
	"context"
	"fmt"
	"time"

	"search-orchestrator/internal/domain"
)

const articleSearchSQL = `
	SELECT a.id::text,
	       a.title,
	       LEFT(a.body, 200) AS excerpt,
	       ts_headline('english', a.title, q.query, $3) AS title_marked,
	       ts_headline('english', a.body, q.query, $3) AS body_marked,
	       (ts_rank(to_tsvector('english', a.title), q.query) * 3.0 +
	        ts_rank(to_tsvector('english', a.body), q.query)) AS score,
	       a.created_at,
	       u.display_name,
	       a.view_count,
	       a.upvote_count,
	       COUNT(*) OVER () AS total_count
	FROM articles a
	JOIN users u ON u.id = a.author_id
	CROSS JOIN to_tsquery('english', $1) AS q(query)
	WHERE a.published_at IS NOT NULL
	  AND (to_tsvector('english', a.title) || to_tsvector('english', a.body)) @@ q.query
	ORDER BY score DESC, a.id ASC
	LIMIT $2
`

const articleSuggestSQL = `
	SELECT a.title,
	       COUNT(*) AS cnt,
	       MAX(similarity(a.title, $1)) AS sim
	FROM articles a
	WHERE a.published_at IS NOT NULL
	  AND (a.title ILIKE '%' || $1 || '%' OR similarity(a.title, $1) > 0.25)
	GROUP BY a.title
	ORDER BY sim DESC, cnt DESC
	LIMIT $2
`

// ArticleProvider searches published articles with a 3x title boost over
// body-only matches.
type ArticleProvider struct {
	db DB
}

func NewArticleProvider(db DB) *ArticleProvider {
	return &ArticleProvider{db: db}
}

func (p *ArticleProvider) ContentType() domain.ContentType {
	return domain.ContentTypeArticles
}

func (p *ArticleProvider) Search(ctx context.Context, query string, limit int) ([]domain.RawHit, int, error) {
	tsq := buildPrefixTsQuery(query)
	if tsq == "" {
		return nil, 0, nil
	}

	rows, err := p.db.Query(ctx, articleSearchSQL, tsq, limit, headlineOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search articles: %w", err)
	}
	defer rows.Close()

	var hits []domain.RawHit
	var total int
	for rows.Next() {
		var h domain.RawHit
		var createdAt time.Time
		meta := &domain.ArticleMeta{}
		if err := rows.Scan(
			&h.ID, &h.Title, &h.Excerpt, &h.TitleMarked, &h.BodyMarked, &h.Score,
			&createdAt, &meta.Author, &meta.ViewCount, &meta.UpvoteCount, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan article hit: %w", err)
		}
		h.Type = domain.ContentTypeArticles
		h.Metadata = domain.ResultMetadata{CreatedAt: createdAt, Article: meta}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("article rows error: %w", err)
	}
	return hits, total, nil
}

func (p *ArticleProvider) Suggest(ctx context.Context, prefix string, limit int) ([]domain.AutocompleteSuggestion, error) {
	return suggestTitles(ctx, p.db, articleSuggestSQL, domain.ContentTypeArticles, prefix, limit)
}
