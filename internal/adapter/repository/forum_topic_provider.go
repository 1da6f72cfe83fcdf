package repository

import (
	"context"
	"fmt"
	"time"

	"search-orchestrator/internal/domain"
)

const forumTopicSearchSQL = `
	SELECT t.id::text,
	       t.title,
	       LEFT(t.body, 200) AS excerpt,
	       ts_headline('english', t.title, q.query, $3) AS title_marked,
	       ts_headline('english', t.body, q.query, $3) AS body_marked,
	       (ts_rank(to_tsvector('english', t.title), q.query) * 2.0 +
	        ts_rank(to_tsvector('english', t.body), q.query)) AS score,
	       t.created_at,
	       u.display_name,
	       t.category,
	       t.reply_count,
	       t.view_count,
	       t.upvote_count,
	       COUNT(*) OVER () AS total_count
	FROM forum_topics t
	JOIN users u ON u.id = t.author_id
	CROSS JOIN to_tsquery('english', $1) AS q(query)
	WHERE t.status = 'open'
	  AND t.is_hidden = FALSE
	  AND (to_tsvector('english', t.title) || to_tsvector('english', t.body)) @@ q.query
	ORDER BY score DESC, t.id ASC
	LIMIT $2
`

const forumTopicSuggestSQL = `
	SELECT t.title,
	       COUNT(*) AS cnt,
	       MAX(similarity(t.title, $1)) AS sim
	FROM forum_topics t
	WHERE t.status = 'open'
	  AND t.is_hidden = FALSE
	  AND (t.title ILIKE '%' || $1 || '%' OR similarity(t.title, $1) > 0.25)
	GROUP BY t.title
	ORDER BY sim DESC, cnt DESC
	LIMIT $2
`

// ForumTopicProvider searches open, non-hidden forum topics with a 2x title
// boost.
type ForumTopicProvider struct {
	db DB
}

func NewForumTopicProvider(db DB) *ForumTopicProvider {
	return &ForumTopicProvider{db: db}
}

func (p *ForumTopicProvider) ContentType() domain.ContentType {
	return domain.ContentTypeForumTopics
}

func (p *ForumTopicProvider) Search(ctx context.Context, query string, limit int) ([]domain.RawHit, int, error) {
	tsq := buildPrefixTsQuery(query)
	if tsq == "" {
		return nil, 0, nil
	}

	rows, err := p.db.Query(ctx, forumTopicSearchSQL, tsq, limit, headlineOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search forum topics: %w", err)
	}
	defer rows.Close()

	var hits []domain.RawHit
	var total int
	for rows.Next() {
		var h domain.RawHit
		var createdAt time.Time
		meta := &domain.ForumTopicMeta{}
		if err := rows.Scan(
			&h.ID, &h.Title, &h.Excerpt, &h.TitleMarked, &h.BodyMarked, &h.Score,
			&createdAt, &meta.Author, &meta.Category, &meta.ReplyCount, &meta.ViewCount,
			&meta.UpvoteCount, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan forum topic hit: %w", err)
		}
		h.Type = domain.ContentTypeForumTopics
		h.Metadata = domain.ResultMetadata{CreatedAt: createdAt, ForumTopic: meta}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("forum topic rows error: %w", err)
	}
	return hits, total, nil
}

func (p *ForumTopicProvider) Suggest(ctx context.Context, prefix string, limit int) ([]domain.AutocompleteSuggestion, error) {
	return suggestTitles(ctx, p.db, forumTopicSuggestSQL, domain.ContentTypeForumTopics, prefix, limit)
}
