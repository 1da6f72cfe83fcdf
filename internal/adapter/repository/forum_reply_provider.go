package repository

import (
	"context"
	"fmt"
	"time"

	"search-orchestrator/internal/domain"
)

const forumReplySearchSQL = `
	SELECT r.id::text,
	       'Re: ' || t.title AS title,
	       LEFT(r.body, 200) AS excerpt,
	       ts_headline('english', 'Re: ' || t.title, q.query, $3) AS title_marked,
	       ts_headline('english', r.body, q.query, $3) AS body_marked,
	       (ts_rank(to_tsvector('english', t.title), q.query) * 2.0 +
	        ts_rank(to_tsvector('english', r.body), q.query)) AS score,
	       r.created_at,
	       u.display_name,
	       t.id::text AS topic_id,
	       t.title AS topic_title,
	       r.upvote_count,
	       COUNT(*) OVER () AS total_count
	FROM forum_replies r
	JOIN forum_topics t ON t.id = r.topic_id
	JOIN users u ON u.id = r.author_id
	CROSS JOIN to_tsquery('english', $1) AS q(query)
	WHERE r.is_deleted = FALSE
	  AND t.is_hidden = FALSE
	  AND to_tsvector('english', r.body) @@ q.query
	ORDER BY score DESC, r.id ASC
	LIMIT $2
`

// ForumReplyProvider searches non-deleted replies on visible topics. Replies
// have no title of their own; the parent topic title stands in and its match
// carries the 2x boost.
type ForumReplyProvider struct {
	db DB
}

func NewForumReplyProvider(db DB) *ForumReplyProvider {
	return &ForumReplyProvider{db: db}
}

func (p *ForumReplyProvider) ContentType() domain.ContentType {
	return domain.ContentTypeForumReplies
}

func (p *ForumReplyProvider) Search(ctx context.Context, query string, limit int) ([]domain.RawHit, int, error) {
	tsq := buildPrefixTsQuery(query)
	if tsq == "" {
		return nil, 0, nil
	}

	rows, err := p.db.Query(ctx, forumReplySearchSQL, tsq, limit, headlineOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search forum replies: %w", err)
	}
	defer rows.Close()

	var hits []domain.RawHit
	var total int
	for rows.Next() {
		var h domain.RawHit
		var createdAt time.Time
		meta := &domain.ForumReplyMeta{}
		if err := rows.Scan(
			&h.ID, &h.Title, &h.Excerpt, &h.TitleMarked, &h.BodyMarked, &h.Score,
			&createdAt, &meta.Author, &meta.TopicID, &meta.TopicTitle, &meta.UpvoteCount, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan forum reply hit: %w", err)
		}
		h.Type = domain.ContentTypeForumReplies
		h.Metadata = domain.ResultMetadata{CreatedAt: createdAt, ForumReply: meta}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("forum reply rows error: %w", err)
	}
	return hits, total, nil
}

// Suggest returns no candidates: reply bodies make poor suggestion strings,
// and their topics already surface through the topic provider.
func (p *ForumReplyProvider) Suggest(ctx context.Context, prefix string, limit int) ([]domain.AutocompleteSuggestion, error) {
	return nil, nil
}
