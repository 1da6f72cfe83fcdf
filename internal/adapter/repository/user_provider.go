package repository

import (
	"context"
	"fmt"
	"time"

	"search-orchestrator/internal/domain"
)

// User queries are frequently partial or misspelled names, so the full-text
// rank is blended with trigram similarity and substring containment against
// both username and display name.
const userSearchSQL = `
	SELECT u.id::text,
	       COALESCE(NULLIF(u.display_name, ''), u.username) AS title,
	       COALESCE(u.headline, '') AS excerpt,
	       ts_headline('english', concat_ws(' ', u.headline, u.bio), q.query, $4) AS body_marked,
	       (GREATEST(similarity(u.username, $2), similarity(u.display_name, $2)) +
	        CASE WHEN u.username ILIKE '%' || $2 || '%'
	               OR u.display_name ILIKE '%' || $2 || '%' THEN 0.5 ELSE 0 END +
	        ts_rank(to_tsvector('english', concat_ws(' ', u.headline, u.bio)), q.query)) AS score,
	       u.created_at,
	       u.username,
	       COALESCE(u.headline, ''),
	       COALESCE(u.location, ''),
	       u.follower_count,
	       COUNT(*) OVER () AS total_count
	FROM users u
	CROSS JOIN to_tsquery('english', $1) AS q(query)
	WHERE u.is_active = TRUE
	  AND (u.username ILIKE '%' || $2 || '%'
	       OR u.display_name ILIKE '%' || $2 || '%'
	       OR similarity(u.username, $2) > 0.3
	       OR similarity(u.display_name, $2) > 0.3
	       OR to_tsvector('english', concat_ws(' ', u.headline, u.bio)) @@ q.query)
	ORDER BY score DESC, u.id ASC
	LIMIT $3
`

const userSuggestSQL = `
	SELECT u.username,
	       COUNT(*) AS cnt,
	       MAX(similarity(u.username, $1)) AS sim
	FROM users u
	WHERE u.is_active = TRUE
	  AND (u.username ILIKE '%' || $1 || '%' OR similarity(u.username, $1) > 0.3)
	GROUP BY u.username
	ORDER BY sim DESC
	LIMIT $2
`

// UserProvider searches active user profiles.
type UserProvider struct {
	db DB
}

func NewUserProvider(db DB) *UserProvider {
	return &UserProvider{db: db}
}

func (p *UserProvider) ContentType() domain.ContentType {
	return domain.ContentTypeUsers
}

func (p *UserProvider) Search(ctx context.Context, query string, limit int) ([]domain.RawHit, int, error) {
	tsq := buildPrefixTsQuery(query)
	if tsq == "" {
		return nil, 0, nil
	}

	rows, err := p.db.Query(ctx, userSearchSQL, tsq, query, limit, headlineOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	var hits []domain.RawHit
	var total int
	for rows.Next() {
		var h domain.RawHit
		var createdAt time.Time
		meta := &domain.UserMeta{}
		if err := rows.Scan(
			&h.ID, &h.Title, &h.Excerpt, &h.BodyMarked, &h.Score,
			&createdAt, &meta.Username, &meta.Headline, &meta.Location,
			&meta.FollowerCount, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan user hit: %w", err)
		}
		// Name matches come from trigram/substring similarity, which
		// ts_headline cannot annotate; mark them here instead.
		h.TitleMarked = markMatch(h.Title, query)
		h.Type = domain.ContentTypeUsers
		h.Metadata = domain.ResultMetadata{CreatedAt: createdAt, User: meta}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("user rows error: %w", err)
	}
	return hits, total, nil
}

func (p *UserProvider) Suggest(ctx context.Context, prefix string, limit int) ([]domain.AutocompleteSuggestion, error) {
	return suggestTitles(ctx, p.db, userSuggestSQL, domain.ContentTypeUsers, prefix, limit)
}
