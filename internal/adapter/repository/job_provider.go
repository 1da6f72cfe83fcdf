package repository

import (
	"context"
	"fmt"
	"time"

	"search-orchestrator/internal/domain"
)

const jobSearchSQL = `
	SELECT j.id::text,
	       j.title,
	       LEFT(j.description, 200) AS excerpt,
	       ts_headline('english', j.title, q.query, $3) AS title_marked,
	       ts_headline('english', j.description, q.query, $3) AS body_marked,
	       (ts_rank(to_tsvector('english', j.title), q.query) * 2.0 +
	        ts_rank(to_tsvector('english', j.description), q.query)) AS score,
	       j.created_at,
	       c.name,
	       j.location,
	       j.employment_type,
	       j.salary_min,
	       j.salary_max,
	       j.view_count,
	       COUNT(*) OVER () AS total_count
	FROM jobs j
	JOIN companies c ON c.id = j.company_id
	CROSS JOIN to_tsquery('english', $1) AS q(query)
	WHERE j.is_active = TRUE
	  AND (j.expires_at IS NULL OR j.expires_at > NOW())
	  AND (to_tsvector('english', j.title) || to_tsvector('english', j.description)) @@ q.query
	ORDER BY score DESC, j.id ASC
	LIMIT $2
`

const jobSuggestSQL = `
	SELECT j.title,
	       COUNT(*) AS cnt,
	       MAX(similarity(j.title, $1)) AS sim
	FROM jobs j
	WHERE j.is_active = TRUE
	  AND (j.expires_at IS NULL OR j.expires_at > NOW())
	  AND (j.title ILIKE '%' || $1 || '%' OR similarity(j.title, $1) > 0.25)
	GROUP BY j.title
	ORDER BY sim DESC, cnt DESC
	LIMIT $2
`

// JobProvider searches active, non-expired job postings with a 2x title
// boost.
type JobProvider struct {
	db DB
}

func NewJobProvider(db DB) *JobProvider {
	return &JobProvider{db: db}
}

func (p *JobProvider) ContentType() domain.ContentType {
	return domain.ContentTypeJobs
}

func (p *JobProvider) Search(ctx context.Context, query string, limit int) ([]domain.RawHit, int, error) {
	tsq := buildPrefixTsQuery(query)
	if tsq == "" {
		return nil, 0, nil
	}

	rows, err := p.db.Query(ctx, jobSearchSQL, tsq, limit, headlineOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search jobs: %w", err)
	}
	defer rows.Close()

	var hits []domain.RawHit
	var total int
	for rows.Next() {
		var h domain.RawHit
		var createdAt time.Time
		meta := &domain.JobMeta{}
		if err := rows.Scan(
			&h.ID, &h.Title, &h.Excerpt, &h.TitleMarked, &h.BodyMarked, &h.Score,
			&createdAt, &meta.Company, &meta.Location, &meta.EmploymentType,
			&meta.SalaryMin, &meta.SalaryMax, &meta.ViewCount, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan job hit: %w", err)
		}
		h.Type = domain.ContentTypeJobs
		h.Metadata = domain.ResultMetadata{CreatedAt: createdAt, Job: meta}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("job rows error: %w", err)
	}
	return hits, total, nil
}

func (p *JobProvider) Suggest(ctx context.Context, prefix string, limit int) ([]domain.AutocompleteSuggestion, error) {
	return suggestTitles(ctx, p.db, jobSuggestSQL, domain.ContentTypeJobs, prefix, limit)
}
