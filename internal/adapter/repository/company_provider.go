package repository

import (
	"context"
	"fmt"
	"time"

	"search-orchestrator/internal/domain"
)

const companySearchSQL = `
	SELECT c.id::text,
	       c.name,
	       LEFT(c.description, 200) AS excerpt,
	       ts_headline('english', c.description, q.query, $4) AS body_marked,
	       (ts_rank(to_tsvector('english', c.name || ' ' || c.description), q.query) * 2.0 +
	        similarity(c.name, $2)) AS score,
	       c.created_at,
	       COALESCE(c.industry, ''),
	       COALESCE(c.location, ''),
	       c.employee_count,
	       (SELECT COUNT(*) FROM jobs j
	         WHERE j.company_id = c.id
	           AND j.is_active = TRUE
	           AND (j.expires_at IS NULL OR j.expires_at > NOW())) AS open_job_count,
	       COUNT(*) OVER () AS total_count
	FROM companies c
	CROSS JOIN to_tsquery('english', $1) AS q(query)
	WHERE c.is_active = TRUE
	  AND (c.name ILIKE '%' || $2 || '%'
	       OR similarity(c.name, $2) > 0.3
	       OR to_tsvector('english', c.name || ' ' || c.description) @@ q.query)
	ORDER BY score DESC, c.id ASC
	LIMIT $3
`

const companySuggestSQL = `
	SELECT c.name,
	       COUNT(*) AS cnt,
	       MAX(similarity(c.name, $1)) AS sim
	FROM companies c
	WHERE c.is_active = TRUE
	  AND (c.name ILIKE '%' || $1 || '%' OR similarity(c.name, $1) > 0.3)
	GROUP BY c.name
	ORDER BY sim DESC
	LIMIT $2
`

// CompanyProvider searches active companies, blending a 2x boosted full-text
// rank with trigram name similarity.
type CompanyProvider struct {
	db DB
}

func NewCompanyProvider(db DB) *CompanyProvider {
	return &CompanyProvider{db: db}
}

func (p *CompanyProvider) ContentType() domain.ContentType {
	return domain.ContentTypeCompanies
}

func (p *CompanyProvider) Search(ctx context.Context, query string, limit int) ([]domain.RawHit, int, error) {
	tsq := buildPrefixTsQuery(query)
	if tsq == "" {
		return nil, 0, nil
	}

	rows, err := p.db.Query(ctx, companySearchSQL, tsq, query, limit, headlineOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search companies: %w", err)
	}
	defer rows.Close()

	var hits []domain.RawHit
	var total int
	for rows.Next() {
		var h domain.RawHit
		var createdAt time.Time
		meta := &domain.CompanyMeta{}
		if err := rows.Scan(
			&h.ID, &h.Title, &h.Excerpt, &h.BodyMarked, &h.Score,
			&createdAt, &meta.Industry, &meta.Location, &meta.EmployeeCount,
			&meta.OpenJobCount, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan company hit: %w", err)
		}
		h.TitleMarked = markMatch(h.Title, query)
		h.Type = domain.ContentTypeCompanies
		h.Metadata = domain.ResultMetadata{CreatedAt: createdAt, Company: meta}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("company rows error: %w", err)
	}
	return hits, total, nil
}

func (p *CompanyProvider) Suggest(ctx context.Context, prefix string, limit int) ([]domain.AutocompleteSuggestion, error) {
	return suggestTitles(ctx, p.db, companySuggestSQL, domain.ContentTypeCompanies, prefix, limit)
}
