package fusion

import (
	"sort"

	"search-orchestrator/internal/domain"
)

// Input carries each enabled provider's raw candidates and true match count
// into the fusion step.
type Input struct {
	HitsByType map[domain.ContentType][]domain.RawHit
	Totals     map[domain.ContentType]int
	Sort       domain.SortMode
	Page       int
	PageSize   int
}

// Output is the globally ordered, paginated window over the combined set.
type Output struct {
	Results    []domain.SearchResult
	TotalCount int
	TotalPages int
}

// Fuse normalizes every raw hit, sorts the combined list by the requested
// mode, and slices the requested page. Relevance compares raw provider-local
// scores across types. Ties break on result ID ascending so pagination stays
// stable across identical-score results.
func Fuse(in Input) Output {
	combined := make([]domain.SearchResult, 0, totalHits(in.HitsByType))
	for _, t := range domain.AllContentTypes() {
		for _, hit := range in.HitsByType[t] {
			combined = append(combined, domain.NormalizeHit(hit))
		}
	}

	switch in.Sort {
	case domain.SortByDate:
		sort.SliceStable(combined, func(i, j int) bool {
			a, b := combined[i], combined[j]
			if !a.Metadata.CreatedAt.Equal(b.Metadata.CreatedAt) {
				return a.Metadata.CreatedAt.After(b.Metadata.CreatedAt)
			}
			return a.ID < b.ID
		})
	case domain.SortByPopularity:
		sort.SliceStable(combined, func(i, j int) bool {
			a, b := combined[i], combined[j]
			if a.Metadata.Popularity() != b.Metadata.Popularity() {
				return a.Metadata.Popularity() > b.Metadata.Popularity()
			}
			return a.ID < b.ID
		})
	default:
		sort.SliceStable(combined, func(i, j int) bool {
			a, b := combined[i], combined[j]
			if a.RelevanceScore != b.RelevanceScore {
				return a.RelevanceScore > b.RelevanceScore
			}
			return a.ID < b.ID
		})
	}

	totalCount := 0
	for _, t := range domain.AllContentTypes() {
		totalCount += in.Totals[t]
	}

	start := (in.Page - 1) * in.PageSize
	end := start + in.PageSize
	if start > len(combined) {
		start = len(combined)
	}
	if end > len(combined) {
		end = len(combined)
	}

	results := combined[start:end]
	if results == nil {
		results = []domain.SearchResult{}
	}

	return Output{
		Results:    results,
		TotalCount: totalCount,
		TotalPages: totalPages(totalCount, in.PageSize),
	}
}

func totalHits(byType map[domain.ContentType][]domain.RawHit) int {
	n := 0
	for _, hits := range byType {
		n += len(hits)
	}
	return n
}

func totalPages(totalCount, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
