package domain

import "context"

// SearchProvider is one relevance-scoring content provider. Each provider
// translates the raw query into its store-specific full-text or fuzzy query,
// filters to live records only, and returns marker-annotated raw hits.
//
// Search returns up to limit candidates ranked by the provider-local score,
// together with the total number of live matches in the store. Scores are
// comparable within a provider, not across providers.
type SearchProvider interface {
	ContentType() ContentType
	Search(ctx context.Context, query string, limit int) ([]RawHit, int, error)
	Suggest(ctx context.Context, prefix string, limit int) ([]AutocompleteSuggestion, error)
}
