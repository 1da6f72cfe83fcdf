package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"search-orchestrator/internal/domain"
)

// AutocompleteUsecase serves typeahead suggestions drawn from every enabled
// content source.
type AutocompleteUsecase interface {
	Execute(ctx context.Context, prefix string, limit int) ([]domain.AutocompleteSuggestion, error)
}

type autocompleteUsecase struct {
	providers map[domain.ContentType]domain.SearchProvider
	logger    *slog.Logger
}

func NewAutocompleteUsecase(providers map[domain.ContentType]domain.SearchProvider, logger *slog.Logger) AutocompleteUsecase {
	return &autocompleteUsecase{providers: providers, logger: logger}
}

// Execute fans the prefix out to every provider, takes each source's top
// suggestions, and ranks the union by match quality. A prefix shorter than
// two characters returns an empty list without touching any store.
func (u *autocompleteUsecase) Execute(ctx context.Context, prefix string, limit int) ([]domain.AutocompleteSuggestion, error) {
	prefix = strings.TrimSpace(prefix)
	if len([]rune(prefix)) < domain.MinAutocompletePrefix {
		return []domain.AutocompleteSuggestion{}, nil
	}
	if limit <= 0 {
		limit = domain.DefaultSuggestionLimit
	}

	var mu sync.Mutex
	var combined []domain.AutocompleteSuggestion

	g, gctx := errgroup.WithContext(ctx)
	for t, provider := range u.providers {
		g.Go(func() error {
			suggestions, err := provider.Suggest(gctx, prefix, domain.MaxSuggestionsPerSource)
			if err != nil {
				u.logger.Warn("provider_suggest_failed",
					slog.String("content_type", string(t)),
					slog.String("prefix", prefix),
					slog.String("error", err.Error()))
				return nil // non-fatal
			}
			mu.Lock()
			combined = append(combined, suggestions...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(combined, func(i, j int) bool {
		a, b := combined[i], combined[j]
		if a.Similarity != b.Similarity {
			return a.Similarity > b.Similarity
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Suggestion < b.Suggestion
	})

	if len(combined) > limit {
		combined = combined[:limit]
	}
	if combined == nil {
		combined = []domain.AutocompleteSuggestion{}
	}
	return combined, nil
}
