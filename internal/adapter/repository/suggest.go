package repository

import (
	"context"
	"fmt"

	"search-orchestrator/internal/domain"
)

// suggestTitles runs one source's suggestion query. Every provider's suggest
// SQL returns the same three columns: suggestion text, occurrence count, and
// trigram similarity against the prefix.
func suggestTitles(ctx context.Context, db DB, sql string, contentType domain.ContentType, prefix string, limit int) ([]domain.AutocompleteSuggestion, error) {
	rows, err := db.Query(ctx, sql, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest %s: %w", contentType, err)
	}
	defer rows.Close()

	var suggestions []domain.AutocompleteSuggestion
	for rows.Next() {
		s := domain.AutocompleteSuggestion{Type: contentType}
		if err := rows.Scan(&s.Suggestion, &s.Count, &s.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan %s suggestion: %w", contentType, err)
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s suggestion rows error: %w", contentType, err)
	}
	return suggestions, nil
}
