package domain

// AutocompleteSuggestion is one deduplicated suggestion string tagged with
// its source type. Count is the number of underlying records sharing the
// exact suggestion text within that source. Similarity orders candidates
// across sources and is not part of the response shape.
type AutocompleteSuggestion struct {
	Suggestion string      `json:"suggestion"`
	Type       ContentType `json:"type"`
	Count      int         `json:"count"`
	Similarity float64     `json:"-"`
}

const (
	// MinAutocompletePrefix is the shortest prefix that triggers suggestion
	// lookups; shorter input yields an empty list without touching any store.
	MinAutocompletePrefix = 2

	// MaxSuggestionsPerSource caps each source's contribution before the
	// cross-source union is ranked.
	MaxSuggestionsPerSource = 3

	DefaultSuggestionLimit = 10
)
