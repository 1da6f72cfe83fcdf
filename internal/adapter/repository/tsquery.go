package repository

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"search-orchestrator/internal/domain"
)

// headlineOpts configures ts_headline to emit the marker syntax the
// normalizer parses: 5-40 word fragments, at most two per field.
const headlineOpts = `StartSel=<mark>, StopSel=</mark>, MinWords=5, MaxWords=40, MaxFragments=2, FragmentDelimiter=" ` + "…" + ` "`

// buildPrefixTsQuery turns free query text into a tsquery expression:
// every token becomes a prefix-matchable term, terms AND-combined.
// Returns "" when no usable token survives sanitization.
func buildPrefixTsQuery(text string) string {
	var terms []string
	for _, tok := range strings.Fields(text) {
		tok = sanitizeToken(tok)
		if tok == "" {
			continue
		}
		terms = append(terms, tok+":*")
	}
	return strings.Join(terms, " & ")
}

// sanitizeToken strips tsquery operator characters so raw user input can
// never change the query structure.
func sanitizeToken(tok string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return -1
	}, tok)
}

// markMatch wraps the first case-insensitive occurrence of query inside text
// with highlight markers. Used for name fields matched by trigram/substring
// similarity, where ts_headline does not apply. Returns "" when text does
// not contain the query. The scan compares rune windows with EqualFold so
// case folding that changes byte length (Kelvin sign, dotted I) can never
// slice text at the wrong offset.
func markMatch(text, query string) string {
	query = strings.TrimSpace(query)
	if text == "" || query == "" {
		return ""
	}
	runes := []rune(text)
	width := utf8.RuneCountInString(query)
	for i := 0; i+width <= len(runes); i++ {
		if !strings.EqualFold(string(runes[i:i+width]), query) {
			continue
		}
		return string(runes[:i]) + domain.HighlightStartSel +
			string(runes[i:i+width]) + domain.HighlightStopSel +
			string(runes[i+width:])
	}
	return ""
}
