package domain

import "strings"

// Highlight marker syntax emitted by the providers' headline extraction.
// Fragments arrive as "...<mark>term</mark>... … ...<mark>other</mark>..."
// with the delimiter separating independent fragments.
const (
	HighlightStartSel          = "<mark>"
	HighlightStopSel           = "</mark>"
	HighlightFragmentDelimiter = " … "
)

// ExtractHighlights parses marked-up headline text into plain fragments.
// Markers are stripped, fragments without any match are dropped, and
// duplicates are removed while preserving first-seen order.
func ExtractHighlights(marked string) []string {
	if marked == "" {
		return nil
	}

	var fragments []string
	seen := make(map[string]bool)
	for _, frag := range strings.Split(marked, HighlightFragmentDelimiter) {
		if !strings.Contains(frag, HighlightStartSel) {
			continue
		}
		plain := strings.ReplaceAll(frag, HighlightStartSel, "")
		plain = strings.ReplaceAll(plain, HighlightStopSel, "")
		plain = strings.TrimSpace(plain)
		if plain == "" || seen[plain] {
			continue
		}
		seen[plain] = true
		fragments = append(fragments, plain)
	}
	return fragments
}

// MergeHighlights combines title and body fragments into one deduplicated
// list, title fragments first.
func MergeHighlights(titleMarked, bodyMarked string) []string {
	title := ExtractHighlights(titleMarked)
	body := ExtractHighlights(bodyMarked)
	if len(body) == 0 {
		return title
	}

	seen := make(map[string]bool, len(title))
	merged := make([]string, 0, len(title)+len(body))
	for _, f := range title {
		if !seen[f] {
			seen[f] = true
			merged = append(merged, f)
		}
	}
	for _, f := range body {
		if !seen[f] {
			seen[f] = true
			merged = append(merged, f)
		}
	}
	return merged
}
