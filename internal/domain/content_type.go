package domain

import "fmt"

// ContentType identifies one of the six searchable content stores.
type ContentType string

const (
	ContentTypeArticles     ContentType = "articles"
	ContentTypeForumTopics  ContentType = "forum_topics"
	ContentTypeForumReplies ContentType = "forum_replies"
	ContentTypeJobs         ContentType = "jobs"
	ContentTypeUsers        ContentType = "users"
	ContentTypeCompanies    ContentType = "companies"
)

// AllContentTypes returns every searchable content type in canonical order.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentTypeArticles,
		ContentTypeForumTopics,
		ContentTypeForumReplies,
		ContentTypeJobs,
		ContentTypeUsers,
		ContentTypeCompanies,
	}
}

// IsValid reports whether t is one of the six known content types.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeArticles, ContentTypeForumTopics, ContentTypeForumReplies,
		ContentTypeJobs, ContentTypeUsers, ContentTypeCompanies:
		return true
	}
	return false
}

// ParseContentTypes converts raw type names into ContentTypes.
// An empty input selects all six types. Unknown names are rejected.
func ParseContentTypes(raw []string) ([]ContentType, error) {
	if len(raw) == 0 {
		return AllContentTypes(), nil
	}

	seen := make(map[ContentType]bool, len(raw))
	types := make([]ContentType, 0, len(raw))
	for _, r := range raw {
		t := ContentType(r)
		if !t.IsValid() {
			return nil, &ValidationError{
				Field:   "content_types",
				Message: fmt.Sprintf("unknown content type %q", r),
			}
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	return types, nil
}
