package domain

// NormalizeHit converts a provider-shaped hit into the canonical result
// shape: markers parsed into plain highlight fragments, a stable URL built
// from the content type, and an always-present (possibly empty) excerpt.
func NormalizeHit(h RawHit) SearchResult {
	highlights := MergeHighlights(h.TitleMarked, h.BodyMarked)
	if highlights == nil {
		highlights = []string{}
	}

	return SearchResult{
		ID:             h.ID,
		Type:           h.Type,
		Title:          h.Title,
		Excerpt:        h.Excerpt,
		Highlights:     highlights,
		URL:            resultURL(h),
		Metadata:       h.Metadata,
		RelevanceScore: h.Score,
	}
}

func resultURL(h RawHit) string {
	switch h.Type {
	case ContentTypeArticles:
		return "/articles/" + h.ID
	case ContentTypeForumTopics:
		return "/forum/topics/" + h.ID
	case ContentTypeForumReplies:
		// Replies are anchored inside their topic page.
		if h.Metadata.ForumReply != nil && h.Metadata.ForumReply.TopicID != "" {
			return "/forum/topics/" + h.Metadata.ForumReply.TopicID + "#reply-" + h.ID
		}
		return "/forum/replies/" + h.ID
	case ContentTypeJobs:
		return "/jobs/" + h.ID
	case ContentTypeUsers:
		if h.Metadata.User != nil && h.Metadata.User.Username != "" {
			return "/users/" + h.Metadata.User.Username
		}
		return "/users/" + h.ID
	case ContentTypeCompanies:
		return "/companies/" + h.ID
	}
	return "/" + h.ID
}
