package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"search-orchestrator/internal/domain"
)

func TestExtractHighlights(t *testing.T) {
	tests := []struct {
		name   string
		marked string
		want   []string
	}{
		{
			name:   "single fragment",
			marked: "intro to <mark>Go</mark> generics",
			want:   []string{"intro to Go generics"},
		},
		{
			name:   "multiple fragments",
			marked: "learning <mark>Go</mark> fast … deploying <mark>Go</mark> services",
			want:   []string{"learning Go fast", "deploying Go services"},
		},
		{
			name:   "fragment without marker dropped",
			marked: "no match here … found <mark>it</mark> here",
			want:   []string{"found it here"},
		},
		{
			name:   "duplicates removed",
			marked: "<mark>Go</mark> … <mark>Go</mark>",
			want:   []string{"Go"},
		},
		{
			name:   "empty input",
			marked: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExtractHighlights(tt.marked))
		})
	}
}

func TestMergeHighlights(t *testing.T) {
	merged := domain.MergeHighlights(
		"<mark>GPT-4</mark> release notes",
		"about <mark>GPT-4</mark> … <mark>GPT-4</mark> release notes",
	)
	assert.Equal(t, []string{"GPT-4 release notes", "about GPT-4"}, merged)
}

func TestNormalizeHit(t *testing.T) {
	hit := domain.RawHit{
		ID:          "42",
		Type:        domain.ContentTypeForumReplies,
		Title:       "Re: scaling postgres",
		TitleMarked: "Re: scaling <mark>postgres</mark>",
		Score:       1.5,
		Metadata: domain.ResultMetadata{
			ForumReply: &domain.ForumReplyMeta{TopicID: "7", TopicTitle: "scaling postgres"},
		},
	}

	res := domain.NormalizeHit(hit)
	assert.Equal(t, "/forum/topics/7#reply-42", res.URL)
	assert.Equal(t, []string{"Re: scaling postgres"}, res.Highlights)
	assert.Equal(t, "", res.Excerpt)
	assert.Equal(t, 1.5, res.RelevanceScore)
}

func TestResultMetadata_Popularity(t *testing.T) {
	assert.Equal(t, 0, domain.ResultMetadata{}.Popularity())
	assert.Equal(t, 30, domain.ResultMetadata{
		Article: &domain.ArticleMeta{ViewCount: 20, UpvoteCount: 10},
	}.Popularity())
	assert.Equal(t, 12, domain.ResultMetadata{
		ForumTopic: &domain.ForumTopicMeta{ViewCount: 7, UpvoteCount: 5},
	}.Popularity())
}
