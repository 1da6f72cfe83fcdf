package domain

import "time"

// RawHit is a provider-shaped match before normalization. Title and body
// highlight text still carries the store's inline markers.
type RawHit struct {
	ID          string
	Type        ContentType
	Title       string
	Excerpt     string
	TitleMarked string
	BodyMarked  string
	Score       float64
	Metadata    ResultMetadata
}

// SearchResult is the canonical shape every provider hit is normalized into.
type SearchResult struct {
	ID             string         `json:"id"`
	Type           ContentType    `json:"type"`
	Title          string         `json:"title"`
	Excerpt        string         `json:"excerpt"`
	Highlights     []string       `json:"highlights"`
	URL            string         `json:"url"`
	Metadata       ResultMetadata `json:"metadata"`
	RelevanceScore float64        `json:"relevance_score"`
}

// ResultMetadata is a tagged variant keyed by the result's content type:
// exactly one of the per-type fields is populated.
type ResultMetadata struct {
	CreatedAt  time.Time       `json:"created_at"`
	Article    *ArticleMeta    `json:"article,omitempty"`
	ForumTopic *ForumTopicMeta `json:"forum_topic,omitempty"`
	ForumReply *ForumReplyMeta `json:"forum_reply,omitempty"`
	Job        *JobMeta        `json:"job,omitempty"`
	User       *UserMeta       `json:"user,omitempty"`
	Company    *CompanyMeta    `json:"company,omitempty"`
}

type ArticleMeta struct {
	Author      string `json:"author"`
	ViewCount   int    `json:"view_count"`
	UpvoteCount int    `json:"upvote_count"`
}

type ForumTopicMeta struct {
	Author      string `json:"author"`
	Category    string `json:"category"`
	ReplyCount  int    `json:"reply_count"`
	ViewCount   int    `json:"view_count"`
	UpvoteCount int    `json:"upvote_count"`
}

type ForumReplyMeta struct {
	Author      string `json:"author"`
	TopicID     string `json:"topic_id"`
	TopicTitle  string `json:"topic_title"`
	UpvoteCount int    `json:"upvote_count"`
}

type JobMeta struct {
	Company        string `json:"company"`
	Location       string `json:"location"`
	EmploymentType string `json:"employment_type"`
	SalaryMin      *int   `json:"salary_min,omitempty"`
	SalaryMax      *int   `json:"salary_max,omitempty"`
	ViewCount      int    `json:"view_count"`
}

type UserMeta struct {
	Username      string `json:"username"`
	Headline      string `json:"headline"`
	Location      string `json:"location"`
	FollowerCount int    `json:"follower_count"`
}

type CompanyMeta struct {
	Industry      string `json:"industry"`
	Location      string `json:"location"`
	EmployeeCount int    `json:"employee_count"`
	OpenJobCount  int    `json:"open_job_count"`
}

// Popularity is the view+upvote signal used by the popularity sort.
// Types without one of the counters contribute what they have; absent
// metadata counts as zero.
func (m ResultMetadata) Popularity() int {
	switch {
	case m.Article != nil:
		return m.Article.ViewCount + m.Article.UpvoteCount
	case m.ForumTopic != nil:
		return m.ForumTopic.ViewCount + m.ForumTopic.UpvoteCount
	case m.ForumReply != nil:
		return m.ForumReply.UpvoteCount
	case m.Job != nil:
		return m.Job.ViewCount
	case m.User != nil:
		return m.User.FollowerCount
	case m.Company != nil:
		return m.Company.OpenJobCount
	}
	return 0
}
