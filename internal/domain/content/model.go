// internal/domain/content/model.go

package content

import "time"

// Type identifies the media format of a piece of content.
type Type string

const (
	TypeImage Type = "image"
	TypeVideo Type = "video"
)

// Priority ranks how urgently an idea should be produced.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Weight returns the numeric weight used when ranking ideas. Unknown
// priorities weigh the same as low.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// Post is a single platform post as returned by the trending feed.
type Post struct {
	Keywords     []string `json:"keywords"`
	LikeCount    int      `json:"likeCount"`
	CommentCount int      `json:"commentCount"`
	PostType     string   `json:"postType"`
	Caption      string   `json:"caption"`
}

// Engagement is the combined like and comment count of a post.
func (p Post) Engagement() int {
	return p.LikeCount + p.CommentCount
}

// Idea is a candidate piece of content produced by the planning stage.
// Ideas are immutable once scored.
type Idea struct {
	ContentType Type     `json:"contentType"`
	Theme       string   `json:"theme"`
	Description string   `json:"description"`
	Style       string   `json:"style"`
	Priority    Priority `json:"priority"`
	ViralScore  int      `json:"viralScore"`
}

// Generated is a fully produced piece of content, ready to post.
type Generated struct {
	ContentType    Type     `json:"contentType"`
	Caption        string   `json:"caption"`
	Description    string   `json:"description"`
	Keywords       []string `json:"keywords"`
	MediaSource    string   `json:"mediaSource"`
	ViralScore     int      `json:"viralScore"`
	TrendAlignment []string `json:"trendAlignment"`
	Episode        *Episode `json:"episode,omitempty"`
}

// Episode carries series metadata for episodic video content.
type Episode struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	SeriesTitle string `json:"seriesTitle"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// PostResult reports the outcome of one posting attempt.
type PostResult struct {
	Success     bool      `json:"success"`
	PostID      string    `json:"postId"`
	ContentType Type      `json:"contentType"`
	PostedAt    time.Time `json:"postedAt"`
}
