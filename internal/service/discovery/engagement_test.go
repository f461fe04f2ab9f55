// internal/service/discovery/engagement_test.go

package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"contentfactory/internal/domain/content"
)

func TestEngagementBucketsSeed(t *testing.T) {
	buckets := NewEngagementBuckets()

	assert.Equal(t, map[string]int{"image": 50, "video": 40}, buckets.Totals())
	// With only the seed, image wins.
	assert.Equal(t, "image", buckets.Best())
}

func TestClassifyEngagement(t *testing.T) {
	tests := []struct {
		name       string
		posts      []content.Post
		wantTotals map[string]int
		wantBest   string
	}{
		{
			name: "video overtakes the image baseline",
			posts: []content.Post{
				{PostType: "video", LikeCount: 30, CommentCount: 5},
			},
			wantTotals: map[string]int{"image": 50, "video": 75},
			wantBest:   "video",
		},
		{
			name: "unknown post types get their own bucket",
			posts: []content.Post{
				{PostType: "reel", LikeCount: 100, CommentCount: 0},
			},
			wantTotals: map[string]int{"image": 50, "video": 40, "reel": 100},
			wantBest:   "reel",
		},
		{
			name: "tie goes to the bucket seen first",
			posts: []content.Post{
				{PostType: "video", LikeCount: 10, CommentCount: 0},
			},
			wantTotals: map[string]int{"image": 50, "video": 50},
			wantBest:   "image",
		},
		{
			name:       "empty batch keeps the baseline",
			posts:      nil,
			wantTotals: map[string]int{"image": 50, "video": 40},
			wantBest:   "image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, best := ClassifyEngagement(tt.posts)
			assert.Equal(t, tt.wantTotals, totals)
			assert.Equal(t, tt.wantBest, best)
		})
	}
}

func TestTotalsReturnsACopy(t *testing.T) {
	buckets := NewEngagementBuckets()

	totals := buckets.Totals()
	totals["image"] = 0
	totals["video"] = 999

	assert.Equal(t, map[string]int{"image": 50, "video": 40}, buckets.Totals())
	assert.Equal(t, "image", buckets.Best())
}

func TestObserveAccumulates(t *testing.T) {
	buckets := NewEngagementBuckets()
	buckets.Observe(content.Post{PostType: "image", LikeCount: 5, CommentCount: 5})
	buckets.Observe(content.Post{PostType: "image", LikeCount: 10, CommentCount: 0})

	assert.Equal(t, 70, buckets.Totals()["image"])
}
