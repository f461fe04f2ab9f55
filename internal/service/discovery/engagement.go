// internal/service/discovery/engagement.go

package discovery

import "contentfactory/internal/domain/content"

// Baseline engagement seeded into every aggregation so the image and
// video buckets compare meaningfully even with no observed posts.
const (
	baselineImageEngagement = 50
	baselineVideoEngagement = 40
)

// EngagementBuckets accumulates engagement per post type while preserving
// key insertion order, which breaks argmax ties deterministically.
type EngagementBuckets struct {
	totals map[string]int
	order  []string
}

// NewEngagementBuckets returns buckets seeded with the image/video
// baseline. The seed is applied on every aggregation path.
func NewEngagementBuckets() *EngagementBuckets {
	b := &EngagementBuckets{totals: make(map[string]int)}
	b.add(string(content.TypeImage), baselineImageEngagement)
	b.add(string(content.TypeVideo), baselineVideoEngagement)
	return b
}

func (b *EngagementBuckets) add(postType string, engagement int) {
	if _, ok := b.totals[postType]; !ok {
		b.order = append(b.order, postType)
	}
	b.totals[postType] += engagement
}

// Observe accumulates one post's engagement into its type bucket.
func (b *EngagementBuckets) Observe(p content.Post) {
	b.add(p.PostType, p.Engagement())
}

// Totals returns a copy of the accumulated engagement per post type, so
// callers cannot mutate bucket state through it.
func (b *EngagementBuckets) Totals() map[string]int {
	totals := make(map[string]int, len(b.totals))
	for t, v := range b.totals {
		totals[t] = v
	}
	return totals
}

// Best returns the post type with the highest accumulated engagement.
// Ties go to the bucket seen first.
func (b *EngagementBuckets) Best() string {
	best := string(content.TypeImage)
	max := -1
	for _, t := range b.order {
		if b.totals[t] > max {
			best = t
			max = b.totals[t]
		}
	}
	return best
}

// ClassifyEngagement aggregates engagement per post type over a batch and
// picks the best-performing type.
func ClassifyEngagement(posts []content.Post) (map[string]int, string) {
	buckets := NewEngagementBuckets()
	for _, p := range posts {
		buckets.Observe(p)
	}
	return buckets.Totals(), buckets.Best()
}
