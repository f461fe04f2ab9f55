// internal/service/discovery/analyzer_test.go

package discovery

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"contentfactory/internal/domain/content"
	"contentfactory/internal/domain/trend"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAnalyzeEmptyBatchUsesDefaults(t *testing.T) {
	analyzer := NewAnalyzer(testLogger())

	summary := analyzer.Analyze(nil)

	assert.Equal(t, []string{"AI", "technology", "innovation", "digital", "future"}, summary.ViralKeywords)
	assert.Equal(t, "image", summary.BestContentType)
	assert.Equal(t, 60, summary.ViralScore)
	assert.Equal(t, 0, summary.TotalPostsAnalyzed)
	assert.Equal(t, map[string]int{"image": 50, "video": 40}, summary.EngagementByType)
	assert.Empty(t, summary.MemeKeywords)
}

func TestAnalyzeRealBatch(t *testing.T) {
	analyzer := NewAnalyzer(testLogger())

	posts := []content.Post{
		{Keywords: []string{"ai", "tech"}, PostType: "video", LikeCount: 100, CommentCount: 10},
		{Keywords: []string{"ai"}, PostType: "image", LikeCount: 5, CommentCount: 0},
		{Keywords: []string{"tech", "tech"}, PostType: "video", LikeCount: 20, CommentCount: 0},
	}

	summary := analyzer.Analyze(posts)

	assert.Equal(t, []string{"tech", "ai"}, summary.ViralKeywords)
	assert.Equal(t, "video", summary.BestContentType)
	assert.Equal(t, 3, summary.TotalPostsAnalyzed)
	// 2*3 posts + 10*2 keywords
	assert.Equal(t, 26, summary.ViralScore)
}

func TestMemePotential(t *testing.T) {
	analyzer := NewAnalyzer(testLogger())

	tests := []struct {
		name           string
		posts          []content.Post
		wantScore      int
		wantConfidence string
	}{
		{
			name:           "no meme captions",
			posts:          []content.Post{{Caption: "Quarterly results are in"}},
			wantScore:      0,
			wantConfidence: "low",
		},
		{
			name: "meme captions with engagement",
			posts: []content.Post{
				{Caption: "this is so funny lol", LikeCount: 200, CommentCount: 50},
				{Caption: "best meme of the week", LikeCount: 100, CommentCount: 0},
			},
			// 2*20 + (250+100)/10
			wantScore:      75,
			wantConfidence: "high",
		},
		{
			name: "emoji indicator counts",
			posts: []content.Post{
				{Caption: "😂 can't stop watching", LikeCount: 210, CommentCount: 0},
			},
			// 1*20 + 210/10
			wantScore:      41,
			wantConfidence: "medium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.MemePotential(tt.posts)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantConfidence, got.Confidence)
		})
	}
}

func TestSeriesPotential(t *testing.T) {
	analyzer := NewAnalyzer(testLogger())

	summary := analyzer.Analyze([]content.Post{
		{Keywords: []string{"ai", "tech", "future"}, PostType: "video", LikeCount: 10},
	})

	potential := analyzer.SeriesPotential([]string{"Technology"}, summary)

	assert.Contains(t, potential.Genres, "Tech Thriller")
	assert.Contains(t, potential.Genres, "AI Drama")
	// Three themes per viral keyword, top three keywords.
	assert.Len(t, potential.EpisodeThemes, 9)
	assert.Equal(t, 45, potential.Score)
}

func TestSeriesPotentialDefaults(t *testing.T) {
	analyzer := NewAnalyzer(testLogger())

	potential := analyzer.SeriesPotential(nil, trend.Summary{})

	assert.Equal(t, []string{"Tech Documentary", "Innovation Series"}, potential.Genres)
	assert.Empty(t, potential.EpisodeThemes)
	assert.Equal(t, 0, potential.Score)
}

func TestDiscoverComposesStages(t *testing.T) {
	analyzer := NewAnalyzer(testLogger())

	posts := []content.Post{
		{Keywords: []string{"ai", "FunnyMemes"}, Caption: "lol", PostType: "image", LikeCount: 50},
	}

	disc := analyzer.Discover(posts, []string{"travel"})

	assert.Equal(t, 1, disc.Summary.TotalPostsAnalyzed)
	assert.NotZero(t, disc.Meme.Score)
	assert.Contains(t, disc.Series.Genres, "Adventure Series")
}
