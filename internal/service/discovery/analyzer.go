// internal/service/discovery/analyzer.go

package discovery

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"contentfactory/internal/domain/content"
	"contentfactory/internal/domain/trend"
)

// DefaultSearchKeywords seed the trending-posts fetch when a profile has
// no preferred keywords.
var DefaultSearchKeywords = []string{"tech", "innovation", "AI"}

// defaultViralKeywords is the documented offline fallback used when no
// posts could be fetched.
var defaultViralKeywords = []string{"AI", "technology", "innovation", "digital", "future"}

const defaultViralScore = 60

// memeCaptionIndicators flag captions that read like memes.
var memeCaptionIndicators = []string{"meme", "funny", "lol", "😂", "🤣"}

// genreMap maps keywords to series genres, in scan order.
var genreMap = []struct {
	key   string
	genre string
}{
	{"tech", "Tech Thriller"},
	{"ai", "AI Drama"},
	{"future", "Sci-Fi"},
	{"music", "Music Documentary"},
	{"travel", "Adventure Series"},
	{"art", "Creative Journey"},
	{"innovation", "Innovation Showcase"},
}

// Analyzer turns a batch of trending posts into the cycle's trend data.
type Analyzer struct {
	log *logrus.Logger
}

// NewAnalyzer creates a trend analyzer.
func NewAnalyzer(log *logrus.Logger) *Analyzer {
	return &Analyzer{log: log}
}

// Analyze derives a trend summary from a post batch. An empty batch
// yields the documented default summary so an offline cycle still runs.
func (a *Analyzer) Analyze(posts []content.Post) trend.Summary {
	buckets := NewEngagementBuckets()

	if len(posts) == 0 {
		a.log.Info("no trending posts found, using default trends")
		return trend.Summary{
			ViralKeywords:    append([]string(nil), defaultViralKeywords...),
			EngagementByType: buckets.Totals(),
			BestContentType:  string(content.TypeImage),
			ViralScore:       defaultViralScore,
		}
	}

	stats := AggregateKeywords(posts)
	for _, p := range posts {
		buckets.Observe(p)
	}

	summary := trend.Summary{
		ViralKeywords:      stats.Top,
		EngagementByType:   buckets.Totals(),
		BestContentType:    buckets.Best(),
		TotalPostsAnalyzed: len(posts),
		ViralScore:         ViralScore(len(posts), len(stats.Top)),
		MemeKeywords:       stats.Meme,
	}

	a.log.WithFields(logrus.Fields{
		"posts":    summary.TotalPostsAnalyzed,
		"keywords": strings.Join(summary.ViralKeywords, ","),
		"best":     summary.BestContentType,
		"score":    summary.ViralScore,
	}).Info("analyzed trending posts")

	return summary
}

// MemePotential estimates how meme-friendly the batch is from caption
// indicators and the engagement those posts pulled.
func (a *Analyzer) MemePotential(posts []content.Post) trend.MemePotential {
	memeCount := 0
	memeEngagement := 0

	for _, p := range posts {
		caption := strings.ToLower(p.Caption)
		for _, indicator := range memeCaptionIndicators {
			if strings.Contains(caption, indicator) {
				memeCount++
				memeEngagement += p.Engagement()
				break
			}
		}
	}

	score := memeCount*20 + memeEngagement/10
	if score > 100 {
		score = 100
	}

	return trend.MemePotential{
		Score:      score,
		Confidence: confidenceTier(score),
	}
}

// SeriesPotential estimates whether the combined user and viral keywords
// support an episodic series.
func (a *Analyzer) SeriesPotential(userKeywords []string, summary trend.Summary) trend.SeriesPotential {
	var genres []string
	for _, kw := range append(append([]string(nil), userKeywords...), summary.ViralKeywords...) {
		lower := strings.ToLower(kw)
		for _, g := range genreMap {
			if strings.Contains(lower, g.key) && !containsString(genres, g.genre) {
				genres = append(genres, g.genre)
			}
		}
	}
	if len(genres) == 0 {
		genres = []string{"Tech Documentary", "Innovation Series"}
	}

	var themes []string
	for i, kw := range summary.ViralKeywords {
		if i >= 3 {
			break
		}
		themes = append(themes,
			fmt.Sprintf("The Future of %s", kw),
			fmt.Sprintf("%s Revolution", kw),
			fmt.Sprintf("Behind the %s", kw),
		)
	}

	score := 15 * len(summary.ViralKeywords)
	if score > 100 {
		score = 100
	}

	return trend.SeriesPotential{
		Genres:        genres,
		EpisodeThemes: themes,
		Score:         score,
	}
}

// Discover runs the full discovery stage over one post batch.
func (a *Analyzer) Discover(posts []content.Post, userKeywords []string) trend.Discovery {
	summary := a.Analyze(posts)
	return trend.Discovery{
		Summary: summary,
		Meme:    a.MemePotential(posts),
		Series:  a.SeriesPotential(userKeywords, summary),
	}
}

func confidenceTier(score int) string {
	switch {
	case score > 70:
		return "high"
	case score > 40:
		return "medium"
	default:
		return "low"
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
