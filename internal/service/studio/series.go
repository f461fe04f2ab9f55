// internal/service/studio/series.go

package studio

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"contentfactory/internal/domain/content"
	"contentfactory/internal/domain/profile"
	"contentfactory/internal/domain/trend"
)

const (
	// seriesScoreThreshold gates episode production on series potential.
	seriesScoreThreshold = 60

	episodesPerCycle   = 2
	episodeDurationSec = 60
	maxSeriesKeywords  = 8
	episodeViralScore  = 90
)

// seriesTemplates map a genre to a series concept.
var seriesTemplates = map[string]struct {
	title string
	plot  string
}{
	"Tech Thriller": {
		title: "The Innovation Protocol",
		plot:  "A team of tech innovators uncovers secrets that could change the future of humanity",
	},
	"AI Drama": {
		title: "Neural Frontier",
		plot:  "Exploring the ethical boundaries of artificial intelligence and human connection",
	},
	"Adventure Series": {
		title: "Digital Explorers",
		plot:  "Journey through the world of technology and innovation discoveries",
	},
}

// SeriesProducer creates sixty-second episodic video content when the
// cycle's series potential clears the threshold.
type SeriesProducer struct {
	media MediaGenerator
	log   *logrus.Logger
}

// NewSeriesProducer creates a series producer.
func NewSeriesProducer(media MediaGenerator, log *logrus.Logger) *SeriesProducer {
	return &SeriesProducer{media: media, log: log}
}

// ProduceEpisodes generates two episodes for the best-matching series
// genre, or nothing when series potential is too low.
func (p *SeriesProducer) ProduceEpisodes(
	ctx context.Context,
	discovery trend.Discovery,
	prefs profile.UserProfile,
) []content.Generated {
	if discovery.Series.Score <= seriesScoreThreshold {
		return nil
	}

	genre := firstOr(discovery.Series.Genres, "Tech Thriller")
	template, ok := seriesTemplates[genre]
	if !ok {
		template = seriesTemplates["Tech Thriller"]
	}

	episodes := make([]content.Generated, 0, episodesPerCycle)
	for n := 1; n <= episodesPerCycle; n++ {
		episodes = append(episodes, p.produceEpisode(ctx, n, template.title, discovery.Summary, prefs))
	}

	p.log.WithFields(logrus.Fields{
		"series":   template.title,
		"genre":    genre,
		"episodes": len(episodes),
	}).Info("produced series episodes")

	return episodes
}

func (p *SeriesProducer) produceEpisode(
	ctx context.Context,
	number int,
	seriesTitle string,
	trends trend.Summary,
	prefs profile.UserProfile,
) content.Generated {
	title, script := episodeContent(number, seriesTitle, trends.ViralKeywords, prefs.PreferredKeywords)

	prompt := fmt.Sprintf(
		"Create a %d-second educational video episode titled %q for the series %q. Script: %s. "+
			"Vertical format, professional quality, clear narration and engaging graphics.",
		episodeDurationSec, title, seriesTitle, script,
	)
	source := p.media.GenerateVideo(ctx, prompt, episodeDurationSec)

	return content.Generated{
		ContentType: content.TypeVideo,
		Caption:     fmt.Sprintf("🎬 %s | %s #Episode%d", title, seriesTitle, number),
		Description: script,
		Keywords: mergeKeywords(maxSeriesKeywords,
			prefs.PreferredKeywords,
			trends.ViralKeywords,
			[]string{"series", fmt.Sprintf("episode%d", number), "video"},
		),
		MediaSource:    source,
		ViralScore:     episodeViralScore,
		TrendAlignment: trends.ViralKeywords,
		Episode: &content.Episode{
			Number:      number,
			Title:       title,
			SeriesTitle: seriesTitle,
			Thumbnail:   p.media.GenerateThumbnail(ctx, title, seriesTitle),
		},
	}
}

// episodeContent picks an episode template round-robin over the episode
// number.
func episodeContent(number int, seriesTitle string, viralKeywords, userKeywords []string) (string, string) {
	viral := firstOr(viralKeywords, "Digital")
	user := firstOr(userKeywords, "Innovation")

	templates := []struct {
		title  string
		script string
	}{
		{
			title: fmt.Sprintf("Episode %d: The %s Revolution", number, viral),
			script: fmt.Sprintf(
				"Welcome to %s. This episode explores the %s revolution transforming our world: "+
					"from core concepts to real-world applications, how these technologies reshape "+
					"industries and create new possibilities.",
				seriesTitle, viral,
			),
		},
		{
			title: fmt.Sprintf("Episode %d: Future of %s", number, user),
			script: fmt.Sprintf(
				"This episode examines the future of %s and how AI is accelerating progress: "+
					"the current landscape, the latest breakthroughs, and the trends that will "+
					"define what comes next.",
				user,
			),
		},
	}

	t := templates[(number-1)%len(templates)]
	return t.title, t.script
}
