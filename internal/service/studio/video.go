// internal/service/studio/video.go

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
	standaloneVideoDurationSec = 60
	maxVideoKeywords           = 6
)

// VideoCreator produces standalone video content for video-typed ideas,
// with an AI-written title and description when the script writer is
// available.
type VideoCreator struct {
	media  MediaGenerator
	writer ScriptWriter
	log    *logrus.Logger
}

// NewVideoCreator creates a video creator. writer may be nil, in which
// case template titles are always used.
func NewVideoCreator(media MediaGenerator, writer ScriptWriter, log *logrus.Logger) *VideoCreator {
	return &VideoCreator{media: media, writer: writer, log: log}
}

// CreateVideoContent produces one video for each video-typed idea.
func (c *VideoCreator) CreateVideoContent(
	ctx context.Context,
	ideas []content.Idea,
	trends trend.Summary,
	prefs profile.UserProfile,
) []content.Generated {
	var generated []content.Generated

	for _, idea := range ideas {
		if idea.ContentType != content.TypeVideo {
			continue
		}
		generated = append(generated, c.createVideo(ctx, idea, trends, prefs))
	}

	return generated
}

func (c *VideoCreator) createVideo(
	ctx context.Context,
	idea content.Idea,
	trends trend.Summary,
	prefs profile.UserProfile,
) content.Generated {
	topic := firstOr(trends.ViralKeywords, "technology")

	title, description := c.script(ctx, topic)

	prompt := fmt.Sprintf(
		"Create a %d-second engaging social media video about %s. %s "+
			"Vertical format for mobile viewing, dynamic transitions, professional quality.",
		standaloneVideoDurationSec, topic, description,
	)
	source := c.media.GenerateVideo(ctx, prompt, standaloneVideoDurationSec)

	c.log.WithFields(logrus.Fields{
		"topic":   topic,
		"caption": truncate(title, 50),
	}).Info("created video content")

	return content.Generated{
		ContentType: content.TypeVideo,
		Caption:     title,
		Description: description,
		Keywords: mergeKeywords(maxVideoKeywords,
			prefs.PreferredKeywords,
			trends.ViralKeywords,
			[]string{"video"},
		),
		MediaSource:    source,
		ViralScore:     idea.ViralScore,
		TrendAlignment: trends.ViralKeywords,
	}
}

// script asks the writer for a title and description, falling back to
// deterministic templates when generation fails.
func (c *VideoCreator) script(ctx context.Context, topic string) (string, string) {
	if c.writer != nil {
		title, description, err := c.writer.VideoScript(ctx, topic, standaloneVideoDurationSec)
		if err == nil && title != "" {
			return title, description
		}
		if err != nil {
			c.log.WithError(err).Warn("script generation failed, using template")
		}
	}

	title := fmt.Sprintf("🎥 The Future of %s: What You Need to Know", topic)
	description := fmt.Sprintf("A quick dive into %s and why it matters right now.", topic)
	return title, description
}
