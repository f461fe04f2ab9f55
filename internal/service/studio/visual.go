// internal/service/studio/visual.go

package studio

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"contentfactory/internal/domain/content"
	"contentfactory/internal/domain/profile"
	"contentfactory/internal/domain/trend"
)

const maxVisualKeywords = 6

const memeViralBonus = 15

var memeTemplates = []string{"Reaction Meme", "Comparison Meme"}

var imageStyles = []string{"realistic", "artistic", "minimalist"}

// VisualFactory produces image and meme content for image-typed ideas.
// Style selection is the only random choice in the pipeline, so the
// randomness source is injected and seedable.
type VisualFactory struct {
	media MediaGenerator
	rng   *rand.Rand
	log   *logrus.Logger
}

// NewVisualFactory creates a visual factory.
func NewVisualFactory(media MediaGenerator, rng *rand.Rand, log *logrus.Logger) *VisualFactory {
	return &VisualFactory{media: media, rng: rng, log: log}
}

// CreateVisualContent generates one piece of visual content per image
// idea. When the cycle surfaced meme keywords, every other image idea
// becomes a meme instead of a regular image.
func (f *VisualFactory) CreateVisualContent(
	ctx context.Context,
	ideas []content.Idea,
	trends trend.Summary,
	prefs profile.UserProfile,
) []content.Generated {
	var generated []content.Generated

	for i, idea := range ideas {
		if idea.ContentType != content.TypeImage {
			continue
		}

		var item content.Generated
		if len(trends.MemeKeywords) > 0 && i%2 == 0 {
			item = f.createMeme(ctx, idea, trends, prefs, i)
		} else {
			item = f.createImage(ctx, idea, trends, prefs, i)
		}
		generated = append(generated, item)

		f.log.WithFields(logrus.Fields{
			"type":    item.ContentType,
			"caption": truncate(item.Caption, 50),
		}).Info("created visual content")
	}

	return generated
}

func (f *VisualFactory) createMeme(
	ctx context.Context,
	idea content.Idea,
	trends trend.Summary,
	prefs profile.UserProfile,
	index int,
) content.Generated {
	template := memeTemplates[f.rng.Intn(len(memeTemplates))]
	topText, bottomText := memeText(trends.ViralKeywords, index)

	source := f.media.GenerateMeme(ctx, template, topText, bottomText)

	return content.Generated{
		ContentType: content.TypeImage,
		Caption:     fmt.Sprintf("😂 %s... %s #Meme #Viral", topText, bottomText),
		Description: fmt.Sprintf("AI-generated %s meme about %s", template, firstOr(trends.ViralKeywords, "trending topic")),
		Keywords: mergeKeywords(maxVisualKeywords,
			prefs.PreferredKeywords,
			trends.ViralKeywords,
			[]string{"meme", "funny", "viral"},
		),
		MediaSource:    source,
		ViralScore:     idea.ViralScore + memeViralBonus,
		TrendAlignment: trends.ViralKeywords,
	}
}

func (f *VisualFactory) createImage(
	ctx context.Context,
	idea content.Idea,
	trends trend.Summary,
	prefs profile.UserProfile,
	index int,
) content.Generated {
	prompt := imagePrompt(trends.ViralKeywords, prefs.VisualAffinities, index)
	style := imageStyles[f.rng.Intn(len(imageStyles))]

	source := f.media.GenerateImage(ctx, prompt, style)

	return content.Generated{
		ContentType: content.TypeImage,
		Caption:     imageCaption(trends.ViralKeywords, index),
		Description: fmt.Sprintf("AI-generated image about %s", firstOr(trends.ViralKeywords, "innovation")),
		Keywords: mergeKeywords(maxVisualKeywords,
			prefs.PreferredKeywords,
			trends.ViralKeywords,
		),
		MediaSource:    source,
		ViralScore:     idea.ViralScore,
		TrendAlignment: trends.ViralKeywords,
	}
}

// memeText picks a top/bottom text pair round-robin over the idea index.
func memeText(viralKeywords []string, index int) (string, string) {
	pairs := [][2]string{
		{"When you finally understand the trend", "But then it changes again"},
		{"My brain processing", firstOr(viralKeywords, "new information")},
		{"What I think vs Reality", "When trying new technology"},
		{"The moment you realize", fmt.Sprintf("%s is amazing", firstOr(viralKeywords, "innovation"))},
	}
	pair := pairs[index%len(pairs)]
	return pair[0], pair[1]
}

func imagePrompt(viralKeywords, visualAffinities []string, index int) string {
	topic := firstOr(viralKeywords, "technology innovation")
	style := firstOr(visualAffinities, "modern")

	prompts := []string{
		fmt.Sprintf("Create a stunning %s visual representation of %s and its impact on society. Show advanced technology, digital transformation, and innovation in a professional social media style.", style, topic),
		fmt.Sprintf("Generate an engaging %s image about breakthroughs in %s. Include futuristic elements, data visualization, and cutting-edge technology concepts.", style, topic),
		fmt.Sprintf("Design a %s social media optimized image showcasing %s innovations. Feature modern design, compelling visuals, and brand-friendly content.", style, topic),
	}
	return prompts[index%len(prompts)]
}

func imageCaption(viralKeywords []string, index int) string {
	topic := firstOr(viralKeywords, "Technology")

	captions := []string{
		fmt.Sprintf("🚀 The Future of %s is Here! AI-generated visual showcasing groundbreaking innovations.", topic),
		fmt.Sprintf("💡 %s Revolution Unveiled! Stunning AI-created image of next-generation technology.", topic),
		fmt.Sprintf("🎯 Breaking Boundaries in %s! AI-powered visualization of cutting-edge advancements.", topic),
	}
	return captions[index%len(captions)]
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
