// internal/service/studio/studio_test.go

package studio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentfactory/internal/domain/content"
	"contentfactory/internal/domain/profile"
	"contentfactory/internal/domain/trend"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeMedia records prompts and returns canned URLs.
type fakeMedia struct {
	images     []string
	videos     []string
	memes      []string
	thumbnails []string
}

func (f *fakeMedia) GenerateImage(_ context.Context, prompt, style string) string {
	f.images = append(f.images, prompt)
	return fmt.Sprintf("image-%d-%s", len(f.images), style)
}

func (f *fakeMedia) GenerateVideo(_ context.Context, prompt string, duration int) string {
	f.videos = append(f.videos, prompt)
	return fmt.Sprintf("video-%d-%ds", len(f.videos), duration)
}

func (f *fakeMedia) GenerateMeme(_ context.Context, template, top, bottom string) string {
	f.memes = append(f.memes, template)
	return fmt.Sprintf("meme-%d", len(f.memes))
}

func (f *fakeMedia) GenerateThumbnail(_ context.Context, title, theme string) string {
	f.thumbnails = append(f.thumbnails, title)
	return fmt.Sprintf("thumb-%d", len(f.thumbnails))
}

type fakeWriter struct {
	title string
	desc  string
	err   error
}

func (f fakeWriter) VideoScript(_ context.Context, topic string, _ int) (string, string, error) {
	return f.title, f.desc, f.err
}

func TestMergeKeywords(t *testing.T) {
	got := mergeKeywords(4,
		[]string{"a", "b"},
		[]string{"b", "c", "a"},
		[]string{"d", "e"},
	)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestVisualFactorySkipsNonImageIdeas(t *testing.T) {
	media := &fakeMedia{}
	f := NewVisualFactory(media, rand.New(rand.NewSource(1)), testLogger())

	ideas := []content.Idea{
		{ContentType: content.TypeVideo, ViralScore: 70},
	}

	got := f.CreateVisualContent(context.Background(), ideas, trend.Summary{}, profile.Default())
	assert.Empty(t, got)
	assert.Empty(t, media.images)
}

func TestVisualFactoryCreatesImage(t *testing.T) {
	media := &fakeMedia{}
	f := NewVisualFactory(media, rand.New(rand.NewSource(1)), testLogger())

	trends := trend.Summary{ViralKeywords: []string{"AI"}}
	ideas := []content.Idea{{ContentType: content.TypeImage, ViralScore: 55}}

	got := f.CreateVisualContent(context.Background(), ideas, trends, profile.Default())

	require.Len(t, got, 1)
	assert.Equal(t, content.TypeImage, got[0].ContentType)
	assert.Equal(t, 55, got[0].ViralScore)
	assert.Contains(t, got[0].Caption, "AI")
	assert.Equal(t, []string{"AI"}, got[0].TrendAlignment)
	require.Len(t, media.images, 1)
}

func TestVisualFactoryMemeOnEvenIndexWithMemeKeywords(t *testing.T) {
	media := &fakeMedia{}
	f := NewVisualFactory(media, rand.New(rand.NewSource(1)), testLogger())

	trends := trend.Summary{
		ViralKeywords: []string{"AI"},
		MemeKeywords:  []string{"FunnyAI"},
	}
	ideas := []content.Idea{
		{ContentType: content.TypeImage, ViralScore: 50},
		{ContentType: content.TypeImage, ViralScore: 50},
	}

	got := f.CreateVisualContent(context.Background(), ideas, trends, profile.Default())

	require.Len(t, got, 2)
	// Index 0 becomes a meme with the viral bonus, index 1 a plain image.
	assert.Equal(t, 65, got[0].ViralScore)
	assert.Contains(t, got[0].Caption, "#Meme")
	assert.Equal(t, 50, got[1].ViralScore)
	require.Len(t, media.memes, 1)
	require.Len(t, media.images, 1)
}

func TestVisualFactoryDeterministicWithSeededRand(t *testing.T) {
	run := func() []content.Generated {
		media := &fakeMedia{}
		f := NewVisualFactory(media, rand.New(rand.NewSource(42)), testLogger())
		ideas := []content.Idea{
			{ContentType: content.TypeImage, ViralScore: 50},
			{ContentType: content.TypeImage, ViralScore: 60},
		}
		return f.CreateVisualContent(context.Background(), ideas, trend.Summary{ViralKeywords: []string{"tech"}}, profile.Default())
	}

	assert.Equal(t, run(), run())
}

func TestSeriesProducerBelowThreshold(t *testing.T) {
	media := &fakeMedia{}
	p := NewSeriesProducer(media, testLogger())

	got := p.ProduceEpisodes(context.Background(), trend.Discovery{
		Series: trend.SeriesPotential{Score: 60},
	}, profile.Default())

	assert.Nil(t, got)
	assert.Empty(t, media.videos)
}

func TestSeriesProducerCreatesTwoEpisodes(t *testing.T) {
	media := &fakeMedia{}
	p := NewSeriesProducer(media, testLogger())

	disc := trend.Discovery{
		Summary: trend.Summary{ViralKeywords: []string{"AI", "tech"}},
		Series: trend.SeriesPotential{
			Genres: []string{"AI Drama"},
			Score:  75,
		},
	}

	got := p.ProduceEpisodes(context.Background(), disc, profile.Default())

	require.Len(t, got, 2)
	for i, ep := range got {
		assert.Equal(t, content.TypeVideo, ep.ContentType)
		assert.Equal(t, 90, ep.ViralScore)
		require.NotNil(t, ep.Episode)
		assert.Equal(t, i+1, ep.Episode.Number)
		assert.Equal(t, "Neural Frontier", ep.Episode.SeriesTitle)
		assert.NotEmpty(t, ep.Episode.Thumbnail)
	}
	assert.NotEqual(t, got[0].Episode.Title, got[1].Episode.Title)
	assert.Len(t, media.videos, 2)
	assert.Len(t, media.thumbnails, 2)
}

func TestSeriesProducerUnknownGenreFallsBack(t *testing.T) {
	media := &fakeMedia{}
	p := NewSeriesProducer(media, testLogger())

	got := p.ProduceEpisodes(context.Background(), trend.Discovery{
		Series: trend.SeriesPotential{Genres: []string{"Soap Opera"}, Score: 80},
	}, profile.Default())

	require.Len(t, got, 2)
	assert.Equal(t, "The Innovation Protocol", got[0].Episode.SeriesTitle)
}

func TestVideoCreatorUsesWriter(t *testing.T) {
	media := &fakeMedia{}
	c := NewVideoCreator(media, fakeWriter{title: "AI Explained", desc: "A short tour."}, testLogger())

	ideas := []content.Idea{{ContentType: content.TypeVideo, ViralScore: 70}}
	trends := trend.Summary{ViralKeywords: []string{"AI"}}

	got := c.CreateVideoContent(context.Background(), ideas, trends, profile.Default())

	require.Len(t, got, 1)
	assert.Equal(t, "AI Explained", got[0].Caption)
	assert.Equal(t, "A short tour.", got[0].Description)
	assert.Equal(t, 70, got[0].ViralScore)
}

func TestVideoCreatorFallsBackToTemplate(t *testing.T) {
	media := &fakeMedia{}
	c := NewVideoCreator(media, fakeWriter{err: errors.New("quota exceeded")}, testLogger())

	ideas := []content.Idea{{ContentType: content.TypeVideo}}
	got := c.CreateVideoContent(context.Background(), ideas, trend.Summary{}, profile.Default())

	require.Len(t, got, 1)
	assert.Contains(t, got[0].Caption, "technology")
}

func TestVideoCreatorNilWriter(t *testing.T) {
	media := &fakeMedia{}
	c := NewVideoCreator(media, nil, testLogger())

	ideas := []content.Idea{
		{ContentType: content.TypeVideo},
		{ContentType: content.TypeImage},
	}
	prefs := profile.UserProfile{PreferredKeywords: []string{"AI"}}
	got := c.CreateVideoContent(context.Background(), ideas, trend.Summary{ViralKeywords: []string{"robotics"}}, prefs)

	require.Len(t, got, 1)
	assert.Contains(t, got[0].Caption, "robotics")
	assert.Equal(t, []string{"AI", "robotics", "video"}, got[0].Keywords)
}
