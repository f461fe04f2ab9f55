// internal/adapter/gemini/captions.go

package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const textModel = "gemini-2.5-flash-lite"

// TextClient writes short-form titles and descriptions with the genai SDK.
// Unlike MediaClient it returns errors; callers fall back to templates.
type TextClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewTextClient creates a text client.
func NewTextClient(ctx context.Context, apiKey string) (*TextClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := client.GenerativeModel(textModel)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(1024)

	return &TextClient{client: client, model: model}, nil
}

// Close releases the underlying client.
func (c *TextClient) Close() {
	c.client.Close()
}

// VideoScript generates a title and description for a short video about
// topic. The model is asked for a strict two-line format; a malformed
// response is an error so callers can use their templates.
func (c *TextClient) VideoScript(ctx context.Context, topic string, durationSeconds int) (string, string, error) {
	prompt := fmt.Sprintf(
		`Write a title and description for a %d-second social media video about %s.
The output MUST be exactly two lines, no markdown, no extra text:
TITLE: <catchy title under 80 characters, may include one emoji>
DESCRIPTION: <one-sentence description under 200 characters>`,
		durationSeconds, topic,
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", "", fmt.Errorf("generate script: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", "", err
	}

	title, description, err := parseScript(text)
	if err != nil {
		return "", "", err
	}
	return title, description, nil
}

// responseText extracts the first text part. Content is nil on
// safety-blocked candidates.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	first := resp.Candidates[0].Content
	if first == nil || len(first.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	return fmt.Sprintf("%v", first.Parts[0]), nil
}

func parseScript(text string) (string, string, error) {
	var title, description string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "TITLE:"):
			title = strings.TrimSpace(strings.TrimPrefix(line, "TITLE:"))
		case strings.HasPrefix(line, "DESCRIPTION:"):
			description = strings.TrimSpace(strings.TrimPrefix(line, "DESCRIPTION:"))
		}
	}
	if title == "" || description == "" {
		return "", "", fmt.Errorf("malformed script response")
	}
	return title, description, nil
}
