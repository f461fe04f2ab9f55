// internal/service/studio/studio.go

// Package studio turns prioritized content ideas into finished media by
// driving the generative-media adapter.
package studio

import "context"

// MediaGenerator produces media assets from prompts. Implementations never
// fail: on any upstream error they return a stable placeholder URL.
type MediaGenerator interface {
	GenerateImage(ctx context.Context, prompt, style string) string
	GenerateVideo(ctx context.Context, prompt string, durationSeconds int) string
	GenerateMeme(ctx context.Context, template, topText, bottomText string) string
	GenerateThumbnail(ctx context.Context, episodeTitle, seriesTheme string) string
}

// ScriptWriter generates short-form titles and descriptions for video
// content. Unlike MediaGenerator it may fail; callers fall back to
// deterministic templates.
type ScriptWriter interface {
	VideoScript(ctx context.Context, topic string, durationSeconds int) (title, description string, err error)
}

// mergeKeywords concatenates keyword groups, deduplicates preserving first
// occurrence, and caps the result at limit.
func mergeKeywords(limit int, groups ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, g := range groups {
		for _, kw := range g {
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}

func firstOr(ss []string, fallback string) string {
	if len(ss) > 0 {
		return ss[0]
	}
	return fallback
}
