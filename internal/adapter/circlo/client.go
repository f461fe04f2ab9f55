// internal/adapter/circlo/client.go

// Package circlo is the client for the Circlo social platform API.
package circlo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"contentfactory/internal/domain/content"
	"contentfactory/internal/domain/niche"
	"contentfactory/internal/domain/profile"
)

// Sentinel errors for the read endpoints. Callers degrade to defaults on
// either of them.
var (
	ErrAuth        = errors.New("circlo: authentication failed")
	ErrUnavailable = errors.New("circlo: platform unavailable")
)

const (
	maxCaptionLen   = 220
	maxPostKeywords = 5

	fallbackMediaSource = "https://picsum.photos/800/600"
	fallbackCaption     = "Amazing AI-generated content!"
)

// nicheErrorMarker identifies the 500 body the platform returns when the
// requested niche has no profiles behind it.
const nicheErrorMarker = "No profiles found with niche"

var fallbackKeywords = []string{"AI", "Content", "Trending"}

// PostDraft is the publishable form of a generated content item.
type PostDraft struct {
	MediaType   content.Type
	MediaSource string
	Caption     string
	Keywords    []string
	Niche       string
}

// Client talks to the Circlo REST API with bearer-token auth.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	token      string
	log        *logrus.Logger
}

// NewClient creates a Circlo client. timeout bounds every request.
func NewClient(baseURL, token string, timeout time.Duration, log *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		log:        log,
	}
}

// GetUserPreferences fetches a page of user preference profiles. Missing
// fields default (engagement ratio 0.5).
func (c *Client) GetUserPreferences(ctx context.Context, page, limit int) ([]profile.UserProfile, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var body struct {
		Preferences []struct {
			ID                string   `json:"id"`
			UserID            string   `json:"userId"`
			PreferredKeywords []string `json:"preferredKeywords"`
			PreferredNiches   []string `json:"preferredNiches"`
			PreferredGenders  []string `json:"preferredGenders"`
			VisualAffinities  []string `json:"visualRepresentationAffinities"`
			ActiveHours       []string `json:"activeHours"`
			EngagementRatio   *float64 `json:"engagementRatio"`
		} `json:"preferences"`
	}

	if err := c.getJSON(ctx, "/user-preferences", q, &body); err != nil {
		return nil, err
	}

	profiles := make([]profile.UserProfile, 0, len(body.Preferences))
	for _, p := range body.Preferences {
		ratio := 0.5
		if p.EngagementRatio != nil {
			ratio = *p.EngagementRatio
		}
		profiles = append(profiles, profile.UserProfile{
			ID:                p.ID,
			UserID:            p.UserID,
			PreferredKeywords: p.PreferredKeywords,
			PreferredNiches:   p.PreferredNiches,
			PreferredGenders:  p.PreferredGenders,
			VisualAffinities:  p.VisualAffinities,
			ActiveHours:       p.ActiveHours,
			EngagementRatio:   ratio,
		})
	}

	c.log.WithField("count", len(profiles)).Debug("fetched user preferences")
	return profiles, nil
}

// GetTrendingPosts fetches posts matching the first three keywords.
func (c *Client) GetTrendingPosts(ctx context.Context, keywords []string, limit int) ([]content.Post, error) {
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}

	q := url.Values{}
	q.Set("keywords", strings.Join(keywords, ","))
	q.Set("limit", strconv.Itoa(limit))

	var body struct {
		Posts []content.Post `json:"posts"`
	}
	if err := c.getJSON(ctx, "/posts/by-keywords", q, &body); err != nil {
		return nil, err
	}

	c.log.WithFields(logrus.Fields{
		"keywords": strings.Join(keywords, ","),
		"count":    len(body.Posts),
	}).Debug("fetched trending posts")
	return body.Posts, nil
}

// failureKind classifies a failed create-post attempt. Only server-side
// failures walk the fallback chain; everything else is terminal.
type failureKind int

const (
	failNone failureKind = iota
	// The niche-validation 500, worth one retry with the General niche.
	failNicheRejected
	// Any other 500, worth one attempt with the minimal payload.
	failServer
	// 4xx, unexpected statuses, and transport errors. Not retried.
	failTerminal
)

// CreatePost publishes a draft. Server-side failures walk a fallback
// chain: a niche-validation 500 retries once with the General niche, any
// other 500 falls back to a minimal payload. Client errors and transport
// failures are terminal. It never returns an error; every terminal
// failure is a PostResult with Success=false.
func (c *Client) CreatePost(ctx context.Context, draft PostDraft) content.PostResult {
	resolved := niche.Resolve(draft.Niche, draft.Keywords)

	result, kind, err := c.tryCreate(ctx, c.payload(draft, resolved))
	if err == nil {
		return result
	}
	c.log.WithError(err).WithField("niche", resolved).Warn("post attempt failed")

	switch kind {
	case failNicheRejected:
		if resolved != niche.General {
			result, _, err = c.tryCreate(ctx, c.payload(draft, niche.General))
			if err == nil {
				return result
			}
			c.log.WithError(err).Warn("post with General niche failed")
		}
	case failServer:
	default:
		return failedResult(draft.MediaType)
	}

	minimal := c.payload(PostDraft{
		MediaType:   draft.MediaType,
		MediaSource: fallbackMediaSource,
		Caption:     fallbackCaption,
		Keywords:    fallbackKeywords,
	}, niche.General)
	result, _, err = c.tryCreate(ctx, minimal)
	if err == nil {
		return result
	}
	c.log.WithError(err).Error("minimal post payload failed")

	return failedResult(draft.MediaType)
}

func failedResult(mediaType content.Type) content.PostResult {
	return content.PostResult{
		Success:     false,
		ContentType: mediaType,
		PostedAt:    time.Now().UTC(),
	}
}

type postPayload struct {
	Profile     string   `json:"profile"`
	Niche       string   `json:"niche"`
	MediaType   string   `json:"media_type"`
	MediaSource string   `json:"media_source"`
	Caption     string   `json:"caption"`
	Keywords    []string `json:"keywords"`
}

func (c *Client) payload(draft PostDraft, n niche.Niche) postPayload {
	source := draft.MediaSource
	if source == "" {
		source = fallbackMediaSource
	}

	keywords := draft.Keywords
	if len(keywords) > maxPostKeywords {
		keywords = keywords[:maxPostKeywords]
	}

	return postPayload{
		Profile:     "general",
		Niche:       string(n),
		MediaType:   string(draft.MediaType),
		MediaSource: source,
		Caption:     cleanCaption(draft.Caption),
		Keywords:    keywords,
	}
}

// tryCreate performs one create-post call and classifies the failure.
func (c *Client) tryCreate(ctx context.Context, payload postPayload) (content.PostResult, failureKind, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return content.PostResult{}, failTerminal, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/user-preferences/recommend/create-post", bytes.NewReader(raw))
	if err != nil {
		return content.PostResult{}, failTerminal, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return content.PostResult{}, failTerminal, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		var created struct {
			Post struct {
				ID string `json:"id"`
			} `json:"post"`
		}
		id := "unknown"
		if err := json.Unmarshal(body, &created); err == nil && created.Post.ID != "" {
			id = created.Post.ID
		}
		return content.PostResult{
			Success:     true,
			PostID:      id,
			ContentType: content.Type(payload.MediaType),
			PostedAt:    time.Now().UTC(),
		}, failNone, nil

	case resp.StatusCode == http.StatusInternalServerError && strings.Contains(string(body), nicheErrorMarker):
		return content.PostResult{}, failNicheRejected, fmt.Errorf("niche %q not available", payload.Niche)

	case resp.StatusCode == http.StatusInternalServerError:
		return content.PostResult{}, failServer, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)

	default:
		return content.PostResult{}, failTerminal, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrAuth
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
}

// cleanCaption swaps double quotes for apostrophes and enforces the
// platform's caption length limit.
func cleanCaption(caption string) string {
	cleaned := strings.ReplaceAll(caption, `"`, "'")
	runes := []rune(cleaned)
	if len(runes) > maxCaptionLen {
		return string(runes[:maxCaptionLen])
	}
	return cleaned
}
