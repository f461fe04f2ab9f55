// internal/service/factory/factory.go

// Package factory runs the autonomous content production cycle: fetch
// preferences, discover trends, draft and rank ideas, produce media, and
// post the results back to the platform.
package factory

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"contentfactory/internal/adapter/circlo"
	"contentfactory/internal/domain/content"
	"contentfactory/internal/domain/profile"
	"contentfactory/internal/domain/trend"
	"contentfactory/internal/metrics"
	"contentfactory/internal/service/discovery"
	"contentfactory/internal/service/personalize"
	"contentfactory/internal/service/planner"
	"contentfactory/internal/service/studio"
)

// maxDraftKeywords bounds the keyword list handed to the platform client.
const maxDraftKeywords = 8

// PlatformClient is the platform surface the factory needs. CreatePost
// never fails; it reports the terminal outcome in the result.
type PlatformClient interface {
	GetUserPreferences(ctx context.Context, page, limit int) ([]profile.UserProfile, error)
	GetTrendingPosts(ctx context.Context, keywords []string, limit int) ([]content.Post, error)
	CreatePost(ctx context.Context, draft circlo.PostDraft) content.PostResult
}

// Config controls the production loop.
type Config struct {
	CycleInterval time.Duration
	PostLimit     int
}

// Status is a read-only snapshot of the factory's counters for the HTTP
// surface.
type Status struct {
	CyclesRun        int       `json:"cyclesRun"`
	ContentCreated   int       `json:"contentCreated"`
	EpisodesProduced int       `json:"episodesProduced"`
	LastCycleAt      time.Time `json:"lastCycleAt"`
	LastReport       *Report   `json:"lastReport,omitempty"`
}

// Factory orchestrates one production cycle per tick.
type Factory struct {
	platform PlatformClient
	analyzer *discovery.Analyzer
	engine   *personalize.Engine
	visual   *studio.VisualFactory
	series   *studio.SeriesProducer
	video    *studio.VideoCreator
	events   *EventPublisher
	config   Config
	log      *logrus.Logger

	mu          sync.RWMutex
	cycles      int
	created     int
	episodes    int
	lastCycleAt time.Time
	lastTrends  trend.Summary
	lastReport  *Report
}

// New creates a factory.
func New(
	platform PlatformClient,
	analyzer *discovery.Analyzer,
	engine *personalize.Engine,
	visual *studio.VisualFactory,
	series *studio.SeriesProducer,
	video *studio.VideoCreator,
	events *EventPublisher,
	config Config,
	log *logrus.Logger,
) *Factory {
	if config.CycleInterval <= 0 {
		config.CycleInterval = 5 * time.Minute
	}
	if config.PostLimit <= 0 {
		config.PostLimit = 15
	}
	return &Factory{
		platform: platform,
		analyzer: analyzer,
		engine:   engine,
		visual:   visual,
		series:   series,
		video:    video,
		events:   events,
		config:   config,
		log:      log,
	}
}

// Run executes one cycle immediately, then one per tick until the context
// is cancelled.
func (f *Factory) Run(ctx context.Context) {
	ticker := time.NewTicker(f.config.CycleInterval)
	defer ticker.Stop()

	f.RunCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			f.log.Info("factory loop stopped")
			return
		case <-ticker.C:
			f.RunCycle(ctx)
		}
	}
}

// RunCycle executes a single production cycle. A panic anywhere inside the
// cycle is recovered here so the loop survives to the next tick.
func (f *Factory) RunCycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			f.log.WithField("panic", r).Error("cycle recovered from panic")
		}
	}()

	start := time.Now()
	cycle := f.nextCycle()
	f.log.WithField("cycle", cycle).Info("starting content cycle")

	prefs := f.fetchProfile(ctx)
	insights := personalize.AnalyzeProfile(prefs, f.log)

	searchKeywords := prefs.PreferredKeywords
	if len(searchKeywords) == 0 {
		searchKeywords = discovery.DefaultSearchKeywords
	}

	posts, err := f.platform.GetTrendingPosts(ctx, searchKeywords, f.config.PostLimit)
	if err != nil {
		f.log.WithError(err).Warn("trending posts unavailable, proceeding with defaults")
	}

	disc := f.analyzer.Discover(posts, prefs.PreferredKeywords)
	f.events.TrendDetected(disc.Summary)

	ideas := f.engine.GenerateIdeas(insights, disc.Summary)
	candidates := planner.Prioritize(planner.Convert(ideas, disc.Summary), disc.Summary)

	var produced []content.Generated
	produced = append(produced, f.visual.CreateVisualContent(ctx, candidates, disc.Summary, prefs)...)
	produced = append(produced, f.video.CreateVideoContent(ctx, candidates, disc.Summary, prefs)...)

	episodes := f.series.ProduceEpisodes(ctx, disc, prefs)
	produced = append(produced, episodes...)

	results := f.post(ctx, produced, insights.PrimaryNiche)

	report := BuildReport(cycle, produced, results)
	f.events.CycleCompleted(report)

	f.record(start, disc.Summary, report, len(produced), len(episodes))

	f.log.WithFields(logrus.Fields{
		"cycle":    cycle,
		"content":  len(produced),
		"episodes": len(episodes),
		"posted":   report.SuccessfulPosts,
		"elapsed":  time.Since(start).Round(time.Millisecond),
	}).Info("content cycle completed")
}

// fetchProfile returns the first platform profile, or the built-in demo
// profile when none is available.
func (f *Factory) fetchProfile(ctx context.Context) profile.UserProfile {
	profiles, err := f.platform.GetUserPreferences(ctx, 1, 50)
	if err != nil {
		f.log.WithError(err).Warn("user preferences unavailable, using default profile")
		return profile.Default()
	}
	if len(profiles) == 0 {
		f.log.Info("no user preferences found, using default profile")
		return profile.Default()
	}
	return profiles[0]
}

func (f *Factory) post(ctx context.Context, items []content.Generated, primaryNiche string) []content.PostResult {
	results := make([]content.PostResult, 0, len(items))

	for _, item := range items {
		keywords := item.Keywords
		if len(keywords) > maxDraftKeywords {
			keywords = keywords[:maxDraftKeywords]
		}

		result := f.platform.CreatePost(ctx, circlo.PostDraft{
			MediaType:   item.ContentType,
			MediaSource: item.MediaSource,
			Caption:     item.Caption,
			Keywords:    keywords,
			Niche:       primaryNiche,
		})
		results = append(results, result)

		metrics.ContentCreatedTotal.WithLabelValues(string(item.ContentType)).Inc()
		if result.Success {
			metrics.PostsTotal.WithLabelValues("success").Inc()
		} else {
			metrics.PostsTotal.WithLabelValues("failure").Inc()
		}
	}

	return results
}

func (f *Factory) nextCycle() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cycles++
	return f.cycles
}

func (f *Factory) record(start time.Time, trends trend.Summary, report Report, created, episodes int) {
	metrics.CyclesTotal.Inc()
	metrics.EpisodesTotal.Add(float64(episodes))

	f.mu.Lock()
	defer f.mu.Unlock()
	f.created += created
	f.episodes += episodes
	f.lastCycleAt = start
	f.lastTrends = trends
	f.lastReport = &report
}

// Status returns a snapshot of the counters and last report.
func (f *Factory) Status() Status {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return Status{
		CyclesRun:        f.cycles,
		ContentCreated:   f.created,
		EpisodesProduced: f.episodes,
		LastCycleAt:      f.lastCycleAt,
		LastReport:       f.lastReport,
	}
}

// LatestTrends returns the last cycle's trend summary.
func (f *Factory) LatestTrends() trend.Summary {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.lastTrends
}
