// internal/metrics/metrics.go

// Package metrics registers the factory's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CyclesTotal counts completed production cycles, including ones that
	// were recovered from a panic.
	CyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "factory_cycles_total",
		Help: "Total number of content production cycles run",
	})

	// ContentCreatedTotal counts generated content items by media type.
	ContentCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "factory_content_created_total",
		Help: "Total content items generated, by media type",
	}, []string{"type"})

	// PostsTotal counts posting attempts by terminal outcome.
	PostsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "factory_posts_total",
		Help: "Total posting attempts, by outcome",
	}, []string{"outcome"})

	// EpisodesTotal counts produced series episodes.
	EpisodesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "factory_series_episodes_total",
		Help: "Total series episodes produced",
	})
)
