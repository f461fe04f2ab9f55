// internal/service/factory/analytics.go

package factory

import (
	"time"

	"github.com/google/uuid"

	"contentfactory/internal/domain/content"
)

// Report is the analytics summary of one production cycle.
type Report struct {
	CampaignID        string    `json:"campaignId"`
	Cycle             int       `json:"cycle"`
	GeneratedAt       time.Time `json:"generatedAt"`
	ContentCreated    int       `json:"contentCreated"`
	SuccessfulPosts   int       `json:"successfulPosts"`
	FailedPosts       int       `json:"failedPosts"`
	SuccessRate       float64   `json:"successRate"`
	AverageViralScore float64   `json:"averageViralScore"`
	TrendKeywordsUsed int       `json:"trendKeywordsUsed"`
}

// BuildReport assembles the cycle report from the generated content and
// its posting outcomes.
func BuildReport(cycle int, created []content.Generated, results []content.PostResult) Report {
	successful := 0
	for _, r := range results {
		if r.Success {
			successful++
		}
	}

	totalViral := 0
	distinct := make(map[string]struct{})
	for _, c := range created {
		totalViral += c.ViralScore
		for _, kw := range c.TrendAlignment {
			distinct[kw] = struct{}{}
		}
	}

	report := Report{
		CampaignID:        "ACF_" + uuid.New().String(),
		Cycle:             cycle,
		GeneratedAt:       time.Now().UTC(),
		ContentCreated:    len(created),
		SuccessfulPosts:   successful,
		FailedPosts:       len(results) - successful,
		TrendKeywordsUsed: len(distinct),
	}
	if len(results) > 0 {
		report.SuccessRate = float64(successful) / float64(len(results))
	}
	if len(created) > 0 {
		report.AverageViralScore = float64(totalViral) / float64(len(created))
	}
	return report
}
