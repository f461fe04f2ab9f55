// internal/service/personalize/engine.go

package personalize

import (
	"sort"

	"github.com/sirupsen/logrus"

	"contentfactory/internal/domain/trend"
)

const maxScoredIdeas = 5

// ScoredIdea pairs an idea draft with its personalization score. Scored
// ideas are discarded after ranking.
type ScoredIdea struct {
	Draft IdeaDraft
	Score int
}

// Engine generates personalized content ideas by routing a user's primary
// niche to a registered strategy.
type Engine struct {
	strategies map[string]Strategy
	log        *logrus.Logger
}

// NewEngine creates an idea engine with no strategies registered.
func NewEngine(log *logrus.Logger) *Engine {
	return &Engine{
		strategies: make(map[string]Strategy),
		log:        log,
	}
}

// Register adds a niche strategy to the engine.
func (e *Engine) Register(s Strategy) {
	e.strategies[s.Niche()] = s
}

// GenerateIdeas drafts ideas with the strategy matching the user's primary
// niche (the General strategy when no dedicated one exists), scores each
// against the profile, and returns up to five, best first. The sort is
// stable so equally scored ideas keep draft order.
func (e *Engine) GenerateIdeas(insights Insights, trends trend.Summary) []ScoredIdea {
	strategy, ok := e.strategies[insights.PrimaryNiche]
	if !ok {
		strategy = e.strategies["General"]
	}
	if strategy == nil {
		return nil
	}

	drafts := strategy.Draft(insights, trends)

	scored := make([]ScoredIdea, 0, len(drafts))
	for _, d := range drafts {
		scored = append(scored, ScoredIdea{
			Draft: d,
			Score: Score(d.Keywords, insights.Preferences.Topics, insights.PrimaryNiche, d.Factors),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxScoredIdeas {
		scored = scored[:maxScoredIdeas]
	}

	e.log.WithFields(logrus.Fields{
		"niche": insights.PrimaryNiche,
		"ideas": len(scored),
	}).Info("generated personalized content ideas")

	return scored
}
