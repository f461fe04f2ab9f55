// internal/service/planner/planner.go

// Package planner converts scored ideas into production candidates and
// ranks them against the cycle's trend data.
package planner

import (
	"sort"

	"contentfactory/internal/domain/content"
	"contentfactory/internal/domain/trend"
	"contentfactory/internal/service/personalize"
)

const maxPrioritized = 3

// highPriorityThreshold is the personalization score above which an idea
// is produced with high priority.
const highPriorityThreshold = 80

// Convert turns scored personalization ideas into content ideas carrying
// a production priority and a blended viral score.
func Convert(ideas []personalize.ScoredIdea, trends trend.Summary) []content.Idea {
	converted := make([]content.Idea, 0, len(ideas))

	for _, idea := range ideas {
		priority := content.PriorityMedium
		if idea.Score > highPriorityThreshold {
			priority = content.PriorityHigh
		}

		viral := trends.ViralScore + idea.Score/2
		if viral > 100 {
			viral = 100
		}

		converted = append(converted, content.Idea{
			ContentType: idea.Draft.Type,
			Theme:       idea.Draft.Title,
			Description: idea.Draft.Description,
			Style:       "personalized",
			Priority:    priority,
			ViralScore:  viral,
		})
	}

	return converted
}

// Prioritize ranks ideas by a composite of priority weight, viral score,
// and alignment with the best-performing content type, and returns up to
// three. The sort is stable: ideas with equal keys keep their relative
// order. Fewer than three ideas are returned as-is.
func Prioritize(ideas []content.Idea, trends trend.Summary) []content.Idea {
	ranked := append([]content.Idea(nil), ideas...)

	sort.SliceStable(ranked, func(i, j int) bool {
		return sortKey(ranked[i], trends) > sortKey(ranked[j], trends)
	})

	if len(ranked) > maxPrioritized {
		ranked = ranked[:maxPrioritized]
	}
	return ranked
}

func sortKey(idea content.Idea, trends trend.Summary) int {
	key := 10*idea.Priority.Weight() + idea.ViralScore
	if string(idea.ContentType) == trends.BestContentType {
		key += 10
	}
	return key
}
