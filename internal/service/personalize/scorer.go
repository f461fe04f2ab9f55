// internal/service/personalize/scorer.go

package personalize

// Scoring weights. The base represents neutral relevance before any
// profile signal is applied.
const (
	scoreBase          = 50
	keywordMatchWeight = 10
	nicheMatchBonus    = 20
	factorWeight       = 5
	scoreMax           = 100
)

// Score rates how well a content idea matches a user profile, on a 0-100
// scale. Keyword matches are exact and case-sensitive.
func Score(ideaKeywords, userKeywords []string, primaryNiche string, factors []string) int {
	score := scoreBase

	for _, kw := range ideaKeywords {
		for _, ukw := range userKeywords {
			if kw == ukw {
				score += keywordMatchWeight
				break
			}
		}
	}

	if primaryNiche != "General" {
		score += nicheMatchBonus
	}

	score += factorWeight * len(factors)

	if score > scoreMax {
		return scoreMax
	}
	return score
}
