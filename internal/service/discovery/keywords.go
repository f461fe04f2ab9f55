// internal/service/discovery/keywords.go

package discovery

import (
	"sort"
	"strings"

	"contentfactory/internal/domain/content"
)

const (
	maxViralKeywords = 5
	maxMemeKeywords  = 3
)

// memeIndicators flag keywords with meme potential.
var memeIndicators = []string{"meme", "funny", "viral", "trending"}

// KeywordStats is the result of aggregating keywords across a post batch.
type KeywordStats struct {
	// Top holds at most five keywords ordered by descending occurrence
	// count; ties keep first-seen order.
	Top []string

	// Meme holds at most three keywords containing a meme indicator,
	// deduplicated, in first-seen order.
	Meme []string

	// Counts maps every observed keyword to its occurrence count.
	Counts map[string]int
}

// AggregateKeywords counts keyword occurrences across posts. Every
// occurrence counts, including duplicates within a single post. An empty
// batch yields empty results.
func AggregateKeywords(posts []content.Post) KeywordStats {
	counts := make(map[string]int)
	var order []string

	memeSeen := make(map[string]struct{})
	var meme []string

	for _, p := range posts {
		for _, kw := range p.Keywords {
			if _, seen := counts[kw]; !seen {
				order = append(order, kw)
			}
			counts[kw]++

			if !isMemeKeyword(kw) {
				continue
			}
			if _, dup := memeSeen[kw]; dup {
				continue
			}
			memeSeen[kw] = struct{}{}
			meme = append(meme, kw)
		}
	}

	// Stable sort on count only, so equal counts keep first-seen order.
	top := make([]string, len(order))
	copy(top, order)
	sort.SliceStable(top, func(i, j int) bool {
		return counts[top[i]] > counts[top[j]]
	})

	if len(top) > maxViralKeywords {
		top = top[:maxViralKeywords]
	}
	if len(meme) > maxMemeKeywords {
		meme = meme[:maxMemeKeywords]
	}

	return KeywordStats{Top: top, Meme: meme, Counts: counts}
}

func isMemeKeyword(kw string) bool {
	lower := strings.ToLower(kw)
	for _, indicator := range memeIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
