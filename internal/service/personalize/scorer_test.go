// internal/service/personalize/scorer_test.go

package personalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name         string
		ideaKeywords []string
		userKeywords []string
		primaryNiche string
		factors      []string
		want         int
	}{
		{
			name:         "base score with no signal",
			primaryNiche: "General",
			want:         50,
		},
		{
			name:         "two keyword matches niche bonus no factors",
			ideaKeywords: []string{"AI", "Travel"},
			userKeywords: []string{"AI", "Travel", "Food"},
			primaryNiche: "Traveler",
			want:         90,
		},
		{
			name:         "keyword matching is case sensitive",
			ideaKeywords: []string{"ai"},
			userKeywords: []string{"AI"},
			primaryNiche: "General",
			want:         50,
		},
		{
			name:         "factors add five each",
			ideaKeywords: []string{"music"},
			userKeywords: []string{"music"},
			primaryNiche: "General",
			factors:      []string{"a", "b", "c"},
			want:         75,
		},
		{
			name:         "capped at one hundred",
			ideaKeywords: []string{"a", "b", "c", "d"},
			userKeywords: []string{"a", "b", "c", "d"},
			primaryNiche: "Musician",
			factors:      []string{"x", "y", "z"},
			want:         100,
		},
		{
			name:         "duplicate user keywords count once per idea keyword",
			ideaKeywords: []string{"go"},
			userKeywords: []string{"go", "go"},
			primaryNiche: "General",
			want:         60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.ideaKeywords, tt.userKeywords, tt.primaryNiche, tt.factors)
			assert.Equal(t, tt.want, got)
		})
	}
}
