// internal/service/discovery/score_test.go

package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViralScore(t *testing.T) {
	tests := []struct {
		name     string
		posts    int
		keywords int
		want     int
	}{
		{"zero inputs", 0, 0, 0},
		{"typical batch", 10, 3, 50},
		{"keywords dominate", 1, 5, 52},
		{"capped at one hundred", 40, 5, 100},
		{"exactly one hundred", 25, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ViralScore(tt.posts, tt.keywords))
		})
	}
}
