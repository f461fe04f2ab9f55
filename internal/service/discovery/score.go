// internal/service/discovery/score.go

package discovery

// ViralScore derives a bounded trend score from the size of the analyzed
// batch and the number of distinct viral keywords found in it.
func ViralScore(postCount, keywordCount int) int {
	score := 2*postCount + 10*keywordCount
	if score > 100 {
		return 100
	}
	return score
}
