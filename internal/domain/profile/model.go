// internal/domain/profile/model.go

package profile

// UserProfile holds one user's stated preferences. A profile is fetched
// fresh at the start of each cycle and is immutable for its duration.
type UserProfile struct {
	ID                string   `json:"id"`
	UserID            string   `json:"userId"`
	PreferredKeywords []string `json:"preferredKeywords"`
	PreferredNiches   []string `json:"preferredNiches"`
	PreferredGenders  []string `json:"preferredGenders"`
	VisualAffinities  []string `json:"visualRepresentationAffinities"`
	ActiveHours       []string `json:"activeHours"`
	EngagementRatio   float64  `json:"engagementRatio"`
}

// Default returns the built-in profile used when the platform returns no
// preferences, so an offline cycle still produces content.
func Default() UserProfile {
	return UserProfile{
		ID:                "demo_user",
		UserID:            "demo_123",
		PreferredKeywords: []string{"AI", "Machine Learning", "Technology", "Innovation", "Digital"},
		PreferredNiches:   []string{"Tech Reviewer", "AI Enthusiast"},
		VisualAffinities:  []string{"modern", "futuristic", "minimalist"},
		ActiveHours:       []string{"12:00 UTC", "18:00 UTC", "20:00 UTC"},
		EngagementRatio:   0.8,
	}
}
