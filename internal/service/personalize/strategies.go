// internal/service/personalize/strategies.go

package personalize

import (
	"fmt"

	"contentfactory/internal/domain/content"
	"contentfactory/internal/domain/trend"
)

// IdeaDraft is a raw content idea produced by a niche strategy, before
// personalization scoring.
type IdeaDraft struct {
	Type        content.Type
	Title       string
	Description string
	Keywords    []string
	Factors     []string
}

// Strategy produces content ideas tailored to one niche.
type Strategy interface {
	// Niche returns the niche this strategy serves.
	Niche() string

	// Draft produces raw content ideas from the user insights and the
	// cycle's trend summary.
	Draft(insights Insights, trends trend.Summary) []IdeaDraft
}

// take returns at most n leading elements of ss.
func take(ss []string, n int) []string {
	if len(ss) > n {
		ss = ss[:n]
	}
	return append([]string(nil), ss...)
}

// at returns ss[i], or fallback when ss is too short.
func at(ss []string, i int, fallback string) string {
	if i < len(ss) {
		return ss[i]
	}
	return fallback
}

func merge(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// TechReviewerStrategy covers technology reviews, tutorials and news.
type TechReviewerStrategy struct{}

func (TechReviewerStrategy) Niche() string { return "Tech Reviewer" }

func (TechReviewerStrategy) Draft(in Insights, t trend.Summary) []IdeaDraft {
	user := in.Preferences.Topics
	viral := t.ViralKeywords

	return []IdeaDraft{
		{
			Type:        content.TypeVideo,
			Title:       fmt.Sprintf("Review: %s Innovation", at(viral, 0, "Latest Tech")),
			Description: fmt.Sprintf("In-depth review of %s and its practical applications", at(viral, 0, "new technology")),
			Keywords:    merge(take(user, 3), take(viral, 2)),
			Factors:     []string{"user_interest", "trend_alignment"},
		},
		{
			Type:        content.TypeImage,
			Title:       fmt.Sprintf("How to Master %s", at(user, 0, "Technology")),
			Description: fmt.Sprintf("Step-by-step guide to understanding %s", at(user, 0, "tech topic")),
			Keywords:    merge(take(user, 2), []string{"tutorial", "guide"}),
			Factors:     []string{"user_expertise", "educational_value"},
		},
		{
			Type:        content.TypeVideo,
			Title:       fmt.Sprintf("Breaking: %s Update", at(viral, 1, "Tech")),
			Description: fmt.Sprintf("Latest news and updates about %s", at(viral, 1, "technology trends")),
			Keywords:    merge(take(user, 2), take(viral, 2), []string{"news"}),
			Factors:     []string{"timeliness", "trend_relevance"},
		},
	}
}

// MusicianStrategy covers performances and creative process content.
type MusicianStrategy struct{}

func (MusicianStrategy) Niche() string { return "Musician" }

func (MusicianStrategy) Draft(in Insights, t trend.Summary) []IdeaDraft {
	user := in.Preferences.Topics
	viral := t.ViralKeywords

	return []IdeaDraft{
		{
			Type:        content.TypeVideo,
			Title:       fmt.Sprintf("Live %s Performance", at(user, 0, "Music")),
			Description: "Raw and authentic musical performance showcasing talent and emotion",
			Keywords:    merge(take(user, 3), []string{"live", "performance", "music"}, take(viral, 2)),
			Factors:     []string{"user_talent", "emotional_connection"},
		},
		{
			Type:        content.TypeImage,
			Title:       "Behind the Music Creation",
			Description: "Glimpse into the creative process and inspiration behind the music",
			Keywords:    merge(take(user, 2), []string{"creative", "process", "inspiration"}),
			Factors:     []string{"authenticity", "creative_expression"},
		},
		{
			Type:        content.TypeVideo,
			Title:       fmt.Sprintf("%s Music Session", at(viral, 0, "Trending")),
			Description: "Music performance incorporating current trends and viral elements",
			Keywords:    merge(take(user, 2), take(viral, 2), []string{"session", "trending"}),
			Factors:     []string{"trend_alignment", "virality_potential"},
		},
	}
}

// TravelerStrategy covers destinations and travel advice.
type TravelerStrategy struct{}

func (TravelerStrategy) Niche() string { return "Traveler" }

func (TravelerStrategy) Draft(in Insights, t trend.Summary) []IdeaDraft {
	user := in.Preferences.Topics
	viral := t.ViralKeywords

	return []IdeaDraft{
		{
			Type:        content.TypeImage,
			Title:       fmt.Sprintf("%s Destination Discovery", at(user, 0, "Amazing")),
			Description: "Stunning visual journey through amazing travel destinations and experiences",
			Keywords:    merge(take(user, 3), []string{"travel", "adventure", "discovery"}, take(viral, 2)),
			Factors:     []string{"wanderlust", "visual_appeal"},
		},
		{
			Type:        content.TypeVideo,
			Title:       fmt.Sprintf("%s Travel Tips & Secrets", at(viral, 0, "Essential")),
			Description: "Expert travel advice and hidden gems for adventurous souls",
			Keywords:    merge(take(user, 2), []string{"tips", "advice", "adventure"}, take(viral, 2)),
			Factors:     []string{"practical_value", "expert_insights"},
		},
	}
}

// ArtistStrategy covers creative process and technique content.
type ArtistStrategy struct{}

func (ArtistStrategy) Niche() string { return "Artist" }

func (ArtistStrategy) Draft(in Insights, t trend.Summary) []IdeaDraft {
	user := in.Preferences.Topics
	viral := t.ViralKeywords

	return []IdeaDraft{
		{
			Type:        content.TypeImage,
			Title:       fmt.Sprintf("%s Process Revealed", at(user, 0, "Creative")),
			Description: "Step-by-step look at artistic creation from concept to completion",
			Keywords:    merge(take(user, 3), []string{"art", "creative", "process"}, take(viral, 2)),
			Factors:     []string{"creative_expression", "educational_value"},
		},
		{
			Type:        content.TypeVideo,
			Title:       fmt.Sprintf("Art in Motion: %s Journey", at(viral, 0, "Creative")),
			Description: "Time-lapse and process video showing artistic techniques and styles",
			Keywords:    merge(take(user, 2), []string{"timelapse", "technique", "artistic"}, take(viral, 2)),
			Factors:     []string{"visual_storytelling", "skill_demonstration"},
		},
	}
}

// FoodieStrategy covers culinary presentation and tutorials.
type FoodieStrategy struct{}

func (FoodieStrategy) Niche() string { return "Foodie" }

func (FoodieStrategy) Draft(in Insights, t trend.Summary) []IdeaDraft {
	user := in.Preferences.Topics
	viral := t.ViralKeywords

	return []IdeaDraft{
		{
			Type:        content.TypeImage,
			Title:       fmt.Sprintf("%s Culinary Creations", at(user, 0, "Delicious")),
			Description: "Beautifully presented food and culinary experiences",
			Keywords:    merge(take(user, 3), []string{"food", "culinary", "recipe"}, take(viral, 2)),
			Factors:     []string{"visual_appeal", "sensory_experience"},
		},
		{
			Type:        content.TypeVideo,
			Title:       fmt.Sprintf("%s Masterclass", at(viral, 0, "Cooking")),
			Description: "Step-by-step cooking tutorial and culinary techniques",
			Keywords:    merge(take(user, 2), []string{"cooking", "tutorial", "masterclass"}, take(viral, 2)),
			Factors:     []string{"educational", "skill_development"},
		},
	}
}

// FitnessCoachStrategy covers workouts and transformation content.
type FitnessCoachStrategy struct{}

func (FitnessCoachStrategy) Niche() string { return "Fitness Coach" }

func (FitnessCoachStrategy) Draft(in Insights, t trend.Summary) []IdeaDraft {
	user := in.Preferences.Topics
	viral := t.ViralKeywords

	return []IdeaDraft{
		{
			Type:        content.TypeVideo,
			Title:       fmt.Sprintf("%s Workout Session", at(user, 0, "Effective")),
			Description: "Effective fitness routines and exercise demonstrations",
			Keywords:    merge(take(user, 3), []string{"fitness", "workout", "health"}, take(viral, 2)),
			Factors:     []string{"practical_value", "motivational"},
		},
		{
			Type:        content.TypeImage,
			Title:       fmt.Sprintf("%s Progress & Results", at(viral, 0, "Fitness")),
			Description: "Inspirational fitness journey and transformation results",
			Keywords:    merge(take(user, 2), []string{"progress", "results", "transformation"}, take(viral, 2)),
			Factors:     []string{"inspirational", "results_driven"},
		},
	}
}

// GeneralStrategy is the fallback for niches without a dedicated strategy.
type GeneralStrategy struct{}

func (GeneralStrategy) Niche() string { return "General" }

func (GeneralStrategy) Draft(in Insights, t trend.Summary) []IdeaDraft {
	user := in.Preferences.Topics
	viral := t.ViralKeywords

	return []IdeaDraft{
		{
			Type:        content.TypeImage,
			Title:       fmt.Sprintf("Exploring %s", at(user, 0, "Interesting Topics")),
			Description: fmt.Sprintf("Engaging content about %s", at(user, 0, "current interests")),
			Keywords:    merge(take(user, 2), take(viral, 2)),
			Factors:     []string{"user_interest", "trend_alignment"},
		},
		{
			Type:        content.TypeVideo,
			Title:       fmt.Sprintf("%s Insights & Updates", at(viral, 0, "Trending")),
			Description: fmt.Sprintf("Latest updates and insights about %s", at(viral, 0, "current trends")),
			Keywords:    merge(take(user, 2), take(viral, 2), []string{"insights", "updates"}),
			Factors:     []string{"timeliness", "information_value"},
		},
	}
}
