// internal/service/personalize/insights.go

package personalize

import (
	"strings"

	"github.com/sirupsen/logrus"

	"contentfactory/internal/domain/content"
	"contentfactory/internal/domain/profile"
)

const maxPreferredTopics = 10

// nicheVocabularies map each inferable niche to its indicator keywords.
// Scan order matters: earlier niches win ties.
var nicheVocabularies = []struct {
	niche string
	vocab []string
}{
	{"Tech Reviewer", []string{"tech", "ai", "digital", "innovation", "software", "hardware"}},
	{"Musician", []string{"music", "concert", "band", "song", "livemusic", "audio"}},
	{"Traveler", []string{"travel", "trip", "adventure", "journey", "explore", "destination"}},
	{"Artist", []string{"art", "creative", "design", "painting", "drawing", "visual"}},
	{"Foodie", []string{"food", "restaurant", "cooking", "recipe", "culinary", "dish"}},
	{"Fitness Coach", []string{"fitness", "workout", "health", "exercise", "gym", "training"}},
}

var (
	videoIndicators = []string{"tutorial", "review", "performance", "demonstration", "guide", "session", "class"}
	imageIndicators = []string{"visual", "art", "design", "photo", "meme", "creation", "progress"}
)

// ContentPreferences describes what a user likes to see.
type ContentPreferences struct {
	Topics          []string       `json:"topics"`
	VisualStyle     string         `json:"visualStyle"`
	ContentTypes    []content.Type `json:"contentTypes"`
	EngagementLevel string         `json:"engagementLevel"`
	ActiveTimes     []string       `json:"activeTimes"`
}

// EngagementPatterns describes how actively a user interacts.
type EngagementPatterns struct {
	Score                 float64  `json:"score"`
	Level                 string   `json:"level"`
	ContentFrequency      string   `json:"contentFrequency"`
	OptimalTiming         []string `json:"optimalTiming"`
	InteractionLikelihood string   `json:"interactionLikelihood"`
}

// StrategyCard summarizes the content strategy chosen for a niche.
type StrategyCard struct {
	Focus       string         `json:"focus"`
	ContentMix  map[string]int `json:"contentMix"`
	Tone        string         `json:"tone"`
	VisualStyle string         `json:"visualStyle"`
}

// Insights is the per-cycle analysis of one user profile.
type Insights struct {
	UserID       string             `json:"userId"`
	PrimaryNiche string             `json:"primaryNiche"`
	Preferences  ContentPreferences `json:"preferences"`
	Engagement   EngagementPatterns `json:"engagement"`
	Strategy     StrategyCard       `json:"strategy"`
}

// AnalyzeProfile derives content insights from a user profile.
func AnalyzeProfile(p profile.UserProfile, log *logrus.Logger) Insights {
	primary := PrimaryNiche(p)

	insights := Insights{
		UserID:       p.UserID,
		PrimaryNiche: primary,
		Preferences:  analyzeContentPreferences(p),
		Engagement:   analyzeEngagementPatterns(p),
		Strategy:     strategyCard(primary),
	}

	log.WithFields(logrus.Fields{
		"user":       p.UserID,
		"niche":      primary,
		"engagement": insights.Engagement.Level,
	}).Info("analyzed user profile")

	return insights
}

// PrimaryNiche picks the user's primary niche: the first stated preference
// if any, otherwise the niche whose vocabulary best matches the preferred
// keywords, otherwise General. The returned value is free text and is only
// resolved against the platform allow-list at posting time.
func PrimaryNiche(p profile.UserProfile) string {
	if len(p.PreferredNiches) > 0 {
		return p.PreferredNiches[0]
	}

	lowered := make([]string, len(p.PreferredKeywords))
	for i, kw := range p.PreferredKeywords {
		lowered[i] = strings.ToLower(kw)
	}

	best := "General"
	maxMatches := 0
	for _, nv := range nicheVocabularies {
		matches := 0
		for _, key := range nv.vocab {
			for _, kw := range lowered {
				if strings.Contains(kw, key) {
					matches++
					break
				}
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			best = nv.niche
		}
	}
	return best
}

func analyzeContentPreferences(p profile.UserProfile) ContentPreferences {
	topics := p.PreferredKeywords
	if len(topics) > maxPreferredTopics {
		topics = topics[:maxPreferredTopics]
	}

	style := "modern"
	if len(p.VisualAffinities) > 0 {
		style = p.VisualAffinities[0]
	}

	level := "medium"
	if p.EngagementRatio > 0.7 {
		level = "high"
	}

	return ContentPreferences{
		Topics:          topics,
		VisualStyle:     style,
		ContentTypes:    inferContentTypes(p.PreferredKeywords),
		EngagementLevel: level,
		ActiveTimes:     p.ActiveHours,
	}
}

func analyzeEngagementPatterns(p profile.UserProfile) EngagementPatterns {
	ratio := p.EngagementRatio

	timing := p.ActiveHours
	if len(timing) > 2 {
		timing = timing[:2]
	}
	if len(timing) == 0 {
		timing = []string{"12:00 UTC", "18:00 UTC"}
	}

	return EngagementPatterns{
		Score:                 ratio,
		Level:                 tier(ratio, 0.7, 0.4),
		ContentFrequency:      contentFrequency(ratio),
		OptimalTiming:         timing,
		InteractionLikelihood: tier(ratio, 0.6, 0.3),
	}
}

func inferContentTypes(keywords []string) []content.Type {
	var types []content.Type
	seen := make(map[content.Type]struct{})

	add := func(t content.Type) {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			types = append(types, t)
		}
	}

	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		if containsAny(lower, videoIndicators) {
			add(content.TypeVideo)
		} else if containsAny(lower, imageIndicators) {
			add(content.TypeImage)
		}
	}

	if len(types) == 0 {
		return []content.Type{content.TypeImage, content.TypeVideo}
	}
	return types
}

func contentFrequency(ratio float64) string {
	switch {
	case ratio > 0.8:
		return "daily"
	case ratio > 0.6:
		return "every_other_day"
	default:
		return "weekly"
	}
}

func tier(ratio, high, medium float64) string {
	switch {
	case ratio > high:
		return "high"
	case ratio > medium:
		return "medium"
	default:
		return "low"
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// strategyCard returns the content strategy for a niche, falling back to
// a general-interest card for unknown niches.
func strategyCard(n string) StrategyCard {
	if card, ok := strategyCards[n]; ok {
		return card
	}
	return StrategyCard{
		Focus:       "General interest topics",
		ContentMix:  map[string]int{"educational": 35, "entertaining": 30, "inspirational": 20, "news": 15},
		Tone:        "Friendly and engaging",
		VisualStyle: "Modern and clean",
	}
}

var strategyCards = map[string]StrategyCard{
	"Tech Reviewer": {
		Focus:       "Technology innovations and reviews",
		ContentMix:  map[string]int{"educational": 40, "reviews": 30, "news": 20, "tutorials": 10},
		Tone:        "Professional yet accessible",
		VisualStyle: "Modern, clean, tech-focused",
	},
	"Musician": {
		Focus:       "Music performances and industry insights",
		ContentMix:  map[string]int{"performances": 40, "behind_scenes": 25, "tutorials": 20, "reviews": 15},
		Tone:        "Creative and engaging",
		VisualStyle: "Dynamic, emotional, performance-oriented",
	},
	"Traveler": {
		Focus:       "Adventure and destination experiences",
		ContentMix:  map[string]int{"destinations": 35, "adventures": 30, "tips": 20, "culture": 15},
		Tone:        "Inspirational and informative",
		VisualStyle: "Vibrant, scenic, immersive",
	},
	"Artist": {
		Focus:       "Creative process and artistic expression",
		ContentMix:  map[string]int{"creations": 45, "process": 25, "inspiration": 20, "tutorials": 10},
		Tone:        "Expressive and thoughtful",
		VisualStyle: "Aesthetic, detailed, creative",
	},
	"Foodie": {
		Focus:       "Culinary experiences and food exploration",
		ContentMix:  map[string]int{"recipes": 35, "reviews": 30, "techniques": 20, "culture": 15},
		Tone:        "Appetizing and informative",
		VisualStyle: "Vibrant, appetizing, detailed",
	},
	"Fitness Coach": {
		Focus:       "Health, fitness and wellness",
		ContentMix:  map[string]int{"workouts": 40, "nutrition": 25, "motivation": 20, "reviews": 15},
		Tone:        "Energetic and motivational",
		VisualStyle: "Dynamic, clean, inspiring",
	},
}
