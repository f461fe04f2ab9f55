// internal/domain/niche/niche.go

package niche

import "strings"

// Niche is a platform audience category. Every value produced by Resolve
// is guaranteed to be a member of the platform allow-list.
type Niche string

// General is the catch-all niche and the terminal fallback of Resolve.
const General Niche = "General"

// allowed is the fixed set of niches the platform accepts.
var allowed = map[Niche]struct{}{
	"General":              {},
	"Blogger":              {},
	"Traveler":             {},
	"Foodie":               {},
	"Fitness Coach":        {},
	"Fashion Influencer":   {},
	"Gamer":                {},
	"Photographer":         {},
	"Artist":               {},
	"Musician":             {},
	"Writer":               {},
	"Entrepreneur":         {},
	"Educator":             {},
	"Health Expert":        {},
	"Lifestyle Influencer": {},
	"Business Coach":       {},
}

type synonym struct {
	key    string
	target Niche
}

// synonyms maps common free-text niches to allowed ones. The order
// matters: keyword scanning returns the first match in table order.
var synonyms = []synonym{
	{"Tech Reviewer", General},
	{"Tech", General},
	{"AI", General},
	{"Technology", General},
	{"Innovation", General},
	{"Digital", General},
	{"Music", "Musician"},
	{"LiveMusic", "Musician"},
	{"Concert", "Musician"},
	{"Travel", "Traveler"},
	{"Adventure", "Traveler"},
	{"Road Trip", "Traveler"},
	{"Art", "Artist"},
	{"Creative", "Artist"},
	{"Design", "Artist"},
	{"Food", "Foodie"},
	{"Cooking", "Foodie"},
	{"Fitness", "Fitness Coach"},
	{"Workout", "Fitness Coach"},
	{"Health", "Health Expert"},
	{"Business", "Entrepreneur"},
	{"Education", "Educator"},
	{"Lifestyle", "Lifestyle Influencer"},
}

// IsValid reports whether n is in the platform allow-list.
func IsValid(n Niche) bool {
	_, ok := allowed[n]
	return ok
}

// Resolve maps a free-text requested niche to an allowed one. Resolution
// order: allow-list passthrough, then the synonym table, then a
// case-insensitive substring scan of the candidate keywords against the
// synonym keys, and finally General. Resolve is total: it never returns a
// value outside the allow-list.
func Resolve(requested string, keywords []string) Niche {
	if IsValid(Niche(requested)) {
		return Niche(requested)
	}

	for _, s := range synonyms {
		if s.key == requested && IsValid(s.target) {
			return s.target
		}
	}

	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		for _, s := range synonyms {
			if strings.Contains(lower, strings.ToLower(s.key)) && IsValid(s.target) {
				return s.target
			}
		}
	}

	return General
}
