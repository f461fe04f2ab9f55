// internal/domain/trend/model.go

package trend

// Summary aggregates one cycle's batch of trending posts. It is derived
// once per cycle and never outlives it.
type Summary struct {
	ViralKeywords      []string       `json:"viralKeywords"`
	EngagementByType   map[string]int `json:"engagementByType"`
	BestContentType    string         `json:"bestContentType"`
	TotalPostsAnalyzed int            `json:"totalPostsAnalyzed"`
	ViralScore         int            `json:"viralScore"`
	MemeKeywords       []string       `json:"memeKeywords"`
}

// MemePotential estimates how meme-friendly the current batch is.
type MemePotential struct {
	Score      int    `json:"score"`
	Confidence string `json:"confidence"`
}

// SeriesPotential estimates whether the trends support episodic content.
type SeriesPotential struct {
	Genres        []string `json:"genres"`
	EpisodeThemes []string `json:"episodeThemes"`
	Score         int      `json:"score"`
}

// Discovery bundles everything the discovery stage learned in one cycle.
type Discovery struct {
	Summary Summary         `json:"summary"`
	Meme    MemePotential   `json:"meme"`
	Series  SeriesPotential `json:"series"`
}
