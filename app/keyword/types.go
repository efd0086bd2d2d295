package keyword

// Keyword is a scored candidate search phrase. Sub-scores are heuristic
// placeholders on a 0-100 scale, not live metrics.
type Keyword struct {
	Text            string
	VolumeScore     int
	DifficultyScore int
	RelevanceScore  int
	CombinedScore   float64 // weighted blend, 2-decimal precision
}
