package keyword

import (
	"math"
	"sort"
	"strings"
)

type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Run scores each candidate keyword, preserving input order.
func (s *Scorer) Run(candidates []string) []Keyword {
	scored := make([]Keyword, 0, len(candidates))
	for _, text := range candidates {
		scored = append(scored, s.score(text))
	}
	return scored
}

func (s *Scorer) score(text string) Keyword {
	wordCount := len(strings.Fields(text))

	volume := s.estimateSearchVolume(text, wordCount)
	difficulty := s.estimateDifficulty(wordCount)
	relevance := s.calculateRelevance(wordCount)

	combined := float64(volume)*0.4 + float64(100-difficulty)*0.3 + float64(relevance)*0.3

	return Keyword{
		Text:            text,
		VolumeScore:     volume,
		DifficultyScore: difficulty,
		RelevanceScore:  relevance,
		CombinedScore:   math.Round(combined*100) / 100,
	}
}

func (s *Scorer) estimateSearchVolume(text string, wordCount int) int {
	score := 50

	if strings.Contains(text, "best") || strings.Contains(text, "top") {
		score += 20
	}
	if strings.Contains(text, "2025") || strings.Contains(text, "new") {
		score += 15
	}
	if wordCount == 2 {
		score += 10
	}

	return min(score, 100)
}

func (s *Scorer) estimateDifficulty(wordCount int) int {
	// Shorter keywords compete against more pages
	score := 40

	switch wordCount {
	case 1:
		score += 30
	case 2:
		score += 10
	}

	return min(score, 100)
}

func (s *Scorer) calculateRelevance(wordCount int) int {
	score := 70

	// Long-tail keywords are more specific
	if wordCount >= 3 {
		score += 20
	}

	return min(score, 100)
}

// Rank returns the top n keywords by combined score descending. The sort is
// stable: equal scores keep their generation order.
func Rank(keywords []Keyword, n int) []Keyword {
	ranked := make([]Keyword, len(keywords))
	copy(ranked, keywords)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CombinedScore > ranked[j].CombinedScore
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
