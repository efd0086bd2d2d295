package keyword

import (
	"log/slog"
	"strings"
)

// TopKeywordCount is how many ranked keywords flow into content generation.
const TopKeywordCount = 4

// Researcher runs the full keyword pipeline: variation generation, scoring
// and top-N selection.
type Researcher struct {
	generator *Generator
	scorer    *Scorer
}

func NewResearcher() *Researcher {
	return &Researcher{
		generator: NewGenerator(),
		scorer:    NewScorer(),
	}
}

// Run returns exactly TopKeywordCount keywords for the given product title
// and category. When variation generation yields too few candidates (short
// or empty titles), the set is padded by repeating the case-folded category
// name; that is a degenerate but non-fatal condition.
func (r *Researcher) Run(title, category string) []Keyword {
	baseTerms := ExtractBaseTerms(title)
	candidates := r.generator.Run(baseTerms, category)
	ranked := Rank(r.scorer.Run(candidates), TopKeywordCount)

	if len(ranked) < TopKeywordCount {
		slog.Warn("Degenerate keyword generation, padding with category",
			"title", title, "category", category, "generated", len(ranked))

		pad := r.scorer.score(strings.ToLower(category))
		for len(ranked) < TopKeywordCount {
			ranked = append(ranked, pad)
		}
	}

	return ranked
}
