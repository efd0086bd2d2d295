package keyword

import (
	"fmt"
	"regexp"
	"strings"
)

var baseTermExpr = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

// modifierClasses are fixed search-intent modifier lists. Order matters:
// variation output must be stable across runs.
var modifierClasses = []struct {
	intent    string
	modifiers []string
}{
	{"informational", []string{"best", "top", "guide", "review", "comparison"}},
	{"commercial", []string{"buy", "affordable", "cheap", "deals", "discount"}},
	{"transactional", []string{"price", "sale", "order", "shop"}},
	{"temporal", []string{"2025", "new", "latest", "trending"}},
}

// modifiersPerClass limits how many modifiers of each class are combined
// with a base term.
const modifiersPerClass = 2

// ExtractBaseTerms returns the alphabetic tokens of length >= 4 from the
// case-folded title, in discovery order.
func ExtractBaseTerms(title string) []string {
	return baseTermExpr.FindAllString(strings.ToLower(title), -1)
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run expands base terms into candidate keyword variations. Duplicates are
// collapsed; the output preserves first-occurrence insertion order.
func (g *Generator) Run(baseTerms []string, category string) []string {
	var variations []string
	seen := make(map[string]struct{})

	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		variations = append(variations, v)
	}

	// Select the most relevant base terms
	var coreTerms []string
	for _, term := range baseTerms {
		if len(term) > 4 {
			coreTerms = append(coreTerms, term)
		}
		if len(coreTerms) == 3 {
			break
		}
	}

	categoryLower := strings.ToLower(category)

	for _, term := range coreTerms {
		add(term)
		add(fmt.Sprintf("%s %s", term, categoryLower))

		for _, class := range modifierClasses {
			for _, mod := range class.modifiers[:modifiersPerClass] {
				add(fmt.Sprintf("%s %s", mod, term))
				add(fmt.Sprintf("%s %s", term, mod))
			}
		}
	}

	// Long-tail combinations of the two leading terms
	if len(coreTerms) >= 2 {
		add(fmt.Sprintf("%s %s", coreTerms[0], coreTerms[1]))
		add(fmt.Sprintf("best %s %s", coreTerms[0], coreTerms[1]))
	}

	return variations
}
