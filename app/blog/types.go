package blog

import (
	"time"
)

// Post is a generated marketing blog post with its heuristic quality scores.
// Immutable after generation.
type Post struct {
	ID               string
	ProductID        string
	ProductName      string
	Content          string // markdown
	Keywords         []string
	WordCount        int
	SEOScore         int     // 0-100
	ReadabilityScore float64 // 0.0-100.0, 1-decimal precision
	GeneratedAt      time.Time
	MetaDescription  string
	Slug             string
}
