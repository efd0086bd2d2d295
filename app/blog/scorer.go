package blog

import (
	"math"
	"strings"
)

// ctaWords signal a call to action when present anywhere in the case-folded
// content.
var ctaWords = []string{"discover", "check", "buy", "shop", "get", "try", "order"}

// Scorer computes the heuristic SEO and readability scores for generated
// content.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// SEOScore measures on-page optimization 0-100: keyword coverage (40),
// target length (20), leading heading (20) and CTA wording (20). The length
// cut-offs are fixed tuning constants.
func (s *Scorer) SEOScore(content string, keywords []string) int {
	score := 0.0
	contentLower := strings.ToLower(content)

	if len(keywords) > 0 {
		found := 0
		for _, kw := range keywords {
			if strings.Contains(contentLower, strings.ToLower(kw)) {
				found++
			}
		}
		score += float64(found) / float64(len(keywords)) * 40
	}

	wordCount := len(strings.Fields(content))
	if wordCount >= 150 && wordCount <= 200 {
		score += 20
	} else if wordCount >= 140 && wordCount <= 210 {
		score += 15
	}

	if strings.HasPrefix(content, "#") {
		score += 20
	}

	for _, word := range ctaWords {
		if strings.Contains(contentLower, word) {
			score += 20
			break
		}
	}

	return min(int(score), 100)
}

// Readability estimates a simplified Flesch Reading Ease score. Content
// without terminal punctuation (or without words) scores a neutral 50.0.
func (s *Scorer) Readability(content string) float64 {
	sentences := strings.Count(content, ".") + strings.Count(content, "!") + strings.Count(content, "?")
	words := strings.Fields(content)

	if sentences == 0 || len(words) == 0 {
		return 50.0
	}

	syllables := 0
	for _, word := range words {
		syllables += countSyllables(word)
	}

	score := 206.835 - 1.015*(float64(len(words))/float64(sentences)) - 84.6*(float64(syllables)/float64(len(words)))
	score = math.Max(0, math.Min(100, score))
	return math.Round(score*10) / 10
}

// countSyllables approximates syllables by counting transitions into vowel
// groups (y counts as a vowel), minus one for a trailing 'e', floored at 1.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	previousWasVowel := false
	for _, c := range word {
		isVowel := strings.ContainsRune("aeiouy", c)
		if isVowel && !previousWasVowel {
			count++
		}
		previousWasVowel = isVowel
	}

	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}

	return count
}
