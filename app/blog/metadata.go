package blog

import (
	"regexp"
	"strings"
)

var nonSlugExpr = regexp.MustCompile(`[^a-z0-9]+`)

// metaDescriptionLimit is the running character budget (including separating
// spaces) before the ellipsis is appended.
const metaDescriptionLimit = 155

// slugMaxLength caps slug length for URL friendliness.
const slugMaxLength = 60

// slugSuffixLength is how much of the product ID disambiguates a taken slug.
const slugSuffixLength = 8

// Slug derives a URL-safe identifier from a title: case-folded, runs of
// non-alphanumerics collapsed to single hyphens, no leading or trailing
// hyphen, at most slugMaxLength characters.
func Slug(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlugExpr.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > slugMaxLength {
		slug = strings.Trim(slug[:slugMaxLength], "-")
	}
	return slug
}

// DisambiguateSlug appends a short product-ID fragment to a slug already
// taken by a different product with the same title. The result keeps the
// slug invariants: lowercase alphanumerics and hyphens, no edge hyphens,
// at most slugMaxLength characters.
func DisambiguateSlug(slug, productID string) string {
	suffix := nonSlugExpr.ReplaceAllString(strings.ToLower(productID), "-")
	suffix = strings.Trim(suffix, "-")
	if len(suffix) > slugSuffixLength {
		suffix = strings.Trim(suffix[len(suffix)-slugSuffixLength:], "-")
	}
	if suffix == "" {
		return slug
	}
	if slug == "" {
		return suffix
	}
	if len(slug)+len(suffix)+1 > slugMaxLength {
		slug = strings.Trim(slug[:slugMaxLength-len(suffix)-1], "-")
	}
	return slug + "-" + suffix
}

// MetaDescription extracts an SEO meta description: heading markers and
// newlines stripped, words accumulated greedily while the running character
// count stays within budget, ellipsis appended.
func MetaDescription(content string) string {
	text := strings.ReplaceAll(content, "#", "")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.TrimSpace(text)

	var description []string
	charCount := 0

	for _, word := range strings.Fields(text) {
		if charCount+len(word)+1 > metaDescriptionLimit {
			break
		}
		description = append(description, word)
		charCount += len(word) + 1
	}

	return strings.Join(description, " ") + "..."
}
