package blog

import (
	"fmt"
	"hash/fnv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
	"github.com/Vipul251/ai-seo-blog-generator/app/keyword"
)

var titleCaser = cases.Title(language.English)

// Templater fills fixed headline/intro/body/CTA templates from a product and
// its ranked keywords. Template variants are selected by an FNV-1a hash of
// the product title, so the same input always yields the same text.
type Templater struct{}

func NewTemplater() *Templater {
	return &Templater{}
}

// Run assembles the markdown content: headline, intro, body and CTA joined
// by blank lines. keywords must carry at least keyword.TopKeywordCount
// entries (index 0 is the primary keyword).
func (t *Templater) Run(product catalog.Product, keywords []keyword.Keyword) string {
	headline := t.generateHeadline(product.Title, keywords[0].Text)
	intro := t.generateIntro(product, keywords)
	body := t.generateBody(product, keywords)
	cta := t.generateCTA(product.Title, keywords[0].Text)

	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s", headline, intro, body, cta)
}

// selectTemplate picks a variant index from the deterministic FNV-1a hash of
// the selector string (a runtime-seeded hash would break reproducibility).
func selectTemplate(selector string, count int) int {
	h := fnv.New32a()
	h.Write([]byte(selector))
	return int(h.Sum32() % uint32(count))
}

func (t *Templater) generateHeadline(productName, mainKeyword string) string {
	kw := titleCaser.String(mainKeyword)
	templates := []string{
		fmt.Sprintf("# %s: Why %s is Taking Over", kw, productName),
		fmt.Sprintf("# %s Review: The Ultimate %s", productName, kw),
		fmt.Sprintf("# Discover the %s Everyone's Talking About", kw),
	}
	return templates[selectTemplate(productName, len(templates))]
}

func (t *Templater) generateIntro(product catalog.Product, keywords []keyword.Keyword) string {
	category := strings.ToLower(product.Category)
	templates := []string{
		fmt.Sprintf("In the world of %s, finding the perfect %s can feel overwhelming. Enter the %s – a game-changer that's earned an impressive %s-star rating from over %s satisfied customers.",
			category, keywords[0].Text, product.Title, product.Rating, product.ReviewCount),

		fmt.Sprintf("Looking for %s? The %s has quickly become the go-to choice for savvy shoppers. With %s glowing reviews and a stellar %s-star rating, it's clear why this %s stands out.",
			keywords[0].Text, product.Title, product.ReviewCount, product.Rating, keywords[1].Text),

		fmt.Sprintf("When it comes to %s, the %s sets a new standard. This top-rated %s item has captured the attention of %s buyers who've given it an outstanding %s-star rating.",
			keywords[0].Text, product.Title, category, product.ReviewCount, product.Rating),
	}
	return templates[selectTemplate(product.Title, len(templates))]
}

func (t *Templater) generateBody(product catalog.Product, keywords []keyword.Keyword) string {
	category := strings.ToLower(product.Category)

	featurePart := fmt.Sprintf("What makes this %s special? %s At just %s, it delivers exceptional value that's hard to match.",
		keywords[1].Text, product.Description, product.Price)

	benefitPart := fmt.Sprintf("Whether you're a first-time buyer or an experienced user looking for %s, this product consistently exceeds expectations. The combination of quality, performance, and affordability makes it the %s for anyone serious about their %s needs.",
		keywords[2].Text, keywords[3].Text, category)

	return featurePart + " " + benefitPart
}

func (t *Templater) generateCTA(productName, mainKeyword string) string {
	templates := []string{
		fmt.Sprintf("Ready to experience the difference? Discover why the %s is the %s of choice for thousands of satisfied customers. Check it out today!",
			productName, mainKeyword),

		fmt.Sprintf("Don't miss out on this exceptional %s. Join the community of happy %s users and see what all the excitement is about!",
			mainKeyword, productName),

		fmt.Sprintf("Transform your experience with the %s. As the leading %s, it's time to see why everyone's making the switch!",
			productName, mainKeyword),
	}
	return templates[selectTemplate(productName, len(templates))]
}
