package blog

import (
	"fmt"
	"strings"
	"time"

	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
	"github.com/Vipul251/ai-seo-blog-generator/app/keyword"
)

// Generator turns a product and its ranked keywords into a scored Post.
type Generator struct {
	templater *Templater
	scorer    *Scorer
}

func NewGenerator() *Generator {
	return &Generator{
		templater: NewTemplater(),
		scorer:    NewScorer(),
	}
}

func (g *Generator) Run(product catalog.Product, keywords []keyword.Keyword) (Post, error) {
	if len(keywords) < keyword.TopKeywordCount {
		return Post{}, fmt.Errorf("need %d keywords for product %s, got %d",
			keyword.TopKeywordCount, product.ID, len(keywords))
	}

	keywordTexts := make([]string, len(keywords))
	for i, kw := range keywords {
		keywordTexts[i] = kw.Text
	}

	content := g.templater.Run(product, keywords)

	return Post{
		ID:               "BLOG_" + product.ID,
		ProductID:        product.ID,
		ProductName:      product.Title,
		Content:          content,
		Keywords:         keywordTexts,
		WordCount:        len(strings.Fields(content)),
		SEOScore:         g.scorer.SEOScore(content, keywordTexts),
		ReadabilityScore: g.scorer.Readability(content),
		GeneratedAt:      time.Now().UTC(),
		MetaDescription:  MetaDescription(content),
		Slug:             Slug(product.Title),
	}, nil
}
