package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
	"github.com/Vipul251/ai-seo-blog-generator/app/keyword"
)

// RunStats aggregates pipeline totals for the report. It is a plain value
// built from repository reads, not ambient state.
type RunStats struct {
	ProductsProcessed  int
	KeywordsResearched int
	PostsGenerated     int
	TotalWords         int
}

func (s RunStats) AverageWords() int {
	if s.PostsGenerated == 0 {
		return 0
	}
	return s.TotalWords / s.PostsGenerated
}

// ReportBuilder renders the human-readable pipeline report: totals,
// per-product keyword listings, per-post summaries and score averages.
type ReportBuilder struct{}

func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{}
}

const reportRule = "======================================================================"
const reportLine = "----------------------------------------------------------------------"

func (b *ReportBuilder) Run(products []catalog.Product, keywords map[string][]keyword.Keyword, posts []blog.Post) string {
	stats := RunStats{
		ProductsProcessed: len(products),
		PostsGenerated:    len(posts),
	}
	for _, kws := range keywords {
		stats.KeywordsResearched += len(kws)
	}
	for _, post := range posts {
		stats.TotalWords += post.WordCount
	}

	var buf bytes.Buffer

	buf.WriteString("\n" + reportRule + "\n")
	buf.WriteString("              SEO BLOG POST CREATION TOOL - COMPREHENSIVE REPORT\n")
	buf.WriteString(reportRule + "\n\n")
	fmt.Fprintf(&buf, "Generated: %s\n\n", time.Now().In(time.Local).Format("January 2, 2006 at 15:04:05"))

	buf.WriteString(reportRule + "\nEXECUTIVE SUMMARY\n" + reportRule + "\n\n")
	fmt.Fprintf(&buf, "Products Processed:     %d\n", stats.ProductsProcessed)
	fmt.Fprintf(&buf, "Keywords Researched:    %d\n", stats.KeywordsResearched)
	fmt.Fprintf(&buf, "Blog Posts Generated:   %d\n", stats.PostsGenerated)
	fmt.Fprintf(&buf, "Total Words Written:    %d\n", stats.TotalWords)
	fmt.Fprintf(&buf, "Average Words/Post:     %d\n\n", stats.AverageWords())

	buf.WriteString(reportRule + "\nSTEP 1: PRODUCT ACQUISITION & SELECTION\n" + reportRule + "\n\n")
	buf.WriteString("Trending Products Identified:\n")
	for i, product := range products {
		fmt.Fprintf(&buf, "\n%d. %s\n", i+1, product.Title)
		fmt.Fprintf(&buf, "   Price: %s | Rating: %s/5\n", product.Price, product.Rating)
		fmt.Fprintf(&buf, "   Reviews: %s | Trend Score: %d\n", product.ReviewCount, product.TrendScore)
		fmt.Fprintf(&buf, "   Category: %s\n", product.Category)
	}

	buf.WriteString("\n" + reportRule + "\nSTEP 2: SEO KEYWORD RESEARCH\n" + reportRule + "\n")
	for _, product := range products {
		kws, ok := keywords[product.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "\nProduct: %s\n", product.Title)
		buf.WriteString(reportLine + "\n")
		for _, kw := range kws {
			fmt.Fprintf(&buf, "  - %s\n", kw.Text)
			// Estimated monthly volume is the 0-100 volume score scaled by 100
			fmt.Fprintf(&buf, "    Volume: %d/mo | Difficulty: %d | SEO Score: %.2f\n",
				kw.VolumeScore*100, kw.DifficultyScore, kw.CombinedScore)
		}
	}

	buf.WriteString("\n" + reportRule + "\nSTEP 3: BLOG POST GENERATION\n" + reportRule + "\n")
	for _, post := range posts {
		fmt.Fprintf(&buf, "\nBlog Post: %s\n", post.ID)
		buf.WriteString(reportLine + "\n")
		fmt.Fprintf(&buf, "Product: %s\n", post.ProductName)
		fmt.Fprintf(&buf, "Word Count: %d words\n", post.WordCount)
		fmt.Fprintf(&buf, "SEO Score: %d/100\n", post.SEOScore)
		fmt.Fprintf(&buf, "Readability: %.1f/100\n", post.ReadabilityScore)
		fmt.Fprintf(&buf, "Keywords: %s...\n", strings.Join(firstN(post.Keywords, 2), ", "))
		fmt.Fprintf(&buf, "Generated: %s\n", post.GeneratedAt.Format(time.RFC3339))
	}

	buf.WriteString("\n" + reportRule + "\nSTEP 4: EXPORT & PUBLISHING\n" + reportRule + "\n\n")
	buf.WriteString("HTML files generated for each blog post\n")
	buf.WriteString("WordPress JSON exports created\n")
	buf.WriteString("Medium markdown exports prepared\n")
	buf.WriteString("SEO metadata included in all exports\n")

	buf.WriteString("\n" + reportRule + "\nQUALITY METRICS\n" + reportRule + "\n\n")
	if len(posts) > 0 {
		var seoSum, readabilitySum float64
		for _, post := range posts {
			seoSum += float64(post.SEOScore)
			readabilitySum += post.ReadabilityScore
		}
		fmt.Fprintf(&buf, "Average SEO Score: %.1f/100\n", seoSum/float64(len(posts)))
		fmt.Fprintf(&buf, "Average Readability: %.1f/100\n", readabilitySum/float64(len(posts)))
	} else {
		buf.WriteString("No blog posts generated yet\n")
	}

	buf.WriteString("\n" + reportRule + "\nPIPELINE STATUS: COMPLETED\n" + reportRule + "\n")

	return buf.String()
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
