package export

import (
	"strings"
	"testing"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
	"github.com/Vipul251/ai-seo-blog-generator/app/keyword"
)

func TestRunStatsAverageWords(t *testing.T) {
	stats := RunStats{PostsGenerated: 4, TotalWords: 900}
	if got := stats.AverageWords(); got != 225 {
		t.Errorf("Expected average 225, got %d", got)
	}
}

func TestRunStatsAverageWordsNoPosts(t *testing.T) {
	stats := RunStats{}
	if got := stats.AverageWords(); got != 0 {
		t.Errorf("Expected average 0 without posts, got %d", got)
	}
}

func TestReportBuilderRun(t *testing.T) {
	builder := NewReportBuilder()

	products := []catalog.Product{
		{
			ID:          "PROD_1a2b3c4d5e6f",
			Title:       "Wireless Bluetooth Headphones",
			Price:       "$129.99",
			Rating:      "4.7",
			ReviewCount: "45,678",
			Category:    "Electronics",
			TrendScore:  95,
		},
	}
	keywords := map[string][]keyword.Keyword{
		"PROD_1a2b3c4d5e6f": {
			{Text: "best wireless", VolumeScore: 80, DifficultyScore: 50, CombinedScore: 68.0},
			{Text: "wireless headphones", VolumeScore: 60, DifficultyScore: 50, CombinedScore: 60.0},
		},
	}
	posts := []blog.Post{samplePost()}

	report := builder.Run(products, keywords, posts)

	for _, section := range []string{
		"EXECUTIVE SUMMARY",
		"STEP 1: PRODUCT ACQUISITION & SELECTION",
		"STEP 2: SEO KEYWORD RESEARCH",
		"STEP 3: BLOG POST GENERATION",
		"STEP 4: EXPORT & PUBLISHING",
		"QUALITY METRICS",
		"PIPELINE STATUS: COMPLETED",
	} {
		if !strings.Contains(report, section) {
			t.Errorf("Expected report section '%s'", section)
		}
	}

	if !strings.Contains(report, "Products Processed:     1") {
		t.Error("Expected product count in executive summary")
	}
	if !strings.Contains(report, "Keywords Researched:    2") {
		t.Error("Expected keyword count in executive summary")
	}
	if !strings.Contains(report, "Wireless Bluetooth Headphones") {
		t.Error("Expected product title in report")
	}

	// Volume score surfaces as an estimated monthly figure
	if !strings.Contains(report, "Volume: 8000/mo") {
		t.Error("Expected scaled monthly volume for 'best wireless'")
	}

	if !strings.Contains(report, "Average SEO Score: 85.0/100") {
		t.Error("Expected average SEO score in quality metrics")
	}
	if !strings.Contains(report, "Average Readability: 72.5/100") {
		t.Error("Expected average readability in quality metrics")
	}
}

func TestReportBuilderRunEmpty(t *testing.T) {
	builder := NewReportBuilder()

	report := builder.Run(nil, nil, nil)

	if !strings.Contains(report, "No blog posts generated yet") {
		t.Error("Expected empty-pipeline quality metrics note")
	}
	if !strings.Contains(report, "Average Words/Post:     0") {
		t.Error("Expected zero average words without posts")
	}
}
