package api

import (
	"context"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
	"github.com/Vipul251/ai-seo-blog-generator/app/database"
	"github.com/Vipul251/ai-seo-blog-generator/app/export"
	"github.com/Vipul251/ai-seo-blog-generator/app/publisher"
	"github.com/Vipul251/ai-seo-blog-generator/app/scraper"
	"github.com/Vipul251/ai-seo-blog-generator/app/tasks"
)

type DocumentInterface interface {
	Run(post blog.Post) string
}

var _ DocumentInterface = (*export.Document)(nil)

type PublisherInterface interface {
	Run(ctx context.Context, pkg export.WordPressPackage) error
}

var _ PublisherInterface = (*publisher.Publisher)(nil)

type Handler struct {
	configCache   *catalog.ConfigCache
	sourceRepo    database.SourceRepository
	productRepo   database.ProductRepository
	keywordRepo   database.KeywordRepository
	postRepo      database.PostRepository
	document      DocumentInterface
	reportBuilder *export.ReportBuilder
	writer        *export.Writer
	scraper       *scraper.Scraper
	scheduler     tasks.TaskSchedulerInterface
	publisher     PublisherInterface
}
