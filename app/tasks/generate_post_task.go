package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
	"github.com/Vipul251/ai-seo-blog-generator/app/database"
	"github.com/Vipul251/ai-seo-blog-generator/app/export"
	"github.com/Vipul251/ai-seo-blog-generator/app/keyword"
)

// GeneratePostTask runs the content pipeline for a single product: keyword
// research, post generation and scoring, persistence, and file exports.
type GeneratePostTask struct {
	Task
	Product       database.Product
	ExportFormats []string
	researcher    *keyword.Researcher
	generator     *blog.Generator
	keywordRepo   database.KeywordRepository
	postRepo      database.PostRepository
	writer        *export.Writer
}

func NewGeneratePostTask(sourceName string, product database.Product, exportFormats []string,
	researcher *keyword.Researcher, generator *blog.Generator,
	keywordRepo database.KeywordRepository, postRepo database.PostRepository,
	writer *export.Writer) *GeneratePostTask {
	return &GeneratePostTask{
		Task:          NewTask(TaskTypeGeneratePost, sourceName),
		Product:       product,
		ExportFormats: exportFormats,
		researcher:    researcher,
		generator:     generator,
		keywordRepo:   keywordRepo,
		postRepo:      postRepo,
		writer:        writer,
	}
}

func (t *GeneratePostTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	product := t.Product.ToCatalogProduct()

	keywords := t.researcher.Run(product.Title, product.Category)
	if err := t.keywordRepo.ReplaceProductKeywords(product.ID, keywords); err != nil {
		return fmt.Errorf("failed to store keywords: %w", err)
	}

	post, err := t.generator.Run(product, keywords)
	if err != nil {
		return fmt.Errorf("failed to generate post: %w", err)
	}

	// Slugs are unique across posts; distinct products can share a title
	existing, err := t.postRepo.GetPostBySlug(post.Slug)
	if err != nil {
		return fmt.Errorf("failed to check slug availability: %w", err)
	}
	if existing != nil && existing.ProductID != post.ProductID {
		post.Slug = blog.DisambiguateSlug(post.Slug, post.ProductID)
		slog.Debug("Slug taken by another product, disambiguated",
			"product", product.ID, "slug", post.Slug)
	}

	if err := t.postRepo.UpsertPost(post); err != nil {
		return fmt.Errorf("failed to store post: %w", err)
	}

	written, err := t.writer.Run(post, t.ExportFormats)
	if err != nil {
		return fmt.Errorf("failed to export post: %w", err)
	}

	slog.Info("Task completed",
		"type", "GeneratePost",
		"source", t.SourceName,
		"product", product.ID,
		"duration", t.GetDuration(),
		"word_count", post.WordCount,
		"seo_score", post.SEOScore,
		"readability", post.ReadabilityScore,
		"exports", len(written))

	return nil
}
