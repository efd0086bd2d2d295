package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
	"github.com/Vipul251/ai-seo-blog-generator/app/cfg"
	"github.com/Vipul251/ai-seo-blog-generator/app/database"
	"github.com/Vipul251/ai-seo-blog-generator/app/export"
	"github.com/Vipul251/ai-seo-blog-generator/app/keyword"
	"github.com/Vipul251/ai-seo-blog-generator/app/scraper"
	"github.com/Vipul251/ai-seo-blog-generator/app/tasks"
	"github.com/gin-gonic/gin"
)

func NewHandler(configCache *catalog.ConfigCache, sourceRepo database.SourceRepository,
	productRepo database.ProductRepository, keywordRepo database.KeywordRepository,
	postRepo database.PostRepository, productScraper *scraper.Scraper,
	scheduler tasks.TaskSchedulerInterface, wpPublisher PublisherInterface) *Handler {
	return &Handler{
		configCache:   configCache,
		sourceRepo:    sourceRepo,
		productRepo:   productRepo,
		keywordRepo:   keywordRepo,
		postRepo:      postRepo,
		document:      export.NewDocument(),
		reportBuilder: export.NewReportBuilder(),
		writer:        export.NewWriter(cfg.Get().OutputDir),
		scraper:       productScraper,
		scheduler:     scheduler,
		publisher:     wpPublisher,
	}
}

func (h *Handler) GetPost(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	post, err := h.postRepo.GetPostBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_post", "slug", slug, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if post == nil {
		c.Status(http.StatusNotFound)
		return
	}

	blogPost := post.ToBlogPost()
	doc := h.document.Run(blogPost)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Header("X-Post-Words", strconv.Itoa(blogPost.WordCount))
	c.Header("X-Post-Slug", blogPost.Slug)
	c.Header("X-Generated-At", blogPost.GeneratedAt.Format(time.RFC3339))

	c.String(http.StatusOK, doc)
}

func (h *Handler) GetPostMarkdown(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	post, err := h.postRepo.GetPostBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_post", "slug", slug, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if post == nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Content-Type", "text/markdown; charset=utf-8")
	c.String(http.StatusOK, export.FlatMarkdown(post.ToBlogPost()))
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if sourceCount, err := h.sourceRepo.GetSourceCount(); err == nil {
		health["sources"] = sourceCount
	}

	if postCount, err := h.postRepo.GetPostCount(); err == nil {
		health["posts"] = postCount
	}

	health["loaded_configurations"] = h.configCache.GetConfigCount()

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"timestamp":             time.Now().In(time.Local).Format(time.RFC3339),
		"loaded_configurations": h.configCache.GetConfigCount(),
	}

	if sourceCount, err := h.sourceRepo.GetSourceCount(); err == nil {
		stats["sources"] = sourceCount
	}

	if productCount, err := h.productRepo.GetProductCount(); err == nil {
		stats["products"] = productCount
	}

	if keywordCount, err := h.keywordRepo.GetKeywordCount(); err == nil {
		stats["keywords"] = keywordCount
	}

	if posts, err := h.postRepo.GetPosts(); err == nil {
		totalWords := 0
		for _, post := range posts {
			totalWords += post.WordCount
		}

		stats["posts"] = len(posts)
		stats["total_words"] = totalWords
		if len(posts) > 0 {
			stats["average_words"] = totalWords / len(posts)
		}
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) APIListPosts(c *gin.Context) {
	posts, err := h.postRepo.GetPosts()
	if err != nil {
		slog.Error("Database error", "operation", "get_posts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	summaries := make([]map[string]interface{}, 0, len(posts))

	for _, post := range posts {
		blogPost := post.ToBlogPost()
		summaries = append(summaries, map[string]interface{}{
			"id":                post.ID,
			"product_id":        post.ProductID,
			"product_name":      post.ProductName,
			"slug":              post.Slug,
			"word_count":        post.WordCount,
			"seo_score":         post.SEOScore,
			"readability_score": post.ReadabilityScore,
			"keywords":          blogPost.Keywords,
			"meta_description":  post.MetaDescription,
			"generated_at":      post.GeneratedAt,
		})
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"posts": summaries,
		"total": len(summaries),
	})
}

func (h *Handler) APIGetPostPackage(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing post slug parameter"})
		return
	}

	post, err := h.postRepo.GetPostBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_post", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, export.BuildWordPressPackage(post.ToBlogPost()))
}

func (h *Handler) APIGetReport(c *gin.Context) {
	rows, err := h.productRepo.GetProducts()
	if err != nil {
		slog.Error("Database error", "operation", "get_products", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	products := make([]catalog.Product, 0, len(rows))
	keywords := make(map[string][]keyword.Keyword, len(rows))

	for _, row := range rows {
		products = append(products, row.ToCatalogProduct())

		productKeywords, err := h.keywordRepo.GetProductKeywords(row.ID)
		if err != nil {
			slog.Error("Database error", "operation", "get_keywords", "product", row.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		for _, pk := range productKeywords {
			keywords[row.ID] = append(keywords[row.ID], keyword.Keyword{
				Text:            pk.Text,
				VolumeScore:     pk.VolumeScore,
				DifficultyScore: pk.DifficultyScore,
				RelevanceScore:  pk.RelevanceScore,
				CombinedScore:   pk.CombinedScore,
			})
		}
	}

	postRows, err := h.postRepo.GetPosts()
	if err != nil {
		slog.Error("Database error", "operation", "get_posts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	posts := make([]blog.Post, 0, len(postRows))
	for _, row := range postRows {
		posts = append(posts, row.ToBlogPost())
	}

	report := h.reportBuilder.Run(products, keywords, posts)

	if path, err := h.writer.WriteReport(report); err != nil {
		slog.Warn("Failed to write report file", "error", err)
	} else {
		c.Header("X-Report-Path", path)
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, report)
}

func (h *Handler) APIRefreshSource(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing source name parameter"})
		return
	}

	sourceConfig, err := h.configCache.LoadConfig(name)
	if err != nil {
		slog.Error("Source configuration not found", "source", name, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Source configuration not found"})
		return
	}

	syncSourceTask := tasks.NewSyncSourceTask(name, sourceConfig, h.sourceRepo)
	err = h.scheduler.EnqueueTask(syncSourceTask)
	if err != nil {
		slog.Error("Error enqueueing sync task", "source", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue sync task",
			"details": err.Error(),
		})
		return
	}

	fetchProductsTask := tasks.NewFetchProductsTask(name, sourceConfig, h.scraper, h.sourceRepo, h.productRepo)
	err = h.scheduler.EnqueueTask(fetchProductsTask)
	if err != nil {
		slog.Error("Error enqueueing fetch task", "source", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue fetch task",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Configuration reloaded and tasks enqueued successfully",
		"source": gin.H{
			"name": name,
			"url":  sourceConfig.URL,
			"kind": sourceConfig.Kind,
		},
		"tasks": []gin.H{
			{
				"id":   syncSourceTask.ID,
				"type": syncSourceTask.Type,
			},
			{
				"id":   fetchProductsTask.ID,
				"type": fetchProductsTask.Type,
			},
		},
	})
}

func (h *Handler) APIPublishPost(c *gin.Context) {
	if h.publisher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Publishing disabled",
			"message": "Set PUBLISH_URL to enable WordPress publishing",
		})
		return
	}

	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing post slug parameter"})
		return
	}

	post, err := h.postRepo.GetPostBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_post", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	pkg := export.BuildWordPressPackage(post.ToBlogPost())

	err = h.publisher.Run(c.Request.Context(), pkg)
	if err != nil {
		slog.Error("Publish error", "slug", slug, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to publish post",
			"details": err.Error(),
		})
		return
	}

	slog.Info("Post published", "slug", slug, "title", pkg.Title)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post published successfully",
		"post": gin.H{
			"slug":  slug,
			"title": pkg.Title,
		},
	})
}
