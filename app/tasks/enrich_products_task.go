package tasks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
	"github.com/Vipul251/ai-seo-blog-generator/app/database"
	"github.com/Vipul251/ai-seo-blog-generator/app/scraper"
)

// EnrichProductsTask fills in empty product descriptions by extracting
// readable text from each product's source page.
type EnrichProductsTask struct {
	Task
	SourceConfig *catalog.Config
	httpClient   *http.Client
	extractor    *scraper.DescriptionExtractor
	productRepo  database.ProductRepository
	userAgent    string
}

func NewEnrichProductsTask(sourceName string, sourceConfig *catalog.Config, httpClient *http.Client,
	extractor *scraper.DescriptionExtractor, productRepo database.ProductRepository, userAgent string) *EnrichProductsTask {
	return &EnrichProductsTask{
		Task:         NewTask(TaskTypeEnrichProducts, sourceName),
		SourceConfig: sourceConfig,
		httpClient:   httpClient,
		extractor:    extractor,
		productRepo:  productRepo,
		userAgent:    userAgent,
	}
}

func (t *EnrichProductsTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if !t.SourceConfig.Settings.ExtractDescriptions {
		slog.Debug("Description extraction disabled for source", "source", t.SourceName)
		return nil
	}

	products, err := t.productRepo.GetProductsWithoutDescriptions(t.SourceName, t.SourceConfig.Settings.MaxProducts)
	if err != nil {
		return fmt.Errorf("failed to get products for description extraction: %w", err)
	}

	if len(products) == 0 {
		slog.Debug("No products need description extraction", "source", t.SourceName)
		return nil
	}

	successCount := 0
	errorCount := 0

	for _, product := range products {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := t.enrichProduct(ctx, product); err != nil {
			slog.Error("Failed to extract description for product", "product_id", product.ID, "url", product.SourceURL, "error", err)
			errorCount++
		} else {
			successCount++
		}
	}

	slog.Info("Task completed",
		"type", "EnrichProducts",
		"source", t.SourceName,
		"duration", t.GetDuration(),
		"success", successCount,
		"errors", errorCount)

	return nil
}

func (t *EnrichProductsTask) enrichProduct(ctx context.Context, product database.Product) error {
	if product.SourceURL == "" {
		return fmt.Errorf("product has no source URL")
	}

	data, err := t.fetchProductPage(ctx, product.SourceURL)
	if err != nil {
		return fmt.Errorf("failed to fetch product page: %w", err)
	}

	description, err := t.extractor.Run(data)
	if err != nil {
		return fmt.Errorf("failed to extract description: %w", err)
	}

	if err := t.productRepo.UpdateProductDescription(product.ID, description); err != nil {
		return fmt.Errorf("failed to update product description: %w", err)
	}

	slog.Debug("Description extracted successfully", "product_id", product.ID, "url", product.SourceURL, "description_length", len(description))
	return nil
}

func (t *EnrichProductsTask) fetchProductPage(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, time.Duration(t.SourceConfig.Settings.Timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), "text/html") {
		return nil, fmt.Errorf("content type is not HTML: %s", contentType)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
