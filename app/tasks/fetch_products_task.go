package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
	"github.com/Vipul251/ai-seo-blog-generator/app/database"
	"github.com/Vipul251/ai-seo-blog-generator/app/scraper"
)

type FetchProductsTask struct {
	Task
	SourceConfig *catalog.Config
	scraper      *scraper.Scraper
	sourceRepo   database.SourceRepository
	productRepo  database.ProductRepository
}

func NewFetchProductsTask(sourceName string, sourceConfig *catalog.Config, productScraper *scraper.Scraper,
	sourceRepo database.SourceRepository, productRepo database.ProductRepository) *FetchProductsTask {
	return &FetchProductsTask{
		Task:         NewTask(TaskTypeFetchProducts, sourceName),
		SourceConfig: sourceConfig,
		scraper:      productScraper,
		sourceRepo:   sourceRepo,
		productRepo:  productRepo,
	}
}

func (t *FetchProductsTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if !t.SourceConfig.Settings.Enabled {
		slog.Debug("Source disabled, skipping", "source", t.SourceName)
		return nil
	}

	products, err := t.scraper.Run(ctx, t.SourceConfig)
	if err != nil {
		return fmt.Errorf("failed to acquire products: %w", err)
	}

	storedCount := 0
	for _, product := range products {
		if err := t.productRepo.UpsertProduct(t.SourceName, product); err != nil {
			return fmt.Errorf("failed to upsert product: %w", err)
		}
		storedCount++
	}

	nextFetch := time.Now().UTC().Add(time.Duration(t.SourceConfig.Settings.RefreshInterval) * time.Second)
	if err := t.sourceRepo.UpdateSourceFetched(t.SourceName, nextFetch); err != nil {
		return fmt.Errorf("failed to update source fetch times: %w", err)
	}

	slog.Info("Task completed",
		"type", "FetchProducts",
		"source", t.SourceName,
		"duration", t.GetDuration(),
		"total", len(products),
		"stored", storedCount)

	return nil
}
