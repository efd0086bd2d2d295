package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
)

func (s *Scraper) parseFeed(data []byte, source *catalog.Config) ([]catalog.Product, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	products := make([]catalog.Product, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil || item.Title == "" {
			continue
		}

		category := source.Settings.Category
		if len(item.Categories) > 0 && item.Categories[0] != "" {
			category = item.Categories[0]
		}

		products = append(products, catalog.Product{
			ID:          productID(source.Name, item.Link, item.Title),
			Title:       item.Title,
			Category:    category,
			Description: strings.TrimSpace(item.Description),
			SourceURL:   item.Link,
			TrendScore:  source.Settings.TrendScore,
		})
	}

	return products, nil
}
