// Package scraper acquires product records from configured sources: HTML
// catalog listings parsed with goquery, or RSS/Atom product feeds parsed
// with gofeed. Acquired products are the validated input boundary of the
// content pipeline.
package scraper

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
)

type Scraper struct {
	httpClient *http.Client
	userAgent  string
}

func NewScraper(httpClient *http.Client, userAgent string) *Scraper {
	return &Scraper{
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// Run fetches the source URL and extracts up to MaxProducts product records.
func (s *Scraper) Run(ctx context.Context, source *catalog.Config) ([]catalog.Product, error) {
	data, err := s.fetch(ctx, source.URL, source.Settings.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source: %w", err)
	}

	var products []catalog.Product
	switch source.Kind {
	case catalog.SourceKindFeed:
		products, err = s.parseFeed(data, source)
	default:
		products, err = s.parseCatalog(data, source)
	}
	if err != nil {
		return nil, err
	}

	if len(products) > source.Settings.MaxProducts {
		products = products[:source.Settings.MaxProducts]
	}

	return products, nil
}

func (s *Scraper) fetch(ctx context.Context, url string, timeout int) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// productID derives a stable identifier from the source name and the
// product's most specific attribute (its link, falling back to the title).
func productID(sourceName, link, title string) string {
	key := link
	if key == "" {
		key = title
	}
	sum := sha256.Sum256([]byte(sourceName + "|" + key))
	return "PROD_" + hex.EncodeToString(sum[:])[:12]
}
