package scraper

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
)

// starRatingWords maps star-rating CSS class words (books.toscrape style)
// to display rating strings.
var starRatingWords = map[string]string{
	"One":   "1.0",
	"Two":   "2.0",
	"Three": "3.0",
	"Four":  "4.0",
	"Five":  "5.0",
}

func (s *Scraper) parseCatalog(data []byte, source *catalog.Config) ([]catalog.Product, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	baseURL, err := url.Parse(source.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source URL: %w", err)
	}

	sel := source.Selectors
	var products []catalog.Product

	doc.Find(sel.Item).Each(func(_ int, item *goquery.Selection) {
		title := selectValue(item, sel.Title, sel.TitleAttr)
		if title == "" {
			return
		}

		link := selectValue(item, sel.Link, sel.LinkAttr)
		if link != "" {
			if ref, err := url.Parse(link); err == nil {
				link = baseURL.ResolveReference(ref).String()
			}
		}

		products = append(products, catalog.Product{
			ID:          productID(source.Name, link, title),
			Title:       title,
			Price:       selectValue(item, sel.Price, ""),
			Rating:      s.extractRating(item, sel.Rating),
			ReviewCount: selectValue(item, sel.ReviewCount, ""),
			Category:    source.Settings.Category,
			Description: selectValue(item, sel.Description, ""),
			SourceURL:   link,
			TrendScore:  source.Settings.TrendScore,
		})
	})

	return products, nil
}

// extractRating reads the rating element's text, falling back to the
// star-rating class convention when the element carries no text.
func (s *Scraper) extractRating(item *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}

	el := item.Find(selector).First()
	if text := strings.TrimSpace(el.Text()); text != "" {
		return text
	}

	class, _ := el.Attr("class")
	for _, word := range strings.Fields(class) {
		if rating, ok := starRatingWords[word]; ok {
			return rating
		}
	}

	return ""
}

func selectValue(item *goquery.Selection, selector, attr string) string {
	if selector == "" {
		return ""
	}

	el := item.Find(selector).First()
	if attr != "" {
		value, _ := el.Attr(attr)
		return strings.TrimSpace(value)
	}
	return strings.TrimSpace(el.Text())
}
