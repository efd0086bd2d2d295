package scraper

import (
	"fmt"
	"log/slog"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// descriptionMaxLength bounds extracted descriptions; product descriptions
// feed a single template sentence, not a full article.
const descriptionMaxLength = 300

type DescriptionExtractor struct{}

func NewDescriptionExtractor() *DescriptionExtractor {
	return &DescriptionExtractor{}
}

// Run extracts readable text from a product page and condenses it into a
// description suitable for the content templater.
func (e *DescriptionExtractor) Run(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("HTML data is empty")
	}

	article, err := readability.FromReader(strings.NewReader(string(data)), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	if text == "" {
		return "", fmt.Errorf("no content extracted from HTML data")
	}

	if len(text) > descriptionMaxLength {
		cut := strings.LastIndex(text[:descriptionMaxLength], " ")
		if cut <= 0 {
			cut = descriptionMaxLength
		}
		text = text[:cut]
	}

	slog.Debug("Description extracted successfully",
		"title", article.Title,
		"description_length", len(text))

	return text, nil
}
