package blog

import (
	"strings"
	"testing"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Wireless Bluetooth Headphones", "wireless-bluetooth-headphones"},
		{"It's a Deal! 50% Off", "it-s-a-deal-50-off"},
		{"  Spaces   Everywhere  ", "spaces-everywhere"},
		{"Café & Crème", "caf-cr-me"},
		{"UPPER case MiXeD", "upper-case-mixed"},
	}

	for _, tt := range tests {
		if got := Slug(tt.title); got != tt.expected {
			t.Errorf("Expected slug '%s' for '%s', got '%s'", tt.expected, tt.title, got)
		}
	}
}

func TestSlugLength(t *testing.T) {
	slug := Slug(strings.Repeat("very long product title ", 10))

	if len(slug) > 60 {
		t.Errorf("Expected slug at most 60 characters, got %d", len(slug))
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		t.Errorf("Expected no leading or trailing hyphen, got '%s'", slug)
	}
}

func TestSlugTruncationTrimsHyphen(t *testing.T) {
	// 59 characters followed by a separator: naive truncation would leave "-"
	title := strings.Repeat("a", 59) + " tail"

	slug := Slug(title)
	if strings.HasSuffix(slug, "-") {
		t.Errorf("Expected truncated slug without trailing hyphen, got '%s'", slug)
	}
}

func TestDisambiguateSlug(t *testing.T) {
	slug := DisambiguateSlug("wireless-bluetooth-headphones", "PROD_9f8e7d6c5b4a")

	if slug != "wireless-bluetooth-headphones-7d6c5b4a" {
		t.Errorf("Expected ID-suffixed slug, got '%s'", slug)
	}
}

func TestDisambiguateSlugKeepsLengthCap(t *testing.T) {
	base := Slug(strings.Repeat("very long product title ", 10))

	slug := DisambiguateSlug(base, "PROD_1a2b3c4d5e6f")
	if len(slug) > 60 {
		t.Errorf("Expected disambiguated slug at most 60 characters, got %d", len(slug))
	}
	if !strings.HasSuffix(slug, "-3c4d5e6f") {
		t.Errorf("Expected product-ID suffix retained after truncation, got '%s'", slug)
	}
	if strings.HasPrefix(slug, "-") || strings.Contains(slug, "--") {
		t.Errorf("Expected slug invariants preserved, got '%s'", slug)
	}
}

func TestDisambiguateSlugDeterministic(t *testing.T) {
	first := DisambiguateSlug("wireless-headphones", "PROD_1a2b3c4d5e6f")
	second := DisambiguateSlug("wireless-headphones", "PROD_1a2b3c4d5e6f")

	if first != second {
		t.Errorf("Expected identical output for identical input, got '%s' and '%s'", first, second)
	}
}

func TestMetaDescription(t *testing.T) {
	content := "# Headline\n\nThis is the intro paragraph describing the product in some detail."

	description := MetaDescription(content)

	if !strings.HasSuffix(description, "...") {
		t.Errorf("Expected ellipsis suffix, got '%s'", description)
	}
	if strings.Contains(description, "#") {
		t.Errorf("Expected heading markers stripped, got '%s'", description)
	}
	if strings.Contains(description, "\n") {
		t.Errorf("Expected newlines stripped, got '%s'", description)
	}
	if !strings.Contains(description, "Headline") {
		t.Errorf("Expected heading text retained, got '%s'", description)
	}
}

func TestMetaDescriptionLength(t *testing.T) {
	content := strings.Repeat("somewhat lengthy words ", 40)

	description := MetaDescription(content)
	if len(description) > 160 {
		t.Errorf("Expected meta description within budget, got %d characters", len(description))
	}
	if !strings.HasSuffix(description, "...") {
		t.Error("Expected ellipsis suffix on truncated description")
	}
}

func TestMetaDescriptionShortContent(t *testing.T) {
	if got := MetaDescription("Short text."); got != "Short text...." {
		t.Errorf("Expected 'Short text....', got '%s'", got)
	}
}
