package keyword

import (
	"reflect"
	"testing"
)

func TestExtractBaseTerms(t *testing.T) {
	terms := ExtractBaseTerms("Wireless Bluetooth Headphones Pro X2")

	expected := []string{"wireless", "bluetooth", "headphones"}
	if !reflect.DeepEqual(terms, expected) {
		t.Errorf("Expected %v, got %v", expected, terms)
	}
}

func TestExtractBaseTermsSkipsShortTokens(t *testing.T) {
	terms := ExtractBaseTerms("4K UHD TV Set")
	if len(terms) != 0 {
		t.Errorf("Expected no base terms, got %v", terms)
	}
}

func TestGeneratorRunVariations(t *testing.T) {
	generator := NewGenerator()

	variations := generator.Run([]string{"wireless", "headphones"}, "Electronics")

	contains := func(v string) bool {
		for _, candidate := range variations {
			if candidate == v {
				return true
			}
		}
		return false
	}

	expected := []string{
		"wireless",
		"wireless electronics",
		"best wireless",
		"wireless best",
		"top wireless",
		"buy wireless",
		"wireless price",
		"2025 wireless",
		"headphones",
		"wireless headphones",
		"best wireless headphones",
	}
	for _, v := range expected {
		if !contains(v) {
			t.Errorf("Expected variation '%s' to be generated", v)
		}
	}

	if contains("guide wireless") {
		t.Error("Expected only the first two modifiers per class to be used")
	}
}

func TestGeneratorRunDeduplicates(t *testing.T) {
	generator := NewGenerator()

	variations := generator.Run([]string{"wireless", "wireless"}, "Electronics")

	seen := make(map[string]int)
	for _, v := range variations {
		seen[v]++
		if seen[v] > 1 {
			t.Errorf("Variation '%s' appears more than once", v)
		}
	}
}

func TestGeneratorRunStableOrder(t *testing.T) {
	generator := NewGenerator()

	first := generator.Run([]string{"wireless", "headphones"}, "Electronics")
	second := generator.Run([]string{"wireless", "headphones"}, "Electronics")

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical variation order across runs")
	}
}

func TestGeneratorRunEmptyInput(t *testing.T) {
	generator := NewGenerator()

	variations := generator.Run(nil, "Electronics")
	if len(variations) != 0 {
		t.Errorf("Expected no variations for empty input, got %v", variations)
	}
}

func TestGeneratorRunCoreTermLimit(t *testing.T) {
	generator := NewGenerator()

	variations := generator.Run([]string{"alpha1", "bravo1", "charlie1", "deltaX"}, "Gear")

	for _, v := range variations {
		if v == "deltax" || v == "deltaX" {
			t.Error("Expected at most three core terms to be expanded")
		}
	}
}
