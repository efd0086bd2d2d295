package markdown

import (
	"strings"
	"testing"
)

func TestRunHeadings(t *testing.T) {
	renderer := NewRenderer()

	html := renderer.Run("# Title\n\nFirst paragraph.\n\nSecond paragraph.")

	expected := "<h1>Title</h1><p>First paragraph.</p><p>Second paragraph.</p>"
	if html != expected {
		t.Errorf("Expected '%s', got '%s'", expected, html)
	}
}

func TestRunSubheading(t *testing.T) {
	renderer := NewRenderer()

	html := renderer.Run("## Features\n\nGreat stuff.")

	expected := "<h2>Features</h2><p>Great stuff.</p>"
	if html != expected {
		t.Errorf("Expected '%s', got '%s'", expected, html)
	}
}

func TestRunEmphasis(t *testing.T) {
	renderer := NewRenderer()

	html := renderer.Run("This is **bold** and *italic* text.")

	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("Expected bold markup, got '%s'", html)
	}
	if !strings.Contains(html, "<em>italic</em>") {
		t.Errorf("Expected italic markup, got '%s'", html)
	}
}

func TestRunNoMarkersRemain(t *testing.T) {
	renderer := NewRenderer()

	html := renderer.Run("# Head\n\n## Sub\n\nSome **bold** and *italic* prose.\n\nAnother paragraph.")

	if strings.Contains(html, "# ") {
		t.Errorf("Expected heading markers removed, got '%s'", html)
	}
	if strings.Contains(html, "*") {
		t.Errorf("Expected emphasis markers removed, got '%s'", html)
	}
}

func TestRunMidDocumentHeading(t *testing.T) {
	renderer := NewRenderer()

	html := renderer.Run("Intro paragraph.\n\n## Details\n\nBody text.")

	expected := "<p>Intro paragraph.</p><h2>Details</h2><p>Body text.</p>"
	if html != expected {
		t.Errorf("Expected '%s', got '%s'", expected, html)
	}
}

func TestRunPlainParagraph(t *testing.T) {
	renderer := NewRenderer()

	html := renderer.Run("Just a sentence.")
	if html != "<p>Just a sentence.</p>" {
		t.Errorf("Expected wrapped paragraph, got '%s'", html)
	}
}
