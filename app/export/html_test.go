package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDocumentRun(t *testing.T) {
	document := NewDocument()
	post := samplePost()

	doc := document.Run(post)

	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("Expected a standalone HTML document")
	}
	if !strings.Contains(doc, "<title>Wireless Bluetooth Headphones</title>") {
		t.Error("Expected product name as document title")
	}
	if !strings.Contains(doc, "<h1>") {
		t.Error("Expected rendered level-1 heading")
	}
	if !strings.Contains(doc, "<meta name=\"description\"") {
		t.Error("Expected meta description tag")
	}
	if !strings.Contains(doc, "<strong>Word Count:</strong> 24 words") {
		t.Error("Expected word count in metadata panel")
	}
	if !strings.Contains(doc, "<strong>SEO Score:</strong> 85/100") {
		t.Error("Expected SEO score in metadata panel")
	}
	if !strings.Contains(doc, "<strong>Readability Score:</strong> 72.5/100") {
		t.Error("Expected readability score in metadata panel")
	}

	if got := strings.Count(doc, "keyword-tag"); got != len(post.Keywords)+1 {
		// One occurrence is the CSS class definition
		t.Errorf("Expected %d keyword tags, got %d", len(post.Keywords), got-1)
	}
}

func TestDocumentRunEscapesMetadata(t *testing.T) {
	document := NewDocument()
	post := samplePost()
	post.ProductName = `Headphones <script>alert("x")</script>`

	doc := document.Run(post)

	if strings.Contains(doc, "<script>") {
		t.Error("Expected product name escaped in document title")
	}
}

func TestWriterRun(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewWriter(tempDir)
	post := samplePost()

	written, err := writer.Run(post, []string{"html", "wordpress", "medium"})
	if err != nil {
		t.Fatal(err)
	}

	if len(written) != 3 {
		t.Fatalf("Expected 3 written files, got %d", len(written))
	}

	expected := []string{
		"blog_wireless-bluetooth-headphones.html",
		"wp_wireless-bluetooth-headphones.json",
		"medium_wireless-bluetooth-headphones.md",
	}
	for _, name := range expected {
		path := filepath.Join(tempDir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("Expected file %s to exist: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("Expected file %s to be non-empty", name)
		}
	}
}

func TestWriterRunSkipsUnknownFormat(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewWriter(tempDir)

	written, err := writer.Run(samplePost(), []string{"pdf", "html"})
	if err != nil {
		t.Fatal(err)
	}

	if len(written) != 1 {
		t.Errorf("Expected only the html export, got %d files", len(written))
	}
}

func TestWriterWriteReport(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewWriter(tempDir)

	path, err := writer.WriteReport("report body")
	if err != nil {
		t.Fatal(err)
	}

	if filepath.Base(path) != "seo_blog_creation_report.txt" {
		t.Errorf("Expected fixed report filename, got '%s'", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "report body" {
		t.Errorf("Expected report content written verbatim, got '%s'", data)
	}
}

func TestWriterRunCreatesOutputDir(t *testing.T) {
	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "out", "posts")
	writer := NewWriter(nested)

	if _, err := writer.Run(samplePost(), []string{"medium"}); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(nested); err != nil {
		t.Errorf("Expected output directory to be created: %v", err)
	}
}
