package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigCacheLoadValidConfig(t *testing.T) {
	// Create temp directory
	tempDir := t.TempDir()

	// Create test YAML file
	content := `
url: "https://books.toscrape.com/"
kind: "catalog"

settings:
  enabled: true
  refresh_interval: 1800
  max_products: 10
  timeout: 15
  category: "Books"
  trend_score: 80
  export_formats:
    - "html"
    - "medium"

selectors:
  item: ".product_pod"
  price: ".price_color"
`

	err := os.WriteFile(filepath.Join(tempDir, "books.yml"), []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	// Load sourceConfig
	configCache := NewConfigCache(tempDir)
	err = configCache.Run()
	if err != nil {
		t.Fatal(err)
	}

	if configCache.GetConfigCount() != 1 {
		t.Errorf("Expected 1 sourceConfig, got %d", configCache.GetConfigCount())
	}

	// Get the sourceConfig by name
	sourceConfig, err := configCache.GetConfig("books")
	if err != nil {
		t.Fatal(err)
	}

	// Validate loaded values
	if sourceConfig.Name != "books" {
		t.Errorf("Expected name 'books', got '%s'", sourceConfig.Name)
	}
	if sourceConfig.URL != "https://books.toscrape.com/" {
		t.Errorf("Expected URL 'https://books.toscrape.com/', got '%s'", sourceConfig.URL)
	}
	if sourceConfig.Kind != SourceKindCatalog {
		t.Errorf("Expected kind 'catalog', got '%s'", sourceConfig.Kind)
	}
	if !sourceConfig.Settings.Enabled {
		t.Error("Expected source to be enabled")
	}
	if sourceConfig.Settings.RefreshInterval != 1800 {
		t.Errorf("Expected refresh interval 1800, got %d", sourceConfig.Settings.RefreshInterval)
	}
	if sourceConfig.Settings.MaxProducts != 10 {
		t.Errorf("Expected max products 10, got %d", sourceConfig.Settings.MaxProducts)
	}
	if sourceConfig.Settings.Category != "Books" {
		t.Errorf("Expected category 'Books', got '%s'", sourceConfig.Settings.Category)
	}
	if len(sourceConfig.Settings.ExportFormats) != 2 {
		t.Errorf("Expected 2 export formats, got %d", len(sourceConfig.Settings.ExportFormats))
	}
}

func TestConfigCacheDefaults(t *testing.T) {
	tempDir := t.TempDir()

	content := `
url: "https://books.toscrape.com/"
`
	err := os.WriteFile(filepath.Join(tempDir, "minimal.yml"), []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	configCache := NewConfigCache(tempDir)
	if err := configCache.Run(); err != nil {
		t.Fatal(err)
	}

	sourceConfig, err := configCache.GetConfig("minimal")
	if err != nil {
		t.Fatal(err)
	}

	if sourceConfig.Kind != SourceKindCatalog {
		t.Errorf("Expected default kind 'catalog', got '%s'", sourceConfig.Kind)
	}
	if sourceConfig.Settings.RefreshInterval != 3600 {
		t.Errorf("Expected default refresh interval 3600, got %d", sourceConfig.Settings.RefreshInterval)
	}
	if sourceConfig.Settings.MaxProducts != 20 {
		t.Errorf("Expected default max products 20, got %d", sourceConfig.Settings.MaxProducts)
	}
	if sourceConfig.Settings.Timeout != 30 {
		t.Errorf("Expected default timeout 30, got %d", sourceConfig.Settings.Timeout)
	}
	if sourceConfig.Settings.Category != "General" {
		t.Errorf("Expected default category 'General', got '%s'", sourceConfig.Settings.Category)
	}
	if len(sourceConfig.Settings.ExportFormats) != 3 {
		t.Errorf("Expected 3 default export formats, got %d", len(sourceConfig.Settings.ExportFormats))
	}

	// Catalog sources fall back to a books.toscrape.com style grid
	if sourceConfig.Selectors.Item != ".product_pod" {
		t.Errorf("Expected default item selector '.product_pod', got '%s'", sourceConfig.Selectors.Item)
	}
	if sourceConfig.Selectors.Title != "h3 a" || sourceConfig.Selectors.TitleAttr != "title" {
		t.Errorf("Expected default title selector 'h3 a' with attr 'title', got '%s'/'%s'",
			sourceConfig.Selectors.Title, sourceConfig.Selectors.TitleAttr)
	}
	if sourceConfig.Selectors.LinkAttr != "href" {
		t.Errorf("Expected default link attr 'href', got '%s'", sourceConfig.Selectors.LinkAttr)
	}
}

func TestConfigCacheMissingURL(t *testing.T) {
	tempDir := t.TempDir()

	content := `
settings:
  enabled: true
`
	err := os.WriteFile(filepath.Join(tempDir, "broken.yml"), []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	configCache := NewConfigCache(tempDir)
	err = configCache.Run()
	if err == nil {
		t.Fatal("Expected error for config without URL")
	}
	if !strings.Contains(err.Error(), "source URL is required") {
		t.Errorf("Expected URL validation error, got: %v", err)
	}
}

func TestConfigCacheInvalidKind(t *testing.T) {
	tempDir := t.TempDir()

	content := `
url: "https://example.com/"
kind: "sitemap"
`
	err := os.WriteFile(filepath.Join(tempDir, "badkind.yml"), []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	configCache := NewConfigCache(tempDir)
	if err := configCache.Run(); err == nil {
		t.Fatal("Expected error for invalid source kind")
	}
}

func TestConfigCacheInvalidExportFormat(t *testing.T) {
	tempDir := t.TempDir()

	content := `
url: "https://example.com/"
settings:
  export_formats:
    - "html"
    - "pdf"
`
	err := os.WriteFile(filepath.Join(tempDir, "badformat.yml"), []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	configCache := NewConfigCache(tempDir)
	err = configCache.Run()
	if err == nil {
		t.Fatal("Expected error for invalid export format")
	}
	if !strings.Contains(err.Error(), "invalid export format") {
		t.Errorf("Expected export format validation error, got: %v", err)
	}
}

func TestConfigCacheGetEnabledConfigs(t *testing.T) {
	tempDir := t.TempDir()

	enabled := `
url: "https://example.com/a"
settings:
  enabled: true
`
	disabled := `
url: "https://example.com/b"
settings:
  enabled: false
`
	if err := os.WriteFile(filepath.Join(tempDir, "on.yml"), []byte(enabled), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tempDir, "off.yml"), []byte(disabled), 0644); err != nil {
		t.Fatal(err)
	}

	configCache := NewConfigCache(tempDir)
	if err := configCache.Run(); err != nil {
		t.Fatal(err)
	}

	if configCache.GetConfigCount() != 2 {
		t.Errorf("Expected 2 loaded configs, got %d", configCache.GetConfigCount())
	}

	enabledConfigs := configCache.GetEnabledConfigs()
	if len(enabledConfigs) != 1 {
		t.Fatalf("Expected 1 enabled config, got %d", len(enabledConfigs))
	}
	if _, ok := enabledConfigs["on"]; !ok {
		t.Error("Expected 'on' to be the enabled config")
	}
}

func TestConfigCacheMissingDirectory(t *testing.T) {
	configCache := NewConfigCache("/nonexistent/sources")

	if err := configCache.Run(); err != nil {
		t.Errorf("Expected missing directory to be tolerated, got: %v", err)
	}
	if configCache.GetConfigCount() != 0 {
		t.Errorf("Expected no configs, got %d", configCache.GetConfigCount())
	}
}

func TestConfigCacheGetConfigNotFound(t *testing.T) {
	configCache := NewConfigCache(t.TempDir())

	_, err := configCache.GetConfig("unknown")
	if err == nil {
		t.Error("Expected error for unknown source name")
	}
}
