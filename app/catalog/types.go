package catalog

// Product is an acquired product record. Display fields (price, rating,
// review count) keep the source's original formatting.
type Product struct {
	ID          string
	Title       string
	Price       string
	Rating      string
	ReviewCount string
	Category    string
	Description string
	SourceURL   string
	TrendScore  int
}

// Source configuration types

const (
	SourceKindCatalog = "catalog"
	SourceKindFeed    = "feed"
)

type Config struct {
	Name      string          // Derived from filename (without .yml extension)
	URL       string          `yaml:"url"`
	Kind      string          `yaml:"kind"` // catalog (HTML listing) or feed (RSS/Atom)
	Settings  ConfigSettings  `yaml:"settings"`
	Selectors ConfigSelectors `yaml:"selectors"` // catalog sources only
}

type ConfigSettings struct {
	Enabled             bool     `yaml:"enabled"`
	RefreshInterval     int      `yaml:"refresh_interval"` // seconds
	MaxProducts         int      `yaml:"max_products"`
	Timeout             int      `yaml:"timeout"` // seconds
	ExtractDescriptions bool     `yaml:"extract_descriptions"`
	Category            string   `yaml:"category"`       // default category for acquired products
	TrendScore          int      `yaml:"trend_score"`    // default trend score for acquired products
	ExportFormats       []string `yaml:"export_formats"` // html, wordpress, medium
}

// ConfigSelectors are CSS selectors for catalog (HTML listing) sources.
// Defaults match a books.toscrape.com style product grid.
type ConfigSelectors struct {
	Item        string `yaml:"item"`
	Title       string `yaml:"title"`
	TitleAttr   string `yaml:"title_attr"` // read attribute instead of text when set
	Price       string `yaml:"price"`
	Rating      string `yaml:"rating"`
	ReviewCount string `yaml:"review_count"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
	LinkAttr    string `yaml:"link_attr"`
}
