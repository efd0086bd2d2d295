package database

import (
	"encoding/json"
	"time"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
)

type Source struct {
	ID            string // Database UUID
	Name          string // Configuration source identifier derived from filename
	URL           string
	Kind          string
	LastFetchedAt *time.Time
	NextFetchAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Product struct {
	ID          string
	SourceName  string
	Title       string
	Price       string
	Rating      string
	ReviewCount string
	Category    string
	Description string
	SourceURL   string
	TrendScore  int
	FetchedAt   time.Time
	CreatedAt   time.Time
}

// ToCatalogProduct converts the database row back into the pipeline's input
// record.
func (p Product) ToCatalogProduct() catalog.Product {
	return catalog.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Category:    p.Category,
		Description: p.Description,
		SourceURL:   p.SourceURL,
		TrendScore:  p.TrendScore,
	}
}

type ProductKeyword struct {
	ID              string
	ProductID       string
	Position        int
	Text            string
	VolumeScore     int
	DifficultyScore int
	RelevanceScore  int
	CombinedScore   float64
	CreatedAt       time.Time
}

type Post struct {
	ID               string
	ProductID        string
	ProductName      string
	Content          string
	Keywords         string // JSON array of keyword texts
	WordCount        int
	SEOScore         int
	ReadabilityScore float64
	GeneratedAt      time.Time
	MetaDescription  string
	Slug             string
	CreatedAt        time.Time
}

// ToBlogPost converts the database row back into the domain value.
func (p Post) ToBlogPost() blog.Post {
	var keywords []string
	// Keyword lists are written by UpsertPost; a decode failure means a
	// corrupted row and surfaces as an empty keyword list downstream.
	_ = json.Unmarshal([]byte(p.Keywords), &keywords)

	return blog.Post{
		ID:               p.ID,
		ProductID:        p.ProductID,
		ProductName:      p.ProductName,
		Content:          p.Content,
		Keywords:         keywords,
		WordCount:        p.WordCount,
		SEOScore:         p.SEOScore,
		ReadabilityScore: p.ReadabilityScore,
		GeneratedAt:      p.GeneratedAt,
		MetaDescription:  p.MetaDescription,
		Slug:             p.Slug,
	}
}
