package database

import (
	"time"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
	"github.com/Vipul251/ai-seo-blog-generator/app/keyword"
)

type SourceRepository interface {
	UpsertSource(name, url, kind string) error
	GetSource(name string) (*Source, error)
	GetSourceCount() (int, error)
	UpdateSourceFetched(name string, nextFetch time.Time) error
}

type ProductRepository interface {
	UpsertProduct(sourceName string, product catalog.Product) error
	GetProduct(id string) (*Product, error)
	GetProducts() ([]Product, error)
	GetProductsWithoutPosts(limit int) ([]Product, error)
	GetProductsWithoutDescriptions(sourceName string, limit int) ([]Product, error)
	UpdateProductDescription(id, description string) error
	GetProductCount() (int, error)
}

type KeywordRepository interface {
	ReplaceProductKeywords(productID string, keywords []keyword.Keyword) error
	GetProductKeywords(productID string) ([]ProductKeyword, error)
	GetKeywordCount() (int, error)
}

type PostRepository interface {
	UpsertPost(post blog.Post) error
	GetPost(id string) (*Post, error)
	GetPostBySlug(slug string) (*Post, error)
	GetPosts() ([]Post, error)
	GetPostCount() (int, error)
}
