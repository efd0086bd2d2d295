package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Vipul251/ai-seo-blog-generator/app/catalog"
)

var _ ProductRepository = (*ProductRepositoryImpl)(nil)

type ProductRepositoryImpl struct {
	db *DB
}

func NewProductRepository(db *DB) *ProductRepositoryImpl {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) UpsertProduct(sourceName string, product catalog.Product) error {
	_, err := r.db.Exec(`
		INSERT INTO products (
			id, source_name, title, price, rating, review_count,
			category, description, source_url, trend_score, fetched_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			price = excluded.price,
			rating = excluded.rating,
			review_count = excluded.review_count,
			category = excluded.category,
			description = CASE WHEN excluded.description != '' THEN excluded.description ELSE products.description END,
			source_url = excluded.source_url,
			trend_score = excluded.trend_score,
			fetched_at = excluded.fetched_at
	`, product.ID, sourceName, product.Title, product.Price, product.Rating,
		product.ReviewCount, product.Category, product.Description,
		product.SourceURL, product.TrendScore, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}

	return nil
}

func (r *ProductRepositoryImpl) GetProduct(id string) (*Product, error) {
	row := r.db.QueryRow(productSelect+" WHERE id = ?", id)

	product, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (r *ProductRepositoryImpl) GetProducts() ([]Product, error) {
	rows, err := r.db.Query(productSelect + " ORDER BY trend_score DESC, created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepositoryImpl) GetProductsWithoutPosts(limit int) ([]Product, error) {
	rows, err := r.db.Query(productSelect+`
		WHERE id NOT IN (SELECT product_id FROM posts)
		ORDER BY trend_score DESC, created_at
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get products without posts: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepositoryImpl) GetProductsWithoutDescriptions(sourceName string, limit int) ([]Product, error) {
	rows, err := r.db.Query(productSelect+`
		WHERE source_name = ? AND description = '' AND source_url != ''
		ORDER BY trend_score DESC, created_at
		LIMIT ?
	`, sourceName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get products without descriptions: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepositoryImpl) UpdateProductDescription(id, description string) error {
	_, err := r.db.Exec(`
		UPDATE products
		SET description = ?
		WHERE id = ?
	`, description, id)

	if err != nil {
		return fmt.Errorf("failed to update product description: %w", err)
	}

	return nil
}

func (r *ProductRepositoryImpl) GetProductCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get product count: %w", err)
	}
	return count, nil
}

const productSelect = `
	SELECT id, source_name, title, price, rating, review_count,
	       category, description, source_url, trend_score, fetched_at, created_at
	FROM products`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var product Product
	err := row.Scan(
		&product.ID, &product.SourceName, &product.Title, &product.Price,
		&product.Rating, &product.ReviewCount, &product.Category,
		&product.Description, &product.SourceURL, &product.TrendScore,
		&product.FetchedAt, &product.CreatedAt,
	)
	return product, err
}

func collectProducts(rows *sql.Rows) ([]Product, error) {
	var products []Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return products, nil
}
