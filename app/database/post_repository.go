package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
)

var _ PostRepository = (*PostRepositoryImpl)(nil)

type PostRepositoryImpl struct {
	db *DB
}

func NewPostRepository(db *DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) UpsertPost(post blog.Post) error {
	keywords, err := json.Marshal(post.Keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO posts (
			id, product_id, product_name, content, keywords, word_count,
			seo_score, readability_score, generated_at, meta_description, slug
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (product_id) DO UPDATE SET
			product_name = excluded.product_name,
			content = excluded.content,
			keywords = excluded.keywords,
			word_count = excluded.word_count,
			seo_score = excluded.seo_score,
			readability_score = excluded.readability_score,
			generated_at = excluded.generated_at,
			meta_description = excluded.meta_description,
			slug = excluded.slug
	`, post.ID, post.ProductID, post.ProductName, post.Content, string(keywords),
		post.WordCount, post.SEOScore, post.ReadabilityScore, post.GeneratedAt,
		post.MetaDescription, post.Slug)

	if err != nil {
		return fmt.Errorf("failed to upsert post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetPost(id string) (*Post, error) {
	row := r.db.QueryRow(postSelect+" WHERE id = ?", id)

	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetPostBySlug(slug string) (*Post, error) {
	row := r.db.QueryRow(postSelect+" WHERE slug = ?", slug)

	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetPosts() ([]Post, error) {
	rows, err := r.db.Query(postSelect + " ORDER BY generated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetPostCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get post count: %w", err)
	}
	return count, nil
}

const postSelect = `
	SELECT id, product_id, product_name, content, keywords, word_count,
	       seo_score, readability_score, generated_at, meta_description, slug, created_at
	FROM posts`

func scanPost(row rowScanner) (Post, error) {
	var post Post
	err := row.Scan(
		&post.ID, &post.ProductID, &post.ProductName, &post.Content,
		&post.Keywords, &post.WordCount, &post.SEOScore, &post.ReadabilityScore,
		&post.GeneratedAt, &post.MetaDescription, &post.Slug, &post.CreatedAt,
	)
	return post, err
}
