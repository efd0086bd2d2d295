package database

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Vipul251/ai-seo-blog-generator/app/keyword"
)

var _ KeywordRepository = (*KeywordRepositoryImpl)(nil)

type KeywordRepositoryImpl struct {
	db *DB
}

func NewKeywordRepository(db *DB) *KeywordRepositoryImpl {
	return &KeywordRepositoryImpl{db: db}
}

// ReplaceProductKeywords stores the ranked keyword set for a product,
// replacing any previous research result.
func (r *KeywordRepositoryImpl) ReplaceProductKeywords(productID string, keywords []keyword.Keyword) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM product_keywords WHERE product_id = ?", productID); err != nil {
		return fmt.Errorf("failed to clear product keywords: %w", err)
	}

	for position, kw := range keywords {
		_, err := tx.Exec(`
			INSERT INTO product_keywords (
				id, product_id, position, text,
				volume_score, difficulty_score, relevance_score, combined_score
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.NewString(), productID, position, kw.Text,
			kw.VolumeScore, kw.DifficultyScore, kw.RelevanceScore, kw.CombinedScore)
		if err != nil {
			return fmt.Errorf("failed to insert product keyword: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit keyword replacement: %w", err)
	}

	return nil
}

func (r *KeywordRepositoryImpl) GetProductKeywords(productID string) ([]ProductKeyword, error) {
	rows, err := r.db.Query(`
		SELECT id, product_id, position, text,
		       volume_score, difficulty_score, relevance_score, combined_score, created_at
		FROM product_keywords
		WHERE product_id = ?
		ORDER BY position
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product keywords: %w", err)
	}
	defer rows.Close()

	var keywords []ProductKeyword
	for rows.Next() {
		var kw ProductKeyword
		err := rows.Scan(
			&kw.ID, &kw.ProductID, &kw.Position, &kw.Text,
			&kw.VolumeScore, &kw.DifficultyScore, &kw.RelevanceScore,
			&kw.CombinedScore, &kw.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan keyword row: %w", err)
		}
		keywords = append(keywords, kw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating keyword rows: %w", err)
	}

	return keywords, nil
}

func (r *KeywordRepositoryImpl) GetKeywordCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM product_keywords").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get keyword count: %w", err)
	}
	return count, nil
}
