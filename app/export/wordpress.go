package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
)

// wordPressCategories is the fixed category list attached to every package.
var wordPressCategories = []string{"Product Reviews", "Tech"}

// WordPressPackage is the blog-platform export shape. Posts are always
// packaged as drafts; publishing is a separate, explicit step.
type WordPressPackage struct {
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	Excerpt    string        `json:"excerpt"`
	Slug       string        `json:"slug"`
	Status     string        `json:"status"`
	Categories []string      `json:"categories"`
	Tags       []string      `json:"tags"`
	Meta       WordPressMeta `json:"meta"`
}

type WordPressMeta struct {
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	Keywords       string `json:"keywords"`
}

// BuildWordPressPackage assembles the platform package for a post. The title
// is the first heading line of the content with its marker stripped.
func BuildWordPressPackage(post blog.Post) WordPressPackage {
	title := strings.ReplaceAll(strings.SplitN(post.Content, "\n", 2)[0], "# ", "")

	return WordPressPackage{
		Title:      title,
		Content:    post.Content,
		Excerpt:    post.MetaDescription,
		Slug:       post.Slug,
		Status:     "draft",
		Categories: wordPressCategories,
		Tags:       post.Keywords,
		Meta: WordPressMeta{
			SEOTitle:       title,
			SEODescription: post.MetaDescription,
			Keywords:       strings.Join(post.Keywords, ", "),
		},
	}
}

// MarshalWordPressPackage renders the package as indented JSON.
func MarshalWordPressPackage(post blog.Post) ([]byte, error) {
	data, err := json.MarshalIndent(BuildWordPressPackage(post), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal WordPress package: %w", err)
	}
	return data, nil
}
