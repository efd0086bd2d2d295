package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
)

// Writer exports a post into on-disk files in the configured formats.
type Writer struct {
	outputDir string
	document  *Document
}

func NewWriter(outputDir string) *Writer {
	return &Writer{
		outputDir: outputDir,
		document:  NewDocument(),
	}
}

// Run writes one file per requested format (html, wordpress, medium) and
// returns the written paths.
func (w *Writer) Run(post blog.Post, formats []string) ([]string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, format := range formats {
		var path string
		var data []byte

		switch format {
		case "html":
			path = filepath.Join(w.outputDir, fmt.Sprintf("blog_%s.html", post.Slug))
			data = []byte(w.document.Run(post))
		case "wordpress":
			wp, err := MarshalWordPressPackage(post)
			if err != nil {
				return written, err
			}
			path = filepath.Join(w.outputDir, fmt.Sprintf("wp_%s.json", post.Slug))
			data = wp
		case "medium":
			path = filepath.Join(w.outputDir, fmt.Sprintf("medium_%s.md", post.Slug))
			data = []byte(FlatMarkdown(post))
		default:
			slog.Warn("Unknown export format, skipping", "format", format, "post", post.ID)
			continue
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s export: %w", format, err)
		}
		written = append(written, path)
	}

	return written, nil
}

// WriteReport writes the aggregate report file into the output directory.
func (w *Writer) WriteReport(report string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.outputDir, "seo_blog_creation_report.txt")
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}
