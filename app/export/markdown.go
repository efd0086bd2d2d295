package export

import (
	"strings"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
)

// FlatMarkdown renders the Medium-style export: the post content, a
// separator line, and an italicized keyword footer.
func FlatMarkdown(post blog.Post) string {
	var b strings.Builder
	b.WriteString(post.Content)
	b.WriteString("\n\n---\n\n")
	b.WriteString("*Keywords: ")
	b.WriteString(strings.Join(post.Keywords, ", "))
	b.WriteString("*")
	return b.String()
}
