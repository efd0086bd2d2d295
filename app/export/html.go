package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Vipul251/ai-seo-blog-generator/app/blog"
	"github.com/Vipul251/ai-seo-blog-generator/app/markdown"
)

const documentStyle = `        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            line-height: 1.8;
            color: #333;
            background: #f5f5f5;
            padding: 20px;
        }
        .container {
            max-width: 800px;
            margin: 0 auto;
            background: white;
            padding: 40px;
            border-radius: 10px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        h1 {
            color: #2c3e50;
            margin-bottom: 20px;
            font-size: 2em;
            line-height: 1.3;
        }
        p {
            margin-bottom: 15px;
            font-size: 1.1em;
        }
        .meta {
            background: #ecf0f1;
            padding: 20px;
            border-radius: 5px;
            margin-top: 30px;
            font-size: 0.9em;
        }
        .meta strong { color: #2c3e50; }
        .keywords {
            display: flex;
            flex-wrap: wrap;
            gap: 10px;
            margin-top: 15px;
        }
        .keyword-tag {
            background: #3498db;
            color: white;
            padding: 5px 15px;
            border-radius: 20px;
            font-size: 0.85em;
        }`

// Document renders a post as a standalone HTML page: the converted content
// plus a metadata panel with scores and keyword tags.
type Document struct {
	renderer *markdown.Renderer
}

func NewDocument() *Document {
	return &Document{renderer: markdown.NewRenderer()}
}

func (d *Document) Run(post blog.Post) string {
	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html>\n")
	buf.WriteString("<html lang=\"en\">\n<head>\n")
	buf.WriteString("    <meta charset=\"UTF-8\">\n")
	buf.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&buf, "    <meta name=\"description\" content=\"%s\">\n", html.EscapeString(post.MetaDescription))
	fmt.Fprintf(&buf, "    <meta name=\"keywords\" content=\"%s\">\n", html.EscapeString(strings.Join(post.Keywords, ", ")))
	fmt.Fprintf(&buf, "    <title>%s</title>\n", html.EscapeString(post.ProductName))
	buf.WriteString("    <style>\n")
	buf.WriteString(documentStyle)
	buf.WriteString("\n    </style>\n</head>\n<body>\n")
	buf.WriteString("    <div class=\"container\">\n")
	buf.WriteString("        <article>\n            ")
	buf.WriteString(d.renderer.Run(post.Content))
	buf.WriteString("\n        </article>\n\n")
	buf.WriteString("        <div class=\"meta\">\n")
	fmt.Fprintf(&buf, "            <p><strong>Word Count:</strong> %d words</p>\n", post.WordCount)
	fmt.Fprintf(&buf, "            <p><strong>SEO Score:</strong> %d/100</p>\n", post.SEOScore)
	fmt.Fprintf(&buf, "            <p><strong>Readability Score:</strong> %.1f/100</p>\n", post.ReadabilityScore)
	fmt.Fprintf(&buf, "            <p><strong>Generated:</strong> %s</p>\n", post.GeneratedAt.Format(time.RFC3339))
	buf.WriteString("\n            <p><strong>Target Keywords:</strong></p>\n")
	buf.WriteString("            <div class=\"keywords\">\n")
	for _, kw := range post.Keywords {
		fmt.Fprintf(&buf, "                <span class=\"keyword-tag\">%s</span>\n", html.EscapeString(kw))
	}
	buf.WriteString("            </div>\n")
	buf.WriteString("        </div>\n    </div>\n</body>\n</html>")

	return buf.String()
}
