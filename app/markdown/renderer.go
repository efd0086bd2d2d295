// Package markdown converts the restricted markdown subset produced by the
// content templater into HTML fragments. Supported constructs: level-1 and
// level-2 headings, bold, italic, and blank-line-separated paragraphs.
// Nothing else (no lists, links or code blocks).
package markdown

import (
	"regexp"
	"strings"
)

var (
	h1Expr     = regexp.MustCompile(`(?m)^# (.+)$`)
	h2Expr     = regexp.MustCompile(`(?m)^## (.+)$`)
	boldExpr   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicExpr = regexp.MustCompile(`\*(.+?)\*`)
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Run(content string) string {
	html := content
	html = h1Expr.ReplaceAllString(html, "<h1>$1</h1>")
	html = h2Expr.ReplaceAllString(html, "<h2>$1</h2>")
	html = boldExpr.ReplaceAllString(html, "<strong>$1</strong>")
	html = italicExpr.ReplaceAllString(html, "<em>$1</em>")

	html = strings.ReplaceAll(html, "\n\n", "</p><p>")
	html = "<p>" + html + "</p>"

	// Headings must not stay wrapped in paragraph markup
	html = strings.ReplaceAll(html, "<p><h1>", "<h1>")
	html = strings.ReplaceAll(html, "</h1></p>", "</h1>")
	html = strings.ReplaceAll(html, "<p><h2>", "<h2>")
	html = strings.ReplaceAll(html, "</h2></p>", "</h2>")

	return html
}
