package handlers

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"textlens/internal/contextutil"
)

//go:embed about.md
var aboutMarkdown []byte

// AboutHandler serves the about page, rendered from markdown.
type AboutHandler struct {
	parser   goldmark.Markdown
	template *template.Template
	source   []byte
}

// aboutPageData holds template data for the about page.
type aboutPageData struct {
	Title   string
	Content template.HTML
}

// NewAboutHandler creates a handler for the about page. A nil source uses the
// built-in text.
func NewAboutHandler(source []byte) *AboutHandler {
	if source == nil {
		source = aboutMarkdown
	}
	tmpl := template.Must(template.New("about").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.7;
    }
    table { border-collapse: collapse; }
    th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
  </style>
</head>
<body>
  <nav><a href="/">Dashboard</a></nav>
  <main>{{.Content}}</main>
</body>
</html>
`))

	return &AboutHandler{
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
		source:   source,
	}
}

// ServeHTTP renders the about page as HTML.
func (h *AboutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	htmlContent, err := h.renderMarkdown(h.source)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.template.Execute(&buf, aboutPageData{
		Title:   "About textlens",
		Content: template.HTML(htmlContent),
	}); err != nil {
		logger.ErrorContext(ctx, "failed to execute about template", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (h *AboutHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
