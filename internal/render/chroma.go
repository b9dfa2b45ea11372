package render

import (
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ChromaHighlighter highlights code server side with inline styles.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *html.Formatter
}

func NewChromaHighlighter(styleName string) *ChromaHighlighter {
	return &ChromaHighlighter{
		style:     styles.Get(styleName),
		formatter: html.New(html.TabWidth(2)),
	}
}

func (h *ChromaHighlighter) Highlight(code, language string) (template.HTML, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, it); err != nil {
		return "", err
	}
	return template.HTML(sb.String()), nil
}
