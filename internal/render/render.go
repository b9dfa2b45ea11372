// Package render turns lesson documents into HTML-ready sections.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"portfolio-backend/internal/format"
	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/models"
)

const DefaultLanguage = "javascript"

const (
	GlyphDo   = "✅ "
	GlyphDont = "❌ "
)

// Highlighter produces highlighted markup for a code block. It must not alter
// the code text itself.
type Highlighter interface {
	Highlight(code, language string) (template.HTML, error)
}

type Lesson struct {
	Title       string
	Description template.HTML
	Sections    []Section
}

type Section struct {
	ID     string
	Index  int
	Title  string
	Blocks []Block
}

// Block is one rendered content block. Kind selects which of the other
// fields are populated.
type Block struct {
	Kind     models.BlockType
	Spans    []format.Span
	Items    [][]format.Span
	Glyph    string
	Variant  string
	Code     string
	Language string
	HTML     template.HTML
}

type Renderer struct {
	hl  Highlighter
	log *logger.Logger
}

func New(hl Highlighter, log *logger.Logger) *Renderer {
	return &Renderer{hl: hl, log: log}
}

// SectionID is the anchor id of section i.
func SectionID(i int) string {
	return fmt.Sprintf("section-%d", i)
}

func (r *Renderer) Lesson(l *models.Lesson) Lesson {
	out := Lesson{
		Title:       l.Title,
		Description: format.HTML(l.Description),
		Sections:    make([]Section, 0, len(l.Sections)),
	}
	for i, s := range l.Sections {
		sec := Section{ID: SectionID(i), Index: i, Title: s.Title}
		for _, b := range s.Content {
			if rb, ok := r.Block(b); ok {
				sec.Blocks = append(sec.Blocks, rb)
			}
		}
		out.Sections = append(out.Sections, sec)
	}
	return out
}

// Block renders a single block. Unknown block types report ok == false.
func (r *Renderer) Block(b models.Block) (Block, bool) {
	switch b := b.(type) {
	case models.TextBlock:
		spans := format.Parse(b.Content)
		return Block{Kind: models.BlockText, Spans: spans, HTML: format.SpansHTML(spans)}, true

	case models.ListBlock:
		rb := Block{Kind: models.BlockList, Items: make([][]format.Span, 0, len(b.Items))}
		var sb strings.Builder
		sb.WriteString("<ul>")
		for _, item := range b.Items {
			spans := format.Parse(item)
			rb.Items = append(rb.Items, spans)
			sb.WriteString("<li>" + string(format.SpansHTML(spans)) + "</li>")
		}
		sb.WriteString("</ul>")
		rb.HTML = template.HTML(sb.String())
		return rb, true

	case models.HeadingBlock:
		spans := format.Parse(b.Content)
		glyph := HeadingGlyph(b.Variant)
		return Block{
			Kind:    models.BlockHeading,
			Spans:   spans,
			Glyph:   glyph,
			Variant: b.Variant,
			HTML:    template.HTML(template.HTMLEscapeString(glyph)) + format.SpansHTML(spans),
		}, true

	case models.CodeBlock:
		lang := b.Language
		if lang == "" {
			lang = DefaultLanguage
		}
		return Block{Kind: models.BlockCode, Code: b.Content, Language: lang, HTML: r.highlight(b.Content, lang)}, true

	default:
		return Block{}, false
	}
}

func HeadingGlyph(variant string) string {
	switch variant {
	case models.HeadingDo:
		return GlyphDo
	case models.HeadingDont:
		return GlyphDont
	default:
		return ""
	}
}

func (r *Renderer) highlight(code, lang string) template.HTML {
	if r.hl != nil {
		out, err := r.hl.Highlight(code, lang)
		if err == nil {
			return out
		}
		r.log.Warn("Highlighting failed, using plain code block", "language", lang, "error", err)
	}
	return PlainCode(code, lang)
}

// PlainCode is the unhighlighted fallback rendering of a code block.
func PlainCode(code, lang string) template.HTML {
	return template.HTML(fmt.Sprintf(`<pre class="code-block"><code class="language-%s">%s</code></pre>`,
		template.HTMLEscapeString(lang), template.HTMLEscapeString(code)))
}
