// Package format implements the inline markup used inside lesson text:
// `code`, **bold** and _italic_. Spans never nest and never overlap.
package format

import (
	"html/template"
	"strings"
)

type Kind int

const (
	Literal Kind = iota
	Code
	Bold
	Italic
)

func (k Kind) String() string {
	switch k {
	case Code:
		return "code"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return "text"
	}
}

// Span is a run of text. For formatted kinds Text excludes the markers.
type Span struct {
	Kind Kind
	Text string
}

// Parse scans text once from left to right. At each offset it tries code,
// then bold, then italic; the first match claims its bytes and scanning
// resumes after it. Markers without a closing partner stay literal.
func Parse(text string) []Span {
	var (
		spans []Span
		lit   strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			spans = append(spans, Span{Kind: Literal, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); {
		kind, content, n := match(text[i:])
		if n == 0 {
			lit.WriteByte(text[i])
			i++
			continue
		}
		flush()
		spans = append(spans, Span{Kind: kind, Text: content})
		i += n
	}
	flush()
	return spans
}

// match reports the span starting at s[0], if any, and how many bytes it
// consumes.
func match(s string) (Kind, string, int) {
	switch {
	case s[0] == '`':
		if end := strings.IndexByte(s[1:], '`'); end > 0 {
			return Code, s[1 : 1+end], end + 2
		}
	case strings.HasPrefix(s, "**"):
		if end := strings.IndexByte(s[2:], '*'); end > 0 && strings.HasPrefix(s[2+end:], "**") {
			return Bold, s[2 : 2+end], end + 4
		}
	case s[0] == '_':
		if end := strings.IndexByte(s[1:], '_'); end > 0 {
			return Italic, s[1 : 1+end], end + 2
		}
	}
	return Literal, "", 0
}

// Plain joins span contents with all markers removed.
func Plain(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Markup re-emits spans in source form; Markup(Parse(s)) == s.
func Markup(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case Code:
			b.WriteString("`" + s.Text + "`")
		case Bold:
			b.WriteString("**" + s.Text + "**")
		case Italic:
			b.WriteString("_" + s.Text + "_")
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// HTML renders text as escaped HTML with spans mapped to inline elements.
func HTML(text string) template.HTML {
	return SpansHTML(Parse(text))
}

func SpansHTML(spans []Span) template.HTML {
	var b strings.Builder
	for _, s := range spans {
		esc := template.HTMLEscapeString(s.Text)
		switch s.Kind {
		case Code:
			b.WriteString(`<code class="inline-code">` + esc + `</code>`)
		case Bold:
			b.WriteString("<strong>" + esc + "</strong>")
		case Italic:
			b.WriteString("<em>" + esc + "</em>")
		default:
			b.WriteString(esc)
		}
	}
	return template.HTML(b.String())
}
