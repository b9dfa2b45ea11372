package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Span
	}{
		{"plain", "hello", []Span{{Literal, "hello"}}},
		{"empty", "", nil},
		{"code", "use `let` here", []Span{{Literal, "use "}, {Code, "let"}, {Literal, " here"}}},
		{"bold and italic", "**big** and _small_", []Span{{Bold, "big"}, {Literal, " and "}, {Italic, "small"}}},
		{"unclosed markers stay literal", "a ` b ** c _ d", []Span{{Literal, "a ` b ** c _ d"}}},
		{"empty code is literal", "``x", []Span{{Literal, "``x"}}},
		{"underscore inside code", "`snake_case_name` ok", []Span{{Code, "snake_case_name"}, {Literal, " ok"}}},
		{"bold inside code", "`**x**`", []Span{{Code, "**x**"}}},
		{"earliest start wins", "_a `b_ c`", []Span{{Italic, "a `b"}, {Literal, " c`"}}},
		{"single star is literal", "*a*", []Span{{Literal, "*a*"}}},
		{"unicode text", "🧠 **Memória** _é_", []Span{{Literal, "🧠 "}, {Bold, "Memória"}, {Literal, " "}, {Italic, "é"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.in))
		})
	}
}

func TestParse_NoOverlappingSpans(t *testing.T) {
	// Both `..` and _.._ match here in a global scan; only the earlier span may claim bytes.
	in := "`a_b` then c_d_"
	spans := Parse(in)
	assert.Equal(t, []Span{{Code, "a_b"}, {Literal, " then c"}, {Italic, "d"}}, spans)
	assert.Equal(t, in, Markup(spans))
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"The `this` keyword is **dynamic** in _regular_ functions.",
		"Use `===` not `==`",
		"__dunder__ and ****",
		"mixed `code **bold** _it_` tail_",
		"trailing `",
		"Closures ✅ and ❌ hoisting",
	}
	for _, in := range inputs {
		spans := Parse(in)
		assert.Equal(t, in, Markup(spans), "markup round trip for %q", in)

		var lit int
		for _, s := range spans {
			if s.Kind == Literal {
				lit += len(s.Text)
			}
		}
		assert.LessOrEqual(t, len(Plain(spans)), len(in))
		assert.GreaterOrEqual(t, len(Plain(spans)), lit)
	}
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "use let and bold", Plain(Parse("use `let` and **bold**")))
}

func TestHTML(t *testing.T) {
	got := HTML("Compare `a < b` with **<b>** & _x_")
	want := `Compare <code class="inline-code">a &lt; b</code> with <strong>&lt;b&gt;</strong> &amp; <em>x</em>`
	assert.Equal(t, want, string(got))
}
