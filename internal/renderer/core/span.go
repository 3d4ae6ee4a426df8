package core

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Span represents a run of text rendered with a single style.
// Spans are the unit of rendered output: a rendered line is a
// sequence of spans.
type Span struct {
	Text  string
	Style Style
}

// NewSpan creates a span with the given text and style.
func NewSpan(text string, style Style) Span {
	return Span{Text: text, Style: style}
}

// PlainSpan creates a span with the default style.
func PlainSpan(text string) Span {
	return Span{Text: text, Style: DefaultStyle()}
}

// Width returns the display width of the span in terminal cells.
func (s Span) Width() int {
	return StringWidth(s.Text)
}

// IsEmpty returns true if the span contains no text.
func (s Span) IsEmpty() bool {
	return s.Text == ""
}

// WithStyle returns a new span with the given style.
func (s Span) WithStyle(style Style) Span {
	s.Style = style
	return s
}

// StringWidth returns the display width of a string in terminal cells.
// Grapheme clusters and East Asian wide characters are measured
// correctly; this is not a rune count.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// SpansWidth returns the total display width of a sequence of spans.
func SpansWidth(spans []Span) int {
	width := 0
	for _, s := range spans {
		width += s.Width()
	}
	return width
}

// SpansText concatenates the text of a sequence of spans, dropping
// style information.
func SpansText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Graphemes splits a string into grapheme clusters with their
// display widths. Used by wrapping code that must not split a
// cluster across lines.
func Graphemes(s string) []Grapheme {
	var out []Grapheme
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, Grapheme{
			Cluster: g.Str(),
			Width:   g.Width(),
		})
	}
	return out
}

// Grapheme is a single grapheme cluster and its display width.
type Grapheme struct {
	Cluster string
	Width   int
}
