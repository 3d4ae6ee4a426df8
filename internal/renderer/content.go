package renderer

import (
	"strings"

	"github.com/dshills/treeline/internal/renderer/core"
)

// Content is anything a node can render: it wraps itself into lines
// of styled spans for a maximum cell width. A maxWidth <= 0 disables
// wrapping and the content emits its natural lines unclipped.
//
// Implementations must be deterministic and must return at least one
// line so continuation guides stay consistent.
type Content interface {
	RenderLines(maxWidth int) [][]core.Span
}

// Text is plain single-style content with word wrapping. Embedded
// newlines produce hard line breaks before wrapping is applied.
type Text struct {
	text  string
	style core.Style
}

// NewText creates text content with the default style.
func NewText(text string) *Text {
	return &Text{text: text, style: core.DefaultStyle()}
}

// NewStyledText creates text content with the given style.
func NewStyledText(text string, style core.Style) *Text {
	return &Text{text: text, style: style}
}

// String returns the unwrapped text.
func (t *Text) String() string {
	return t.text
}

// Style returns the content style.
func (t *Text) Style() core.Style {
	return t.style
}

// RenderLines wraps the text to maxWidth cells per line.
func (t *Text) RenderLines(maxWidth int) [][]core.Span {
	var lines [][]core.Span
	for _, para := range strings.Split(t.text, "\n") {
		for _, line := range wrapLine(para, maxWidth) {
			lines = append(lines, []core.Span{core.NewSpan(line, t.style)})
		}
	}
	return lines
}

// wrapBackscan bounds how far wrapping looks backward for a space
// before giving up and breaking mid-word.
const wrapBackscan = 20

// wrapLine greedily wraps a single paragraph to maxWidth cells,
// breaking at spaces where one falls within the backscan window.
// Grapheme clusters are never split. maxWidth <= 0 disables wrapping.
func wrapLine(text string, maxWidth int) []string {
	if maxWidth <= 0 || core.StringWidth(text) <= maxWidth {
		return []string{text}
	}

	clusters := core.Graphemes(text)
	var lines []string
	var line []core.Grapheme
	lineWidth := 0

	flush := func(upto int) {
		var b strings.Builder
		for _, g := range line[:upto] {
			b.WriteString(g.Cluster)
		}
		lines = append(lines, b.String())
	}

	for i := 0; i < len(clusters); i++ {
		g := clusters[i]
		if lineWidth+g.Width > maxWidth && len(line) > 0 {
			if at, ok := findBreak(line); ok && at > 0 {
				// Break at the space; it is consumed by the wrap.
				rest := append([]core.Grapheme(nil), line[at+1:]...)
				flush(at)
				line = rest
			} else {
				flush(len(line))
				line = nil
			}
			lineWidth = 0
			for _, r := range line {
				lineWidth += r.Width
			}
			// A space at a fresh line start is the wrap boundary
			// itself; drop it rather than indenting the next line.
			if g.Cluster == " " && len(line) == 0 {
				continue
			}
		}
		line = append(line, g)
		lineWidth += g.Width
	}
	if len(line) > 0 || len(lines) == 0 {
		flush(len(line))
	}
	return lines
}

// findBreak scans backward for a space within the backscan window.
func findBreak(line []core.Grapheme) (int, bool) {
	scanned := 0
	for i := len(line) - 1; i >= 0 && scanned < wrapBackscan; i-- {
		if line[i].Cluster == " " {
			return i, true
		}
		scanned += line[i].Width
	}
	return 0, false
}
