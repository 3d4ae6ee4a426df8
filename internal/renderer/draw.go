package renderer

import (
	"github.com/dshills/treeline/internal/renderer/backend"
	"github.com/dshills/treeline/internal/renderer/core"
)

// DrawFrame paints a rendered frame onto a backend grid, top-left
// aligned, and flushes it. Lines wider or taller than the grid are
// clipped by the backend's bounds checks.
func DrawFrame(b backend.Backend, f Frame) {
	b.Clear()
	for y, line := range f.Lines {
		x := 0
		for _, span := range line {
			for _, g := range core.Graphemes(span.Text) {
				runes := []rune(g.Cluster)
				if len(runes) == 0 {
					continue
				}
				cell := backend.Cell{Rune: runes[0], Style: span.Style}
				if len(runes) > 1 {
					cell.Combining = runes[1:]
				}
				b.SetCell(x, y, cell)
				x += g.Width
			}
		}
	}
	b.Show()
}
