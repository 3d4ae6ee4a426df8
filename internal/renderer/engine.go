package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/treeline/internal/renderer/core"
	"github.com/dshills/treeline/internal/renderer/guide"
)

// ErrStructuralCycle is returned when a node instance is reachable
// through more than one path in a single render. The walk aborts
// immediately with no partial output; retrying without restructuring
// the tree reproduces the failure.
var ErrStructuralCycle = errors.New("structural cycle detected")

// Frame is the result of rendering a tree: the decorated lines and
// the cell width of the widest line.
type Frame struct {
	Lines [][]core.Span
	Width int
}

// String returns the frame as plain text, one row per rendered line.
// Styles are dropped.
func (f Frame) String() string {
	var b strings.Builder
	for i, line := range f.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(core.SpansText(line))
	}
	return b.String()
}

// LineCount returns the number of rendered lines.
func (f Frame) LineCount() int {
	return len(f.Lines)
}

// Render lays the tree out as decorated, wrapped lines at most
// maxWidth cells wide. The traversal is iterative: an explicit stack
// of sibling queues paired with a prefix stack of guide roles keeps
// memory bounded by tree depth rather than call-stack depth, so
// arbitrarily deep trees render without recursion.
//
// Each prefix entry moves through three phases: an initial default,
// then Fork or End once the owning node's last-sibling status is
// known, then Continue or Space once its first line has been emitted.
// The owning node's first line therefore carries the branch glyph
// while its continuation lines and descendants carry the open glyph.
func Render(t *Tree, maxWidth int) (Frame, error) {
	// frontier holds the not-yet-visited siblings per open depth;
	// prefix holds one guide role per open depth. Entry 0 belongs to
	// the synthetic root and is never drawn.
	frontier := [][]NodeID{{t.Root()}}
	prefix := []guide.Part{guide.Continue}
	visited := newBitset(len(t.nodes))

	var lines [][]core.Span
	maxLine := 0

	for len(frontier) > 0 {
		queue := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if len(queue) == 0 {
			// Subtree exhausted: close this depth.
			prefix = prefix[:len(prefix)-1]
			continue
		}

		isLast := len(queue) == 1
		id := queue[0]
		if visited.has(id) {
			return Frame{}, fmt.Errorf("node %d revisited: %w", id, ErrStructuralCycle)
		}
		visited.set(id)
		frontier = append(frontier, queue[1:])

		// Last-sibling status is known now, so the branch role is too.
		if isLast {
			prefix[len(prefix)-1] = guide.End
		} else {
			prefix[len(prefix)-1] = guide.Fork
		}

		drawable := t.drawablePrefix(prefix)
		budget := maxWidth - t.prefixWidth(drawable)

		// The budget is handed to the content unclipped; degenerate
		// and negative budgets are the content's to interpret.
		contentLines := t.nodes[id].content.RenderLines(budget)
		hidden := t.hideRoot && id == t.Root()

		for i, cl := range contentLines {
			if !hidden {
				// Guide roles resolve to glyphs at emission time so
				// the phase change after the first line shows up on
				// continuation lines.
				row := make([]core.Span, 0, len(drawable)+len(cl))
				for _, p := range drawable {
					row = append(row, core.NewSpan(t.resolve(p), t.guideStyle))
				}
				row = append(row, cl...)
				lines = append(lines, row)
				if w := core.SpansWidth(row); w > maxLine {
					maxLine = w
				}
			}
			if i == 0 {
				prefix[len(prefix)-1] = openPart(isLast)
			}
		}
		if len(contentLines) == 0 {
			prefix[len(prefix)-1] = openPart(isLast)
		}

		if children := t.nodes[id].children; t.nodes[id].expand && len(children) > 0 {
			// Initial default; the first pop at the new depth resolves
			// it to Fork or End before anything is emitted.
			prefix = append(prefix, guide.Fork)
			frontier = append(frontier, children)
		}
	}

	return Frame{Lines: lines, Width: maxLine}, nil
}

// openPart returns the continuation role for a node whose first line
// has been emitted.
func openPart(isLast bool) guide.Part {
	if isLast {
		return guide.Space
	}
	return guide.Continue
}

// drawablePrefix strips the synthetic root entry (and the first real
// level when the root is hidden). The returned slice aliases prefix
// so later phase changes are visible to pending emissions.
func (t *Tree) drawablePrefix(prefix []guide.Part) []guide.Part {
	skip := 1
	if t.hideRoot {
		skip = 2
	}
	if len(prefix) < skip {
		return nil
	}
	return prefix[skip:]
}

// prefixWidth returns the cell width of the prefix as currently
// resolved.
func (t *Tree) prefixWidth(drawable []guide.Part) int {
	width := 0
	for _, p := range drawable {
		width += core.StringWidth(t.resolve(p))
	}
	return width
}

// resolve maps a guide role to glyph text under the tree's guide
// configuration.
func (t *Tree) resolve(p guide.Part) string {
	return t.guides.Resolve(p, !t.ascii)
}

// bitset is a fixed-size bit set over node arena indices, used for
// the per-render visited check.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) has(id NodeID) bool {
	return b[id/64]&(1<<(uint(id)%64)) != 0
}

func (b bitset) set(id NodeID) {
	b[id/64] |= 1 << (uint(id) % 64)
}
