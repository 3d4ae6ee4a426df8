// Package renderer lays out a hierarchical node structure as
// decorated, line-wrapped styled text for a character-grid display.
//
// The renderer is responsible for:
//   - Branch-guide decorations ("├── ", "└── ", etc.) per open depth
//   - Word wrapping node content to a shrinking width budget
//   - Structural cycle detection over the node arena
//   - Tracking the maximum rendered cell width for layout negotiation
//
// It is a layout component, not an I/O system: terminal writes and
// escape sequences live in the backend package, and node content
// composition is the caller's concern via the Content interface.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Render (engine)               │
//	├─────────────────────────────────────────┤
//	│  Tree/Node arena │ Content │ Measure    │
//	├─────────────────────────────────────────┤
//	│  guide (glyph tables) │ core (spans)    │
//	├─────────────────────────────────────────┤
//	│  backend (tcell / in-memory grid)       │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	t := renderer.New(renderer.NewText("A"))
//	t.Add(t.Root(), renderer.NewText("B"))
//	c := t.Add(t.Root(), renderer.NewText("C"))
//	t.Add(c, renderer.NewText("D"))
//	frame, err := renderer.Render(t, 80)
package renderer
