// Package guide provides the branch-guide glyph tables used to draw
// tree decorations ("├── ", "└── ", etc.).
package guide

// Part identifies one of the four guide decoration roles.
type Part uint8

const (
	// Continue is the vertical line drawn while more siblings follow
	// below at this depth.
	Continue Part = iota
	// Fork is the branch glyph for a node with another sibling after it.
	Fork
	// End is the branch glyph for the last sibling at a depth.
	End
	// Space is the blank filler drawn under a closed branch.
	Space

	numParts
)

// PartNamed returns the guide part with the given role name.
func PartNamed(name string) (Part, bool) {
	switch name {
	case "continue":
		return Continue, true
	case "fork":
		return Fork, true
	case "end":
		return End, true
	case "space":
		return Space, true
	}
	return Space, false
}

// String returns the role name.
func (p Part) String() string {
	switch p {
	case Continue:
		return "continue"
	case Fork:
		return "fork"
	case End:
		return "end"
	case Space:
		return "space"
	}
	return "unknown"
}

// table holds one glyph per guide part.
type table [numParts]string

// Built-in glyph tables. Every glyph in a table has the same display
// width (4 cells) so prefixes line up column for column.
var (
	lineTable   = table{"│   ", "├── ", "└── ", "    "}
	boldTable   = table{"┃   ", "┣━━ ", "┗━━ ", "    "}
	doubleTable = table{"║   ", "╠══ ", "╚══ ", "    "}
	asciiTable  = table{"|   ", "+-- ", "`-- ", "    "}
)

// Set resolves guide parts to glyph text. The zero value is the
// standard line-drawing set with no overrides.
type Set struct {
	name      string
	unicode   table
	overrides map[Part]string
}

// Line returns the standard line-drawing guide set.
func Line() Set {
	return Set{name: "line", unicode: lineTable}
}

// Bold returns the heavy line-drawing guide set.
func Bold() Set {
	return Set{name: "bold", unicode: boldTable}
}

// Double returns the double line-drawing guide set.
func Double() Set {
	return Set{name: "double", unicode: doubleTable}
}

// ASCII returns a guide set that draws ASCII glyphs in both modes.
func ASCII() Set {
	return Set{name: "ascii", unicode: asciiTable}
}

// Named returns the built-in guide set with the given name.
// Known names are "line", "bold", "double", and "ascii".
func Named(name string) (Set, bool) {
	switch name {
	case "", "line":
		return Line(), true
	case "bold":
		return Bold(), true
	case "double":
		return Double(), true
	case "ascii":
		return ASCII(), true
	}
	return Set{}, false
}

// Name returns the name of the built-in table this set is based on.
func (s Set) Name() string {
	if s.name == "" {
		return "line"
	}
	return s.name
}

// WithOverride returns a copy of the set with the given part resolved
// to glyph instead of the table entry. Overrides apply only in
// Unicode-safe mode: ASCII-safe resolution always uses the ASCII
// table so the output stays ASCII-clean.
func (s Set) WithOverride(part Part, glyph string) Set {
	overrides := make(map[Part]string, len(s.overrides)+1)
	for p, g := range s.overrides {
		overrides[p] = g
	}
	overrides[part] = glyph
	s.overrides = overrides
	return s
}

// Resolve returns the glyph text for a guide part. Resolution never
// fails: unknown parts resolve to the Space filler.
func (s Set) Resolve(part Part, unicodeSafe bool) string {
	if part >= numParts {
		part = Space
	}
	if !unicodeSafe {
		return asciiTable[part]
	}
	if glyph, ok := s.overrides[part]; ok {
		return glyph
	}
	tbl := s.unicode
	if tbl == (table{}) {
		tbl = lineTable
	}
	return tbl[part]
}
