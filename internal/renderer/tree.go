package renderer

import (
	"github.com/dshills/treeline/internal/renderer/core"
	"github.com/dshills/treeline/internal/renderer/guide"
)

// NodeID is a stable handle for a node within one Tree. IDs are
// assigned at Add time and index the tree's node arena.
type NodeID int

// InvalidNode is returned when a node cannot be created.
const InvalidNode NodeID = -1

// node is a single arena entry: content, ordered children, expand flag.
type node struct {
	content  Content
	children []NodeID
	expand   bool
}

// Tree holds the node arena plus the guide configuration used to
// decorate rendered output. The root node carries the tree's own
// top-level content; its children are the top-level entries.
//
// A Tree is not safe for concurrent use. Callers must ensure a single
// Render is in flight per Tree and that the tree is not mutated while
// rendering.
type Tree struct {
	nodes      []node
	guides     guide.Set
	guideStyle core.Style
	ascii      bool
	hideRoot   bool
}

// New creates a tree whose root renders the given content.
func New(root Content) *Tree {
	t := &Tree{guides: guide.Line(), guideStyle: core.DefaultStyle()}
	t.nodes = append(t.nodes, node{content: root, expand: true})
	return t
}

// Root returns the root node's ID.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes in the tree, including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Add appends a new child node under parent and returns its ID.
// Children render in insertion order. Returns InvalidNode if parent
// does not exist.
func (t *Tree) Add(parent NodeID, content Content) NodeID {
	if !t.valid(parent) {
		return InvalidNode
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{content: content, expand: true})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// Attach appends an existing node as a child of parent. This can
// alias a node under a second parent; Render detects the resulting
// structural cycle and fails, so Attach is only useful for moving a
// subtree after removing it elsewhere.
func (t *Tree) Attach(parent, child NodeID) bool {
	if !t.valid(parent) || !t.valid(child) {
		return false
	}
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	return true
}

// Children returns the ordered child IDs of a node. The returned
// slice is owned by the tree and must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	return t.nodes[id].children
}

// Content returns a node's content, or nil for an unknown ID.
func (t *Tree) Content(id NodeID) Content {
	if !t.valid(id) {
		return nil
	}
	return t.nodes[id].content
}

// SetExpand sets whether a node's children render.
func (t *Tree) SetExpand(id NodeID, expand bool) {
	if t.valid(id) {
		t.nodes[id].expand = expand
	}
}

// Expanded reports whether a node's children render. New nodes
// default to expanded.
func (t *Tree) Expanded(id NodeID) bool {
	return t.valid(id) && t.nodes[id].expand
}

// SetGuides selects the guide glyph set used for decorations.
func (t *Tree) SetGuides(g guide.Set) {
	t.guides = g
}

// Guides returns the active guide set.
func (t *Tree) Guides() guide.Set {
	return t.guides
}

// SetGuideStyle sets the style applied to every guide glyph.
func (t *Tree) SetGuideStyle(style core.Style) {
	t.guideStyle = style
}

// SetASCII switches guide resolution to ASCII-safe glyphs.
func (t *Tree) SetASCII(on bool) {
	t.ascii = on
}

// SetHideRoot suppresses the root node's own lines; top-level
// children render without the first guide column.
func (t *Tree) SetHideRoot(on bool) {
	t.hideRoot = on
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}
