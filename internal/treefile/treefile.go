// Package treefile loads tree documents from JSON. A document is a
// nested object of the form:
//
//	{
//	  "label": "root",
//	  "style": {"fg": "#80a0ff", "bold": true},
//	  "expand": true,
//	  "children": [{"label": "child"}, ...]
//	}
//
// Only "label" is required. Unknown fields are ignored so documents
// stay forward compatible.
package treefile

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/dshills/treeline/internal/renderer"
	"github.com/dshills/treeline/internal/renderer/core"
)

// Load reads and parses a tree document from disk.
func Load(path string) (*renderer.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read treefile: %w", err)
	}
	return Parse(data)
}

// Parse parses a tree document.
func Parse(data []byte) (*renderer.Tree, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("treefile: invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("treefile: document root must be an object")
	}

	content, err := nodeContent(doc)
	if err != nil {
		return nil, err
	}
	tree := renderer.New(content)
	applyExpand(tree, tree.Root(), doc)

	// Iterative build; document depth is unbounded and the renderer
	// itself never recurses either.
	type pending struct {
		parent renderer.NodeID
		res    gjson.Result
	}
	var stack []pending
	for _, child := range doc.Get("children").Array() {
		stack = append(stack, pending{parent: tree.Root(), res: child})
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !p.res.IsObject() {
			return nil, fmt.Errorf("treefile: child entries must be objects")
		}
		content, err := nodeContent(p.res)
		if err != nil {
			return nil, err
		}
		id := tree.Add(p.parent, content)
		applyExpand(tree, id, p.res)

		children := p.res.Get("children").Array()
		// Push in reverse so siblings pop in document order.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, pending{parent: id, res: children[i]})
		}
	}
	return tree, nil
}

// nodeContent builds a node's text content from its document entry.
func nodeContent(res gjson.Result) (renderer.Content, error) {
	label := res.Get("label")
	if !label.Exists() {
		return nil, fmt.Errorf("treefile: node missing label")
	}
	style, err := parseStyle(res.Get("style"))
	if err != nil {
		return nil, err
	}
	return renderer.NewStyledText(label.String(), style), nil
}

func applyExpand(t *renderer.Tree, id renderer.NodeID, res gjson.Result) {
	if e := res.Get("expand"); e.Exists() {
		t.SetExpand(id, e.Bool())
	}
}

// parseStyle parses an optional style object.
func parseStyle(res gjson.Result) (core.Style, error) {
	style := core.DefaultStyle()
	if !res.Exists() {
		return style, nil
	}
	if fg := res.Get("fg"); fg.Exists() {
		c, err := core.ColorFromHex(fg.String())
		if err != nil {
			return style, fmt.Errorf("treefile: style fg: %w", err)
		}
		style = style.WithForeground(c)
	}
	if bg := res.Get("bg"); bg.Exists() {
		c, err := core.ColorFromHex(bg.String())
		if err != nil {
			return style, fmt.Errorf("treefile: style bg: %w", err)
		}
		style = style.WithBackground(c)
	}
	if res.Get("bold").Bool() {
		style = style.Bold()
	}
	if res.Get("dim").Bool() {
		style = style.Dim()
	}
	if res.Get("italic").Bool() {
		style = style.Italic()
	}
	if res.Get("underline").Bool() {
		style = style.Underline()
	}
	return style, nil
}
