package treefile

import (
	"github.com/tidwall/sjson"

	"github.com/dshills/treeline/internal/renderer"
)

// Stats summarizes a render for machine consumption.
type Stats struct {
	Nodes int // Nodes in the tree, including the root
	Lines int // Rendered output lines
	Width int // Widest rendered line in cells
}

// Collect gathers stats from a tree and its rendered frame.
func Collect(t *renderer.Tree, f renderer.Frame) Stats {
	return Stats{
		Nodes: t.Len(),
		Lines: f.LineCount(),
		Width: f.Width,
	}
}

// JSON encodes the stats as a JSON object.
func (s Stats) JSON() ([]byte, error) {
	out := []byte(`{}`)
	var err error
	if out, err = sjson.SetBytes(out, "nodes", s.Nodes); err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "lines", s.Lines); err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "width", s.Width); err != nil {
		return nil, err
	}
	return out, nil
}
