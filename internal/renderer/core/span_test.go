package core

import "testing"

func TestStringWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"cjk wide", "日本", 4},
		{"mixed", "a日b", 4},
		{"guide glyphs", "└── ", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringWidth(tt.in); got != tt.want {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSpanWidth(t *testing.T) {
	s := NewSpan("日本語", DefaultStyle())
	if got := s.Width(); got != 6 {
		t.Errorf("expected width 6, got %d", got)
	}
	if !s.IsEmpty() == (s.Text == "") {
		t.Error("IsEmpty disagrees with text")
	}
}

func TestSpansWidthAndText(t *testing.T) {
	spans := []Span{
		NewSpan("├── ", DefaultStyle()),
		NewSpan("node", NewStyle(ColorGreen)),
	}
	if got := SpansWidth(spans); got != 8 {
		t.Errorf("expected total width 8, got %d", got)
	}
	if got := SpansText(spans); got != "├── node" {
		t.Errorf("expected concatenated text, got %q", got)
	}
}

func TestGraphemes(t *testing.T) {
	gs := Graphemes("a日b")
	if len(gs) != 3 {
		t.Fatalf("expected 3 clusters, got %d", len(gs))
	}
	widths := []int{1, 2, 1}
	for i, g := range gs {
		if g.Width != widths[i] {
			t.Errorf("cluster %d (%q): expected width %d, got %d", i, g.Cluster, widths[i], g.Width)
		}
	}

	// Combining marks stay attached to their base cluster.
	gs = Graphemes("é")
	if len(gs) != 1 {
		t.Errorf("expected 1 cluster for combining sequence, got %d", len(gs))
	}
}
