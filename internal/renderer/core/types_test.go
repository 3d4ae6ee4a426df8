package core

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		name  string
		hex   string
		want  Color
		valid bool
	}{
		{"full form", "#FF8000", Color{R: 255, G: 128, B: 0}, true},
		{"no hash", "FF8000", Color{R: 255, G: 128, B: 0}, true},
		{"short form", "#F80", Color{R: 255, G: 136, B: 0}, true},
		{"lowercase", "#ff8000", Color{R: 255, G: 128, B: 0}, true},
		{"bad length", "#FF80", Color{}, false},
		{"bad digits", "#GGGGGG", Color{}, false},
		{"empty", "", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColorFromHex(tt.hex)
			if tt.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if !got.Equals(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestColorLightenDarkenEndpoints(t *testing.T) {
	c := Color{R: 120, G: 60, B: 200}

	if got := c.Lighten(1); !got.Equals(ColorWhite) {
		t.Errorf("Lighten(1) should reach white, got %v", got)
	}
	if got := c.Darken(1); !got.Equals(ColorBlack) {
		t.Errorf("Darken(1) should reach black, got %v", got)
	}

	idx := ColorFromIndex(4)
	if got := idx.Lighten(0.5); !got.Equals(idx) {
		t.Errorf("indexed colors must pass through Lighten, got %v", got)
	}
	if got := ColorDefault.Darken(0.5); !got.Equals(ColorDefault) {
		t.Errorf("default color must pass through Darken, got %v", got)
	}
}

func TestColorBlend(t *testing.T) {
	if got := ColorBlack.Blend(ColorWhite, 1); !got.Equals(ColorWhite) {
		t.Errorf("Blend(_, 1) should yield other, got %v", got)
	}
	if got := ColorBlack.Blend(ColorWhite, 0); !got.Equals(ColorBlack) {
		t.Errorf("Blend(_, 0) should yield receiver, got %v", got)
	}

	idx := ColorFromIndex(2)
	if got := idx.Blend(ColorWhite, 0.4); !got.Equals(idx) {
		t.Errorf("indexed blend below midpoint keeps receiver, got %v", got)
	}
	if got := idx.Blend(ColorWhite, 0.6); !got.Equals(ColorWhite) {
		t.Errorf("indexed blend above midpoint keeps other, got %v", got)
	}
}

func TestColorString(t *testing.T) {
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("expected default, got %q", got)
	}
	if got := ColorFromIndex(7).String(); got != "idx(7)" {
		t.Errorf("expected idx(7), got %q", got)
	}
	if got := ColorFromRGB(255, 128, 0).String(); got != "#FF8000" {
		t.Errorf("expected #FF8000, got %q", got)
	}
}

func TestAttributeOps(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrItalic)
	if !a.Has(AttrBold) || !a.Has(AttrItalic) {
		t.Error("With did not add attributes")
	}
	if a.Has(AttrUnderline) {
		t.Error("unexpected attribute present")
	}
	a = a.Without(AttrBold)
	if a.Has(AttrBold) {
		t.Error("Without did not remove attribute")
	}
}

func TestStyleMerge(t *testing.T) {
	base := NewStyle(ColorRed).Bold()
	over := DefaultStyle().WithBackground(ColorBlue).Italic()

	merged := base.Merge(over)
	if !merged.Foreground.Equals(ColorRed) {
		t.Error("default foreground in other must not clobber base")
	}
	if !merged.Background.Equals(ColorBlue) {
		t.Error("non-default background in other must win")
	}
	if !merged.Attributes.Has(AttrBold) || !merged.Attributes.Has(AttrItalic) {
		t.Error("attributes must union")
	}
}

func TestStyleDefaultAndInvert(t *testing.T) {
	if !DefaultStyle().IsDefault() {
		t.Error("DefaultStyle should be default")
	}
	if NewStyle(ColorRed).IsDefault() {
		t.Error("colored style should not be default")
	}

	s := DefaultStyle().WithForeground(ColorRed).WithBackground(ColorBlue)
	inv := s.Invert()
	if !inv.Foreground.Equals(ColorBlue) || !inv.Background.Equals(ColorRed) {
		t.Errorf("Invert did not swap colors: %+v", inv)
	}
}
