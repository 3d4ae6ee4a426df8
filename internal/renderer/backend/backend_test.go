package backend

import (
	"testing"

	"github.com/dshills/treeline/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := Cell{Rune: 'X', Style: core.NewStyle(core.ColorRed)}
	b.SetCell(10, 5, cell)

	got := b.GetCell(10, 5)
	if got.Rune != 'X' || !got.Style.Equals(cell.Style) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds is ignored on write and empty on read.
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.GetCell(-1, 0); got.Rune != ' ' {
		t.Error("out of bounds read should return empty cell")
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(10, 4)
	b.Init()

	b.SetCell(3, 2, Cell{Rune: '#', Style: core.DefaultStyle()})
	b.Clear()
	if got := b.GetCell(3, 2).Rune; got != ' ' {
		t.Errorf("expected cleared cell, got %q", got)
	}
}

func TestNullBackendRowText(t *testing.T) {
	b := NewNullBackend(10, 2)
	b.Init()

	for i, r := range "ab c" {
		b.SetCell(i, 0, Cell{Rune: r, Style: core.DefaultStyle()})
	}
	if got := b.RowText(0); got != "ab c" {
		t.Errorf("expected %q, got %q", "ab c", got)
	}
	if got := b.RowText(1); got != "" {
		t.Errorf("blank row should be empty, got %q", got)
	}
	if got := b.RowText(5); got != "" {
		t.Errorf("out of bounds row should be empty, got %q", got)
	}
}
