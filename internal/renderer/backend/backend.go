// Package backend provides terminal output abstraction for the
// renderer. A Backend is a character grid the renderer paints frames
// onto; the tcell implementation talks to a real terminal and the
// null implementation backs tests.
package backend

import "github.com/dshills/treeline/internal/renderer/core"

// Cell is a single character cell handed to a backend.
type Cell struct {
	// Rune is the base character to display.
	Rune rune

	// Combining holds any combining runes attached to the base.
	Combining []rune

	// Style is the visual style for this cell.
	Style core.Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: core.DefaultStyle()}
}

// Backend is a character-grid output device.
type Backend interface {
	// Init prepares the backend for drawing.
	Init() error

	// Shutdown restores the device. Safe to call more than once.
	Shutdown()

	// Size returns the grid dimensions in cells.
	Size() (width, height int)

	// SetCell places a cell at grid position (x, y). Out-of-bounds
	// positions are ignored.
	SetCell(x, y int, cell Cell)

	// Clear blanks the grid.
	Clear()

	// Show flushes pending drawing to the device.
	Show()

	// WaitKey blocks until a key press (or an interrupt) arrives.
	WaitKey()
}
