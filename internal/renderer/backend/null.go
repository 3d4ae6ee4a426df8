package backend

// NullBackend is an in-memory grid backend for testing.
type NullBackend struct {
	width, height int
	cells         [][]Cell
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{width: width, height: height}
}

func (b *NullBackend) Init() error {
	b.cells = make([][]Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = EmptyCell()
		}
	}
	return nil
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// GetCell returns the cell at (x, y), or an empty cell out of bounds.
func (b *NullBackend) GetCell(x, y int) Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return EmptyCell()
}

func (b *NullBackend) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = EmptyCell()
		}
	}
}

func (b *NullBackend) Show() {}

func (b *NullBackend) WaitKey() {}

// RowText returns the text content of a grid row, with trailing
// blanks trimmed. Test helper.
func (b *NullBackend) RowText(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for x := 0; x < b.width; x++ {
		c := b.cells[y][x]
		if c.Rune != 0 {
			runes = append(runes, c.Rune)
			runes = append(runes, c.Combining...)
		}
	}
	// Trim trailing spaces.
	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	return string(runes[:end])
}
