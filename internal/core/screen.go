package core

import (
	"strings"
)

// CellGlyph is the rune used to paint a filled grid cell.
const CellGlyph = '█'

// Cell is one character position of the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D character buffer that implements Canvas for terminals.
// Every grid cell spans cellWidth characters horizontally so that square
// cells look square in a terminal font.
type Screen struct {
	cols      int // grid cells per row
	rows      int // grid cells per column
	cellWidth int
	cells     [][]Cell
}

// NewScreen creates a screen buffer for a cols x rows grid.
// A cellWidth below 1 is treated as 1.
func NewScreen(cols, rows, cellWidth int) *Screen {
	s := &Screen{
		cols:      cols,
		rows:      rows,
		cellWidth: max(1, cellWidth),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.rows)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.cols*s.cellWidth)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.cols * s.cellWidth
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.rows
}

// Clear fills the entire screen with background spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: ColorBackground}
		}
	}
}

// DrawCell paints the grid cell at (x, y).
// Out-of-bounds cells are silently ignored.
func (s *Screen) DrawCell(x, y int, c Color) {
	if x < 0 || x >= s.cols {
		return
	}
	for i := 0; i < s.cellWidth; i++ {
		s.Set(x*s.cellWidth+i, y, CellGlyph, c)
	}
}

// DrawText centers text on the grid cell at (x, y). Characters beyond the
// screen are clipped and spaces do not overwrite existing content.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	runes := []rune(text)
	center := x*s.cellWidth + s.cellWidth/2
	start := center - len(runes)/2
	for i, r := range runes {
		if r == ' ' {
			continue
		}
		s.Set(start+i, y, r, c)
	}
}

// Set places a rune at the given character position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.rows {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// GetCell returns the cell at the given character position.
// Returns a background space for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.rows {
		return Cell{Rune: ' ', Color: ColorBackground}
	}
	return s.cells[y][x]
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.rows + s.rows)

	for y := 0; y < s.rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.rows {
		return strings.Repeat(" ", s.Width())
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
