package snake

// Border is the fixed ring of wall cells around the arena.
//
// The ring is enumerated with a far edge at index size, one past the last
// cell, and every cell goes through Grid clamping. On a grid of the same
// size the far edge therefore lands on the last row and column.
type Border struct {
	cells []Coord
	set   map[Coord]struct{}
}

// NewBorder builds the wall ring for an arena of the given size on g.
func NewBorder(g Grid, size int) *Border {
	b := &Border{set: make(map[Coord]struct{}, size*4)}

	for i := 0; i < size; i++ {
		// Top and bottom rows
		b.add(g.At(i, 0))
		b.add(g.At(i, size))

		if i == 0 || i == size-1 {
			continue
		}
		// Left and right columns
		b.add(g.At(0, i))
		b.add(g.At(size, i))
	}
	return b
}

func (b *Border) add(c Coord) {
	if _, ok := b.set[c]; ok {
		return
	}
	b.set[c] = struct{}{}
	b.cells = append(b.cells, c)
}

// Contains reports whether c is a wall cell.
func (b *Border) Contains(c Coord) bool {
	_, ok := b.set[c]
	return ok
}

// Cells returns the wall cells in enumeration order.
func (b *Border) Cells() []Coord {
	out := make([]Coord, len(b.cells))
	copy(out, b.cells)
	return out
}

// Len returns the number of distinct wall cells.
func (b *Border) Len() int {
	return len(b.cells)
}
