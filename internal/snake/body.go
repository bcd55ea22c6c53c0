package snake

import "errors"

// ErrInvalidLength is returned when a body is created with fewer than one cell.
var ErrInvalidLength = errors.New("snake: initial length must be at least 1")

// Body is the snake: a head plus the body cells behind it, oldest first.
type Body struct {
	grid  Grid
	head  Coord
	cells []Coord // Tail at index 0, cell behind the head last
}

// NewBody places a snake of the given length on g: the head is centered
// horizontally one row above the middle and the body extends to its left.
func NewBody(g Grid, length int) (*Body, error) {
	if length < 1 {
		return nil, ErrInvalidLength
	}

	half := float64(g.Size) / 2
	head := g.AtF(half+float64(length)/2, half-1)

	cells := make([]Coord, 0, length-1)
	for i := length - 1; i > 0; i-- {
		cells = append(cells, g.At(head.X-i, head.Y))
	}

	return &Body{grid: g, head: head, cells: cells}, nil
}

// Head returns the head cell.
func (b *Body) Head() Coord {
	return b.head
}

// Cells returns a copy of the body cells, tail first, head excluded.
func (b *Body) Cells() []Coord {
	out := make([]Coord, len(b.cells))
	copy(out, b.cells)
	return out
}

// Size returns the number of occupied cells, head included.
func (b *Body) Size() int {
	return len(b.cells) + 1
}

// Occupies reports whether c is the head or any body cell.
func (b *Body) Occupies(c Coord) bool {
	if b.head == c {
		return true
	}
	for _, p := range b.cells {
		if p == c {
			return true
		}
	}
	return false
}

// Move advances the head one cell in direction d. It returns false and
// leaves the body untouched when the new head would hit the current
// occupancy (tail included) or the border.
func (b *Body) Move(d Direction, border *Border) bool {
	next := b.grid.Step(b.head, d)

	if b.Occupies(next) {
		return false
	}
	if border.Contains(next) {
		return false
	}

	b.cells = append(b.cells, b.head)[1:]
	b.head = next
	return true
}

// Grow duplicates the tail cell. Size counts the duplicate at once, but it
// only separates into its own cell when the next Move leaves it behind.
func (b *Body) Grow() {
	tail := b.head
	if len(b.cells) > 0 {
		tail = b.cells[0]
	}
	b.cells = append([]Coord{tail}, b.cells...)
}
