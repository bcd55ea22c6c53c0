package snake

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Coord is a grid cell. Coords built through a Grid always satisfy
// 0 <= X, Y <= Size-1.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is the square arena of Size x Size addressable cells.
type Grid struct {
	Size int
}

// At returns the cell at (x, y), capped to the grid. Out-of-range input
// collapses onto the nearest edge cell instead of failing.
func (g Grid) At(x, y int) Coord {
	return Coord{
		X: core.Clamp(x, 0, g.Size-1),
		Y: core.Clamp(y, 0, g.Size-1),
	}
}

// AtF floors fractional input before capping it like At.
func (g Grid) AtF(x, y float64) Coord {
	return g.At(int(math.Floor(x)), int(math.Floor(y)))
}

// Step returns the neighbour of c in direction d, capped to the grid.
func (g Grid) Step(c Coord, d Direction) Coord {
	dx, dy := d.Offset()
	return g.At(c.X+dx, c.Y+dy)
}
