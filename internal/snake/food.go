package snake

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned when no interior cell is free for food.
var ErrBoardFull = errors.New("snake: no free cell for food")

// Occupier reports whether a cell is taken.
type Occupier interface {
	Occupies(c Coord) bool
}

// Spawner places food on random free interior cells.
type Spawner struct {
	grid        Grid
	rng         *rand.Rand
	maxAttempts int
}

// NewSpawner creates a spawner drawing from rng. maxAttempts caps the
// rejection sampling; values below 1 default to four draws per cell.
func NewSpawner(g Grid, rng *rand.Rand, maxAttempts int) *Spawner {
	if maxAttempts < 1 {
		maxAttempts = g.Size * g.Size * 4
	}
	return &Spawner{grid: g, rng: rng, maxAttempts: maxAttempts}
}

// Spawn returns a cell with both coordinates in [1, Size-2] that occ does
// not occupy. Random draws are retried up to the attempt cap; after that a
// free cell is picked from a full scan of the interior, and ErrBoardFull is
// returned if there is none.
func (s *Spawner) Spawn(occ Occupier) (Coord, error) {
	span := s.grid.Size - 2
	if span < 1 {
		return Coord{}, ErrBoardFull
	}

	for i := 0; i < s.maxAttempts; i++ {
		c := s.grid.At(1+s.rng.Intn(span), 1+s.rng.Intn(span))
		if !occ.Occupies(c) {
			return c, nil
		}
	}

	var free []Coord
	for y := 1; y <= span; y++ {
		for x := 1; x <= span; x++ {
			c := Coord{X: x, Y: y}
			if !occ.Occupies(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Coord{}, ErrBoardFull
	}
	return free[s.rng.Intn(len(free))], nil
}
