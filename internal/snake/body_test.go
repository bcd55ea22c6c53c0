package snake

import (
	"errors"
	"slices"
	"testing"
)

func newTestBody(t *testing.T, size, length int) (*Body, *Border) {
	t.Helper()
	g := Grid{Size: size}
	b, err := NewBody(g, length)
	if err != nil {
		t.Fatalf("NewBody(%d) failed: %v", length, err)
	}
	return b, NewBorder(g, size)
}

func TestNewBodyPlacement(t *testing.T) {
	b, _ := newTestBody(t, 10, 3)

	if b.Head() != (Coord{6, 4}) {
		t.Errorf("Head() = %v, expected (6,4)", b.Head())
	}
	if want := []Coord{{4, 4}, {5, 4}}; !slices.Equal(b.Cells(), want) {
		t.Errorf("Cells() = %v, expected %v", b.Cells(), want)
	}
	if b.Size() != 3 {
		t.Errorf("Size() = %d, expected 3", b.Size())
	}
}

func TestNewBodyInvalidLength(t *testing.T) {
	if _, err := NewBody(Grid{Size: 10}, 0); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("NewBody(0) error = %v, expected ErrInvalidLength", err)
	}
}

func TestBodyOccupies(t *testing.T) {
	b, _ := newTestBody(t, 10, 3)

	for _, c := range []Coord{{6, 4}, {5, 4}, {4, 4}} {
		if !b.Occupies(c) {
			t.Errorf("Occupies(%v) = false, expected true", c)
		}
	}
	for _, c := range []Coord{{3, 4}, {7, 4}, {6, 5}} {
		if b.Occupies(c) {
			t.Errorf("Occupies(%v) = true, expected false", c)
		}
	}
}

func TestBodyMoveRightIntoWall(t *testing.T) {
	b, border := newTestBody(t, 10, 3)

	if !b.Move(Right, border) {
		t.Fatal("first Move(Right) should succeed")
	}
	if b.Head() != (Coord{7, 4}) {
		t.Errorf("Head() = %v, expected (7,4)", b.Head())
	}
	if want := []Coord{{5, 4}, {6, 4}}; !slices.Equal(b.Cells(), want) {
		t.Errorf("Cells() = %v, expected %v", b.Cells(), want)
	}

	if !b.Move(Right, border) {
		t.Fatal("Move(Right) to (8,4) should succeed")
	}

	// (9,4) is the clamped far edge of the border
	before := b.Cells()
	if b.Move(Right, border) {
		t.Fatal("Move(Right) into (9,4) should hit the border")
	}
	if b.Head() != (Coord{8, 4}) || !slices.Equal(b.Cells(), before) {
		t.Error("failed move must not mutate the body")
	}
}

func TestBodyMoveIntoWallAllSides(t *testing.T) {
	tests := []struct {
		dir   Direction
		steps int // successful moves before the wall
	}{
		{Up, 3},    // y 4 -> 1
		{Down, 4},  // y 4 -> 8
		{Right, 2}, // x 6 -> 8
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			b, border := newTestBody(t, 10, 3)
			for i := 0; i < tc.steps; i++ {
				if !b.Move(tc.dir, border) {
					t.Fatalf("move %d should succeed, head %v", i+1, b.Head())
				}
			}
			if b.Move(tc.dir, border) {
				t.Errorf("move into wall should fail, head %v", b.Head())
			}
		})
	}
}

func TestBodyMoveIntoSelf(t *testing.T) {
	b, border := newTestBody(t, 10, 5) // head (7,4), body (3..6,4)

	if !b.Move(Up, border) || !b.Move(Left, border) {
		t.Fatal("setup moves should succeed")
	}
	if b.Move(Down, border) {
		t.Error("Move(Down) into (6,4) should collide with the body")
	}
}

func TestBodyMoveIntoTailCollides(t *testing.T) {
	b, border := newTestBody(t, 10, 4) // head (7,4), body (4..6,4)

	if !b.Move(Up, border) || !b.Move(Left, border) {
		t.Fatal("setup moves should succeed")
	}
	// Tail is at (6,4); it would vacate this tick but still counts.
	if b.Cells()[0] != (Coord{6, 4}) {
		t.Fatalf("tail = %v, expected (6,4)", b.Cells()[0])
	}
	if b.Move(Down, border) {
		t.Error("moving into the current tail cell should collide")
	}
}

func TestBodyMoveBackwardsCollides(t *testing.T) {
	b, border := newTestBody(t, 10, 3)
	if b.Move(Left, border) {
		t.Error("reversing into the neck should collide")
	}
}

func TestBodyGrowTiming(t *testing.T) {
	b, border := newTestBody(t, 10, 3)

	b.Grow()
	if want := []Coord{{4, 4}, {4, 4}, {5, 4}}; !slices.Equal(b.Cells(), want) {
		t.Errorf("after Grow Cells() = %v, expected %v", b.Cells(), want)
	}

	if !b.Move(Right, border) {
		t.Fatal("Move after Grow should succeed")
	}
	if want := []Coord{{4, 4}, {5, 4}, {6, 4}}; !slices.Equal(b.Cells(), want) {
		t.Errorf("after Move Cells() = %v, expected %v", b.Cells(), want)
	}
	if b.Size() != 4 {
		t.Errorf("Size() = %d, expected 4", b.Size())
	}

	// Length stays put from here on
	if !b.Move(Right, border) || b.Size() != 4 {
		t.Errorf("Size() after plain move = %d, expected 4", b.Size())
	}
}

func TestBodyGrowSingleCell(t *testing.T) {
	b, border := newTestBody(t, 10, 1)
	start := b.Head()

	b.Grow()
	if !b.Move(Down, border) {
		t.Fatal("Move after Grow should succeed")
	}
	if b.Size() != 2 {
		t.Errorf("Size() = %d, expected 2", b.Size())
	}
	if want := []Coord{start}; !slices.Equal(b.Cells(), want) {
		t.Errorf("Cells() = %v, expected %v", b.Cells(), want)
	}
}
