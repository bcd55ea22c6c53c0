package snake

import "testing"

func TestBorderEdges(t *testing.T) {
	for _, size := range []int{4, 5, 10, 32} {
		g := Grid{Size: size}
		b := NewBorder(g, size)

		for i := 0; i < size; i++ {
			if !b.Contains(g.At(i, 0)) {
				t.Errorf("size %d: missing top cell (%d,0)", size, i)
			}
			if !b.Contains(g.At(i, size)) {
				t.Errorf("size %d: missing far-edge cell (%d,%d)", size, i, size)
			}
		}
		for i := 1; i < size-1; i++ {
			if !b.Contains(g.At(0, i)) {
				t.Errorf("size %d: missing left cell (0,%d)", size, i)
			}
			if !b.Contains(g.At(size, i)) {
				t.Errorf("size %d: missing far-edge cell (%d,%d)", size, size, i)
			}
		}

		if b.Len() != 4*(size-1) {
			t.Errorf("size %d: Len() = %d, expected %d", size, b.Len(), 4*(size-1))
		}
	}
}

func TestBorderFarEdgeClampsOntoLastIndex(t *testing.T) {
	g := Grid{Size: 10}
	b := NewBorder(g, 10)

	// (i, 10) clamps to (i, 9), so the last row is wall
	for x := 0; x < 10; x++ {
		if !b.Contains(Coord{x, 9}) {
			t.Errorf("(%d,9) should be wall", x)
		}
	}
	for y := 1; y < 9; y++ {
		if !b.Contains(Coord{9, y}) {
			t.Errorf("(9,%d) should be wall", y)
		}
	}
}

func TestBorderInteriorIsFree(t *testing.T) {
	g := Grid{Size: 10}
	b := NewBorder(g, 10)

	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			if b.Contains(Coord{x, y}) {
				t.Errorf("interior cell (%d,%d) should not be wall", x, y)
			}
		}
	}
}

func TestBorderCellsIsCopy(t *testing.T) {
	b := NewBorder(Grid{Size: 5}, 5)
	cells := b.Cells()
	cells[0] = Coord{2, 2}
	if b.Contains(Coord{2, 2}) {
		t.Error("mutating Cells() result should not affect the border")
	}
	if b.Cells()[0] != (Coord{0, 0}) {
		t.Errorf("first border cell = %v, expected (0,0)", b.Cells()[0])
	}
}
