package snake

import "testing"

func TestDirectionTables(t *testing.T) {
	tests := []struct {
		dir      Direction
		dx, dy   int
		opposite Direction
		name     string
	}{
		{Up, 0, -1, Down, "up"},
		{Down, 0, 1, Up, "down"},
		{Left, -1, 0, Right, "left"},
		{Right, 1, 0, Left, "right"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := tc.dir.Offset()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Offset() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
			if tc.dir.Opposite() != tc.opposite {
				t.Errorf("Opposite() = %v, expected %v", tc.dir.Opposite(), tc.opposite)
			}
			if tc.dir.Opposite().Opposite() != tc.dir {
				t.Error("Opposite should be an involution")
			}
			if tc.dir.String() != tc.name {
				t.Errorf("String() = %q, expected %q", tc.dir.String(), tc.name)
			}
		})
	}
}

func TestDirectionInvalid(t *testing.T) {
	d := Direction(42)
	if d.Valid() {
		t.Error("Direction(42) should be invalid")
	}
	if dx, dy := d.Offset(); dx != 0 || dy != 0 {
		t.Errorf("invalid Offset() = (%d, %d), expected (0, 0)", dx, dy)
	}
	if d.String() != "unknown" {
		t.Errorf("String() = %q, expected unknown", d.String())
	}
	if _, err := d.MarshalText(); err == nil {
		t.Error("MarshalText should fail for invalid direction")
	}
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"up", "UP", "Left", "down", "right"} {
		if _, err := ParseDirection(s); err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("ParseDirection(\"north\") should fail")
	}

	var d Direction
	if err := d.UnmarshalText([]byte("left")); err != nil || d != Left {
		t.Errorf("UnmarshalText(left) = %v, %v", d, err)
	}
}
