// Package core provides the render port and small shared helpers for the
// snake game. It contains no external dependencies (especially no Bubble Tea)
// so the game logic stays pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
