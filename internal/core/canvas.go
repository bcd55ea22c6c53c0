package core

// Canvas is the render port a game draws its frames into.
// Coordinates are grid cells, not characters or pixels.
type Canvas interface {
	// Clear wipes the frame to the background color.
	Clear()

	// DrawCell fills the cell at (x, y) with a flat color.
	DrawCell(x, y int, c Color)

	// DrawText draws text centered on the cell at (x, y).
	// Spaces are transparent and leave whatever was drawn underneath.
	DrawText(x, y int, text string, c Color)
}
