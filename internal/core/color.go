package core

// Color identifies a palette entry for a drawn cell or text.
// Each entry carries a hex value for image output and an ANSI 256-color
// code for terminal output.
type Color uint8

// Palette entries used by the game.
const (
	ColorBackground Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorBerry
	ColorBorder
	ColorGameOver
	ColorScore
	ColorScoreNumber
)

type paletteEntry struct {
	name string
	hex  string
	ansi string
}

var palette = [...]paletteEntry{
	ColorBackground:  {"background", "#242424", "235"},
	ColorSnakeHead:   {"snake-head", "#FFD43B", "220"},
	ColorSnakeBody:   {"snake-body", "#5A9FD4", "74"},
	ColorBerry:       {"berry", "#FF5555", "203"},
	ColorBorder:      {"border", "#555555", "240"},
	ColorGameOver:    {"game-over", "#FF5555", "203"},
	ColorScore:       {"score", "#FFFF55", "227"},
	ColorScoreNumber: {"score-number", "#FFAA00", "214"},
}

// Hex returns the color as "#RRGGBB". Unknown colors map to the background.
func (c Color) Hex() string {
	return c.entry().hex
}

// ANSI returns the ANSI 256-color code for terminal rendering.
func (c Color) ANSI() string {
	return c.entry().ansi
}

// String returns the palette name.
func (c Color) String() string {
	return c.entry().name
}

func (c Color) entry() paletteEntry {
	if int(c) >= len(palette) {
		return palette[ColorBackground]
	}
	return palette[c]
}
