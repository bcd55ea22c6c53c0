// Package render draws game frames into images using gg.
package render

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// fontHeight is the line height of gg's built-in face.
const fontHeight = 13.0

// Image is a core.Canvas backed by an RGBA image. Every cell is scale
// pixels square and cells are separated by a 1 pixel gap.
type Image struct {
	dc    *gg.Context
	cells int
	scale int
}

// NewImage creates an image canvas for a cells x cells grid.
func NewImage(cells, scale int) *Image {
	side := cells*scale + cells - 1
	img := &Image{
		dc:    gg.NewContext(side, side),
		cells: cells,
		scale: scale,
	}
	img.Clear()
	return img
}

// Clear fills the image with the background color.
func (m *Image) Clear() {
	m.dc.SetHexColor(core.ColorBackground.Hex())
	m.dc.Clear()
}

// DrawCell fills the square for cell (x, y).
func (m *Image) DrawCell(x, y int, c core.Color) {
	px, py := m.origin(x, y)
	m.dc.SetHexColor(c.Hex())
	m.dc.DrawRectangle(px, py, float64(m.scale), float64(m.scale))
	m.dc.Fill()
}

// DrawText draws text centered on cell (x, y), about 1.3 cells tall.
func (m *Image) DrawText(x, y int, text string, c core.Color) {
	px, py := m.origin(x, y)
	cx := px + float64(m.scale)/2
	cy := py + float64(m.scale)/2
	k := float64(m.scale) * 1.3 / fontHeight

	m.dc.Push()
	m.dc.SetHexColor(c.Hex())
	m.dc.ScaleAbout(k, k, cx, cy)
	m.dc.DrawStringAnchored(text, cx, cy, 0.5, 0.5)
	m.dc.Pop()
}

func (m *Image) origin(x, y int) (float64, float64) {
	return float64(x*m.scale + x), float64(y*m.scale + y)
}

// Image returns the rendered frame.
func (m *Image) Image() image.Image {
	return m.dc.Image()
}

// Fit returns the frame scaled down to at most maxWidth pixels wide.
// maxWidth <= 0 or a smaller frame returns it unchanged.
func (m *Image) Fit(maxWidth int) image.Image {
	img := m.dc.Image()
	if maxWidth <= 0 || img.Bounds().Dx() <= maxWidth {
		return img
	}
	return imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
}

// SavePNG writes the frame to path, scaled down to maxWidth if set.
func (m *Image) SavePNG(path string, maxWidth int) error {
	if err := imaging.Save(m.Fit(maxWidth), path); err != nil {
		return fmt.Errorf("render: cannot save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the frame as PNG to w, scaled down to maxWidth if set.
func (m *Image) EncodePNG(w io.Writer, maxWidth int) error {
	if err := imaging.Encode(w, m.Fit(maxWidth), imaging.PNG); err != nil {
		return fmt.Errorf("render: cannot encode png: %w", err)
	}
	return nil
}
