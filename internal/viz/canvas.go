package viz

import (
	"strings"

	"github.com/san-kum/algoviz/internal/surface"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillRect sets every sub-pixel in the given rectangle.
func (c *Canvas) FillRect(x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.Set(xx, yy)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// luminanceCutoff divides visible draws from dropped ones on the 1-bit
// braille canvas: dark background fills vanish while bars, walls and
// highlights survive.
const luminanceCutoff = 0.18

// CanvasSurface adapts a braille Canvas to the surface contract. Logical
// units are braille sub-pixels, so one terminal cell is 2x4 units.
type CanvasSurface struct {
	canvas *Canvas
}

// NewCanvasSurface wraps an existing canvas.
func NewCanvasSurface(c *Canvas) *CanvasSurface {
	return &CanvasSurface{canvas: c}
}

// Canvas exposes the wrapped canvas for rendering and export.
func (s *CanvasSurface) Canvas() *Canvas { return s.canvas }

func (s *CanvasSurface) Size() (float64, float64) {
	if s.canvas == nil {
		return 0, 0
	}
	return float64(s.canvas.Width * 2), float64(s.canvas.Height * 4)
}

func (s *CanvasSurface) Clear(c surface.Color) {
	if s.canvas == nil {
		return
	}
	s.canvas.Clear()
}

func (s *CanvasSurface) FillRect(x, y, w, h float64, c surface.Color) {
	if s.canvas == nil || c.Luminance() < luminanceCutoff {
		return
	}
	s.canvas.FillRect(int(x), int(y), int(w+0.5), int(h+0.5))
}

func (s *CanvasSurface) StrokeLine(x0, y0, x1, y1, width float64, c surface.Color) {
	if s.canvas == nil || c.Luminance() < luminanceCutoff {
		return
	}
	s.canvas.DrawLine(int(x0), int(y0), int(x1), int(y1))
}

func (s *CanvasSurface) Blit(buf *surface.PixelBuffer) {
	if s.canvas == nil || buf == nil || buf.W < 1 || buf.H < 1 {
		return
	}
	s.canvas.Clear()
	w, h := s.canvas.Width*2, s.canvas.Height*4
	for y := 0; y < h; y++ {
		sy := y * buf.H / h
		for x := 0; x < w; x++ {
			sx := x * buf.W / w
			if buf.At(sx, sy).Luminance() >= luminanceCutoff {
				s.canvas.Set(x, y)
			}
		}
	}
}
