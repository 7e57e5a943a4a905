package surface

// Color is a straight-alpha RGBA value in device-independent color space.
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Luminance returns perceptual brightness in [0,1], used by 1-bit surfaces
// to decide whether a draw is visible at all.
func (c Color) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
}

// Surface is a drawing target in logical (device-independent) units.
// Implementations apply any device-pixel scaling themselves; callers never
// see physical pixels. A zero-area surface accepts every call as a no-op.
type Surface interface {
	// Size reports the current logical width and height.
	Size() (w, h float64)

	// Clear fills the whole surface with c.
	Clear(c Color)

	// FillRect fills the axis-aligned rectangle at (x, y) with the given
	// extent.
	FillRect(x, y, w, h float64, c Color)

	// StrokeLine strokes a straight segment from (x0, y0) to (x1, y1).
	StrokeLine(x0, y0, x1, y1, width float64, c Color)

	// Blit commits an entire raster to the surface in one step. The buffer
	// is stretched to cover the full surface.
	Blit(buf *PixelBuffer)
}

// PixelBuffer is a dense row-major raster. It is rebuilt from scratch every
// frame that uses it; nothing is cached across frames.
type PixelBuffer struct {
	W, H int
	Pix  []Color
}

// NewPixelBuffer allocates a w×h raster. Non-positive dimensions yield an
// empty buffer that Blit implementations skip.
func NewPixelBuffer(w, h int) *PixelBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &PixelBuffer{W: w, H: h, Pix: make([]Color, w*h)}
}

// Set writes one pixel. Out-of-range coordinates are ignored.
func (b *PixelBuffer) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	b.Pix[y*b.W+x] = c
}

// At reads one pixel; out-of-range coordinates return the zero Color.
func (b *PixelBuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return Color{}
	}
	return b.Pix[y*b.W+x]
}
