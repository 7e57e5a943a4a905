package surface

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// ImageSurface draws into an in-memory raster through a gg context. It backs
// the snapshot command and the headless load loop, and doubles as the test
// surface: logical units map 1:1 to pixels.
type ImageSurface struct {
	dc *gg.Context
	w  int
	h  int
}

// NewImageSurface allocates a w×h raster surface. Non-positive dimensions
// produce a zero-area surface whose draws are all no-ops.
func NewImageSurface(w, h int) *ImageSurface {
	if w < 1 || h < 1 {
		return &ImageSurface{}
	}
	return &ImageSurface{dc: gg.NewContext(w, h), w: w, h: h}
}

func (s *ImageSurface) Size() (float64, float64) {
	return float64(s.w), float64(s.h)
}

func (s *ImageSurface) Clear(c Color) {
	if s.dc == nil {
		return
	}
	s.dc.SetColor(color.RGBA{c.R, c.G, c.B, c.A})
	s.dc.Clear()
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c Color) {
	if s.dc == nil || w <= 0 || h <= 0 {
		return
	}
	s.dc.SetColor(color.RGBA{c.R, c.G, c.B, c.A})
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	if s.dc == nil {
		return
	}
	s.dc.SetColor(color.RGBA{c.R, c.G, c.B, c.A})
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x0, y0, x1, y1)
	s.dc.Stroke()
}

func (s *ImageSurface) Blit(buf *PixelBuffer) {
	if s.dc == nil || buf == nil || buf.W < 1 || buf.H < 1 {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, buf.W, buf.H))
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			p := buf.Pix[y*buf.W+x]
			img.SetRGBA(x, y, color.RGBA{p.R, p.G, p.B, p.A})
		}
	}
	// The raster is computed at surface resolution, so this lands 1:1.
	s.dc.DrawImage(img, 0, 0)
}

// Image exposes the backing raster for encoding.
func (s *ImageSurface) Image() image.Image {
	if s.dc == nil {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	return s.dc.Image()
}

// Context exposes the gg context so the snapshot exporter can add captions.
func (s *ImageSurface) Context() *gg.Context {
	return s.dc
}

// SavePNG writes the raster to disk.
func (s *ImageSurface) SavePNG(path string) error {
	if s.dc == nil {
		return nil
	}
	return s.dc.SavePNG(path)
}
