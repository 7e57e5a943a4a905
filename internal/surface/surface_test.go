package surface

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want float64
	}{
		{"black", RGB(0, 0, 0), 0},
		{"white", RGB(255, 255, 255), 1},
		{"red", RGB(255, 0, 0), 0.299},
		{"green", RGB(0, 255, 0), 0.587},
		{"blue", RGB(0, 0, 255), 0.114},
	}

	for _, tt := range tests {
		if got := tt.c.Luminance(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: expected %f, got %f", tt.name, tt.want, got)
		}
	}
}

func TestRGBOpaque(t *testing.T) {
	c := RGB(1, 2, 3)
	if c.A != 255 {
		t.Errorf("expected opaque alpha, got %d", c.A)
	}
}

func TestPixelBufferBounds(t *testing.T) {
	b := NewPixelBuffer(4, 3)
	red := RGB(255, 0, 0)

	b.Set(0, 0, red)
	b.Set(3, 2, red)
	b.Set(-1, 0, red)
	b.Set(4, 0, red)
	b.Set(0, 3, red)

	if b.At(0, 0) != red || b.At(3, 2) != red {
		t.Error("in-range writes lost")
	}
	if b.At(-1, 0) != (Color{}) || b.At(4, 0) != (Color{}) {
		t.Error("out-of-range reads should return the zero color")
	}
}

func TestPixelBufferNonPositiveDims(t *testing.T) {
	b := NewPixelBuffer(-2, 5)
	if b.W != 0 || len(b.Pix) != 0 {
		t.Errorf("expected empty buffer, got %dx%d with %d pixels", b.W, b.H, len(b.Pix))
	}
	b.Set(0, 0, RGB(1, 1, 1)) // must not panic
}

func TestImageSurfaceSize(t *testing.T) {
	s := NewImageSurface(64, 48)
	w, h := s.Size()
	if w != 64 || h != 48 {
		t.Errorf("expected 64x48, got %vx%v", w, h)
	}
}

func TestImageSurfaceDraws(t *testing.T) {
	s := NewImageSurface(8, 8)
	s.Clear(RGB(0, 0, 0))
	s.FillRect(0, 0, 8, 8, RGB(255, 255, 255))

	img := s.Image()
	r, _, _, _ := img.At(4, 4).RGBA()
	if r == 0 {
		t.Error("fill did not reach the backing image")
	}
}

func TestImageSurfaceBlit(t *testing.T) {
	s := NewImageSurface(4, 4)
	buf := NewPixelBuffer(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			buf.Set(x, y, RGB(0, 255, 0))
		}
	}
	s.Blit(buf)

	_, g, _, _ := s.Image().At(2, 2).RGBA()
	if g == 0 {
		t.Error("blit did not reach the backing image")
	}
}

func TestImageSurfaceZeroArea(t *testing.T) {
	s := NewImageSurface(0, 0)
	// every call must be a silent no-op
	s.Clear(RGB(1, 1, 1))
	s.FillRect(0, 0, 10, 10, RGB(1, 1, 1))
	s.StrokeLine(0, 0, 5, 5, 1, RGB(1, 1, 1))
	s.Blit(NewPixelBuffer(2, 2))
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("expected zero size, got %vx%v", w, h)
	}
}
