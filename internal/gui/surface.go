package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/algoviz/internal/surface"
)

// Surface draws into an offscreen render texture so the presented frame
// survives pauses. Logical units are window pixels; raylib handles any
// device-pixel scaling underneath.
type Surface struct {
	target rl.RenderTexture2D
	w, h   int

	blitTex rl.Texture2D
	blitW   int
	blitH   int
	hasBlit bool
	hasTex  bool
	drawing bool
}

// NewSurface allocates the render target. Call Resize to follow the window.
func NewSurface(w, h int) *Surface {
	s := &Surface{}
	s.Resize(w, h)
	return s
}

// Resize recreates the render target when the window geometry changed.
func (s *Surface) Resize(w, h int) {
	if w == s.w && h == s.h && s.hasTex {
		return
	}
	if s.hasTex {
		rl.UnloadRenderTexture(s.target)
		s.hasTex = false
	}
	s.w, s.h = w, h
	if w < 1 || h < 1 {
		return
	}
	s.target = rl.LoadRenderTexture(int32(w), int32(h))
	s.hasTex = true
}

// Begin redirects draws into the render target.
func (s *Surface) Begin() {
	if !s.hasTex {
		return
	}
	rl.BeginTextureMode(s.target)
	s.drawing = true
}

// End closes the render target pass.
func (s *Surface) End() {
	if !s.drawing {
		return
	}
	rl.EndTextureMode()
	s.drawing = false
}

// Present blits the render target to the backbuffer. Render textures are
// stored upside down, hence the negative source height.
func (s *Surface) Present() {
	if !s.hasTex {
		return
	}
	src := rl.NewRectangle(0, 0, float32(s.w), -float32(s.h))
	rl.DrawTextureRec(s.target.Texture, src, rl.NewVector2(0, 0), rl.White)
}

// Unload frees GPU resources on teardown.
func (s *Surface) Unload() {
	if s.hasTex {
		rl.UnloadRenderTexture(s.target)
		s.hasTex = false
	}
	if s.hasBlit {
		rl.UnloadTexture(s.blitTex)
		s.hasBlit = false
	}
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.w), float64(s.h)
}

func col(c surface.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (s *Surface) Clear(c surface.Color) {
	if !s.drawing {
		return
	}
	rl.ClearBackground(col(c))
}

func (s *Surface) FillRect(x, y, w, h float64, c surface.Color) {
	if !s.drawing || w <= 0 || h <= 0 {
		return
	}
	rl.DrawRectangleV(rl.NewVector2(float32(x), float32(y)), rl.NewVector2(float32(w), float32(h)), col(c))
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c surface.Color) {
	if !s.drawing {
		return
	}
	rl.DrawLineEx(
		rl.NewVector2(float32(x0), float32(y0)),
		rl.NewVector2(float32(x1), float32(y1)),
		float32(width),
		col(c),
	)
}

// Blit uploads the raster into a texture and stretches it over the target.
func (s *Surface) Blit(buf *surface.PixelBuffer) {
	if !s.drawing || buf == nil || buf.W < 1 || buf.H < 1 {
		return
	}
	if !s.hasBlit || s.blitW != buf.W || s.blitH != buf.H {
		if s.hasBlit {
			rl.UnloadTexture(s.blitTex)
		}
		img := rl.GenImageColor(buf.W, buf.H, rl.Blank)
		s.blitTex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		s.blitW, s.blitH = buf.W, buf.H
		s.hasBlit = true
	}
	pixels := make([]color.RGBA, len(buf.Pix))
	for i, p := range buf.Pix {
		pixels[i] = color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
	}
	rl.UpdateTexture(s.blitTex, pixels)
	rl.DrawTexturePro(
		s.blitTex,
		rl.NewRectangle(0, 0, float32(buf.W), float32(buf.H)),
		rl.NewRectangle(0, 0, float32(s.w), float32(s.h)),
		rl.NewVector2(0, 0),
		0,
		rl.White,
	)
}
