// Package fractal renders a continuously zooming Mandelbrot view. Every
// frame recomputes the full escape-time raster under a time-derived zoom;
// only the zoom clock survives between frames.
package fractal

import (
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/algoviz/internal/surface"
)

const (
	// DefaultZoomBase is the per-second zoom multiplier.
	DefaultZoomBase = 1.5
	// DefaultZoomPeriod is the repeat interval of the zoom cycle.
	DefaultZoomPeriod = 20 * time.Second
	// DefaultMaxIter caps the escape iteration count.
	DefaultMaxIter = 60
	// DefaultScale is the viewport width at zoom factor 1.
	DefaultScale = 3.0
)

// ZoomClock turns monotonic elapsed time into a repeating zoom factor:
// base^(elapsed mod period). When elapsed passes the period the epoch
// resets, so the zoom restarts at 1.0 instead of losing float precision at
// extreme depth.
type ZoomClock struct {
	Base   float64
	Period time.Duration
	epoch  time.Duration
}

// NewZoomClock builds a clock with reference defaults for non-positive
// arguments.
func NewZoomClock(base float64, period time.Duration) *ZoomClock {
	if base <= 1 {
		base = DefaultZoomBase
	}
	if period <= 0 {
		period = DefaultZoomPeriod
	}
	return &ZoomClock{Base: base, Period: period}
}

// Factor returns the zoom factor for the given monotonic reading, resetting
// the epoch whenever a full period has elapsed.
func (z *ZoomClock) Factor(now time.Duration) float64 {
	for now-z.epoch >= z.Period {
		z.epoch += z.Period
	}
	if now < z.epoch {
		// clock went backwards relative to epoch (fresh fake clock); restart
		z.epoch = now
	}
	return math.Pow(z.Base, (now - z.epoch).Seconds())
}

// Viewport is the per-frame complex-plane window: derived bounds around a
// fixed center, scaled for zoom and surface aspect.
type Viewport struct {
	MinRe, MinIm   float64
	ReSpan, ImSpan float64
}

// NewViewport derives the window for a center, zoom factor, base scale and
// pixel aspect (w/h).
func NewViewport(centerRe, centerIm, scale, zoom, aspect float64) Viewport {
	reSpan := scale / zoom
	imSpan := reSpan / aspect
	return Viewport{
		MinRe:  centerRe - reSpan/2,
		MinIm:  centerIm - imSpan/2,
		ReSpan: reSpan,
		ImSpan: imSpan,
	}
}

// Point maps a pixel at normalized (u, v) in [0,1] into the plane.
func (v Viewport) Point(u, vv float64) (re, im float64) {
	return v.MinRe + u*v.ReSpan, v.MinIm + vv*v.ImSpan
}

// Escape iterates z ← z² + c from z = c and returns the iteration count at
// which |z|² exceeded 4, or maxIter for interior points.
func Escape(re, im float64, maxIter int) int {
	zr, zi := re, im
	for n := 0; n < maxIter; n++ {
		if zr*zr+zi*zi > 4.0 {
			return n
		}
		zr, zi = zr*zr-zi*zi+re, 2*zr*zi+im
	}
	return maxIter
}

// Renderer owns the zoom clock and recomputes the full pixel buffer each
// frame. Rendering is capped at 1x density; that is a cost policy, not a
// semantic one.
type Renderer struct {
	CenterRe, CenterIm float64
	Scale              float64
	MaxIter            int
	Interior           surface.Color
	clock              *ZoomClock
}

// NewRenderer builds a renderer around the classic seahorse-valley center.
func NewRenderer(base float64, period time.Duration, maxIter int, scale float64, interior surface.Color) *Renderer {
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Renderer{
		CenterRe: -0.743643887037151,
		CenterIm: 0.131825904205330,
		Scale:    scale,
		MaxIter:  maxIter,
		Interior: interior,
		clock:    NewZoomClock(base, period),
	}
}

func (r *Renderer) Name() string { return "fractal" }

// Setup resets the zoom epoch. The randomness source is unused here; the
// render is fully deterministic in time.
func (r *Renderer) Setup(w, h float64, rng *rand.Rand) {
	r.clock = NewZoomClock(r.clock.Base, r.clock.Period)
}

// Zoom exposes the clock for inspection.
func (r *Renderer) Zoom() *ZoomClock { return r.clock }

// Render computes the full raster for the given geometry and time.
func (r *Renderer) Render(w, h int, now time.Duration) *surface.PixelBuffer {
	buf := surface.NewPixelBuffer(w, h)
	if w < 1 || h < 1 {
		return buf
	}
	zoom := r.clock.Factor(now)
	vp := NewViewport(r.CenterRe, r.CenterIm, r.Scale, zoom, float64(w)/float64(h))
	for y := 0; y < h; y++ {
		v := float64(y) / float64(h)
		for x := 0; x < w; x++ {
			u := float64(x) / float64(w)
			re, im := vp.Point(u, v)
			n := Escape(re, im, r.MaxIter)
			if n >= r.MaxIter {
				buf.Pix[y*w+x] = r.Interior
			} else {
				buf.Pix[y*w+x] = EscapeColor(n, r.MaxIter)
			}
		}
	}
	return buf
}

// Frame recomputes the raster at surface resolution and commits it in one
// blit. No progressive reveal, no cross-frame caching.
func (r *Renderer) Frame(dst surface.Surface, now time.Duration) {
	fw, fh := dst.Size()
	w, h := int(fw), int(fh)
	if w < 1 || h < 1 {
		return
	}
	dst.Blit(r.Render(w, h, now))
}

// EscapeColor maps an escape count to a color: a continuous hue sweep with
// brightness pulled down near the set boundary. Any deterministic continuous
// palette would do; this one reads well at 60 iterations.
func EscapeColor(n, maxIter int) surface.Color {
	t := float64(n) / float64(maxIter)
	hue := math.Mod(0.62+2.5*t, 1.0)
	return hsv(hue, 0.85, 0.25+0.75*t)
}

// hsv converts h,s,v in [0,1] to an opaque Color.
func hsv(h, s, v float64) surface.Color {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return surface.RGB(uint8(r*255), uint8(g*255), uint8(b*255))
}
