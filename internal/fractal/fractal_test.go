package fractal

import (
	"math"
	"testing"
	"time"

	"github.com/san-kum/algoviz/internal/surface"
)

func TestEscapeInterior(t *testing.T) {
	tests := []struct {
		name   string
		re, im float64
	}{
		{"origin", 0, 0},
		{"bulb", -1, 0},
		{"left tip", -2, 0},
	}

	for _, tt := range tests {
		if got := Escape(tt.re, tt.im, 60); got != 60 {
			t.Errorf("%s: expected interior (60), escaped at %d", tt.name, got)
		}
	}
}

func TestEscapeExterior(t *testing.T) {
	tests := []struct {
		name   string
		re, im float64
	}{
		{"far right", 2, 2},
		{"above", 0, 3},
		{"just outside", 0.3, 0.8},
	}

	for _, tt := range tests {
		if got := Escape(tt.re, tt.im, 60); got >= 60 {
			t.Errorf("%s: expected escape before 60 iterations", tt.name)
		}
	}
}

func TestEscapeImmediate(t *testing.T) {
	// |c|^2 > 4 already at the starting point
	if got := Escape(3, 0, 60); got != 0 {
		t.Errorf("expected escape at iteration 0, got %d", got)
	}
}

func TestZoomClockFactor(t *testing.T) {
	z := NewZoomClock(1.5, 20*time.Second)

	if got := z.Factor(0); got != 1.0 {
		t.Errorf("expected factor 1.0 at t=0, got %f", got)
	}
	if got, want := z.Factor(time.Second), 1.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected factor %f at t=1s, got %f", want, got)
	}
	if got, want := z.Factor(3*time.Second), math.Pow(1.5, 3); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected factor %f at t=3s, got %f", want, got)
	}
}

func TestZoomClockPeriodReset(t *testing.T) {
	z := NewZoomClock(1.5, 20*time.Second)

	if got := z.Factor(20 * time.Second); got != 1.0 {
		t.Errorf("expected reset to 1.0 at the period boundary, got %f", got)
	}
	if got, want := z.Factor(21*time.Second), 1.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("expected factor %f at t=21s, got %f", want, got)
	}
	// several whole periods at once still land inside one cycle
	if got, want := z.Factor(63*time.Second), math.Pow(1.5, 3); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected factor %f at t=63s, got %f", want, got)
	}
}

func TestZoomClockStrictlyIncreasingWithinPeriod(t *testing.T) {
	z := NewZoomClock(1.5, 20*time.Second)
	prev := z.Factor(0)
	for s := 1; s < 20; s++ {
		cur := z.Factor(time.Duration(s) * time.Second)
		if cur <= prev {
			t.Fatalf("factor not increasing at t=%ds: %f after %f", s, cur, prev)
		}
		prev = cur
	}
}

func TestZoomClockDefaults(t *testing.T) {
	z := NewZoomClock(0, 0)
	if z.Base != DefaultZoomBase {
		t.Errorf("expected base %f, got %f", float64(DefaultZoomBase), z.Base)
	}
	if z.Period != DefaultZoomPeriod {
		t.Errorf("expected period %v, got %v", DefaultZoomPeriod, z.Period)
	}
}

func TestViewportAspect(t *testing.T) {
	vp := NewViewport(0, 0, 3.0, 1.0, 2.0)
	if vp.ReSpan != 3.0 {
		t.Errorf("expected re span 3.0, got %f", vp.ReSpan)
	}
	if vp.ImSpan != 1.5 {
		t.Errorf("expected im span 1.5, got %f", vp.ImSpan)
	}
	if re, im := vp.Point(0.5, 0.5); re != 0 || im != 0 {
		t.Errorf("expected center at (0.5,0.5), got (%f,%f)", re, im)
	}
}

func TestViewportZoomShrinksSpan(t *testing.T) {
	wide := NewViewport(-0.5, 0, 3.0, 1.0, 1.0)
	tight := NewViewport(-0.5, 0, 3.0, 4.0, 1.0)
	if tight.ReSpan >= wide.ReSpan {
		t.Errorf("zoom should shrink the window: %f vs %f", tight.ReSpan, wide.ReSpan)
	}
	// both stay centered
	if re, _ := tight.Point(0.5, 0.5); math.Abs(re+0.5) > 1e-12 {
		t.Errorf("zoomed window drifted off center: re=%f", re)
	}
}

func TestRendererInteriorColor(t *testing.T) {
	interior := surface.RGB(10, 10, 20)
	r := NewRenderer(1.5, 20*time.Second, 30, 3.0, interior)
	r.CenterRe, r.CenterIm = 0, 0 // origin is inside the set

	buf := r.Render(9, 9, 0)
	if got := buf.At(4, 4); got != interior {
		t.Errorf("expected interior color at the center, got %+v", got)
	}
}

func TestRendererFrameCoversSurface(t *testing.T) {
	r := NewRenderer(1.5, 20*time.Second, 30, 3.0, surface.RGB(0, 0, 0))
	dst := surface.NewImageSurface(16, 12)
	r.Frame(dst, 500*time.Millisecond)
	// a second frame at a later time must not panic or shrink state
	r.Frame(dst, time.Second)
}

func TestEscapeColorDeterministic(t *testing.T) {
	for n := 0; n < 60; n++ {
		if EscapeColor(n, 60) != EscapeColor(n, 60) {
			t.Fatalf("palette not deterministic at n=%d", n)
		}
	}
}
