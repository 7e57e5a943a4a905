package trace

import (
	"math/rand"
	"time"

	"github.com/san-kum/algoviz/internal/surface"
)

// BarClass classifies one bar of the current step for coloring.
type BarClass int

const (
	BarDefault BarClass = iota
	BarActive
	BarSorted
)

// BarPalette maps bar classifications to concrete colors.
type BarPalette struct {
	Default surface.Color
	Active  surface.Color
	Sorted  surface.Color
	Back    surface.Color
}

// Color resolves a classification. Unknown classes fall back to Default.
func (p BarPalette) Color(cl BarClass) surface.Color {
	switch cl {
	case BarActive:
		return p.Active
	case BarSorted:
		return p.Sorted
	default:
		return p.Default
	}
}

// Classify applies the precedence sorted > active > default for bar idx of
// the given step.
func Classify(s Step, idx int) BarClass {
	switch {
	case idx < s.Sorted:
		return BarSorted
	case idx == s.Active:
		return BarActive
	default:
		return BarDefault
	}
}

// Player replays a precomputed trace at a fixed stride per scheduled frame.
// The cursor is monotone: it never moves backwards and holds at the last
// step once reached.
type Player struct {
	ds     DataSet
	tr     Trace
	size   int
	stride int
	cursor int
	maxVal float64
	pal    BarPalette
}

// DefaultStride is the reference cursor advance per frame.
const DefaultStride = 3

// NewPlayer builds a player that generates a random dataset of the given
// size during Setup. A non-positive stride falls back to DefaultStride.
func NewPlayer(size, stride int, pal BarPalette) *Player {
	if stride <= 0 {
		stride = DefaultStride
	}
	if size < 0 {
		size = 0
	}
	return &Player{size: size, stride: stride, pal: pal}
}

// NewPlayerFor replays a fixed dataset instead of a random one.
func NewPlayerFor(ds DataSet, stride int, pal BarPalette) *Player {
	p := NewPlayer(len(ds), stride, pal)
	p.ds = ds
	return p
}

func (p *Player) Name() string { return "sort" }

// Setup records the trace for the dataset, drawing a fresh random one when
// none was supplied. Surface geometry is read per frame, so w and h are not
// retained.
func (p *Player) Setup(w, h float64, rng *rand.Rand) {
	if p.ds == nil {
		p.ds = NewRandomDataSet(p.size, 5, 100, rng)
	}
	p.tr = Generate(p.ds)
	p.maxVal = p.ds.Max()
	p.cursor = 0
}

// Cursor reports the current replay position.
func (p *Player) Cursor() int { return p.cursor }

// SetPalette swaps the classification colors without touching replay state.
func (p *Player) SetPalette(pal BarPalette) { p.pal = pal }

// Trace exposes the recorded step sequence.
func (p *Player) Trace() Trace { return p.tr }

// Advance moves the cursor by the stride, clamped to the final step.
func (p *Player) Advance() {
	if len(p.tr) == 0 {
		return
	}
	p.cursor += p.stride
	if p.cursor > len(p.tr)-1 {
		p.cursor = len(p.tr) - 1
	}
}

// Frame advances the cursor and redraws the step under it. An empty trace
// skips drawing but the loop keeps scheduling.
func (p *Player) Frame(dst surface.Surface, now time.Duration) {
	p.Advance()
	w, h := dst.Size()
	if w <= 0 || h <= 0 || len(p.tr) == 0 {
		return
	}
	dst.Clear(p.pal.Back)
	p.drawStep(dst, p.tr[p.cursor], w, h)
}

func (p *Player) drawStep(dst surface.Surface, s Step, w, h float64) {
	n := len(s.Values)
	if n == 0 || p.maxVal <= 0 {
		return
	}
	barW := w / float64(n)
	// leave a sliver of headroom so the tallest bar doesn't touch the top
	plotH := h * 0.95
	for i, v := range s.Values {
		bh := v / p.maxVal * plotH
		c := p.pal.Color(Classify(s, i))
		dst.FillRect(float64(i)*barW, h-bh, barW*0.9, bh, c)
	}
}
