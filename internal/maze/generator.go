package maze

import (
	"math/rand"
	"time"

	"github.com/san-kum/algoviz/internal/surface"
)

// State is the generator phase.
type State int

const (
	Generating State = iota
	Exhausted
)

const (
	// DefaultCellSize is the reference cell edge in logical units.
	DefaultCellSize = 15
	// DefaultOpsPerFrame bounds primitive operations per scheduled frame.
	DefaultOpsPerFrame = 20
)

// Palette maps the maze's render classifications to colors.
type Palette struct {
	Back    surface.Color
	Visited surface.Color
	Wall    surface.Color
	Current surface.Color
}

// Generator holds the live backtracking state. It never terminally halts:
// exhausting the grid reseeds a fresh run, and a resize that changes the
// grid dimensions rebuilds mid-run.
type Generator struct {
	cellSize    float64
	opsPerFrame int
	pal         Palette
	rng         *rand.Rand

	grid    *Grid
	stack   []*Cell
	current *Cell
	state   State
	runs    int
}

// NewGenerator builds a generator with the given cell size and per-frame op
// budget; non-positive values fall back to the reference defaults.
func NewGenerator(cellSize float64, opsPerFrame int, pal Palette) *Generator {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if opsPerFrame <= 0 {
		opsPerFrame = DefaultOpsPerFrame
	}
	return &Generator{cellSize: cellSize, opsPerFrame: opsPerFrame, pal: pal}
}

func (g *Generator) Name() string { return "maze" }

// Setup sizes the grid from the surface dimensions and seeds the walk.
func (g *Generator) Setup(w, h float64, rng *rand.Rand) {
	g.rng = rng
	g.rebuild(w, h)
}

// State reports the current phase.
func (g *Generator) State() State { return g.state }

// Grid exposes the live grid.
func (g *Generator) Grid() *Grid { return g.grid }

// StackDepth reports the active backtracking path length.
func (g *Generator) StackDepth() int { return len(g.stack) }

// Runs counts completed generations, incremented at each exhaustion.
func (g *Generator) Runs() int { return g.runs }

// SetPalette swaps render colors without touching the live walk.
func (g *Generator) SetPalette(pal Palette) { g.pal = pal }

func (g *Generator) rebuild(w, h float64) {
	cols := int(w / g.cellSize)
	rows := int(h / g.cellSize)
	g.grid = NewGrid(cols, rows)
	g.stack = g.stack[:0]
	g.current = nil
	g.state = Generating
	if cols < 1 || rows < 1 {
		return
	}
	seed := g.grid.At(g.rng.Intn(cols), g.rng.Intn(rows))
	seed.Visited = true
	g.current = seed
}

// Advance performs up to n primitive operations: carve into a random
// unvisited neighbor, or backtrack one cell. When the stack runs dry the
// generator flips to Exhausted and the batch ends; the next batch reseeds
// against the given geometry, so the walk never terminally halts.
func (g *Generator) Advance(n int, w, h float64) {
	for k := 0; k < n; k++ {
		if g.state == Exhausted {
			g.rebuild(w, h)
		}
		g.step()
		if g.state == Exhausted {
			break
		}
	}
}

func (g *Generator) step() {
	if g.current != nil {
		if sides := g.grid.unvisitedNeighbors(g.current); len(sides) > 0 {
			s := sides[g.rng.Intn(len(sides))]
			next := g.grid.At(g.current.I+sideOffsets[s][0], g.current.J+sideOffsets[s][1])
			next.Visited = true
			g.stack = append(g.stack, g.current)
			g.grid.removeWall(g.current, s)
			g.current = next
			return
		}
	}
	if len(g.stack) > 0 {
		g.current = g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]
		return
	}
	// Expected end of a run, not an error.
	g.state = Exhausted
	g.runs++
}

// Frame advances the walk by the frame budget and redraws the whole grid.
func (g *Generator) Frame(dst surface.Surface, now time.Duration) {
	w, h := dst.Size()
	if w <= 0 || h <= 0 {
		return
	}
	// A geometry-changing resize rebuilds; otherwise live state survives.
	if g.grid == nil || g.grid.Cols != int(w/g.cellSize) || g.grid.Rows != int(h/g.cellSize) {
		g.rebuild(w, h)
	}
	g.Advance(g.opsPerFrame, w, h)
	g.draw(dst, w, h)
}

func (g *Generator) draw(dst surface.Surface, w, h float64) {
	dst.Clear(g.pal.Back)
	cs := g.cellSize
	for k := range g.grid.Cells {
		c := &g.grid.Cells[k]
		if !c.Visited {
			continue
		}
		x := float64(c.I) * cs
		y := float64(c.J) * cs
		dst.FillRect(x, y, cs, cs, g.pal.Visited)
		if c.Walls[Top] {
			dst.StrokeLine(x, y, x+cs, y, 1, g.pal.Wall)
		}
		if c.Walls[Right] {
			dst.StrokeLine(x+cs, y, x+cs, y+cs, 1, g.pal.Wall)
		}
		if c.Walls[Bottom] {
			dst.StrokeLine(x, y+cs, x+cs, y+cs, 1, g.pal.Wall)
		}
		if c.Walls[Left] {
			dst.StrokeLine(x, y, x, y+cs, 1, g.pal.Wall)
		}
	}
	if g.state == Generating && g.current != nil {
		x := float64(g.current.I)*cs + cs*0.2
		y := float64(g.current.J)*cs + cs*0.2
		dst.FillRect(x, y, cs*0.6, cs*0.6, g.pal.Current)
	}
}
