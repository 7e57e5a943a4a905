package maze_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/maze"
	"github.com/san-kum/algoviz/internal/surface"
)

// openEdges counts wall openings between adjacent cell pairs, each pair once.
func openEdges(g *maze.Grid) int {
	n := 0
	for j := 0; j < g.Rows; j++ {
		for i := 0; i < g.Cols; i++ {
			c := g.At(i, j)
			if !c.Walls[maze.Right] && g.At(i+1, j) != nil {
				n++
			}
			if !c.Walls[maze.Bottom] && g.At(i, j+1) != nil {
				n++
			}
		}
	}
	return n
}

// connectedVisited walks open walls from one visited cell and reports whether
// every visited cell is reachable.
func connectedVisited(g *maze.Grid) bool {
	visited := g.VisitedCount()
	if visited == 0 {
		return true
	}
	var start *maze.Cell
	for k := range g.Cells {
		if g.Cells[k].Visited {
			start = &g.Cells[k]
			break
		}
	}
	seen := map[*maze.Cell]bool{start: true}
	queue := []*maze.Cell{start}
	offsets := map[maze.Side][2]int{
		maze.Top:    {0, -1},
		maze.Right:  {1, 0},
		maze.Bottom: {0, 1},
		maze.Left:   {-1, 0},
	}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for s, off := range offsets {
			if c.Walls[s] {
				continue
			}
			n := g.At(c.I+off[0], c.J+off[1])
			if n != nil && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen) == visited
}

var _ = Describe("Grid", func() {
	It("starts with all walls up and nothing visited", func() {
		g := maze.NewGrid(3, 2)
		Expect(g.VisitedCount()).To(Equal(0))
		Expect(openEdges(g)).To(Equal(0))
		for k := range g.Cells {
			for s := maze.Top; s <= maze.Left; s++ {
				Expect(g.Cells[k].Walls[s]).To(BeTrue())
			}
		}
	})

	It("clamps non-positive dimensions to zero", func() {
		g := maze.NewGrid(-3, 4)
		Expect(g.Cols).To(Equal(0))
		Expect(g.Cells).To(BeEmpty())
	})

	It("returns nil for out-of-bounds lookups", func() {
		g := maze.NewGrid(2, 2)
		Expect(g.At(-1, 0)).To(BeNil())
		Expect(g.At(2, 0)).To(BeNil())
		Expect(g.At(0, 2)).To(BeNil())
		Expect(g.At(1, 1)).NotTo(BeNil())
	})

	It("pairs each side with its opposite", func() {
		Expect(maze.Top.Opposite()).To(Equal(maze.Bottom))
		Expect(maze.Right.Opposite()).To(Equal(maze.Left))
		Expect(maze.Bottom.Opposite()).To(Equal(maze.Top))
		Expect(maze.Left.Opposite()).To(Equal(maze.Right))
	})
})

var _ = Describe("Generator", func() {
	const w, h = 60.0, 60.0 // 4x4 grid at the default cell size

	newGen := func(seed int64) *maze.Generator {
		g := maze.NewGenerator(maze.DefaultCellSize, maze.DefaultOpsPerFrame, maze.Palette{})
		g.Setup(w, h, rand.New(rand.NewSource(seed)))
		return g
	}

	It("seeds a single visited cell on setup", func() {
		g := newGen(1)
		Expect(g.State()).To(Equal(maze.Generating))
		Expect(g.Grid().VisitedCount()).To(Equal(1))
		Expect(g.StackDepth()).To(Equal(0))
		Expect(g.Runs()).To(Equal(0))
	})

	It("never decreases the visited count while generating", func() {
		g := newGen(2)
		prev := g.Grid().VisitedCount()
		for g.State() == maze.Generating {
			g.Advance(1, w, h)
			cur := g.Grid().VisitedCount()
			Expect(cur).To(BeNumerically(">=", prev))
			prev = cur
		}
	})

	It("maintains a spanning tree over the visited cells", func() {
		g := newGen(3)
		for g.State() == maze.Generating {
			g.Advance(1, w, h)
			if g.State() == maze.Exhausted {
				break
			}
			visited := g.Grid().VisitedCount()
			Expect(openEdges(g.Grid())).To(Equal(visited - 1))
			Expect(connectedVisited(g.Grid())).To(BeTrue())
		}
	})

	It("exhausts a rows*cols grid within 2*rows*cols-1 operations", func() {
		g := newGen(4)
		cells := g.Grid().Cols * g.Grid().Rows
		ops := 0
		for g.State() == maze.Generating {
			g.Advance(1, w, h)
			ops++
			Expect(ops).To(BeNumerically("<=", 2*cells-1))
		}
		Expect(g.Grid().VisitedCount()).To(Equal(cells))
		Expect(openEdges(g.Grid())).To(Equal(cells - 1))
		Expect(g.Runs()).To(Equal(1))
	})

	It("reseeds on the advance after exhaustion", func() {
		g := newGen(5)
		for g.State() == maze.Generating {
			g.Advance(1, w, h)
		}
		g.Advance(1, w, h)
		Expect(g.State()).To(Equal(maze.Generating))
		// a fresh run: the seed cell plus the first carve
		Expect(g.Grid().VisitedCount()).To(Equal(2))
		Expect(g.Runs()).To(Equal(1))
	})

	It("exhausts a single-cell grid immediately and keeps cycling", func() {
		g := maze.NewGenerator(maze.DefaultCellSize, maze.DefaultOpsPerFrame, maze.Palette{})
		g.Setup(15, 15, rand.New(rand.NewSource(6)))
		Expect(g.Grid().Cols).To(Equal(1))
		Expect(g.Grid().Rows).To(Equal(1))

		g.Advance(1, 15, 15)
		Expect(g.State()).To(Equal(maze.Exhausted))
		Expect(g.Runs()).To(Equal(1))

		g.Advance(1, 15, 15)
		Expect(g.State()).To(Equal(maze.Exhausted))
		Expect(g.Runs()).To(Equal(2))
	})

	It("rebuilds when the frame geometry changes", func() {
		g := newGen(7)
		dst := surface.NewImageSurface(120, 90)
		g.Frame(dst, 0)
		Expect(g.Grid().Cols).To(Equal(8))
		Expect(g.Grid().Rows).To(Equal(6))
	})

	It("draws an in-flight run without disturbing it", func() {
		g := newGen(8)
		dst := surface.NewImageSurface(60, 60)
		g.Frame(dst, 0)
		before := g.Grid().VisitedCount()
		snap := openEdges(g.Grid())
		g.SetPalette(maze.Palette{Back: surface.RGB(0, 0, 0)})
		Expect(g.Grid().VisitedCount()).To(Equal(before))
		Expect(openEdges(g.Grid())).To(Equal(snap))
	})

	It("falls back to defaults for non-positive parameters", func() {
		g := maze.NewGenerator(0, 0, maze.Palette{})
		g.Setup(w, h, rand.New(rand.NewSource(9)))
		Expect(g.Grid().Cols).To(Equal(4))
		Expect(g.Grid().Rows).To(Equal(4))
	})
})
