// Package maze animates recursive-backtracker maze generation: a depth-first
// walk that advances into unvisited cells, knocks down shared walls, retreats
// via a stack when boxed in, and reseeds itself once the grid is exhausted.
package maze

// Side indexes a cell wall.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Opposite returns the wall facing s from the adjacent cell.
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Right:
		return Left
	case Bottom:
		return Top
	default:
		return Right
	}
}

// Cell is one grid square with four wall flags.
type Cell struct {
	I, J    int
	Walls   [4]bool
	Visited bool
}

// Grid is a dense cell array indexed i + j*cols.
type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

// NewGrid allocates a cols×rows grid with all walls up and nothing visited.
// Non-positive dimensions clamp to zero.
func NewGrid(cols, rows int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g := &Grid{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			g.Cells[i+j*cols] = Cell{I: i, J: j, Walls: [4]bool{true, true, true, true}}
		}
	}
	return g
}

// At returns the cell at (i, j), or nil when out of bounds.
func (g *Grid) At(i, j int) *Cell {
	if i < 0 || j < 0 || i >= g.Cols || j >= g.Rows {
		return nil
	}
	return &g.Cells[i+j*g.Cols]
}

// VisitedCount tallies visited cells.
func (g *Grid) VisitedCount() int {
	n := 0
	for k := range g.Cells {
		if g.Cells[k].Visited {
			n++
		}
	}
	return n
}

var sideOffsets = [4][2]int{
	Top:    {0, -1},
	Right:  {1, 0},
	Bottom: {0, 1},
	Left:   {-1, 0},
}

// removeWall clears the wall between two adjacent cells symmetrically.
func (g *Grid) removeWall(a *Cell, s Side) {
	a.Walls[s] = false
	if b := g.At(a.I+sideOffsets[s][0], a.J+sideOffsets[s][1]); b != nil {
		b.Walls[s.Opposite()] = false
	}
}

// unvisitedNeighbors collects the sides of a leading to in-bounds unvisited
// cells.
func (g *Grid) unvisitedNeighbors(a *Cell) []Side {
	var out []Side
	for s := Top; s <= Left; s++ {
		n := g.At(a.I+sideOffsets[s][0], a.J+sideOffsets[s][1])
		if n != nil && !n.Visited {
			out = append(out, s)
		}
	}
	return out
}
