package viz

import (
	"math/rand"
	"time"

	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/fractal"
	"github.com/san-kum/algoviz/internal/maze"
	"github.com/san-kum/algoviz/internal/trace"
)

// Build constructs the visualization named by viz, themed by t. Unknown
// names fall back to the sort replay.
func Build(viz string, cfg *config.Config, t Theme) anim.Visualization {
	switch viz {
	case "maze":
		return maze.NewGenerator(cfg.Maze.CellSize, cfg.Maze.OpsPerFrame, t.Maze())
	case "fractal":
		return fractal.NewRenderer(
			cfg.Fractal.ZoomBase,
			time.Duration(cfg.Fractal.ZoomPeriod*float64(time.Second)),
			cfg.Fractal.MaxIter,
			cfg.Fractal.Scale,
			t.Interior,
		)
	default:
		return trace.NewPlayer(cfg.Trace.Size, cfg.Trace.Stride, t.Bars())
	}
}

// BuildAll constructs all three visualizations in display order.
func BuildAll(cfg *config.Config, t Theme) []anim.Visualization {
	return []anim.Visualization{
		Build("sort", cfg, t),
		Build("maze", cfg, t),
		Build("fractal", cfg, t),
	}
}

// VizNames lists the selectable visualizations in display order.
func VizNames() []string { return []string{"sort", "maze", "fractal"} }

// newRand seeds a randomness source; a zero seed falls back to the clock.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Retheme pushes new palettes into already-running visualizations without
// resetting their state.
func Retheme(vizs []anim.Visualization, t Theme) {
	for _, v := range vizs {
		switch x := v.(type) {
		case *trace.Player:
			x.SetPalette(t.Bars())
		case *maze.Generator:
			x.SetPalette(t.Maze())
		case *fractal.Renderer:
			x.Interior = t.Interior
		}
	}
}
