package config

var Presets = map[string]map[string]*Config{
	"sort": {
		"small": {
			Viz: "sort", FPS: DefaultFPS,
			Trace: TraceConfig{Size: 24, Stride: 1},
		},
		"dense": {
			Viz: "sort", FPS: DefaultFPS,
			Trace: TraceConfig{Size: 160, Stride: 6},
		},
		"slow": {
			Viz: "sort", FPS: 15,
			Trace: TraceConfig{Size: 60, Stride: 1},
		},
	},
	"maze": {
		"coarse": {
			Viz: "maze", FPS: DefaultFPS,
			Maze: MazeConfig{CellSize: 30, OpsPerFrame: 8},
		},
		"fine": {
			Viz: "maze", FPS: DefaultFPS,
			Maze: MazeConfig{CellSize: 8, OpsPerFrame: 60},
		},
		"crawl": {
			Viz: "maze", FPS: 20,
			Maze: MazeConfig{CellSize: 15, OpsPerFrame: 1},
		},
	},
	"fractal": {
		"deep": {
			Viz: "fractal", FPS: DefaultFPS,
			Fractal: FractalConfig{ZoomBase: 2.0, ZoomPeriod: 30, MaxIter: 120, Scale: 3.0},
		},
		"gentle": {
			Viz: "fractal", FPS: DefaultFPS,
			Fractal: FractalConfig{ZoomBase: 1.2, ZoomPeriod: 20, MaxIter: 60, Scale: 3.0},
		},
	},
}

// GetPreset resolves a named preset for a visualization, filling unset
// sections from the defaults so partial presets stay usable.
func GetPreset(viz, preset string) *Config {
	vizPresets, ok := Presets[viz]
	if !ok {
		return nil
	}
	cfg, ok := vizPresets[preset]
	if !ok {
		return nil
	}
	out := *DefaultConfig()
	out.Viz = cfg.Viz
	if cfg.FPS > 0 {
		out.FPS = cfg.FPS
	}
	if cfg.Trace.Size > 0 {
		out.Trace = cfg.Trace
	}
	if cfg.Maze.CellSize > 0 {
		out.Maze = cfg.Maze
	}
	if cfg.Fractal.ZoomBase > 0 {
		out.Fractal = cfg.Fractal
	}
	return &out
}

func ListPresets(viz string) []string {
	vizPresets, ok := Presets[viz]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(vizPresets))
	for name := range vizPresets {
		names = append(names, name)
	}
	return names
}
