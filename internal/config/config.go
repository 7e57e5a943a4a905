package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS        = 30
	DefaultTraceSize  = 60
	DefaultStride     = 3
	DefaultCellSize   = 15.0
	DefaultOps        = 20
	DefaultZoomBase   = 1.5
	DefaultZoomPeriod = 20.0
	DefaultMaxIter    = 60
	DefaultScale      = 3.0
)

type Config struct {
	Viz     string        `yaml:"viz"`
	FPS     int           `yaml:"fps"`
	Seed    int64         `yaml:"seed"`
	Theme   string        `yaml:"theme"`
	Trace   TraceConfig   `yaml:"trace"`
	Maze    MazeConfig    `yaml:"maze"`
	Fractal FractalConfig `yaml:"fractal"`
}

type TraceConfig struct {
	Size   int `yaml:"size"`
	Stride int `yaml:"stride"`
}

type MazeConfig struct {
	CellSize    float64 `yaml:"cell_size"`
	OpsPerFrame int     `yaml:"ops_per_frame"`
}

type FractalConfig struct {
	ZoomBase   float64 `yaml:"zoom_base"`
	ZoomPeriod float64 `yaml:"zoom_period"` // seconds
	MaxIter    int     `yaml:"max_iter"`
	Scale      float64 `yaml:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Viz:   "sort",
		FPS:   DefaultFPS,
		Theme: "cyberpunk",
		Trace: TraceConfig{
			Size:   DefaultTraceSize,
			Stride: DefaultStride,
		},
		Maze: MazeConfig{
			CellSize:    DefaultCellSize,
			OpsPerFrame: DefaultOps,
		},
		Fractal: FractalConfig{
			ZoomBase:   DefaultZoomBase,
			ZoomPeriod: DefaultZoomPeriod,
			MaxIter:    DefaultMaxIter,
			Scale:      DefaultScale,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
