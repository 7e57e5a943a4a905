package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/gui"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/surface"
	"github.com/san-kum/algoviz/internal/trace"
	"github.com/san-kum/algoviz/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	themeName  string
	frameRate  int
	// trace parameters
	traceSize   int
	traceStride int
	values      string
	// maze parameters
	cellSize    float64
	opsPerFrame int
	// fractal parameters
	zoomBase   float64
	zoomPeriod float64
	maxIter    int
	// snapshot parameters
	snapWidth  int
	snapHeight int
	snapFrames int
	outFile    string
	caption    string
	// load parameters
	loadSeconds float64
	loadWorkers int
)

// main registers commands and flags, launches the interactive GUI when no
// subcommand is given, and exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "algoviz",
		Short: "animated algorithm visualizations",
		Run: func(cmd *cobra.Command, args []string) {
			gui.Run(buildConfig(cmd, ""))
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "cyberpunk", "color theme")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	rootCmd.PersistentFlags().IntVar(&traceSize, "size", config.DefaultTraceSize, "sort dataset size")
	rootCmd.PersistentFlags().IntVar(&traceStride, "stride", config.DefaultStride, "trace steps per frame")
	rootCmd.PersistentFlags().Float64Var(&cellSize, "cell", config.DefaultCellSize, "maze cell size (logical units)")
	rootCmd.PersistentFlags().IntVar(&opsPerFrame, "ops", config.DefaultOps, "maze operations per frame")
	rootCmd.PersistentFlags().Float64Var(&zoomBase, "zoom-base", config.DefaultZoomBase, "fractal zoom base")
	rootCmd.PersistentFlags().Float64Var(&zoomPeriod, "zoom-period", config.DefaultZoomPeriod, "fractal zoom period (seconds)")
	rootCmd.PersistentFlags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "fractal max iterations")

	liveCmd := &cobra.Command{
		Use:   "live [viz]",
		Short: "terminal visualization (braille canvas)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.Run(buildConfig(cmd, firstArg(args)))
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui [viz]",
		Short: "windowed visualization",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			gui.Run(buildConfig(cmd, firstArg(args)))
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print the recorded sort trace",
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&values, "values", "", "comma-separated dataset (default: random)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [viz]",
		Short: "render headless frames and save a PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapWidth, "width", 1280, "image width")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", 720, "image height")
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", 300, "frames to advance before capture")
	snapshotCmd.Flags().StringVar(&outFile, "out", "", "output file (default algoviz_<viz>.png)")
	snapshotCmd.Flags().StringVar(&caption, "caption", "", "caption drawn on the image")

	loadCmd := &cobra.Command{
		Use:   "load [viz]",
		Short: "run generators headless as a CPU workload",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLoad,
	}
	loadCmd.Flags().Float64Var(&loadSeconds, "time", 5.0, "duration in seconds")
	loadCmd.Flags().IntVar(&loadWorkers, "workers", 1, "parallel loop instances")

	presetsCmd := &cobra.Command{
		Use:   "presets [viz]",
		Short: "list available presets for a visualization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for viz: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, guiCmd, traceCmd, snapshotCmd, loadCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// buildConfig resolves preset < config file < CLI flags, in that order.
func buildConfig(cmd *cobra.Command, vizName string) *config.Config {
	cfg := config.DefaultConfig()

	if preset != "" {
		name := vizName
		if name == "" {
			name = cfg.Viz
		}
		if p := config.GetPreset(name, preset); p != nil {
			cfg = p
		} else {
			fmt.Printf("unknown preset %q for %s (available: %v)\n", preset, name, config.ListPresets(name))
		}
	}

	if configFile != "" {
		if loaded, err := config.Load(configFile); err == nil {
			cfg = loaded
		} else {
			fmt.Printf("failed to load config: %v\n", err)
		}
	}

	flags := cmd.Flags()
	if vizName != "" {
		cfg.Viz = vizName
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") || cfg.Theme == "" {
		cfg.Theme = themeName
	}
	if flags.Changed("size") {
		cfg.Trace.Size = traceSize
	}
	if flags.Changed("stride") {
		cfg.Trace.Stride = traceStride
	}
	if flags.Changed("cell") {
		cfg.Maze.CellSize = cellSize
	}
	if flags.Changed("ops") {
		cfg.Maze.OpsPerFrame = opsPerFrame
	}
	if flags.Changed("zoom-base") {
		cfg.Fractal.ZoomBase = zoomBase
	}
	if flags.Changed("zoom-period") {
		cfg.Fractal.ZoomPeriod = zoomPeriod
	}
	if flags.Changed("max-iter") {
		cfg.Fractal.MaxIter = maxIter
	}
	return cfg
}

func newRand(s int64) *rand.Rand {
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func runTrace(cmd *cobra.Command, args []string) error {
	var ds trace.DataSet
	if values != "" {
		for _, field := range strings.Split(values, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return fmt.Errorf("bad value %q: %w", field, err)
			}
			ds = append(ds, v)
		}
	} else {
		ds = trace.NewRandomDataSet(traceSize, 5, 100, newRand(seed))
	}

	tr := trace.Generate(ds)
	fmt.Printf("dataset: %d values, %d inversions, %d steps\n\n", len(ds), trace.Inversions(ds), len(tr))

	if len(ds) > 1 {
		chart := asciigraph.Plot([]float64(ds), asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("input"))
		fmt.Println(chart)
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "step\tactive\tsorted\tsnapshot")
	for i, s := range tr {
		snap := ""
		if len(s.Values) <= 16 {
			parts := make([]string, len(s.Values))
			for k, v := range s.Values {
				parts[k] = strconv.FormatFloat(v, 'f', 0, 64)
			}
			snap = strings.Join(parts, " ")
		}
		fmt.Fprintf(w, "%d\t%d\t[0,%d)\t%s\n", i, s.Active, s.Sorted, snap)
	}
	return w.Flush()
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd, firstArg(args))
	theme := viz.GetTheme(cfg.Theme)
	v := viz.Build(cfg.Viz, cfg, theme)

	out := outFile
	if out == "" {
		out = fmt.Sprintf("algoviz_%s.png", cfg.Viz)
	}
	if err := export.SnapshotPNG(v, snapWidth, snapHeight, snapFrames, cfg.FPS, cfg.Seed, caption, out); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d after %d frames)\n", out, snapWidth, snapHeight, snapFrames)
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd, firstArg(args))
	theme := viz.GetTheme(cfg.Theme)
	if loadWorkers < 1 {
		loadWorkers = 1
	}

	fmt.Printf("load: %s, %d worker(s), %.1fs\n", cfg.Viz, loadWorkers, loadSeconds)

	type result struct {
		worker int
		frames int
		avgMs  float64
	}
	results := make(chan result, loadWorkers)

	for i := 0; i < loadWorkers; i++ {
		go func(worker int) {
			v := viz.Build(cfg.Viz, cfg, theme)
			surf := surface.NewImageSurface(640, 360)
			frameMs := metrics.NewWindow("frame_ms", 1024)

			loop := anim.NewLoop(anim.NewImmediateScheduler(anim.NewClock()), surf, v, newRand(cfg.Seed+int64(worker)))
			stopAt := time.Now().Add(time.Duration(loadSeconds * float64(time.Second)))
			loop.OnFrame(func(n int, took time.Duration) {
				frameMs.Observe(float64(took.Microseconds()) / 1000.0)
				if time.Now().After(stopAt) {
					loop.Stop()
				}
			})
			loop.Start()
			results <- result{worker: worker, frames: loop.Frames(), avgMs: frameMs.Value()}
		}(i)
	}

	total := 0
	for i := 0; i < loadWorkers; i++ {
		r := <-results
		total += r.frames
		fmt.Printf("  worker %d: %d frames, %.2f ms/frame\n", r.worker, r.frames, r.avgMs)
	}
	fmt.Printf("total: %d frames (%.0f frames/sec)\n", total, float64(total)/loadSeconds)
	return nil
}
