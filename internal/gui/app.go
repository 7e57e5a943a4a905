package gui

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/viz"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

type App struct {
	cfg   *config.Config
	theme viz.Theme
	vizs  []anim.Visualization
	idx   int
	surf  *Surface
	rng   *rand.Rand
	clock *anim.PausableClock

	running     bool
	showOverlay bool
}

// initWindow opens the resizable Raylib window at 60 FPS and disables the
// default exit key so Q is handled like the TUI.
func initWindow() {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, "algoviz")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// NewApp builds the app around a config, starting on cfg.Viz.
func NewApp(cfg *config.Config) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	theme := viz.GetTheme(cfg.Theme)
	a := &App{
		cfg:         cfg,
		theme:       theme,
		vizs:        viz.BuildAll(cfg, theme),
		surf:        NewSurface(rl.GetScreenWidth(), rl.GetScreenHeight()),
		rng:         rand.New(rand.NewSource(seed)),
		clock:       anim.NewPausableClock(),
		running:     true,
		showOverlay: true,
	}
	for i, name := range viz.VizNames() {
		if name == cfg.Viz {
			a.idx = i
		}
	}
	w, h := a.surf.Size()
	for _, v := range a.vizs {
		v.Setup(w, h, a.rng)
	}
	return a
}

// Run opens the window and blocks in the main loop until it closes. The
// window teardown also releases the surface's GPU resources, so a closed
// window never leaves a loop drawing against a dead target.
func Run(cfg *config.Config) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(cfg)
	defer app.surf.Unload()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.running = a.clock.Toggle()
	case rl.IsKeyPressed(rl.KeyTab):
		a.idx = (a.idx + 1) % len(a.vizs)
	case rl.IsKeyPressed(rl.KeyOne):
		a.idx = 0
	case rl.IsKeyPressed(rl.KeyTwo):
		a.idx = 1
	case rl.IsKeyPressed(rl.KeyThree):
		a.idx = 2
	case rl.IsKeyPressed(rl.KeyR):
		w, h := a.surf.Size()
		a.vizs[a.idx].Setup(w, h, a.rng)
	case rl.IsKeyPressed(rl.KeyT):
		names := viz.ThemeNames()
		for i, name := range names {
			if name == a.theme.Name {
				a.theme = viz.GetTheme(names[(i+1)%len(names)])
				break
			}
		}
		viz.Retheme(a.vizs, a.theme)
	case rl.IsKeyPressed(rl.KeyS):
		rl.TakeScreenshot(fmt.Sprintf("algoviz_%s_%d.png", a.vizs[a.idx].Name(), time.Now().Unix()))
	case rl.IsKeyPressed(rl.KeyH):
		a.showOverlay = !a.showOverlay
	}
}

func (a *App) Draw() {
	// Window resize is observed here, at the start of the frame; the
	// visualization recomputes its derived geometry from the new size.
	a.surf.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())

	if a.running {
		a.surf.Begin()
		a.vizs[a.idx].Frame(a.surf, a.clock.Now())
		a.surf.End()
	}

	rl.BeginDrawing()
	rl.ClearBackground(col(a.theme.Back))
	a.surf.Present()
	if a.showOverlay {
		a.drawOverlay()
	}
	rl.EndDrawing()
}

func (a *App) drawOverlay() {
	status := "RUNNING"
	if !a.running {
		status = "PAUSED"
	}
	text := fmt.Sprintf("%s  |  %s  |  %d fps", a.vizs[a.idx].Name(), status, rl.GetFPS())
	rl.DrawText(text, 12, 10, 20, col(a.theme.MazeWall))
	rl.DrawText("SPACE pause  TAB next  R reset  T theme  S shot  H hud  Q quit", 12, 34, 10, rl.Gray)
}
