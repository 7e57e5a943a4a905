package viz

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/fractal"
	"github.com/san-kum/algoviz/internal/maze"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/trace"
)

const (
	statsWidth     = 42
	frameHistory   = 120
	defaultCanvasW = 80
	defaultCanvasH = 24
)

type TickMsg time.Time

// Model hosts the three visualizations on a shared braille canvas. One
// cooperative redraw loop: the next tick is requested only after the
// current frame's work finishes, so frames never overlap.
type Model struct {
	cfg   *config.Config
	theme Theme

	vizs  []anim.Visualization
	idx   int
	setup bool

	canvas *Canvas
	csurf  *CanvasSurface
	rng    *rand.Rand
	clock  *anim.PausableClock

	running  bool
	showHelp bool
	note     string

	frameMs *metrics.Window
	frames  *metrics.Counter
}

// NewModel builds the TUI around a config. The canvas starts at a default
// size and follows the terminal once the first WindowSizeMsg arrives.
func NewModel(cfg *config.Config) Model {
	theme := GetTheme(cfg.Theme)
	c := NewCanvas(defaultCanvasW, defaultCanvasH)
	m := Model{
		cfg:     cfg,
		theme:   theme,
		vizs:    BuildAll(cfg, theme),
		canvas:  c,
		csurf:   NewCanvasSurface(c),
		rng:     newRand(cfg.Seed),
		clock:   anim.NewPausableClock(),
		running: true,
		frameMs: metrics.NewWindow("frame_ms", frameHistory),
		frames:  metrics.NewCounter("frames"),
	}
	for i, name := range VizNames() {
		if name == cfg.Viz {
			m.idx = i
		}
	}
	return m
}

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps < 1 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and runs one animation frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - statsWidth - 4
		h := msg.Height - 2
		if w < 10 {
			w = 10
		}
		if h < 6 {
			h = 6
		}
		if w != m.canvas.Width || h != m.canvas.Height {
			// Resize is observed here; derived geometry is recomputed by
			// each visualization at the start of its next frame.
			m.canvas = NewCanvas(w, h)
			m.csurf = NewCanvasSurface(m.canvas)
		}
		if !m.setup {
			m.setupAll()
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = m.clock.Toggle()
		case "tab":
			m.idx = (m.idx + 1) % len(m.vizs)
		case "1", "2", "3":
			m.idx = int(msg.String()[0] - '1')
		case "r":
			if m.setup {
				w, h := m.csurf.Size()
				m.vizs[m.idx].Setup(w, h, m.rng)
			}
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == m.theme.Name {
					m.theme = GetTheme(names[(i+1)%len(names)])
					break
				}
			}
			Retheme(m.vizs, m.theme)
		case "s":
			m.note = m.exportSVG()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if !m.setup {
			// surface not sized yet: idle, keep scheduling
			return m, m.tick()
		}
		if m.running {
			begin := time.Now()
			m.vizs[m.idx].Frame(m.csurf, m.clock.Now())
			m.frameMs.Observe(float64(time.Since(begin).Microseconds()) / 1000.0)
			m.frames.Observe(1)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) setupAll() {
	w, h := m.csurf.Size()
	for _, v := range m.vizs {
		v.Setup(w, h, m.rng)
	}
	m.setup = true
}

func (m *Model) exportSVG() string {
	name := fmt.Sprintf("algoviz_%s_%d.svg", m.vizs[m.idx].Name(), time.Now().Unix())
	svg := CanvasToSVG(m.canvas, 4, string(m.theme.Primary))
	if err := os.WriteFile(name, []byte(svg), 0644); err != nil {
		return "export failed"
	}
	return "saved " + name
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	canvasStyle := lipgloss.NewStyle().Padding(0, 1).Foreground(m.theme.Primary)
	statsStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Muted).
		Padding(0, 2).Width(statsWidth)
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Secondary).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	activeStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(1)

	var s strings.Builder
	s.WriteString(headerStyle.Render("ALGOVIZ") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	for i, v := range m.vizs {
		line := fmt.Sprintf("%d %s", i+1, v.Name())
		if i == m.idx {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}
	s.WriteString("\n")

	if series := m.frameMs.Series(); len(series) > 1 {
		chart := asciigraph.Plot(series, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("frame ms"))
		s.WriteString(chart + "\n\n")
	}
	s.WriteString(labelStyle.Render("Frames") + valueStyle.Render(fmt.Sprintf("%.0f", m.frames.Value())) + "\n")
	s.WriteString(labelStyle.Render("Frame avg") + valueStyle.Render(fmt.Sprintf("%.2f ms", m.frameMs.Value())) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n\n")

	m.writeVizStats(&s, labelStyle, valueStyle)

	if m.note != "" {
		s.WriteString("\n" + valueStyle.Render(m.note) + "\n")
	}
	s.WriteString(helpStyle.Render("\n───────────────────\nSP:Pause Tab:Next R:Reset\nT:Theme S:SVG ?:Help Q:Quit"))

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

func (m Model) writeVizStats(s *strings.Builder, labelStyle, valueStyle lipgloss.Style) {
	switch v := m.vizs[m.idx].(type) {
	case *trace.Player:
		s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", len(v.Trace()))) + "\n")
		s.WriteString(labelStyle.Render("Cursor") + valueStyle.Render(fmt.Sprintf("%d", v.Cursor())) + "\n")
	case *maze.Generator:
		g := v.Grid()
		s.WriteString(labelStyle.Render("Grid") + valueStyle.Render(fmt.Sprintf("%dx%d", g.Cols, g.Rows)) + "\n")
		s.WriteString(labelStyle.Render("Visited") + valueStyle.Render(fmt.Sprintf("%d/%d", g.VisitedCount(), len(g.Cells))) + "\n")
		s.WriteString(labelStyle.Render("Stack") + valueStyle.Render(fmt.Sprintf("%d", v.StackDepth())) + "\n")
		s.WriteString(labelStyle.Render("Runs") + valueStyle.Render(fmt.Sprintf("%d", v.Runs())) + "\n")
	case *fractal.Renderer:
		s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprintf("%.2fx", v.Zoom().Factor(m.clock.Now()))) + "\n")
		s.WriteString(labelStyle.Render("Max iter") + valueStyle.Render(fmt.Sprintf("%d", v.MaxIter)) + "\n")
	}
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  Tab/1-3  - Switch visualization     ║
║  R        - Reset current view       ║
║  T        - Cycle color themes       ║
║  S        - Export canvas as SVG     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the live TUI and blocks until quit.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
