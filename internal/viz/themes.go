package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/maze"
	"github.com/san-kum/algoviz/internal/surface"
	"github.com/san-kum/algoviz/internal/trace"
)

// Theme defines the color scheme shared by the TUI chrome and the
// classification palettes the visualizations draw with.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color

	Back        surface.Color
	BarDefault  surface.Color
	BarActive   surface.Color
	BarSorted   surface.Color
	MazeVisited surface.Color
	MazeWall    surface.Color
	MazeCurrent surface.Color
	Interior    surface.Color
}

// Bars returns the trace player's classification palette.
func (t Theme) Bars() trace.BarPalette {
	return trace.BarPalette{
		Default: t.BarDefault,
		Active:  t.BarActive,
		Sorted:  t.BarSorted,
		Back:    t.Back,
	}
}

// Maze returns the maze generator's palette.
func (t Theme) Maze() maze.Palette {
	return maze.Palette{
		Back:    t.Back,
		Visited: t.MazeVisited,
		Wall:    t.MazeWall,
		Current: t.MazeCurrent,
	}
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:        "cyberpunk",
		Primary:     lipgloss.Color("#ff00ff"),
		Secondary:   lipgloss.Color("#00ffff"),
		Accent:      lipgloss.Color("#ffff00"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#666666"),
		Back:        surface.RGB(10, 10, 18),
		BarDefault:  surface.RGB(0, 200, 255),
		BarActive:   surface.RGB(255, 0, 255),
		BarSorted:   surface.RGB(0, 255, 136),
		MazeVisited: surface.RGB(26, 10, 38),
		MazeWall:    surface.RGB(0, 255, 255),
		MazeCurrent: surface.RGB(255, 255, 0),
		Interior:    surface.RGB(8, 4, 16),
	}

	ThemeRetroGreen = Theme{
		Name:        "retro",
		Primary:     lipgloss.Color("#00ff00"),
		Secondary:   lipgloss.Color("#00cc00"),
		Accent:      lipgloss.Color("#88ff88"),
		Text:        lipgloss.Color("#00ff00"),
		Muted:       lipgloss.Color("#005500"),
		Back:        surface.RGB(0, 17, 0),
		BarDefault:  surface.RGB(0, 170, 0),
		BarActive:   surface.RGB(136, 255, 136),
		BarSorted:   surface.RGB(0, 255, 0),
		MazeVisited: surface.RGB(0, 34, 0),
		MazeWall:    surface.RGB(0, 255, 0),
		MazeCurrent: surface.RGB(200, 255, 200),
		Interior:    surface.RGB(0, 10, 0),
	}

	ThemeMinimal = Theme{
		Name:        "minimal",
		Primary:     lipgloss.Color("#ffffff"),
		Secondary:   lipgloss.Color("#cccccc"),
		Accent:      lipgloss.Color("#0088ff"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#888888"),
		Back:        surface.RGB(0, 0, 0),
		BarDefault:  surface.RGB(180, 180, 180),
		BarActive:   surface.RGB(0, 136, 255),
		BarSorted:   surface.RGB(255, 255, 255),
		MazeVisited: surface.RGB(24, 24, 24),
		MazeWall:    surface.RGB(220, 220, 220),
		MazeCurrent: surface.RGB(0, 136, 255),
		Interior:    surface.RGB(6, 6, 6),
	}

	ThemeOcean = Theme{
		Name:        "ocean",
		Primary:     lipgloss.Color("#0077be"),
		Secondary:   lipgloss.Color("#00a8cc"),
		Accent:      lipgloss.Color("#ffd700"),
		Text:        lipgloss.Color("#e0f0ff"),
		Muted:       lipgloss.Color("#4488aa"),
		Back:        surface.RGB(0, 26, 51),
		BarDefault:  surface.RGB(0, 168, 204),
		BarActive:   surface.RGB(255, 215, 0),
		BarSorted:   surface.RGB(0, 255, 136),
		MazeVisited: surface.RGB(0, 40, 70),
		MazeWall:    surface.RGB(120, 200, 255),
		MazeCurrent: surface.RGB(255, 215, 0),
		Interior:    surface.RGB(0, 12, 24),
	}

	// Default theme
	CurrentTheme = ThemeCyberpunk

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
