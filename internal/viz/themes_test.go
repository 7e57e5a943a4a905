package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/fractal"
	"github.com/san-kum/algoviz/internal/maze"
	"github.com/san-kum/algoviz/internal/trace"
)

func TestGetTheme(t *testing.T) {
	if got := GetTheme("ocean"); got.Name != "ocean" {
		t.Errorf("expected ocean, got %s", got.Name)
	}
	if got := GetTheme("nonexistent"); got.Name != "cyberpunk" {
		t.Errorf("expected cyberpunk fallback, got %s", got.Name)
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(Themes) {
		t.Fatalf("expected %d names, got %d", len(Themes), len(names))
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate theme name %s", n)
		}
		seen[n] = true
	}
}

func TestThemePalettes(t *testing.T) {
	for _, th := range Themes {
		bars := th.Bars()
		if bars.Active == bars.Sorted {
			t.Errorf("%s: active and sorted bars share a color", th.Name)
		}
		mp := th.Maze()
		if mp.Wall == mp.Back {
			t.Errorf("%s: walls invisible against background", th.Name)
		}
	}
}

func TestBuild(t *testing.T) {
	cfg := config.DefaultConfig()
	th := GetTheme("minimal")

	tests := []struct {
		viz  string
		want string
	}{
		{"sort", "sort"},
		{"maze", "maze"},
		{"fractal", "fractal"},
		{"unknown", "sort"},
	}

	for _, tt := range tests {
		v := Build(tt.viz, cfg, th)
		if v.Name() != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.viz, tt.want, v.Name())
		}
	}
}

func TestBuildAll(t *testing.T) {
	vizs := BuildAll(config.DefaultConfig(), GetTheme("minimal"))
	if len(vizs) != len(VizNames()) {
		t.Fatalf("expected %d visualizations, got %d", len(VizNames()), len(vizs))
	}
	for i, name := range VizNames() {
		if vizs[i].Name() != name {
			t.Errorf("slot %d: expected %s, got %s", i, name, vizs[i].Name())
		}
	}
}

func TestRetheme(t *testing.T) {
	cfg := config.DefaultConfig()
	vizs := BuildAll(cfg, GetTheme("cyberpunk"))
	Retheme(vizs, GetTheme("ocean"))

	r, ok := vizs[2].(*fractal.Renderer)
	if !ok {
		t.Fatal("expected fractal renderer in slot 2")
	}
	if r.Interior != GetTheme("ocean").Interior {
		t.Error("retheme did not reach the fractal interior color")
	}
	if _, ok := vizs[0].(*trace.Player); !ok {
		t.Error("expected trace player in slot 0")
	}
	if _, ok := vizs[1].(*maze.Generator); !ok {
		t.Error("expected maze generator in slot 1")
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	out := CanvasToSVG(c, 4, "#ffffff")
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("missing svg envelope")
	}
	if !strings.Contains(out, "circle") {
		t.Error("expected a dot for the set sub-pixel")
	}
	if !strings.Contains(out, "#ffffff") {
		t.Error("fill color not applied")
	}
}
