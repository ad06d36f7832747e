package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderDrawsBoardAndScore(t *testing.T) {
	g := New(DefaultConfig(), 3, nil, nil, nil)
	g.Start()
	g.score = 12

	w, h := RequiredSize(g.Grid().Size)
	scr := core.NewScreen(w, h)
	g.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "Score: 12") {
		t.Error("HUD score missing")
	}
	if scr.Get(0, hudHeight) != '┌' {
		t.Errorf("top-left corner = %q", scr.Get(0, hudHeight))
	}

	// Head (6,9) is drawn two columns per cell inside the border.
	hx, hy := 1+6*cellWidth, hudHeight+1+9
	if c := scr.GetCell(hx, hy); c.Rune != '█' || c.Color != core.ColorGreen {
		t.Errorf("head cell = %+v", c)
	}

	foods := g.Snapshot().Foods
	last := make(map[core.Cell]int)
	for _, f := range foods {
		last[f.Pos] = f.Slot
	}
	for _, f := range foods {
		if last[f.Pos] != f.Slot {
			continue // Overdrawn by a later slot
		}
		x, y := 1+f.Pos.X*cellWidth, hudHeight+1+f.Pos.Y
		if c := scr.GetCell(x, y); c.Color != FoodColor(f.Kind) {
			t.Errorf("%s food at %v drawn with %v", f.Kind, f.Pos, c.Color)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(DefaultConfig(), 3, nil, nil, nil)
	scr := core.NewScreen(30, 10)
	g.Render(scr)

	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected too-small notice")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, []core.Cell{{X: 24, Y: 5}}, core.Right)
	g.score = 7
	g.Tick()

	w, h := RequiredSize(g.Grid().Size)
	scr := core.NewScreen(w, h)
	g.Render(scr)

	if !strings.Contains(scr.String(), "GAME OVER - Score: 7") {
		t.Error("game over overlay missing")
	}
}
