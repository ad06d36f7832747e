package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/food"
	"github.com/vovakirdan/tui-snake/internal/scoreboard"
)

// Layout constants. Each grid cell is two columns wide so the board looks
// square in a terminal.
const (
	cellWidth = 2
	hudHeight = 2
	// FooterHeight is the number of rows below the board left for the
	// platform's own status line.
	FooterHeight = 1
)

// RequiredSize returns the smallest screen that fits a board of gridSize.
func RequiredSize(gridSize int) (w, h int) {
	return gridSize*cellWidth + 2, hudHeight + gridSize + 2 + FooterHeight
}

// FoodColor returns the color a food kind is drawn with.
func FoodColor(k food.Kind) core.Color {
	switch k {
	case food.KindNegative:
		return core.ColorRed
	case food.KindShrink:
		return core.ColorOrange
	case food.KindGrowth:
		return core.ColorBlue
	default:
		return core.ColorWhite
	}
}

// Render draws the board, the snake, the food and the HUD onto dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := RequiredSize(g.grid.Size)
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Window too small: need %dx%d", minW, minH))
		return
	}

	boardW := g.grid.Size*cellWidth + 2
	boardH := g.grid.Size + 2
	ox := (dst.Width() - boardW) / 2
	oy := hudHeight

	dst.DrawTextColored(ox, 0, "SNAKE", core.ColorGreen)
	score := fmt.Sprintf("%s%d", scoreboard.Label, g.score)
	dst.DrawTextColored(ox+boardW-len(score), 0, score, core.ColorYellow)

	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH), core.ColorGray)

	toScreen := func(c core.Cell) (int, int) {
		return ox + 1 + c.X*cellWidth, oy + 1 + c.Y
	}

	for _, f := range g.foods {
		if !f.Active {
			continue
		}
		x, y := toScreen(f.Pos)
		dst.SetColored(x, y, '(', FoodColor(f.Kind))
		dst.SetColored(x+1, y, ')', FoodColor(f.Kind))
	}

	for i, c := range g.snake.Body() {
		if !g.grid.InBounds(c) {
			continue
		}
		color := core.ColorDarkGreen
		if i == 0 {
			color = core.ColorGreen
		}
		x, y := toScreen(c)
		dst.SetColored(x, y, '█', color)
		dst.SetColored(x+1, y, '█', color)
	}

	if !g.running {
		mid := oy + boardH/2
		dst.DrawTextCentered(mid-1, fmt.Sprintf(" GAME OVER - %s%d ", scoreboard.Label, g.lastScore))
		dst.DrawTextCentered(mid+1, " Press an arrow key to play again ")
	}
}
