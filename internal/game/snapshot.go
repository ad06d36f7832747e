package game

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/food"
)

// FoodView is the read-only view of one food slot.
type FoodView struct {
	Slot   int
	Kind   food.Kind
	Pos    core.Cell
	Active bool
}

// Snapshot is a copy of the game state for rendering and tests.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Running   bool
	Score     int
	LastScore int // Score of the most recently finished round
	Rounds    int
	GridSize  int
	Direction core.Direction
	Body      []core.Cell // Head first
	Foods     []FoodView
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	foods := make([]FoodView, 0, len(g.foods))
	for slot, f := range g.foods {
		foods = append(foods, FoodView{Slot: slot, Kind: f.Kind, Pos: f.Pos, Active: f.Active})
	}
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Running:   g.running,
		Score:     g.score,
		LastScore: g.lastScore,
		Rounds:    g.rounds,
		GridSize:  g.grid.Size,
		Direction: g.snake.Direction(),
		Body:      g.snake.Body(),
		Foods:     foods,
	}
}
