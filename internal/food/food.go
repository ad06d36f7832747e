// Package food implements the typed food items and their effects.
package food

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Kind tags the effect a food item has when eaten.
type Kind int

const (
	KindNormal Kind = iota
	KindNegative
	KindShrink
	KindGrowth
)

// String returns the kind name used in logs and snapshots.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindNegative:
		return "negative"
	case KindShrink:
		return "shrink"
	case KindGrowth:
		return "growth"
	default:
		return "unknown"
	}
}

// Food is one food slot on the board.
type Food struct {
	Kind Kind
	Pos  core.Cell
	// Active is false only when no free cell was available at spawn time.
	Active bool
}

// Spawn places a new food of the given kind on a cell outside body.
// On a saturated grid it returns an inactive food and core.ErrNoFreeCell.
func Spawn(kind Kind, rng *rand.Rand, grid core.Grid, body []core.Cell, attempts int) (Food, error) {
	f := Food{Kind: kind}
	err := f.Reroll(rng, grid, body, attempts)
	return f, err
}

// Reroll moves the food to a random cell outside body.
func (f *Food) Reroll(rng *rand.Rand, grid core.Grid, body []core.Cell, attempts int) error {
	pos, err := grid.RandomFreeCell(rng, body, attempts)
	if err != nil {
		f.Active = false
		return fmt.Errorf("food: cannot place %s food: %w", f.Kind, err)
	}
	f.Pos = pos
	f.Active = true
	return nil
}

// Eaten reports whether the head is on this food.
func (f Food) Eaten(head core.Cell) bool {
	return f.Active && f.Pos == head
}

// Cue classifies the sound an effect triggers.
type Cue int

const (
	CuePositive Cue = iota
	CueNegative
)

// Outcome is what an effect means for the score and the audio boundary.
type Outcome struct {
	ScoreDelta int
	Cue        Cue
}

// Apply performs the effect of eating a food of kind k on s.
// penalty is the amount a negative food subtracts from the score.
func Apply(k Kind, s *snake.Snake, penalty int) Outcome {
	switch k {
	case KindNormal:
		s.Grow()
		return Outcome{ScoreDelta: 1, Cue: CuePositive}
	case KindNegative:
		return Outcome{ScoreDelta: -penalty, Cue: CueNegative}
	case KindShrink:
		s.ShrinkTail()
		return Outcome{ScoreDelta: 0, Cue: CuePositive}
	case KindGrowth:
		s.Grow()
		return Outcome{ScoreDelta: 2, Cue: CuePositive}
	default:
		panic(fmt.Sprintf("food: unknown kind %d", k))
	}
}
