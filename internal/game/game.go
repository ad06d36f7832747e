// Package game runs the snake simulation: one Snake, five food slots, the
// score, and the game-over procedure.
package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/food"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Phase is the coarse game state.
type Phase int

const (
	PhaseAwaitingStart Phase = iota // Rules screen
	PhaseRunning
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting_start"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Cue is an audio trigger emitted by the simulation.
type Cue = food.Cue

const (
	CuePositive = food.CuePositive
	CueNegative = food.CueNegative
)

// Sounder receives audio cues. Implementations must not block.
type Sounder interface {
	Play(cue Cue)
}

// ScoreSaver persists the score of a finished round.
type ScoreSaver interface {
	SaveScore(score int) error
}

// EndReason says why a round ended.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonWall
	ReasonSelf
)

func (r EndReason) String() string {
	switch r {
	case ReasonWall:
		return "wall"
	case ReasonSelf:
		return "self"
	default:
		return "none"
	}
}

// Food slots in collision evaluation order.
const (
	SlotNormal = iota
	SlotNegative1
	SlotNegative2
	SlotShrink
	SlotGrowth
	slotCount
)

var slotKinds = [slotCount]food.Kind{
	SlotNormal:    food.KindNormal,
	SlotNegative1: food.KindNegative,
	SlotNegative2: food.KindNegative,
	SlotShrink:    food.KindShrink,
	SlotGrowth:    food.KindGrowth,
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Advanced   bool        // False when the game was not running
	Eaten      []food.Kind // Foods consumed this tick, in evaluation order
	Cues       []Cue
	GameOver   bool
	Reason     EndReason
	FinalScore int // Score recorded when GameOver is true
}

// Game is the snake simulation. It is not safe for concurrent use; the
// platform loop drives it from a single goroutine.
type Game struct {
	cfg   Config
	grid  core.Grid
	rng   *rand.Rand
	snake *snake.Snake
	foods [slotCount]food.Food
	phase Phase
	tick  uint64
	score int
	// running is false after a game over until the player steers again.
	running   bool
	rounds    int
	lastScore int

	board   ScoreSaver
	sounder Sounder
	logger  *log.Logger
}

// New creates a game awaiting its start signal. board, sounder and logger
// may be nil.
func New(cfg Config, seed int64, board ScoreSaver, sounder Sounder, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:     cfg,
		grid:    core.NewGrid(cfg.GridSize),
		rng:     rand.New(rand.NewSource(seed)),
		snake:   snake.New(),
		running: true,
		board:   board,
		sounder: sounder,
		logger:  logger,
	}

	body := g.snake.Body()
	for slot, kind := range slotKinds {
		f, err := food.Spawn(kind, g.rng, g.grid, body, cfg.SpawnAttempts)
		if err != nil {
			g.logger.Warn("food not placed", "slot", slot, "error", err)
		}
		g.foods[slot] = f
	}

	g.Load()
	return g
}

// Start leaves the rules screen.
func (g *Game) Start() {
	g.phase = PhaseRunning
}

// Load prepares the score for a new round.
func (g *Game) Load() {
	g.score = 0
}

// SetDirection steers the snake and resumes a halted round.
// Reversal checks are the caller's job.
func (g *Game) SetDirection(d core.Direction) {
	if g.phase != PhaseRunning || !d.Valid() {
		return
	}
	g.snake.SetDirection(d)
	g.running = true
}

// Tick advances the simulation by one step: move, eat, then check the
// walls and the body.
func (g *Game) Tick() TickResult {
	if g.phase != PhaseRunning || !g.running {
		return TickResult{}
	}

	g.tick++
	g.respawnInactive()

	res := TickResult{Advanced: true}
	g.snake.Update()

	for slot := range g.foods {
		f := &g.foods[slot]
		// The head is reread per slot: a shrink can reset the snake.
		if !f.Eaten(g.snake.Head()) {
			continue
		}

		out := food.Apply(f.Kind, g.snake, g.cfg.NegativePenalty)
		g.place(slot)
		g.score += out.ScoreDelta
		g.play(out.Cue)

		res.Eaten = append(res.Eaten, f.Kind)
		res.Cues = append(res.Cues, out.Cue)
		g.logger.Debug("food eaten", "kind", f.Kind, "score", g.score)
	}

	reason := ReasonNone
	switch {
	case !g.grid.InBounds(g.snake.Head()):
		reason = ReasonWall
	case g.snake.HitsSelf():
		reason = ReasonSelf
	}

	if reason != ReasonNone {
		res.GameOver = true
		res.Reason = reason
		res.FinalScore = g.gameOver(reason)
		res.Cues = append(res.Cues, CueNegative)
	}

	return res
}

// gameOver resets the round in place and returns the recorded score.
func (g *Game) gameOver(reason EndReason) int {
	g.snake.Reset()
	for _, slot := range g.cfg.GameOverReroll.Slots() {
		g.place(slot)
	}
	g.running = false
	g.play(CueNegative)

	final := g.score
	if g.board != nil {
		if err := g.board.SaveScore(final); err != nil {
			g.logger.Warn("could not save score", "score", final, "error", err)
		}
	}
	g.logger.Info("game over", "reason", reason, "score", final, "round", g.rounds+1)

	g.rounds++
	g.lastScore = final
	g.Load()
	return final
}

// place re-rolls one food slot against the current body.
func (g *Game) place(slot int) {
	f := &g.foods[slot]
	if err := f.Reroll(g.rng, g.grid, g.snake.Body(), g.cfg.SpawnAttempts); err != nil {
		g.logger.Warn("food not placed", "slot", slot, "error", err)
	}
}

// respawnInactive retries slots that found no free cell earlier.
func (g *Game) respawnInactive() {
	for slot := range g.foods {
		if !g.foods[slot].Active {
			g.place(slot)
		}
	}
}

func (g *Game) play(cue Cue) {
	if g.sounder != nil {
		g.sounder.Play(cue)
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Running reports whether ticks currently advance the snake.
func (g *Game) Running() bool {
	return g.running
}

// Score returns the current round's score.
func (g *Game) Score() int {
	return g.score
}

// Direction returns the snake's current direction.
func (g *Game) Direction() core.Direction {
	return g.snake.Direction()
}

// Grid returns the playfield.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Food returns the food in the given slot.
func (g *Game) Food(slot int) food.Food {
	return g.foods[slot]
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d phase=%s running=%v score=%d len=%d head=%v dir=%s",
		g.tick, g.phase, g.running, g.score, g.snake.Len(), g.snake.Head(), g.snake.Direction())
}
