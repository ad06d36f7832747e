// Package loop gates simulation ticks to a fixed real-time interval and
// buffers direction input between them.
package loop

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// DefaultInterval is the classic tick interval.
const DefaultInterval = 200 * time.Millisecond

// Simulation is the part of the game the loop drives.
type Simulation interface {
	Start()
	Tick() game.TickResult
	Direction() core.Direction
	SetDirection(d core.Direction)
}

// Loop owns the last-update timestamp and the move-allowed token.
// It is driven by one goroutine calling Frame once per rendered frame.
type Loop struct {
	sim      Simulation
	interval time.Duration

	lastUpdate time.Time
	// moveAllowed is set when a tick runs and cleared when a direction
	// change is accepted, so at most one turn happens per tick.
	moveAllowed bool
	pending     core.Direction
	hasPending  bool
}

// New creates a loop for sim. A non-positive interval selects DefaultInterval.
func New(sim Simulation, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{sim: sim, interval: interval}
}

// Start leaves the rules screen and arms the tick gate at now.
func (l *Loop) Start(now time.Time) {
	l.sim.Start()
	l.lastUpdate = now
	l.moveAllowed = false
	l.hasPending = false
}

// Interval returns the tick interval.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Frame runs one frame: it ticks the simulation when the interval has
// elapsed, buffers the frame's direction input, then applies the buffered
// direction if a move is allowed. ticked reports whether Tick ran.
func (l *Loop) Frame(now time.Time, input core.InputFrame) (res game.TickResult, ticked bool) {
	if now.Sub(l.lastUpdate) >= l.interval {
		l.lastUpdate = now
		l.moveAllowed = true
		res = l.sim.Tick()
		ticked = true
	}

	current := l.sim.Direction()
	for _, a := range core.DirectionActions {
		if !input.Has(a) {
			continue
		}
		d, _ := a.Direction()
		if d.Opposite(current) {
			continue
		}
		l.pending = d
		l.hasPending = true
		break
	}

	if l.hasPending && l.moveAllowed {
		if !l.pending.Opposite(l.sim.Direction()) {
			l.sim.SetDirection(l.pending)
			l.moveAllowed = false
		}
		l.hasPending = false
	}

	return res, ticked
}

// Pending returns the buffered direction, if any.
func (l *Loop) Pending() (core.Direction, bool) {
	return l.pending, l.hasPending
}

// MoveAllowed reports whether the next buffered direction may be applied.
func (l *Loop) MoveAllowed() bool {
	return l.moveAllowed
}
