package loop

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

type fakeSim struct {
	started bool
	ticks   int
	dir     core.Direction
	sets    []core.Direction
}

func (f *fakeSim) Start() { f.started = true }

func (f *fakeSim) Tick() game.TickResult {
	f.ticks++
	return game.TickResult{Advanced: true}
}

func (f *fakeSim) Direction() core.Direction { return f.dir }

func (f *fakeSim) SetDirection(d core.Direction) {
	f.dir = d
	f.sets = append(f.sets, d)
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTickGate(t *testing.T) {
	sim := &fakeSim{dir: core.Right}
	l := New(sim, 200*time.Millisecond)
	l.Start(t0)
	if !sim.started {
		t.Fatal("Start did not start the simulation")
	}

	frames := []struct {
		at   time.Duration
		want int
	}{
		{16 * time.Millisecond, 0},
		{199 * time.Millisecond, 0},
		{200 * time.Millisecond, 1},
		{300 * time.Millisecond, 1},
		{399 * time.Millisecond, 1},
		{400 * time.Millisecond, 2},
		{1 * time.Second, 3},
	}
	for _, f := range frames {
		prev := sim.ticks
		_, ticked := l.Frame(t0.Add(f.at), core.NewInputFrame())
		if sim.ticks != f.want {
			t.Errorf("at %v: ticks = %d, want %d", f.at, sim.ticks, f.want)
		}
		if ticked != (sim.ticks != prev) {
			t.Errorf("at %v: ticked = %v", f.at, ticked)
		}
	}
}

func TestDefaultInterval(t *testing.T) {
	l := New(&fakeSim{}, 0)
	if l.Interval() != DefaultInterval {
		t.Errorf("Interval = %v, want %v", l.Interval(), DefaultInterval)
	}
}

func TestInputBeforeFirstTickIsBuffered(t *testing.T) {
	sim := &fakeSim{dir: core.Right}
	l := New(sim, 200*time.Millisecond)
	l.Start(t0)

	l.Frame(t0.Add(50*time.Millisecond), input(core.ActionDown))
	if len(sim.sets) != 0 {
		t.Fatalf("direction applied before any tick: %v", sim.sets)
	}
	if d, ok := l.Pending(); !ok || d != core.Down {
		t.Fatalf("Pending = %v, %v; want down", d, ok)
	}

	l.Frame(t0.Add(200*time.Millisecond), core.NewInputFrame())
	if len(sim.sets) != 1 || sim.dir != core.Down {
		t.Errorf("sets = %v, want [down]", sim.sets)
	}
	if _, ok := l.Pending(); ok {
		t.Error("pending not consumed")
	}
}

func TestOneTurnPerTick(t *testing.T) {
	sim := &fakeSim{dir: core.Right}
	l := New(sim, 200*time.Millisecond)
	l.Start(t0)

	l.Frame(t0.Add(200*time.Millisecond), input(core.ActionDown))
	if sim.dir != core.Down {
		t.Fatalf("dir = %v, want down", sim.dir)
	}
	if l.MoveAllowed() {
		t.Error("move token not cleared")
	}

	// Left arrives before the next tick: buffered, not applied.
	l.Frame(t0.Add(250*time.Millisecond), input(core.ActionLeft))
	if sim.dir != core.Down {
		t.Errorf("second turn applied in the same tick window")
	}

	l.Frame(t0.Add(400*time.Millisecond), core.NewInputFrame())
	if sim.dir != core.Left {
		t.Errorf("dir = %v, want left after next tick", sim.dir)
	}
}

func TestReversalRejected(t *testing.T) {
	sim := &fakeSim{dir: core.Right}
	l := New(sim, 200*time.Millisecond)
	l.Start(t0)

	l.Frame(t0.Add(200*time.Millisecond), input(core.ActionLeft))
	if len(sim.sets) != 0 {
		t.Errorf("reversal applied: %v", sim.sets)
	}
	if !l.MoveAllowed() {
		t.Error("rejected reversal should not spend the move token")
	}
}

func TestSampleOrder(t *testing.T) {
	tests := []struct {
		name    string
		current core.Direction
		pressed []core.Action
		want    core.Direction
	}{
		{"up before down", core.Right, []core.Action{core.ActionDown, core.ActionUp}, core.Up},
		{"skip reversal", core.Down, []core.Action{core.ActionUp, core.ActionLeft}, core.Left},
		{"left before right", core.Up, []core.Action{core.ActionRight, core.ActionLeft}, core.Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := &fakeSim{dir: tt.current}
			l := New(sim, 200*time.Millisecond)
			l.Start(t0)
			l.Frame(t0.Add(200*time.Millisecond), input(tt.pressed...))
			if sim.dir != tt.want {
				t.Errorf("dir = %v, want %v", sim.dir, tt.want)
			}
		})
	}
}

func TestLoopDrivesGame(t *testing.T) {
	g := game.New(game.DefaultConfig(), 9, nil, nil, nil)
	l := New(g, DefaultInterval)
	l.Start(t0)
	if g.Phase() != game.PhaseRunning {
		t.Fatalf("Phase = %v, want running", g.Phase())
	}

	l.Frame(t0.Add(DefaultInterval), input(core.ActionDown))
	if g.Direction() != core.Down {
		t.Errorf("Direction = %v, want down", g.Direction())
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("Tick = %d, want 1", g.Snapshot().Tick)
	}
}
