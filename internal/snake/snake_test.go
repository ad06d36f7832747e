package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewIsCanonical(t *testing.T) {
	s := New()

	assertCanonical(t, s)
	if s.PendingGrowth() {
		t.Error("new snake should not be growing")
	}
}

func TestUpdatePreservesLength(t *testing.T) {
	for _, dir := range []core.Direction{core.Right, core.Left, core.Up, core.Down} {
		t.Run(dir.String(), func(t *testing.T) {
			s := NewWithBody([]core.Cell{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 10, Y: 12}}, dir)
			before := s.Len()
			head := s.Head()

			s.Update()

			if s.Len() != before {
				t.Errorf("Len() = %d, expected %d", s.Len(), before)
			}
			if s.Head() != head.Add(dir) {
				t.Errorf("Head() = %v, expected %v", s.Head(), head.Add(dir))
			}
		})
	}
}

func TestUpdateWithGrowth(t *testing.T) {
	s := New()
	tail := s.Body()[s.Len()-1]
	s.Grow()

	s.Update()

	if s.Len() != 4 {
		t.Errorf("Len() = %d, expected 4 after growth", s.Len())
	}
	if s.PendingGrowth() {
		t.Error("growth flag should be consumed by Update")
	}
	if got := s.Body()[s.Len()-1]; got != tail {
		t.Errorf("tail moved to %v, expected it to stay at %v", got, tail)
	}

	// Next update no longer grows
	s.Update()
	if s.Len() != 4 {
		t.Errorf("Len() = %d, expected 4 on the following tick", s.Len())
	}
}

func TestGrowTwiceGrowsOnce(t *testing.T) {
	s := New()
	s.Grow()
	s.Grow()
	s.Update()

	if s.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", s.Len())
	}
}

func TestUpdateScenario(t *testing.T) {
	s := NewWithBody([]core.Cell{{X: 5, Y: 9}, {X: 4, Y: 9}, {X: 3, Y: 9}}, core.Right)
	s.Update()

	expected := []core.Cell{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}
	assertBody(t, s.Body(), expected)
}

func TestUpdateIsUnclamped(t *testing.T) {
	s := NewWithBody([]core.Cell{{X: 0, Y: 4}, {X: 1, Y: 4}}, core.Left)
	s.Update()

	if s.Head() != (core.Cell{X: -1, Y: 4}) {
		t.Errorf("Head() = %v, expected (-1,4)", s.Head())
	}
}

func TestShrinkTail(t *testing.T) {
	s := New()

	if reset := s.ShrinkTail(); reset {
		t.Error("shrinking a 3-cell snake should not reset")
	}
	assertBody(t, s.Body(), []core.Cell{{X: 6, Y: 9}, {X: 5, Y: 9}})
}

func TestShrinkTailOnSingleCellResets(t *testing.T) {
	s := NewWithBody([]core.Cell{{X: 12, Y: 3}}, core.Up)

	if reset := s.ShrinkTail(); !reset {
		t.Error("shrinking a 1-cell snake should reset")
	}
	assertCanonical(t, s)
}

func TestReset(t *testing.T) {
	s := NewWithBody([]core.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 1, Y: 4}}, core.Up)
	s.Grow()

	s.Reset()

	assertCanonical(t, s)
	if s.PendingGrowth() {
		t.Error("Reset should clear pending growth")
	}
}

func TestHitsSelf(t *testing.T) {
	// Head (5,5) revisits the cell at index 2
	s := NewWithBody([]core.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 5}, {X: 4, Y: 5}}, core.Up)
	if !s.HitsSelf() {
		t.Error("expected self collision")
	}

	if New().HitsSelf() {
		t.Error("canonical snake should not collide with itself")
	}
}

func TestBodyIsCopy(t *testing.T) {
	s := New()
	body := s.Body()
	body[0] = core.Cell{X: 99, Y: 99}

	if s.Head() == body[0] {
		t.Error("Body() should return a copy")
	}
}

func TestInitialBodyIsCopy(t *testing.T) {
	b := InitialBody()
	b[0] = core.Cell{}

	if InitialBody()[0] != (core.Cell{X: 6, Y: 9}) {
		t.Error("InitialBody() should not expose shared state")
	}
}

func assertCanonical(t *testing.T, s *Snake) {
	t.Helper()
	assertBody(t, s.Body(), []core.Cell{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}})
	if s.Direction() != core.Right {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
}

func assertBody(t *testing.T, got, expected []core.Cell) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("body = %v, expected %v", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("body = %v, expected %v", got, expected)
		}
	}
}
