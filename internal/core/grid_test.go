package core

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGridInBounds(t *testing.T) {
	g := NewGrid(25)

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"far corner", Cell{24, 24}, true},
		{"x = -1", Cell{-1, 5}, false},
		{"x = N", Cell{25, 5}, false},
		{"y = -1", Cell{5, -1}, false},
		{"y = N", Cell{5, 25}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.cell); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestContains(t *testing.T) {
	body := []Cell{{6, 9}, {5, 9}, {4, 9}}

	if !Contains(body, Cell{5, 9}) {
		t.Error("Contains should find a middle cell")
	}
	if Contains(body, Cell{7, 9}) {
		t.Error("Contains should not find an absent cell")
	}
	if Contains(nil, Cell{0, 0}) {
		t.Error("Contains on empty body should be false")
	}
}

func TestRandomFreeCellAvoidsBody(t *testing.T) {
	g := NewGrid(5)
	rng := rand.New(rand.NewSource(7))

	// Occupy everything except the last row
	var body []Cell
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			body = append(body, Cell{x, y})
		}
	}

	for i := 0; i < 200; i++ {
		c, err := g.RandomFreeCell(rng, body, 3)
		if err != nil {
			t.Fatalf("RandomFreeCell() failed: %v", err)
		}
		if Contains(body, c) {
			t.Fatalf("RandomFreeCell returned occupied cell %v", c)
		}
		if !g.InBounds(c) {
			t.Fatalf("RandomFreeCell returned out-of-bounds cell %v", c)
		}
	}
}

func TestRandomFreeCellZeroAttemptsFallsBack(t *testing.T) {
	g := NewGrid(3)
	rng := rand.New(rand.NewSource(1))
	body := []Cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, {0, 2}, {1, 2}}

	c, err := g.RandomFreeCell(rng, body, 0)
	if err != nil {
		t.Fatalf("RandomFreeCell() failed: %v", err)
	}
	if c != (Cell{2, 2}) {
		t.Errorf("expected the only free cell (2,2), got %v", c)
	}
}

func TestRandomFreeCellFullGrid(t *testing.T) {
	g := NewGrid(2)
	rng := rand.New(rand.NewSource(1))
	body := []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	_, err := g.RandomFreeCell(rng, body, 10)
	if !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("expected ErrNoFreeCell, got %v", err)
	}
}

func TestFreeCells(t *testing.T) {
	g := NewGrid(3)
	free := g.FreeCells([]Cell{{1, 1}})

	if len(free) != 8 {
		t.Fatalf("expected 8 free cells, got %d", len(free))
	}
	if Contains(free, Cell{1, 1}) {
		t.Error("FreeCells should exclude body cells")
	}
}
