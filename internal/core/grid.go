package core

import (
	"errors"
	"math/rand"
)

// ErrNoFreeCell is returned when every grid cell is occupied.
var ErrNoFreeCell = errors.New("core: no free cell on grid")

// Grid is a square playfield of Size×Size cells.
type Grid struct {
	Size int
}

// NewGrid creates a grid with the given side length.
func NewGrid(size int) Grid {
	return Grid{Size: size}
}

// CellCount returns the number of cells on the grid.
func (g Grid) CellCount() int {
	return g.Size * g.Size
}

// InBounds reports whether c lies on the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// RandomCell returns a uniformly random cell on the grid.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{X: rng.Intn(g.Size), Y: rng.Intn(g.Size)}
}

// RandomFreeCell draws random cells until one is not in body.
// After attempts failed draws it picks uniformly among the remaining free
// cells, so a crowded grid still terminates. Returns ErrNoFreeCell when the
// body covers the whole grid.
func (g Grid) RandomFreeCell(rng *rand.Rand, body []Cell, attempts int) (Cell, error) {
	for range attempts {
		c := g.RandomCell(rng)
		if !Contains(body, c) {
			return c, nil
		}
	}

	free := g.FreeCells(body)
	if len(free) == 0 {
		return Cell{}, ErrNoFreeCell
	}
	return free[rng.Intn(len(free))], nil
}

// FreeCells lists every grid cell not in body, row by row.
func (g Grid) FreeCells(body []Cell) []Cell {
	occupied := make(map[Cell]struct{}, len(body))
	for _, c := range body {
		occupied[c] = struct{}{}
	}

	free := make([]Cell, 0, g.CellCount())
	for y := range g.Size {
		for x := range g.Size {
			c := Cell{X: x, Y: y}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}

// Contains reports whether c appears anywhere in cells.
func Contains(cells []Cell, c Cell) bool {
	for _, other := range cells {
		if other == c {
			return true
		}
	}
	return false
}
