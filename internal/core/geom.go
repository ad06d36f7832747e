// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Cell is a single integer grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by the given direction vector.
// The result is not clamped and may lie outside any grid.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit movement vector.
type Direction struct {
	X, Y int
}

// The four movement directions. Y grows downward, matching screen rows.
var (
	Right = Direction{X: 1, Y: 0}
	Left  = Direction{X: -1, Y: 0}
	Down  = Direction{X: 0, Y: 1}
	Up    = Direction{X: 0, Y: -1}
)

// Opposite reports whether d points exactly against other.
func (d Direction) Opposite(other Direction) bool {
	return d.X == -other.X && d.Y == -other.Y
}

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	return d == Right || d == Left || d == Down || d == Up
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
