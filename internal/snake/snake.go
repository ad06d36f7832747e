// Package snake implements the snake body and its movement rule.
package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// initialBody is the canonical starting body, head first.
var initialBody = [...]core.Cell{
	{X: 6, Y: 9},
	{X: 5, Y: 9},
	{X: 4, Y: 9},
}

// InitialBody returns a copy of the canonical 3-cell starting body.
func InitialBody() []core.Cell {
	body := make([]core.Cell, len(initialBody))
	copy(body, initialBody[:])
	return body
}

// Snake is an ordered body with the head at index 0.
// It performs no bounds or collision checks; the game does that after Update.
type Snake struct {
	body          []core.Cell
	direction     core.Direction
	pendingGrowth bool // If true, the next Update keeps the tail
}

// New creates a snake in the canonical starting state.
func New() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// NewWithBody creates a snake with an arbitrary non-empty body, head first.
func NewWithBody(body []core.Cell, dir core.Direction) *Snake {
	if len(body) == 0 {
		return New()
	}
	return &Snake{
		body:      append([]core.Cell(nil), body...),
		direction: dir,
	}
}

// Reset replaces the body with the canonical one and faces right.
func (s *Snake) Reset() {
	s.body = InitialBody()
	s.direction = core.Right
	s.pendingGrowth = false
}

// Update moves the snake one cell along its direction.
// The new head is unclamped and may leave the grid.
func (s *Snake) Update() {
	head := s.body[0].Add(s.direction)
	s.body = append([]core.Cell{head}, s.body...)

	if s.pendingGrowth {
		s.pendingGrowth = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Grow makes the next Update keep the tail.
// Calling it more than once before Update still grows by one cell.
func (s *Snake) Grow() {
	s.pendingGrowth = true
}

// ShrinkTail removes the tail cell. A one-cell snake is reset instead,
// so the body is never empty. Reports whether a reset happened.
func (s *Snake) ShrinkTail() bool {
	if len(s.body) <= 1 {
		s.Reset()
		return true
	}
	s.body = s.body[:len(s.body)-1]
	return false
}

// HitsSelf reports whether the head overlaps any other body cell.
func (s *Snake) HitsSelf() bool {
	return core.Contains(s.body[1:], s.body[0])
}

// Occupies reports whether c is part of the body.
func (s *Snake) Occupies(c core.Cell) bool {
	return core.Contains(s.body, c)
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Cell {
	body := make([]core.Cell, len(s.body))
	copy(body, s.body)
	return body
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current movement direction.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// SetDirection changes the movement direction. Reversal checks belong to
// the input layer.
func (s *Snake) SetDirection(d core.Direction) {
	s.direction = d
}

// PendingGrowth reports whether the next Update will grow the snake.
func (s *Snake) PendingGrowth() bool {
	return s.pendingGrowth
}
