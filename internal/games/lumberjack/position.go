package lumberjack

import "fmt"

// Position is a cell on the board. Row 0 is the bottom row; Y increases north.
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Step returns the position n steps away in direction d.
func (p Position) Step(d Direction, n int) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + n*dx, Y: p.Y + n*dy}
}

// IndexFromPosition converts a position to a flat grid index.
func IndexFromPosition(width int, p Position) int {
	return p.X + p.Y*width
}

// PositionFromIndex converts a flat grid index back to a position.
func PositionFromIndex(width, i int) Position {
	return Position{X: i % width, Y: i / width}
}
