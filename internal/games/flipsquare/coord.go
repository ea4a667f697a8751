package flipsquare

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/puzzlebox/internal/core"
)

// Coordinate is a cell position on the board.
// X increases to the right, Y increases upward (row 0 is the bottom row).
type Coordinate struct {
	X int
	Y int
}

// C is a convenience constructor for Coordinate.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// String returns the coordinate as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Valid returns true if the coordinate lies on the board.
func (c Coordinate) Valid() bool {
	return core.InBounds(c.X, c.Y, Size, Size)
}

// IndexFromCoordinate converts a coordinate to a flat grid index.
// The top row is stored first, so y is flipped relative to array order.
// Only defined for valid coordinates.
func IndexFromCoordinate(c Coordinate) int {
	return c.X - 3*c.Y + 6
}

// CoordinateFromIndex converts a flat grid index back to a coordinate.
func CoordinateFromIndex(i int) Coordinate {
	return Coordinate{
		X: i % Size,
		Y: core.Abs(core.FloorDiv(i-6, Size)),
	}
}

// Neighbors returns the coordinate itself followed by its orthogonal
// neighbors (down, up, left, right). Neighbors may be off the board.
func Neighbors(c Coordinate) []Coordinate {
	return []Coordinate{
		c,
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
	}
}

// PresentCoordinates joins coordinates as "(x, y), (x, y)".
func PresentCoordinates(cs []Coordinate) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
