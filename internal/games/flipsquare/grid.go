// Package flipsquare implements a 3x3 Lights-Out style puzzle.
// Flipping a cell toggles it and its orthogonal neighbors; the goal is a board
// with every cell on. This package is UI-agnostic and deterministic.
package flipsquare

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the board dimension.
const Size = 3

// CellCount is the number of cells on the board.
const CellCount = Size * Size

// ErrMalformedBoard is returned when board text does not describe exactly
// CellCount cells.
var ErrMalformedBoard = errors.New("flipsquare: malformed board")

// CellState is the state of a single cell.
type CellState uint8

const (
	Off CellState = iota
	On
)

// String returns "ON" or "OFF".
func (s CellState) String() string {
	if s == On {
		return "ON"
	}
	return "OFF"
}

// Toggled returns the opposite state.
func (s CellState) Toggled() CellState {
	if s == On {
		return Off
	}
	return On
}

// Grid is the board stored as a flat array, top row first.
// Grid is a value type: every operation returns a new grid.
type Grid [CellCount]CellState

// SolvedGrid returns the goal board with every cell on.
func SolvedGrid() Grid {
	var g Grid
	for i := range g {
		g[i] = On
	}
	return g
}

// Cell returns the state at c. Coordinates off the board read as Off.
func (g Grid) Cell(c Coordinate) CellState {
	if !c.Valid() {
		return Off
	}
	return g[IndexFromCoordinate(c)]
}

// IsSolved returns true if every cell is on.
func (g Grid) IsSolved() bool {
	return g == SolvedGrid()
}

// String renders the grid as three lines of three characters,
// 'x' for on and 'o' for off, top row first.
func (g Grid) String() string {
	var sb strings.Builder
	for i, cell := range g {
		if i > 0 && i%Size == 0 {
			sb.WriteByte('\n')
		}
		if cell == On {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('o')
		}
	}
	return sb.String()
}

// ToggleCell flips exactly the cell at c. Invalid coordinates are ignored.
func ToggleCell(c Coordinate, g Grid) Grid {
	if !c.Valid() {
		return g
	}
	i := IndexFromCoordinate(c)
	g[i] = g[i].Toggled()
	return g
}

// FlipNeighbors toggles c and each orthogonal neighbor that lies on the board.
// Edge cells flip fewer cells; there is no wraparound.
func FlipNeighbors(c Coordinate, g Grid) Grid {
	for _, n := range Neighbors(c) {
		g = ToggleCell(n, g)
	}
	return g
}

// ParseString reads a board from text, keeping only the on and off runes in
// the order they appear. Exactly CellCount recognised runes are required.
func ParseString(on, off rune, text string) (Grid, error) {
	var g Grid
	n := 0
	for _, r := range text {
		if r != on && r != off {
			continue
		}
		if n >= CellCount {
			return Grid{}, fmt.Errorf("%w: more than %d cells", ErrMalformedBoard, CellCount)
		}
		if r == on {
			g[n] = On
		} else {
			g[n] = Off
		}
		n++
	}
	if n != CellCount {
		return Grid{}, fmt.Errorf("%w: got %d cells, want %d", ErrMalformedBoard, n, CellCount)
	}
	return g, nil
}

// ParseXO reads a board written with 'x' for on and 'o' for off.
func ParseXO(text string) (Grid, error) {
	return ParseString('x', 'o', text)
}
