package flipsquare

import "slices"

// Square is an immutable board together with its cached solution.
// Every state change builds a new Square, so the solution is always current.
type Square struct {
	grid     Grid
	solution []int
	solvable bool
}

// NewSquare creates a Square and solves it.
func NewSquare(g Grid) *Square {
	solution, ok := Solve(g)
	return &Square{
		grid:     g,
		solution: solution,
		solvable: ok,
	}
}

// Grid returns the board.
func (s *Square) Grid() Grid {
	return s.grid
}

// Cell returns the state of the cell at (x, y).
func (s *Square) Cell(x, y int) CellState {
	return s.grid.Cell(C(x, y))
}

// String renders the board in x/o form.
func (s *Square) String() string {
	return s.grid.String()
}

// Solution returns a copy of the flip indices that solve the board.
// Empty when the board is solved or no solution was found.
func (s *Square) Solution() []int {
	return slices.Clone(s.solution)
}

// SolutionCoordinates returns the solution as coordinates.
func (s *Square) SolutionCoordinates() []Coordinate {
	coords := make([]Coordinate, len(s.solution))
	for i, idx := range s.solution {
		coords[i] = CoordinateFromIndex(idx)
	}
	return coords
}

// Solvable returns false if the solver found no solution.
func (s *Square) Solvable() bool {
	return s.solvable
}

// Solved returns true if every cell is on.
func (s *Square) Solved() bool {
	return s.grid.IsSolved()
}

// ShouldFlip returns true if the cell at (x, y) is part of the solution.
func (s *Square) ShouldFlip(x, y int) bool {
	c := C(x, y)
	if !c.Valid() {
		return false
	}
	return slices.Contains(s.solution, IndexFromCoordinate(c))
}
