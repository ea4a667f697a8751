package flipsquare

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/puzzlebox/internal/core"
)

// Action is a state change applied to a Square by Reduce.
// The set of actions is closed; see Flip, Toggle, SetGrid, FlipRow,
// FlipColumn and Reset.
type Action interface {
	apply(g Grid) Grid
}

// Flip flips a cell and its neighbors.
type Flip struct{ At Coordinate }

// Toggle flips a single cell.
type Toggle struct{ At Coordinate }

// SetGrid replaces the whole board.
type SetGrid struct{ Grid Grid }

// FlipRow flips every cell of row Y, one Flip per cell from left to right.
type FlipRow struct{ Y int }

// FlipColumn flips every cell of column X, one Flip per cell from bottom to top.
type FlipColumn struct{ X int }

// Reset returns to the solved board.
type Reset struct{}

func (a Flip) apply(g Grid) Grid    { return FlipNeighbors(a.At, g) }
func (a Toggle) apply(g Grid) Grid  { return ToggleCell(a.At, g) }
func (a SetGrid) apply(_ Grid) Grid { return a.Grid }
func (a Reset) apply(_ Grid) Grid   { return SolvedGrid() }

func (a FlipRow) apply(g Grid) Grid {
	for x := range Size {
		g = FlipNeighbors(C(x, a.Y), g)
	}
	return g
}

func (a FlipColumn) apply(g Grid) Grid {
	for y := range Size {
		g = FlipNeighbors(C(a.X, y), g)
	}
	return g
}

// Reduce applies an action and returns a new Square.
// A nil square is treated as the solved starting board.
func Reduce(s *Square, a Action) *Square {
	g := SolvedGrid()
	if s != nil {
		g = s.grid
	}
	return NewSquare(a.apply(g))
}

// ActionFromCommand converts a textual command into an Action.
//
//	flip x,y | toggle x,y | row y | column x | reset | set <board>
//
// Boards for "set" are parsed with the given on and off runes; the board may be
// split across several arguments (e.g. "set xox ooo xxx").
func ActionFromCommand(cmd core.Command, on, off rune) (Action, error) {
	switch cmd.Verb {
	case "flip", "toggle":
		if err := cmd.ExpectArgs(1); err != nil {
			return nil, err
		}
		x, y, err := core.ParsePair(cmd.Args[0])
		if err != nil {
			return nil, err
		}
		if !C(x, y).Valid() {
			return nil, fmt.Errorf("%w: %s is off the board", core.ErrBadArguments, C(x, y))
		}
		if cmd.Verb == "flip" {
			return Flip{At: C(x, y)}, nil
		}
		return Toggle{At: C(x, y)}, nil

	case "row", "column":
		if err := cmd.ExpectArgs(1); err != nil {
			return nil, err
		}
		n, err := core.ParseInt(cmd.Args[0])
		if err != nil {
			return nil, err
		}
		if n < 0 || n >= Size {
			return nil, fmt.Errorf("%w: %s %d is off the board", core.ErrBadArguments, cmd.Verb, n)
		}
		if cmd.Verb == "row" {
			return FlipRow{Y: n}, nil
		}
		return FlipColumn{X: n}, nil

	case "reset":
		if err := cmd.ExpectArgs(0); err != nil {
			return nil, err
		}
		return Reset{}, nil

	case "set":
		g, err := ParseString(on, off, strings.Join(cmd.Args, ""))
		if err != nil {
			return nil, err
		}
		return SetGrid{Grid: g}, nil

	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownCommand, cmd.Verb)
	}
}
