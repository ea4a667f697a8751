package lumberjack

import (
	"fmt"
	"strconv"
	"strings"
)

// Present renders the game as a "Score: N" header followed by the board,
// top row first.
//
//	'.' empty, a digit for a tree's height, v ^ < > | - for N S E W NS EW logs
func Present(g Game) string {
	return presentGrid(g, g.Grid)
}

// PresentPlan renders the board as it would look after the pending plan,
// followed by a "Plan:" line. Without a plan it is the same as Present.
func PresentPlan(g Game) string {
	if g.Plan == nil {
		return Present(g)
	}

	grid := g.Grid
	if len(g.Prediction) > 0 {
		grid = make([]Tile, len(g.Grid))
		copy(grid, g.Grid)
		for _, p := range g.Prediction {
			grid[IndexFromPosition(g.Width, p.Position)] = p.Tile
		}
	}

	outcome := "nothing to chop"
	if len(g.Prediction) > 0 {
		outcome = fmt.Sprintf("%d log segment(s)", len(g.Prediction)-1)
	}
	return fmt.Sprintf("%s\nPlan: %s, %s", presentGrid(g, grid), g.Plan, outcome)
}

func presentGrid(g Game, grid []Tile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Score: %d", g.Score)
	for y := g.Height - 1; y >= 0; y-- {
		sb.WriteByte('\n')
		for x := 0; x < g.Width; x++ {
			sb.WriteString(presentTile(grid[IndexFromPosition(g.Width, P(x, y))]))
		}
	}
	return sb.String()
}

func presentTile(t Tile) string {
	switch t := t.(type) {
	case TreeTile:
		return strconv.Itoa(t.Height)
	case LogTile:
		return string(t.Orientation.Glyph())
	default:
		return "."
	}
}
