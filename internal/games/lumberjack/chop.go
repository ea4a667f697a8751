package lumberjack

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/puzzlebox/internal/core"
)

var (
	// ErrOutOfBounds is returned for actions aimed off the board.
	ErrOutOfBounds = errors.New("lumberjack: position out of bounds")
	// ErrLogInteraction is returned for actions aimed at a log. Logs cannot be
	// moved yet; the returned game is still valid.
	ErrLogInteraction = fmt.Errorf("lumberjack: log interaction: %w", core.ErrUnsupportedAction)
)

// Action is a player move: chop the tree at Position so it falls in Direction.
type Action struct {
	Direction Direction
	Position  Position
}

// String returns the action as "W (2, 0)".
func (a Action) String() string {
	return a.Direction.String() + " " + a.Position.String()
}

// PredictedTile is a tile that an action would place at a position.
type PredictedTile struct {
	Tile     Tile
	Position Position
}

// chopTree predicts the result of felling tree in the action's direction:
// the stump becomes empty and one log segment is laid per unit of height.
// Segments that would land off the board are dropped.
func chopTree(g Game, tree TreeTile, a Action) []PredictedTile {
	first, middle, last := a.Direction.logOrientations()

	prediction := make([]PredictedTile, 0, tree.Height+1)
	prediction = append(prediction, PredictedTile{Tile: Empty, Position: a.Position})

	for i := range tree.Height {
		pos := a.Position.Step(a.Direction, i+1)
		if !g.InBounds(pos) {
			break
		}
		orientation := middle
		switch i {
		case 0:
			orientation = first
		case tree.Height - 1:
			orientation = last
		}
		prediction = append(prediction, PredictedTile{Tile: Log(orientation), Position: pos})
	}
	return prediction
}

// PlanAction previews an action without changing the grid.
//
// An empty target records the plan with no prediction. A tree records the plan
// and the tiles chopping it would place. A log records the plan and returns
// ErrLogInteraction.
func PlanAction(g Game, a Action) (Game, error) {
	tile, ok := g.TileAt(a.Position)
	if !ok {
		return g, fmt.Errorf("%w: %s", ErrOutOfBounds, a.Position)
	}

	next := g
	next.Plan = &a
	next.Prediction = nil

	switch t := tile.(type) {
	case EmptyTile:
		return next, nil
	case TreeTile:
		next.Prediction = chopTree(g, t, a)
		return next, nil
	case LogTile:
		return next, ErrLogInteraction
	default:
		return g, fmt.Errorf("lumberjack: unknown tile %T", tile)
	}
}

// ExecuteAction performs an action on the stored grid, ignoring any pending
// plan. Chopping a tree writes its prediction into a copy of the grid and
// rescores. Any other target leaves the grid unchanged. The returned game
// never carries a plan.
func ExecuteAction(g Game, a Action) (Game, error) {
	tile, ok := g.TileAt(a.Position)
	if !ok {
		return g, fmt.Errorf("%w: %s", ErrOutOfBounds, a.Position)
	}

	next := g
	next.Plan = nil
	next.Prediction = nil

	switch t := tile.(type) {
	case EmptyTile:
		return next, nil
	case TreeTile:
		grid := slices.Clone(g.Grid)
		for _, p := range chopTree(g, t, a) {
			grid[IndexFromPosition(g.Width, p.Position)] = p.Tile
		}
		next.Grid = grid
		next.Score = CalculateScore(next)
		return next, nil
	case LogTile:
		return next, ErrLogInteraction
	default:
		return g, fmt.Errorf("lumberjack: unknown tile %T", tile)
	}
}
