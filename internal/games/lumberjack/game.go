package lumberjack

import (
	"errors"
	"fmt"
	"slices"
)

// Default tree height range, inclusive.
const (
	DefaultMinTreeHeight = 2
	DefaultMaxTreeHeight = 6
)

// ErrInvalidInit is returned by NewGame for impossible board parameters.
var ErrInvalidInit = errors.New("lumberjack: invalid init")

// Init describes a new game. Zero tree heights mean the defaults.
type Init struct {
	Seed          string
	Width         int
	Height        int
	Trees         int
	MinTreeHeight int
	MaxTreeHeight int
}

// Game is an immutable-by-convention game state. Operations return a new Game
// and never modify the grid of their input.
type Game struct {
	Grid   []Tile // Flat, row 0 (bottom) first: index = x + y*Width
	Width  int
	Height int
	Score  int

	Plan       *Action         // Pending planned action, if any
	Prediction []PredictedTile // Tiles the pending plan would place
}

// NewGame generates a board from init. Tree placement is fully determined by
// the seed string: the cell indices are shuffled and the first init.Trees of
// them get a tree, each with a height drawn in that order.
func NewGame(init Init) (Game, error) {
	if init.MinTreeHeight == 0 && init.MaxTreeHeight == 0 {
		init.MinTreeHeight = DefaultMinTreeHeight
		init.MaxTreeHeight = DefaultMaxTreeHeight
	}
	if err := init.validate(); err != nil {
		return Game{}, err
	}

	cells := init.Width * init.Height
	grid := make([]Tile, cells)
	for i := range grid {
		grid[i] = Empty
	}

	rng := newXoroshiro128plus(stringToSeed(init.Seed))
	for _, i := range rng.chooseCount(init.Trees, cells) {
		grid[i] = Tree(rng.uniformInt(init.MinTreeHeight, init.MaxTreeHeight))
	}

	g := Game{Grid: grid, Width: init.Width, Height: init.Height}
	g.Score = CalculateScore(g)
	return g, nil
}

func (init Init) validate() error {
	switch {
	case init.Width <= 0 || init.Height <= 0:
		return fmt.Errorf("%w: board is %dx%d", ErrInvalidInit, init.Width, init.Height)
	case init.Trees < 0 || init.Trees > init.Width*init.Height:
		return fmt.Errorf("%w: %d trees on %d cells", ErrInvalidInit, init.Trees, init.Width*init.Height)
	case init.MinTreeHeight < 1 || init.MinTreeHeight > init.MaxTreeHeight:
		return fmt.Errorf("%w: tree heights [%d, %d]", ErrInvalidInit, init.MinTreeHeight, init.MaxTreeHeight)
	}
	return nil
}

// InBounds returns true if p lies on the board.
func (g Game) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// TileAt returns the tile at p, or false if p is off the board.
func (g Game) TileAt(p Position) (Tile, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	t := g.Grid[IndexFromPosition(g.Width, p)]
	if t == nil {
		return Empty, true
	}
	return t, true
}

// Clone returns a copy of the game that shares nothing with g.
func (g Game) Clone() Game {
	c := g
	c.Grid = slices.Clone(g.Grid)
	c.Prediction = slices.Clone(g.Prediction)
	if g.Plan != nil {
		plan := *g.Plan
		c.Plan = &plan
	}
	return c
}

// TreeCount returns the number of standing trees.
func (g Game) TreeCount() int {
	n := 0
	for _, t := range g.Grid {
		if _, ok := t.(TreeTile); ok {
			n++
		}
	}
	return n
}
