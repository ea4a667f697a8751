package lumberjack

import (
	"fmt"

	"github.com/vovakirdan/puzzlebox/internal/core"
	"github.com/vovakirdan/puzzlebox/internal/registry"
)

// Puzzle adapts a Game to the registry.Game interface.
type Puzzle struct {
	game  Game
	moves int
}

// New creates an unseeded puzzle. Call Reset before use.
func New() *Puzzle {
	return &Puzzle{}
}

func init() {
	registry.Register("lumberjack", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (p *Puzzle) ID() string {
	return "lumberjack"
}

// Title returns the display name.
func (p *Puzzle) Title() string {
	return "Lumberjack"
}

// Reset generates a new board from the seed and dimensions in cfg.
func (p *Puzzle) Reset(cfg core.RuntimeConfig) error {
	g, err := NewGame(Init{
		Seed:          cfg.Seed,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Trees:         cfg.Trees,
		MinTreeHeight: cfg.TreeHeightMin,
		MaxTreeHeight: cfg.TreeHeightMax,
	})
	if err != nil {
		return err
	}
	p.game = g
	p.moves = 0
	return nil
}

// Game returns the current game state.
func (p *Puzzle) Game() Game {
	return p.game
}

// ActionFromCommand converts "plan D x,y" or "chop D x,y" into an Action.
// It reports whether the command executes (chop) or only plans.
func ActionFromCommand(cmd core.Command) (Action, bool, error) {
	var execute bool
	switch cmd.Verb {
	case "plan":
	case "chop", "execute":
		execute = true
	default:
		return Action{}, false, fmt.Errorf("%w: %q", core.ErrUnknownCommand, cmd.Verb)
	}

	if err := cmd.ExpectArgs(2); err != nil {
		return Action{}, false, err
	}
	dir, err := ParseDirection(cmd.Args[0])
	if err != nil {
		return Action{}, false, fmt.Errorf("%w: %v", core.ErrBadArguments, err)
	}
	x, y, err := core.ParsePair(cmd.Args[1])
	if err != nil {
		return Action{}, false, err
	}
	return Action{Direction: dir, Position: P(x, y)}, execute, nil
}

// Apply plans or executes one action. On ErrLogInteraction the state is still
// replaced, since planning on a log records the plan.
func (p *Puzzle) Apply(cmd core.Command) error {
	action, execute, err := ActionFromCommand(cmd)
	if err != nil {
		return err
	}

	step := PlanAction
	if execute {
		step = ExecuteAction
	}

	next, err := step(p.game, action)
	if err != nil && !core.IsUnsupported(err) {
		return err
	}
	p.game = next
	p.moves++
	return err
}

// Present renders the board, including any pending plan.
func (p *Puzzle) Present() string {
	return PresentPlan(p.game)
}

// State returns the current game state. The puzzle counts as solved once
// every tree has been chopped.
func (p *Puzzle) State() core.GameState {
	return core.GameState{
		Score:  p.game.Score,
		Moves:  p.moves,
		Solved: len(p.game.Grid) > 0 && p.game.TreeCount() == 0,
	}
}
