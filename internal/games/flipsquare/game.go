package flipsquare

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/puzzlebox/internal/core"
	"github.com/vovakirdan/puzzlebox/internal/registry"
)

// Game adapts a Square to the registry.Game interface.
type Game struct {
	square *Square
	moves  int
	on     rune
	off    rune
}

// New creates a flip-square game starting on the solved board.
func New() *Game {
	return &Game{
		square: NewSquare(SolvedGrid()),
		on:     'x',
		off:    'o',
	}
}

func init() {
	registry.Register("flipsquare", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "flipsquare"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flip Square"
}

// Reset starts over from cfg.Board, or from the solved board if it is empty.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	on, off := 'x', 'o'
	if cfg.OnRune != 0 && cfg.OffRune != 0 {
		on, off = cfg.OnRune, cfg.OffRune
	}
	if on == off {
		return fmt.Errorf("flipsquare: on and off runes are both %q", on)
	}

	grid := SolvedGrid()
	if strings.TrimSpace(cfg.Board) != "" {
		parsed, err := ParseString(on, off, cfg.Board)
		if err != nil {
			return err
		}
		grid = parsed
	}

	g.on, g.off = on, off
	g.square = NewSquare(grid)
	g.moves = 0
	return nil
}

// Apply parses cmd into an Action and reduces the square with it.
func (g *Game) Apply(cmd core.Command) error {
	action, err := ActionFromCommand(cmd, g.on, g.off)
	if err != nil {
		return err
	}
	g.square = Reduce(g.square, action)
	g.moves++
	return nil
}

// Square returns the current square.
func (g *Game) Square() *Square {
	return g.square
}

// Present renders the board followed by the solver hint.
func (g *Game) Present() string {
	var sb strings.Builder
	sb.WriteString(g.square.String())
	sb.WriteByte('\n')
	switch {
	case g.square.Solved():
		sb.WriteString("Solved!")
	case !g.square.Solvable():
		sb.WriteString("Hint: no solution found")
	default:
		sb.WriteString("Hint: flip " + PresentCoordinates(g.square.SolutionCoordinates()))
	}
	return sb.String()
}

// State returns the current game state. Score is the number of lit cells.
func (g *Game) State() core.GameState {
	lit := 0
	for _, cell := range g.square.Grid() {
		if cell == On {
			lit++
		}
	}
	return core.GameState{
		Score:  lit,
		Moves:  g.moves,
		Solved: g.square.Solved(),
	}
}
