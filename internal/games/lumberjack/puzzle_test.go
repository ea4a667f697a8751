package lumberjack

import (
	"errors"
	"testing"

	"github.com/vovakirdan/puzzlebox/internal/core"
	"github.com/vovakirdan/puzzlebox/internal/registry"
)

func newPuzzle(t *testing.T) *Puzzle {
	t.Helper()
	p := New()
	cfg := core.DefaultConfig()
	cfg.Seed, cfg.Width, cfg.Height, cfg.Trees = "42", 3, 3, 3
	if err := p.Reset(cfg); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return p
}

func mustApply(t *testing.T, p *Puzzle, line string) error {
	t.Helper()
	cmd, err := core.ParseCommand(line)
	if err != nil {
		t.Fatalf("ParseCommand(%q): %v", line, err)
	}
	return p.Apply(cmd)
}

func TestPuzzleRegistered(t *testing.T) {
	g, err := registry.Create("lumberjack")
	if err != nil {
		t.Fatalf("registry.Create: %v", err)
	}
	if g.ID() != "lumberjack" || g.Title() != "Lumberjack" {
		t.Errorf("ID, Title = %q, %q", g.ID(), g.Title())
	}
}

func TestPuzzlePlanAndChop(t *testing.T) {
	p := newPuzzle(t)

	// Seed 42: trees at (0,1) h5, (0,2) h5, (1,2) h2.
	if err := mustApply(t, p, "plan E 1,2"); err != nil {
		t.Fatalf("plan: %v", err)
	}
	expected := "Score: 0\n5.<\n5..\n...\nPlan: E (1, 2), 1 log segment(s)"
	if got := p.Present(); got != expected {
		t.Errorf("Present after plan:\n%s\nwant\n%s", got, expected)
	}

	if err := mustApply(t, p, "chop S 0,2"); err != nil {
		t.Fatalf("chop: %v", err)
	}
	// The tree falls onto the tree below it and the rest rolls off the board.
	expected = "Score: 2\n.2.\n^..\n|.."
	if got := p.Present(); got != expected {
		t.Errorf("Present after chop:\n%s\nwant\n%s", got, expected)
	}

	state := p.State()
	if state.Score != 2 || state.Moves != 2 || state.Solved {
		t.Errorf("State() = %+v", state)
	}
}

func TestPuzzleLogIsUnsupported(t *testing.T) {
	p := newPuzzle(t)
	if err := mustApply(t, p, "chop E 1,2"); err != nil {
		t.Fatalf("chop: %v", err)
	}

	err := mustApply(t, p, "plan N 2,2")
	if !core.IsUnsupported(err) {
		t.Fatalf("plan on a log error = %v, want unsupported", err)
	}
	if p.Game().Plan == nil {
		t.Error("plan on a log should still be recorded")
	}
	if p.State().Moves != 2 {
		t.Errorf("Moves = %d, want 2", p.State().Moves)
	}
}

func TestPuzzleErrors(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"chop N 5,5", ErrOutOfBounds},
		{"chop up 0,0", core.ErrBadArguments},
		{"chop N", core.ErrBadArguments},
		{"chop N 1;1", core.ErrBadArguments},
		{"dance", core.ErrUnknownCommand},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			p := newPuzzle(t)
			before := Present(p.Game())
			if err := mustApply(t, p, tc.line); !errors.Is(err, tc.err) {
				t.Errorf("error = %v, want %v", err, tc.err)
			}
			if Present(p.Game()) != before || p.State().Moves != 0 {
				t.Error("failed command changed the game")
			}
		})
	}
}

func TestPuzzleSolvedWhenNoTrees(t *testing.T) {
	p := New()
	cfg := core.DefaultConfig()
	cfg.Seed, cfg.Width, cfg.Height, cfg.Trees = "x", 2, 2, 0
	if err := p.Reset(cfg); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !p.State().Solved {
		t.Error("board without trees should count as solved")
	}
}

func TestPuzzleResetInvalid(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Width = 0
	if err := New().Reset(cfg); !errors.Is(err, ErrInvalidInit) {
		t.Errorf("Reset error = %v, want ErrInvalidInit", err)
	}
}
