package flipsquare

import (
	"errors"
	"testing"

	"github.com/vovakirdan/puzzlebox/internal/core"
	"github.com/vovakirdan/puzzlebox/internal/registry"
)

func apply(t *testing.T, g *Game, line string) error {
	t.Helper()
	cmd, err := core.ParseCommand(line)
	if err != nil {
		t.Fatalf("ParseCommand(%q): %v", line, err)
	}
	return g.Apply(cmd)
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("flipsquare") {
		t.Fatal("flipsquare is not registered")
	}
	g, err := registry.Create("flipsquare")
	if err != nil {
		t.Fatalf("registry.Create: %v", err)
	}
	if g.Title() != "Flip Square" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGamePresent(t *testing.T) {
	g := New()
	if got := g.Present(); got != "xxx\nxxx\nxxx\nSolved!" {
		t.Errorf("Present() = %q", got)
	}

	if err := apply(t, g, "flip 1,1"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	expected := "xox\nooo\nxox\nHint: flip (1, 1)"
	if got := g.Present(); got != expected {
		t.Errorf("Present() = %q, want %q", got, expected)
	}

	state := g.State()
	if state.Solved || state.Moves != 1 || state.Score != 4 {
		t.Errorf("State() = %+v", state)
	}
}

func TestGameResetFromBoard(t *testing.T) {
	g := New()
	cfg := core.DefaultConfig()
	cfg.Board = "#.# ... ###"
	cfg.OnRune, cfg.OffRune = '#', '.'

	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if g.Square().String() != "xox\nooo\nxxx" {
		t.Errorf("board after reset:\n%s", g.Square())
	}

	// "set" uses the configured runes too.
	if err := apply(t, g, "set ### ### ###"); err != nil {
		t.Fatalf("Apply(set): %v", err)
	}
	if !g.State().Solved {
		t.Error("board should be solved after set")
	}
}

func TestGameResetErrors(t *testing.T) {
	g := New()
	cfg := core.DefaultConfig()
	cfg.Board = "xx"
	if err := g.Reset(cfg); !errors.Is(err, ErrMalformedBoard) {
		t.Errorf("Reset with short board error = %v, want ErrMalformedBoard", err)
	}

	cfg.Board = ""
	cfg.OnRune, cfg.OffRune = 'x', 'x'
	if err := g.Reset(cfg); err == nil {
		t.Error("Reset with identical runes should fail")
	}
}

func TestGameSolveByHints(t *testing.T) {
	g := New()
	for _, line := range []string{"flip 0,0", "flip 2,1", "toggle 1,2"} {
		if err := apply(t, g, line); err != nil {
			t.Fatalf("Apply(%q): %v", line, err)
		}
	}

	for _, c := range g.Square().SolutionCoordinates() {
		g.square = Reduce(g.square, Flip{At: c})
	}
	if !g.State().Solved {
		t.Errorf("following the hint did not solve the board:\n%s", g.Square())
	}
}
