package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/vovakirdan/puzzlebox/internal/games/flipsquare"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsBothPuzzles(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"flipsquare", "Flip Square", "lumberjack", "Lumberjack"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestFlipSquareSolve(t *testing.T) {
	tests := []struct {
		board string
		want  string
	}{
		{"xxx/xxx/xxx", "xxx\nxxx\nxxx\nAlready solved.\n"},
		{"xox/ooo/xox", "xox\nooo\nxox\nSolution (1 flips): (1, 1)\n"},
	}

	for _, tc := range tests {
		t.Run(tc.board, func(t *testing.T) {
			out, err := execute(t, "flipsquare", "solve", tc.board)
			if err != nil {
				t.Fatalf("solve: %v", err)
			}
			if out != tc.want {
				t.Errorf("output = %q, want %q", out, tc.want)
			}
		})
	}
}

func TestFlipSquareSolveMalformed(t *testing.T) {
	_, err := execute(t, "flipsquare", "solve", "xox")
	if !errors.Is(err, flipsquare.ErrMalformedBoard) {
		t.Errorf("error = %v, want ErrMalformedBoard", err)
	}
}

func TestLumberjackPlay(t *testing.T) {
	out, err := execute(t, "lumberjack", "play",
		"--seed", "42", "--width", "3", "--height", "3", "--trees", "3",
		"chop E 1,2")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	want := "Score: 1\n5.<\n5..\n...\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestShowUnknownGame(t *testing.T) {
	if _, err := execute(t, "show", "tetris"); err == nil {
		t.Error("show of an unknown game should fail")
	}
}
