package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/puzzlebox/internal/games/flipsquare"
)

var flagBoard string

var flipsquareCmd = &cobra.Command{
	Use:   "flipsquare",
	Short: "Solve or play Flip Square",
	Long: `Flip Square is a 3x3 board of lit and unlit cells. Flipping a cell
toggles it and its orthogonal neighbours. The board is solved when every
cell is lit.

Boards are written top row first with 'x' for lit and 'o' for unlit.
Any other characters are ignored, so "xoo/oxo/oox" is a valid board.`,
}

var flipsquareSolveCmd = &cobra.Command{
	Use:   "solve <board>",
	Short: "Print the shortest sequence of flips that solves a board",
	Long: `Searches for the shortest sequence of flips that lights every cell.

Examples:
  puzzlebox flipsquare solve xoo/oxo/oox
  puzzlebox flipsquare solve "ooo ooo ooo"`,
	Args: cobra.ExactArgs(1),
	RunE: runFlipSquareSolve,
}

var flipsquarePlayCmd = &cobra.Command{
	Use:   "play <action>...",
	Short: "Apply actions to a board and print the result",
	Long: `Applies each action in order and prints the board with a hint.

Actions:
  flip x,y     - Flip a cell and its neighbours
  toggle x,y   - Toggle a single cell
  row y        - Flip every cell in a row
  column x     - Flip every cell in a column
  set <board>  - Replace the board
  reset        - Return to the solved board

Coordinates run from (0, 0) bottom-left to (2, 2) top-right.

Examples:
  puzzlebox flipsquare play --board xoo/oxo/oox "flip 0,0"
  puzzlebox flipsquare play "flip 1,1" "toggle 0,2"`,
	RunE: runFlipSquarePlay,
}

func init() {
	flipsquarePlayCmd.Flags().StringVar(&flagBoard, "board", "", "Starting board (default: from config)")

	flipsquareCmd.AddCommand(flipsquareSolveCmd)
	flipsquareCmd.AddCommand(flipsquarePlayCmd)
}

func runFlipSquareSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntimeConfig("flipsquare")
	if err != nil {
		return err
	}

	grid, err := flipsquare.ParseString(cfg.OnRune, cfg.OffRune, args[0])
	if err != nil {
		return err
	}

	square := flipsquare.NewSquare(grid)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, square.String())

	switch {
	case square.Solved():
		fmt.Fprintln(out, "Already solved.")
	case !square.Solvable():
		return fmt.Errorf("flipsquare: no solution for %q", args[0])
	default:
		coords := square.SolutionCoordinates()
		fmt.Fprintf(out, "Solution (%d flips): %s\n", len(coords), flipsquare.PresentCoordinates(coords))
	}
	return nil
}

func runFlipSquarePlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntimeConfig("flipsquare")
	if err != nil {
		return err
	}
	if strings.TrimSpace(flagBoard) != "" {
		cfg.Board = flagBoard
	}
	return playLines(cmd, "flipsquare", cfg, args)
}
