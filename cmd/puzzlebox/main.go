// puzzlebox runs small turn-based grid puzzles from the command line.
//
// Usage:
//
//	puzzlebox list                              - List available puzzles
//	puzzlebox show <game>                       - Print a puzzle's starting board
//	puzzlebox flipsquare solve <board>          - Print the flips that solve a board
//	puzzlebox flipsquare play <action>...       - Apply actions to a Flip Square board
//	puzzlebox lumberjack play <action>...       - Apply actions to a Lumberjack board
//
// Global flags:
//
//	--config <path>  - Game config YAML (default: ~/.puzzlebox/configs/<game>.yaml)
//	--verbose        - Log every action at debug level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/puzzlebox/internal/games/flipsquare"
	_ "github.com/vovakirdan/puzzlebox/internal/games/lumberjack"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzlebox",
	Short: "Puzzle Box - turn-based grid puzzles in your terminal",
	Long: `Puzzle Box is a collection of small turn-based grid puzzles.
Each command prints the board after applying the given actions.

Available commands:
  list        - Show all available puzzles
  show        - Print a puzzle's starting board
  flipsquare  - Solve or play Flip Square
  lumberjack  - Play Lumberjack

Examples:
  puzzlebox list
  puzzlebox flipsquare solve xoo/oxo/oox
  puzzlebox lumberjack play --seed test "chop W 2,0"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every action")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(flipsquareCmd)
	rootCmd.AddCommand(lumberjackCmd)
}

// newLogger returns the stderr logger shared by all subcommands.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "puzzlebox",
		Level:           level,
	})
}
