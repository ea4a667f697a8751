package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/puzzlebox/internal/config"
)

var (
	flagSeed       string
	flagWidth      int
	flagHeight     int
	flagTrees      int
	flagDifficulty string
)

var lumberjackCmd = &cobra.Command{
	Use:   "lumberjack",
	Short: "Play Lumberjack",
	Long: `Lumberjack is a board of trees generated from a seed. Chopping a tree
fells it in a direction, laying a log across the board. Every log segment
on the board scores a point.`,
}

var lumberjackPlayCmd = &cobra.Command{
	Use:   "play <action>...",
	Short: "Apply actions to a board and print the result",
	Long: `Generates a board from the seed and applies each action in order.

Actions:
  plan D x,y   - Preview chopping the tree at x,y in direction D
  chop D x,y   - Chop the tree at x,y in direction D

Directions are N, S, E or W. (0, 0) is the bottom-left corner.

Difficulty options:
  easy   - Few short trees
  normal - Config's heights with 30% of cells planted
  hard   - Many tall trees
  fixed  - Keep the config's tree count and heights

Examples:
  puzzlebox lumberjack play
  puzzlebox lumberjack play --seed test "plan W 2,0" "chop W 2,0"
  puzzlebox lumberjack play --difficulty hard --width 6 --height 6`,
	RunE: runLumberjackPlay,
}

func init() {
	flags := lumberjackPlayCmd.Flags()
	flags.StringVar(&flagSeed, "seed", "", "Board seed (default: from config)")
	flags.IntVar(&flagWidth, "width", 0, "Board width (default: from config)")
	flags.IntVar(&flagHeight, "height", 0, "Board height (default: from config)")
	flags.IntVar(&flagTrees, "trees", -1, "Number of trees (default: from config)")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	lumberjackCmd.AddCommand(lumberjackPlayCmd)
}

func runLumberjackPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadLumberjack(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	// Flags override the config file
	if cmd.Flags().Changed("seed") {
		cfg.Board.Seed = flagSeed
	}
	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}
	config.ApplyLumberjackPreset(&cfg, preset)
	if flagTrees >= 0 {
		cfg.Board.Trees = flagTrees
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return playLines(cmd, "lumberjack", cfg.Runtime(), args)
}
