package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/puzzlebox/internal/config"
	"github.com/vovakirdan/puzzlebox/internal/core"
	"github.com/vovakirdan/puzzlebox/internal/registry"
	"github.com/vovakirdan/puzzlebox/internal/session"
)

var showCmd = &cobra.Command{
	Use:   "show <game>",
	Short: "Print a puzzle's starting board",
	Long: `Builds the puzzle from its config and prints the starting board.

Examples:
  puzzlebox show lumberjack
  puzzlebox show flipsquare --config ./my-flipsquare.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'puzzlebox list' to see available games)", gameID)
	}

	cfg, err := loadRuntimeConfig(gameID)
	if err != nil {
		return err
	}
	return playLines(cmd, gameID, cfg, nil)
}

// loadRuntimeConfig reads the YAML config for gameID.
func loadRuntimeConfig(gameID string) (core.RuntimeConfig, error) {
	switch gameID {
	case "lumberjack":
		cfg, err := config.LoadLumberjack(flagConfig)
		if err != nil {
			return core.RuntimeConfig{}, err
		}
		return cfg.Runtime(), nil
	case "flipsquare":
		cfg, err := config.LoadFlipSquare(flagConfig)
		if err != nil {
			return core.RuntimeConfig{}, err
		}
		return cfg.Runtime(), nil
	default:
		return core.DefaultConfig(), nil
	}
}

// playLines starts gameID from cfg, replays the textual actions and prints the
// final board.
func playLines(cmd *cobra.Command, gameID string, cfg core.RuntimeConfig, lines []string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	s := session.New(game, newLogger())
	if err := s.Start(cfg); err != nil {
		return err
	}
	_, replayErr := s.ReplayLines(lines)

	fmt.Fprintln(cmd.OutOrStdout(), s.Present())
	return replayErr
}
