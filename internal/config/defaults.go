package config

import (
	_ "embed"
)

//go:embed defaults/lumberjack.yaml
var defaultLumberjackYAML []byte

//go:embed defaults/flipsquare.yaml
var defaultFlipSquareYAML []byte

// DefaultLumberjackConfig returns the default Lumberjack configuration.
func DefaultLumberjackConfig() LumberjackConfig {
	return LumberjackConfig{
		Board: LumberjackBoard{
			Seed:   "42",
			Width:  10,
			Height: 10,
			Trees:  30,
		},
		Tree: LumberjackTree{
			MinHeight: 2,
			MaxHeight: 6,
		},
	}
}

// DefaultFlipSquareConfig returns the default Flip Square configuration.
func DefaultFlipSquareConfig() FlipSquareConfig {
	return FlipSquareConfig{
		Board: "",
		On:    "x",
		Off:   "o",
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "lumberjack":
		return defaultLumberjackYAML
	case "flipsquare":
		return defaultFlipSquareYAML
	default:
		return nil
	}
}
