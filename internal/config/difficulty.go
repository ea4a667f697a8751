package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. Empty means fixed.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// TreeDensityForPreset returns the fraction of cells that hold a tree.
// Returns 0 for presets that keep the configured tree count.
func TreeDensityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.15
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.5
	default:
		return 0
	}
}

// ApplyLumberjackPreset sets the tree count and heights for a difficulty preset.
// Fewer, shorter trees are easier to lay out without crushing each other.
func ApplyLumberjackPreset(cfg *LumberjackConfig, preset DifficultyPreset) {
	density := TreeDensityForPreset(preset)
	if density == 0 {
		return
	}

	cells := cfg.Board.Width * cfg.Board.Height
	cfg.Board.Trees = clamp(int(math.Round(density*float64(cells))), 0, cells)

	switch preset {
	case DifficultyEasy:
		cfg.Tree.MinHeight, cfg.Tree.MaxHeight = 2, 3
	case DifficultyNormal:
		cfg.Tree.MinHeight, cfg.Tree.MaxHeight = 2, 6
	case DifficultyHard:
		cfg.Tree.MinHeight, cfg.Tree.MaxHeight = 4, 8
	}
}

// clamp restricts an int to [min, max].
func clamp(val, min, max int) int {
	return int(math.Max(float64(min), math.Min(float64(max), float64(val))))
}
