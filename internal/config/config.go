// Package config provides YAML-based game configuration loading and
// difficulty presets for the puzzle box.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/puzzlebox/internal/core"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("config: invalid")

// LumberjackConfig contains all configuration for the Lumberjack game.
type LumberjackConfig struct {
	Board LumberjackBoard `yaml:"board"`
	Tree  LumberjackTree  `yaml:"tree"`
}

// LumberjackBoard defines board generation parameters.
type LumberjackBoard struct {
	Seed   string `yaml:"seed"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Trees  int    `yaml:"trees"`
}

// LumberjackTree defines the tree height range, inclusive.
type LumberjackTree struct {
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
}

// FlipSquareConfig contains all configuration for the Flip Square game.
type FlipSquareConfig struct {
	Board string `yaml:"board"` // Starting board; empty means solved
	On    string `yaml:"on"`    // Single rune for an on cell
	Off   string `yaml:"off"`   // Single rune for an off cell
}

// Validate checks the config for impossible values.
func (c LumberjackConfig) Validate() error {
	b, tr := c.Board, c.Tree
	switch {
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: lumberjack board is %dx%d", ErrInvalidConfig, b.Width, b.Height)
	case b.Trees < 0 || b.Trees > b.Width*b.Height:
		return fmt.Errorf("%w: lumberjack wants %d trees on %d cells", ErrInvalidConfig, b.Trees, b.Width*b.Height)
	case tr.MinHeight < 1 || tr.MinHeight > tr.MaxHeight:
		return fmt.Errorf("%w: lumberjack tree heights [%d, %d]", ErrInvalidConfig, tr.MinHeight, tr.MaxHeight)
	}
	return nil
}

// Runtime converts the config into a core.RuntimeConfig.
func (c LumberjackConfig) Runtime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = c.Board.Seed
	cfg.Width = c.Board.Width
	cfg.Height = c.Board.Height
	cfg.Trees = c.Board.Trees
	cfg.TreeHeightMin = c.Tree.MinHeight
	cfg.TreeHeightMax = c.Tree.MaxHeight
	return cfg
}

// Validate checks that on and off are distinct single runes.
func (c FlipSquareConfig) Validate() error {
	if utf8.RuneCountInString(c.On) != 1 || utf8.RuneCountInString(c.Off) != 1 {
		return fmt.Errorf("%w: flipsquare on/off must be single characters, got %q/%q", ErrInvalidConfig, c.On, c.Off)
	}
	if c.On == c.Off {
		return fmt.Errorf("%w: flipsquare on and off are both %q", ErrInvalidConfig, c.On)
	}
	return nil
}

// Runtime converts the config into a core.RuntimeConfig.
// Call Validate first; invalid runes fall back to the defaults.
func (c FlipSquareConfig) Runtime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Board = c.Board
	if c.Validate() == nil {
		cfg.OnRune, _ = utf8.DecodeRuneInString(c.On)
		cfg.OffRune, _ = utf8.DecodeRuneInString(c.Off)
	}
	return cfg
}
