package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLumberjack loads and validates Lumberjack configuration.
// Search order: customPath -> ~/.puzzlebox/configs/lumberjack.yaml -> ./configs/lumberjack.yaml -> embedded default
func LoadLumberjack(customPath string) (LumberjackConfig, error) {
	cfg, err := load("lumberjack", customPath, DefaultLumberjackConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFlipSquare loads and validates Flip Square configuration.
// Search order: customPath -> ~/.puzzlebox/configs/flipsquare.yaml -> ./configs/flipsquare.yaml -> embedded default
func LoadFlipSquare(customPath string) (FlipSquareConfig, error) {
	cfg, err := load("flipsquare", customPath, DefaultFlipSquareConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load reads a game's YAML config on top of fallback. Fields missing from the
// file keep their fallback values. Only an explicit customPath may fail; the
// other locations are skipped when missing or unreadable.
func load[T any](gameID, customPath string, fallback T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := fallback
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puzzlebox", "configs", filename)
}
