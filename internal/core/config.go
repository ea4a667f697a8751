package core

// RuntimeConfig contains configuration passed to games at Reset.
// Games read only the fields they need; zero values mean "use the game default".
type RuntimeConfig struct {
	Seed   string // Seed string for deterministic generation
	Width  int    // Board width in cells
	Height int    // Board height in cells

	Trees         int // Number of trees to place (lumberjack)
	TreeHeightMin int // Shortest tree, inclusive (lumberjack)
	TreeHeightMax int // Tallest tree, inclusive (lumberjack)

	Board   string // Initial board text (flip-square)
	OnRune  rune   // Rune for an on cell in board text (flip-square)
	OffRune rune   // Rune for an off cell in board text (flip-square)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:          "42",
		Width:         10,
		Height:        10,
		Trees:         30,
		TreeHeightMin: 2,
		TreeHeightMax: 6,
		OnRune:        'x',
		OffRune:       'o',
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the shell.
type GameState struct {
	Score  int  // Current score
	Moves  int  // Commands applied since the last reset
	Solved bool // Whether the puzzle is in its goal configuration
}
