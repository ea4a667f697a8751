// Package session drives a registered game with a sequence of commands,
// logging each outcome and keeping a history of what was played.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/puzzlebox/internal/core"
	"github.com/vovakirdan/puzzlebox/internal/registry"
)

// ErrNotStarted is returned when commands are applied before Start.
var ErrNotStarted = errors.New("session: not started")

// Entry records one applied command and its outcome.
type Entry struct {
	Command core.Command
	Err     error
	State   core.GameState
}

// Unsupported reports whether the entry was an unsupported action.
func (e Entry) Unsupported() bool {
	return core.IsUnsupported(e.Err)
}

// Session runs a single game instance.
type Session struct {
	game    registry.Game
	logger  *log.Logger
	history []Entry
	started bool
}

// New creates a session for game. A nil logger discards all output.
func New(game registry.Game, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:   game,
		logger: logger.With("game", game.ID()),
	}
}

// Start resets the game from cfg and clears the history.
func (s *Session) Start(cfg core.RuntimeConfig) error {
	if err := s.game.Reset(cfg); err != nil {
		s.logger.Error("reset failed", "err", err)
		return fmt.Errorf("%s: %w", s.game.ID(), err)
	}
	s.history = s.history[:0]
	s.started = true
	s.logger.Debug("started", "state", s.game.State())
	return nil
}

// Apply performs one command. Unsupported actions are logged as warnings and
// returned, but the game carries on from its new state.
func (s *Session) Apply(cmd core.Command) error {
	if !s.started {
		return ErrNotStarted
	}

	err := s.game.Apply(cmd)
	state := s.game.State()

	switch {
	case err == nil:
		s.logger.Debug("applied", "cmd", cmd.String(), "score", state.Score, "moves", state.Moves)
	case core.IsUnsupported(err):
		s.logger.Warn("unsupported action", "cmd", cmd.String(), "err", err)
	default:
		s.logger.Error("command failed", "cmd", cmd.String(), "err", err)
	}

	s.history = append(s.history, Entry{Command: cmd, Err: err, State: state})
	return err
}

// Replay applies cmds in order. Unsupported actions do not stop the replay;
// any other error does. It returns how many commands were applied.
func (s *Session) Replay(cmds []core.Command) (int, error) {
	for i, cmd := range cmds {
		err := s.Apply(cmd)
		if err != nil && !core.IsUnsupported(err) {
			return i, fmt.Errorf("command %d (%s): %w", i+1, cmd, err)
		}
	}
	if state := s.game.State(); state.Solved {
		s.logger.Info("solved", "moves", state.Moves, "score", state.Score)
	}
	return len(cmds), nil
}

// ReplayLines parses and replays textual commands.
func (s *Session) ReplayLines(lines []string) (int, error) {
	cmds, err := core.ParseCommands(lines)
	if err != nil {
		return 0, err
	}
	return s.Replay(cmds)
}

// History returns a copy of the applied commands.
func (s *Session) History() []Entry {
	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}

// Game returns the underlying game.
func (s *Session) Game() registry.Game {
	return s.game
}

// Present returns the game's current rendering.
func (s *Session) Present() string {
	return s.game.Present()
}
