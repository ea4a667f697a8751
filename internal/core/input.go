package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyCommand is returned when a command has no verb.
	ErrEmptyCommand = errors.New("empty command")
	// ErrUnknownCommand is returned when a game does not understand a verb.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrBadArguments is returned when a command's arguments cannot be parsed.
	ErrBadArguments = errors.New("bad arguments")
	// ErrUnsupportedAction marks an action the game recognises but does not
	// implement. The game state stays valid; shells should report it and go on.
	ErrUnsupportedAction = errors.New("unsupported action")
)

// Command represents a semantic player action, abstracted from how the shell
// received it (command line, script, test). Verbs are lower-case.
type Command struct {
	Verb string
	Args []string
}

// ParseCommand splits a line like "flip 1,2" into a Command.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}
	return Command{
		Verb: strings.ToLower(fields[0]),
		Args: fields[1:],
	}, nil
}

// ParseCommands parses each line into a Command, stopping at the first error.
func ParseCommands(lines []string) ([]Command, error) {
	cmds := make([]Command, 0, len(lines))
	for i, line := range lines {
		cmd, err := ParseCommand(line)
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// String returns the command in its textual form.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Verb
	}
	return c.Verb + " " + strings.Join(c.Args, " ")
}

// IsUnsupported reports whether err marks an unsupported action.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedAction)
}

// ExpectArgs returns ErrBadArguments unless the command has exactly n arguments.
func (c Command) ExpectArgs(n int) error {
	if len(c.Args) != n {
		return fmt.Errorf("%w: %q takes %d argument(s), got %d", ErrBadArguments, c.Verb, n, len(c.Args))
	}
	return nil
}

// ParsePair parses "x,y" into two integers.
func ParsePair(s string) (int, int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q is not an x,y pair", ErrBadArguments, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadArguments, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadArguments, s, err)
	}
	return x, y, nil
}

// ParseInt parses a single integer argument.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadArguments, s, err)
	}
	return n, nil
}
