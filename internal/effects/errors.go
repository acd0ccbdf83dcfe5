package effects

import "errors"

var (
	// ErrEmptyCommand is returned when a built-in verb has no shell command
	// configured.
	ErrEmptyCommand = errors.New("empty shell command")

	// ErrCommandFailed wraps a non-zero exit or a start failure of a shell
	// command.
	ErrCommandFailed = errors.New("shell command failed")
)
