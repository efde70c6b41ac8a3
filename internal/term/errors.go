package term

import "errors"

var (
	// ErrShellNotFound means the configured shell is not on PATH.
	ErrShellNotFound = errors.New("shell not found")

	// ErrSessionClosed means the session's process has exited.
	ErrSessionClosed = errors.New("terminal session closed")

	// ErrNoFloat means no floating surface exists to receive text.
	ErrNoFloat = errors.New("no floating terminal")

	// ErrManagerClosed means the manager has been shut down.
	ErrManagerClosed = errors.New("terminal manager closed")
)
