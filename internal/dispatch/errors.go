package dispatch

import "errors"

// ErrNoHandler is returned when no handler is registered for a command.
// Callers treat it as "no binding" and fall through.
var ErrNoHandler = errors.New("no handler for command")
