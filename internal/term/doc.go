// Package term owns the floating review terminal.
//
// Manager hosts PTY-backed shell sessions and tracks the floating
// surface's visibility. Controller sits on top of the Host capability
// interface and implements the toggle-and-bootstrap rule: the first
// toggle that creates a terminal handle also types the configured
// review command into it, exactly once per handle. Every later toggle
// only flips visibility.
//
// The controller decides when to bootstrap by reading the handle count
// before toggling, not by trusting its own flag. Handle lifetime is
// owned by the manager, so the count stays correct even if the
// controller is rebuilt on a config reload while the terminal survives.
package term
