// Package mode tracks the editor input mode. Modes scope which chords
// are active; the input loop asks the manager for the current mode name
// before resolving a sequence.
package mode

// Mode is an editor input context.
type Mode string

const (
	Normal   Mode = "normal"
	Insert   Mode = "insert"
	Visual   Mode = "visual"
	Command  Mode = "command"
	Terminal Mode = "terminal"
)

// Known returns true for a recognized mode.
func Known(m Mode) bool {
	switch m {
	case Normal, Insert, Visual, Command, Terminal:
		return true
	}
	return false
}

// DisplayName returns the status-line label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Visual:
		return "VISUAL"
	case Command:
		return "COMMAND"
	case Terminal:
		return "TERMINAL"
	default:
		return string(m)
	}
}
