package keymap

// ActionKind discriminates the two forms a binding's action can take.
type ActionKind uint8

const (
	// ActionNone is the zero value; it resolves nothing.
	ActionNone ActionKind = iota

	// ActionCommand is a named host command routed through the dispatcher.
	ActionCommand

	// ActionFunc is a zero-argument callback invoked directly.
	ActionFunc
)

// Action is the target of a binding: either a literal command name or a
// callback. Both forms are dispatched uniformly by the dispatcher.
type Action struct {
	Kind    ActionKind
	Command string
	Fn      func() error
}

// Command creates a literal-command action.
func Command(name string) Action {
	return Action{Kind: ActionCommand, Command: name}
}

// Func creates a callback action.
func Func(fn func() error) Action {
	return Action{Kind: ActionFunc, Fn: fn}
}

// IsZero returns true for the empty action.
func (a Action) IsZero() bool {
	return a.Kind == ActionNone
}

// String returns a display form for logs and the cheatsheet.
func (a Action) String() string {
	switch a.Kind {
	case ActionCommand:
		return a.Command
	case ActionFunc:
		return "<callback>"
	default:
		return ""
	}
}

// Binding maps one chord to an action within a source's mode.
type Binding struct {
	// Chord is the key sequence in Vim notation, e.g. "<leader>i".
	Chord string

	// Action is executed when the chord is resolved.
	Action Action

	// Description labels the binding in discoverability UIs. It has no
	// effect on dispatch.
	Description string

	// Guard names a capability that must be present for the binding to
	// be registered. Empty means unguarded.
	Guard string
}

// NewBinding creates a binding for a literal command.
func NewBinding(chord, command string) Binding {
	return Binding{Chord: chord, Action: Command(command)}
}

// NewFuncBinding creates a binding for a callback.
func NewFuncBinding(chord string, fn func() error) Binding {
	return Binding{Chord: chord, Action: Func(fn)}
}

// WithDescription sets the description.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithGuard sets the guarding capability name.
func (b Binding) WithGuard(capability string) Binding {
	b.Guard = capability
	return b
}
