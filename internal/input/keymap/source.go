package keymap

// Source is one declarative table of bindings, scoped to a mode.
// Typical sources: the stock defaults, the user's config file, a Lua
// script. Sources registered later override earlier ones for identical
// mode+chord.
type Source struct {
	// Name identifies where the bindings came from, e.g. "default",
	// "config", "lua:review.lua".
	Name string

	// Mode is the input mode the bindings apply to.
	Mode string

	// Bindings are the chord-to-action entries, in declaration order.
	Bindings []Binding
}

// NewSource creates an empty source.
func NewSource(name string) *Source {
	return &Source{Name: name, Bindings: make([]Binding, 0)}
}

// ForMode sets the mode for this source.
func (s *Source) ForMode(mode string) *Source {
	s.Mode = mode
	return s
}

// Add appends a command binding.
func (s *Source) Add(chord, command string) *Source {
	s.Bindings = append(s.Bindings, NewBinding(chord, command))
	return s
}

// AddBinding appends a fully configured binding.
func (s *Source) AddBinding(b Binding) *Source {
	s.Bindings = append(s.Bindings, b)
	return s
}
