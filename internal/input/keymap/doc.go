// Package keymap implements the declarative chord-to-action registry.
//
// Bindings are contributed in named Sources (stock defaults, the user's
// config file, Lua scripts). Sources are merged in registration order;
// within a mode the chord is the key and the last registration wins.
// A binding may carry a guard naming a capability: if the capability is
// not present at registration time the binding is skipped silently.
//
// The registry only resolves chords to actions. Executing an action is
// the dispatcher's job; the registry itself has no side effects.
package keymap
