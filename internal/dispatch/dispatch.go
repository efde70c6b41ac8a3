// Package dispatch routes resolved keymap actions to their handlers.
// Callback actions run directly; command actions are looked up in a
// name-to-handler table. Like the keymap registry, the table is
// last-registration-wins per command name.
package dispatch

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/keyrig/internal/input/keymap"
)

// HandlerFunc executes one command.
type HandlerFunc func() error

// Dispatcher maps command names to handlers and executes actions.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]HandlerFunc)}
}

// Register installs a handler for a command name, replacing any
// earlier registration.
func (d *Dispatcher) Register(name string, h HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = h
}

// Has returns true if a handler is registered for the command.
func (d *Dispatcher) Has(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.handlers[name]
	return ok
}

// Commands returns the registered command names, sorted.
func (d *Dispatcher) Commands() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs an action. Command actions without a handler return
// ErrNoHandler so the caller can fall through to default behavior.
func (d *Dispatcher) Execute(a keymap.Action) error {
	switch a.Kind {
	case keymap.ActionFunc:
		if a.Fn == nil {
			return fmt.Errorf("callback action with nil function")
		}
		return a.Fn()
	case keymap.ActionCommand:
		d.mu.RLock()
		h, ok := d.handlers[a.Command]
		d.mu.RUnlock()
		if !ok {
			return fmt.Errorf("%w: %s", ErrNoHandler, a.Command)
		}
		return h()
	default:
		return fmt.Errorf("%w: empty action", ErrNoHandler)
	}
}
