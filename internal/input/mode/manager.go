package mode

import (
	"fmt"
	"sync"
)

// ChangeCallback is notified after the mode changes.
type ChangeCallback func(from, to Mode)

// Manager tracks the current and previous mode and notifies observers
// on transitions.
type Manager struct {
	mu        sync.RWMutex
	current   Mode
	previous  Mode
	callbacks []ChangeCallback
}

// NewManager creates a manager starting in normal mode.
func NewManager() *Manager {
	return &Manager{current: Normal}
}

// Current returns the active mode.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Previous returns the mode before the last transition.
func (m *Manager) Previous() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.previous
}

// Set transitions to the named mode. Unknown modes are an error;
// transitioning to the current mode is a no-op.
func (m *Manager) Set(to Mode) error {
	if !Known(to) {
		return fmt.Errorf("unknown mode: %q", to)
	}

	m.mu.Lock()
	if to == m.current {
		m.mu.Unlock()
		return nil
	}
	from := m.current
	m.previous = from
	m.current = to
	callbacks := make([]ChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(from, to)
	}
	return nil
}

// OnChange registers a transition observer.
func (m *Manager) OnChange(cb ChangeCallback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}
