// Package plugin provides extension capabilities and the Lua scripting
// host. Capabilities are presence flags ("git", "lsp", an installed
// external tool) consulted by guarded keymap bindings; scripts can both
// announce capabilities and contribute bindings.
package plugin

import (
	"os/exec"
	"sort"
	"sync"
)

// Capabilities tracks which named capabilities are present.
// It implements keymap.CapabilityChecker.
type Capabilities struct {
	mu  sync.RWMutex
	set map[string]bool
}

// NewCapabilities creates an empty capability set.
func NewCapabilities() *Capabilities {
	return &Capabilities{set: make(map[string]bool)}
}

// Provide announces a capability.
func (c *Capabilities) Provide(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set[name] = true
}

// ProvideIfInstalled announces a capability only when the named binary
// is on PATH. Returns whether it was announced.
func (c *Capabilities) ProvideIfInstalled(name, binary string) bool {
	if _, err := exec.LookPath(binary); err != nil {
		return false
	}
	c.Provide(name)
	return true
}

// Has returns true if the capability is present.
func (c *Capabilities) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set[name]
}

// List returns the present capabilities, sorted.
func (c *Capabilities) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.set))
	for name := range c.set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
