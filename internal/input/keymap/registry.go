package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/keyrig/internal/input/key"
)

// CapabilityChecker answers whether a named capability (an installed
// extension, an available external tool) is present. Guarded bindings
// are dropped at registration time when their capability is absent.
type CapabilityChecker interface {
	Has(capability string) bool
}

// allCapabilities is the checker used when none is configured: every
// guard is treated as met.
type allCapabilities struct{}

func (allCapabilities) Has(string) bool { return true }

// Registered is a binding as stored in the registry, with its parsed
// sequence and the source that contributed it.
type Registered struct {
	Binding
	Mode     string
	Source   string
	Sequence *key.Sequence
}

// Registry holds the merged chord-to-action table for all modes.
type Registry struct {
	mu      sync.RWMutex
	leader  key.Event
	checker CapabilityChecker

	// entries maps mode -> canonical chord -> binding. Last-wins merge
	// happens here: an insert simply overwrites.
	entries map[string]map[string]*Registered

	// trees maps mode -> prefix tree root, for pending-input detection.
	trees map[string]*node
}

type node struct {
	children map[string]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// NewRegistry creates an empty registry with the default leader and a
// checker that treats every capability as present.
func NewRegistry() *Registry {
	return &Registry{
		leader:  key.DefaultLeader,
		checker: allCapabilities{},
		entries: make(map[string]map[string]*Registered),
		trees:   make(map[string]*node),
	}
}

// SetLeader sets the event substituted for <leader> in chord text.
// Call before registering sources.
func (r *Registry) SetLeader(e key.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leader = e
}

// SetCapabilityChecker sets the checker consulted for guarded bindings.
// Call before registering sources; already-registered bindings are not
// re-evaluated.
func (r *Registry) SetCapabilityChecker(c CapabilityChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c == nil {
		c = allCapabilities{}
	}
	r.checker = c
}

// Register merges a source into the registry. Bindings are inserted in
// declaration order; within a mode an identical chord overwrites any
// earlier registration. A guarded binding whose capability is absent is
// skipped without error. Invalid chord text fails the whole source.
func (r *Registry) Register(src *Source) error {
	if src == nil {
		return fmt.Errorf("cannot register nil source")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range src.Bindings {
		if b.Guard != "" && !r.checker.Has(b.Guard) {
			continue
		}
		if b.Action.IsZero() {
			return fmt.Errorf("source %q: chord %q has no action", src.Name, b.Chord)
		}

		seq, err := key.ParseSequenceWithLeader(b.Chord, r.leader)
		if err != nil {
			return fmt.Errorf("source %q: chord %q: %w", src.Name, b.Chord, err)
		}

		r.insertLocked(src, b, seq)
	}

	return nil
}

// insertLocked stores one binding. Caller holds the write lock.
func (r *Registry) insertLocked(src *Source, b Binding, seq *key.Sequence) {
	mode := src.Mode

	byChord, ok := r.entries[mode]
	if !ok {
		byChord = make(map[string]*Registered)
		r.entries[mode] = byChord
	}
	byChord[seq.String()] = &Registered{
		Binding:  b,
		Mode:     mode,
		Source:   src.Name,
		Sequence: seq,
	}

	root, ok := r.trees[mode]
	if !ok {
		root = newNode()
		r.trees[mode] = root
	}
	for _, e := range seq.Events {
		k := e.String()
		child, ok := root.children[k]
		if !ok {
			child = newNode()
			root.children[k] = child
		}
		root = child
	}
	root.terminal = true
}

// Resolve looks up the action bound to a sequence in a mode. The second
// return value is false on a miss; a miss is not an error, it tells the
// host to fall through to its default handling.
func (r *Registry) Resolve(mode string, seq *key.Sequence) (Action, bool) {
	if seq == nil || seq.IsEmpty() {
		return Action{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if byChord, ok := r.entries[mode]; ok {
		if reg, ok := byChord[seq.String()]; ok {
			return reg.Action, true
		}
	}
	return Action{}, false
}

// ResolveChord parses chord text with the registry's leader and resolves
// it. Invalid chord text is a plain miss.
func (r *Registry) ResolveChord(mode, chord string) (Action, bool) {
	r.mu.RLock()
	leader := r.leader
	r.mu.RUnlock()

	seq, err := key.ParseSequenceWithLeader(chord, leader)
	if err != nil {
		return Action{}, false
	}
	return r.Resolve(mode, seq)
}

// HasPrefix reports whether any binding in the mode extends the given
// sequence. The input loop uses this to keep a pending sequence alive.
func (r *Registry) HasPrefix(mode string, seq *key.Sequence) bool {
	if seq == nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.trees[mode]
	if !ok {
		return false
	}
	for _, e := range seq.Events {
		n, ok = n.children[e.String()]
		if !ok {
			return false
		}
	}
	return len(n.children) > 0
}

// Bindings returns the mode's merged bindings sorted by chord, for
// discoverability UIs.
func (r *Registry) Bindings(mode string) []Registered {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byChord := r.entries[mode]
	result := make([]Registered, 0, len(byChord))
	for _, reg := range byChord {
		result = append(result, *reg)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Sequence.String() < result[j].Sequence.String()
	})
	return result
}

// Modes returns the modes that have at least one binding, sorted.
func (r *Registry) Modes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modes := make([]string, 0, len(r.entries))
	for mode, byChord := range r.entries {
		if len(byChord) > 0 {
			modes = append(modes, mode)
		}
	}
	sort.Strings(modes)
	return modes
}

// Reset drops every registered binding. Used on config reload before
// the sources are merged again.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]map[string]*Registered)
	r.trees = make(map[string]*node)
}
