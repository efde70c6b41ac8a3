package key

import "strings"

// Sequence is an ordered series of key events forming one chord.
type Sequence struct {
	// Events contains the key events in order.
	Events []Event
}

// NewSequence creates an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{Events: make([]Event, 0, 4)}
}

// NewSequenceFrom creates a sequence from the given events.
func NewSequenceFrom(events ...Event) *Sequence {
	return &Sequence{Events: events}
}

// Len returns the number of events.
func (s *Sequence) Len() int {
	return len(s.Events)
}

// IsEmpty returns true if the sequence has no events.
func (s *Sequence) IsEmpty() bool {
	return len(s.Events) == 0
}

// Add appends an event.
func (s *Sequence) Add(event Event) {
	s.Events = append(s.Events, event)
}

// Clear removes all events.
func (s *Sequence) Clear() {
	s.Events = s.Events[:0]
}

// Clone returns an independent copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	return &Sequence{Events: events}
}

// String returns the canonical chord text, e.g. "gg" or "<leader>i"
// with the leader already expanded ("<Space>i").
func (s *Sequence) String() string {
	if len(s.Events) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, e := range s.Events {
		sb.WriteString(e.String())
	}
	return sb.String()
}

// Equals returns true if both sequences contain the same events.
func (s *Sequence) Equals(other *Sequence) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Events) != len(other.Events) {
		return false
	}
	for i, e := range s.Events {
		if !e.Equals(other.Events[i]) {
			return false
		}
	}
	return true
}

// HasPrefix returns true if the sequence starts with prefix.
func (s *Sequence) HasPrefix(prefix *Sequence) bool {
	if prefix == nil || prefix.IsEmpty() {
		return true
	}
	if len(prefix.Events) > len(s.Events) {
		return false
	}
	for i, e := range prefix.Events {
		if !e.Equals(s.Events[i]) {
			return false
		}
	}
	return true
}
