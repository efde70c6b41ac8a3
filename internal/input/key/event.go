package key

import "unicode"

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Mods contains the active modifier keys.
	Mods Modifier
}

// NewRuneEvent creates an event for a printable character. Space is
// normalized to KeySpace so typed spaces always compare equal to the
// <Space> chord token.
func NewRuneEvent(r rune) Event {
	if r == ' ' {
		return Event{Key: KeySpace}
	}
	return Event{Key: KeyRune, Rune: r}
}

// NewSpecialEvent creates an event for a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Mods: mods}
}

// IsRune returns true if this is a character event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPrintable returns true if the event inserts a visible character.
func (e Event) IsPrintable() bool {
	return e.IsRune() && e.Mods&(ModCtrl|ModAlt|ModMeta) == 0 && unicode.IsPrint(e.Rune)
}

// Equals reports whether two events are the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Mods == other.Mods
}

// String returns the canonical chord text for the event.
// Plain characters are bare ("g"); everything else uses <...> notation
// ("<C-s>", "<CR>", "<Space>").
func (e Event) String() string {
	if e.IsRune() && e.Mods&(ModCtrl|ModAlt|ModMeta) == 0 {
		if e.Rune == ' ' {
			return "<Space>"
		}
		if e.Rune == '<' {
			return "<lt>"
		}
		return string(e.Rune)
	}

	var name string
	if e.Key == KeyRune {
		name = string(e.Rune)
	} else {
		name = e.Key.String()
	}
	return "<" + e.Mods.String() + name + ">"
}
