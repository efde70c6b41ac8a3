package key

import "strings"

// Modifier is a bitmask of modifier keys held during a key press.
type Modifier uint8

const (
	// ModNone means no modifiers.
	ModNone Modifier = 0

	// ModCtrl is the Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt is the Alt/Option key.
	ModAlt

	// ModShift is the Shift key. For rune events Shift is folded into the
	// character itself and never recorded here.
	ModShift

	// ModMeta is the Command/Super key (Vim notation D-).
	ModMeta
)

// With returns the modifier set with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Has returns true if mod is present in the set.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String returns the Vim-style prefix for the set, e.g. "C-S-".
// ModNone returns the empty string.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var sb strings.Builder
	if m.Has(ModCtrl) {
		sb.WriteString("C-")
	}
	if m.Has(ModAlt) {
		sb.WriteString("A-")
	}
	if m.Has(ModShift) {
		sb.WriteString("S-")
	}
	if m.Has(ModMeta) {
		sb.WriteString("D-")
	}
	return sb.String()
}

// modifierFromLetter maps a single Vim modifier letter to its flag.
// Returns ModNone for unknown letters.
func modifierFromLetter(s string) Modifier {
	switch strings.ToLower(s) {
	case "c":
		return ModCtrl
	case "a", "m":
		return ModAlt
	case "s":
		return ModShift
	case "d":
		return ModMeta
	default:
		return ModNone
	}
}
