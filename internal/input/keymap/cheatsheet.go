package keymap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cheatsheet renders the mode's bindings as aligned text for the help
// overlay. Chords are padded by display width so wide glyphs line up.
func Cheatsheet(r *Registry, mode string) string {
	bindings := r.Bindings(mode)
	if len(bindings) == 0 {
		return ""
	}

	chordWidth := 0
	for _, b := range bindings {
		if w := runewidth.StringWidth(b.Chord); w > chordWidth {
			chordWidth = w
		}
	}

	var sb strings.Builder
	for _, b := range bindings {
		sb.WriteString(runewidth.FillRight(b.Chord, chordWidth))
		sb.WriteString("  ")
		desc := b.Description
		if desc == "" {
			desc = b.Action.String()
		}
		sb.WriteString(desc)
		sb.WriteByte('\n')
	}
	return sb.String()
}
