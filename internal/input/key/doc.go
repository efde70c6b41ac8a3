// Package key provides key event and chord sequence types for keyrig.
//
// A chord is written in Vim notation: "g", "gg", "<C-s>", "<CR>",
// "<leader>i". ParseSequence turns chord text into a Sequence of Events;
// Sequence.String returns the canonical form, which round-trips through
// the parser. The <leader> token is expanded at parse time against a
// configurable leader key, so the registry only ever sees concrete keys.
package key
