package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyrig/internal/input/key"
)

// translateKey converts a tcell key event into the chord event model.
// Returns false for keys the keymap layer has no notation for.
func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	var mods key.Modifier
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}

	switch ev.Key() {
	case tcell.KeyRune:
		e := key.NewRuneEvent(ev.Rune())
		e.Mods = mods
		return e, true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyEsc:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods), true
	case tcell.KeyCtrlSpace:
		return key.Event{Key: key.KeySpace, Mods: mods.With(key.ModCtrl)}, true
	case tcell.KeyCtrlBackslash:
		return key.Event{Key: key.KeyRune, Rune: '\\', Mods: mods.With(key.ModCtrl)}, true
	}

	// Control characters 0x01..0x1a arrive as KeyCtrlA..KeyCtrlZ.
	// Tab and Enter alias into this range and were handled above.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + k - tcell.KeyCtrlA)
		return key.Event{Key: key.KeyRune, Rune: r, Mods: mods.With(key.ModCtrl)}, true
	}

	return key.Event{}, false
}
