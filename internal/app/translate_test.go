package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyrig/internal/input/key"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), key.NewRuneEvent('g')},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), key.NewSpecialEvent(key.KeySpace, key.ModNone)},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), key.Event{Key: key.KeyRune, Rune: 'x', Mods: key.ModAlt}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEscape, key.ModNone)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyTab, key.ModNone)},
		{"ctrl-s", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), key.Event{Key: key.KeyRune, Rune: 's', Mods: key.ModCtrl}},
		{"ctrl-backslash", tcell.NewEventKey(tcell.KeyCtrlBackslash, 0, tcell.ModCtrl), key.Event{Key: key.KeyRune, Rune: '\\', Mods: key.ModCtrl}},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyUp, key.ModNone)},
	}

	for _, tt := range tests {
		got, ok := translateKey(tt.ev)
		if !ok {
			t.Errorf("%s: translateKey returned false", tt.name)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("%s: got %#v, want %#v", tt.name, got, tt.want)
		}
	}
}

func TestTranslateKeyUnmapped(t *testing.T) {
	if _, ok := translateKey(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)); ok {
		t.Error("F1 has no chord notation and must not translate")
	}
}
