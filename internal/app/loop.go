package app

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyrig/internal/dispatch"
	"github.com/dshills/keyrig/internal/input/key"
)

// Run owns the screen and processes input until quit. It returns
// ErrQuit on a clean exit.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	a.drawStatus(screen)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			e, ok := translateKey(ev)
			if !ok {
				continue
			}
			if err := a.HandleKey(e); err != nil {
				return err
			}
			a.drawStatus(screen)
		case *tcell.EventResize:
			screen.Sync()
			a.drawStatus(screen)
		case nil:
			return nil
		}
	}
}

// HandleKey feeds one key event through the pending sequence and the
// registry. Chord resolution follows three outcomes: an exact match
// dispatches, a live prefix waits for more input, and a dead end falls
// through to the mode's default handling.
func (a *App) HandleKey(e key.Event) error {
	return a.feed(e, true)
}

func (a *App) feed(e key.Event, retry bool) error {
	a.pending.Add(e)
	m := string(a.modes.Current())

	if action, ok := a.keymaps.Resolve(m, a.pending); ok {
		chord := a.pending.String()
		a.pending.Clear()
		err := a.dispatcher.Execute(action)
		if errors.Is(err, dispatch.ErrNoHandler) {
			// Bound but unimplemented: the host's fall-through case.
			a.log.Debug("no handler for %s (%s)", chord, m)
			return nil
		}
		return err
	}

	if a.keymaps.HasPrefix(m, a.pending) {
		return nil
	}

	// Dead end. A multi-key pending sequence may still end in a key
	// that starts a different chord, so retry it alone once.
	wasMulti := a.pending.Len() > 1
	a.pending.Clear()
	if wasMulti && retry {
		return a.feed(e, false)
	}

	a.fallthroughKey(e)
	return nil
}

// fallthroughKey is the default handling for unbound keys. keyrig hosts
// no text buffer, so outside of chords there is nothing to do but log.
func (a *App) fallthroughKey(e key.Event) {
	a.log.Debug("unbound key %s in %s mode", e.String(), a.modes.Current())
}

// Pending returns the chord text accumulated so far, for the status
// line.
func (a *App) Pending() string {
	return a.pending.String()
}

// drawStatus renders the one-line status bar: mode, pending chord, and
// the review terminal state.
func (a *App) drawStatus(screen tcell.Screen) {
	w, h := screen.Size()
	if h == 0 {
		return
	}
	row := h - 1

	style := tcell.StyleDefault.Reverse(true)
	text := fmt.Sprintf(" %s  %s  [review: %s] ",
		a.modes.Current().DisplayName(), a.Pending(), a.reviewController().State())

	col := 0
	for _, r := range text {
		if col >= w {
			break
		}
		screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < w; col++ {
		screen.SetContent(col, row, ' ', nil, style)
	}
	screen.Show()
}
