package app

import (
	"github.com/dshills/keyrig/internal/input/keymap"
	"github.com/dshills/keyrig/internal/input/mode"
)

// registerHandlers installs the built-in command handlers.
func (a *App) registerHandlers() {
	a.dispatcher.Register("app.quit", func() error {
		return ErrQuit
	})

	a.dispatcher.Register("term.review", func() error {
		return a.reviewController().Toggle()
	})

	a.dispatcher.Register("keymap.cheatsheet", func() error {
		sheet := keymap.Cheatsheet(a.keymaps, string(a.modes.Current()))
		a.log.Info("bindings for %s:\n%s", a.modes.Current(), sheet)
		return nil
	})

	modeTargets := map[string]mode.Mode{
		"mode.normal":   mode.Normal,
		"mode.insert":   mode.Insert,
		"mode.visual":   mode.Visual,
		"mode.command":  mode.Command,
		"mode.terminal": mode.Terminal,
	}
	for name, target := range modeTargets {
		target := target
		a.dispatcher.Register(name, func() error {
			return a.modes.Set(target)
		})
	}
}
