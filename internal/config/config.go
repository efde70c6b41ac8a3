// Package config loads keyrig's TOML configuration: the leader key, the
// floating terminal settings, and user keymap overrides. A missing file
// is not an error; defaults apply.
package config

import (
	"github.com/dshills/keyrig/internal/input/key"
	"github.com/dshills/keyrig/internal/input/keymap"
)

// Config is the root of the TOML file.
type Config struct {
	// Leader is the key substituted for <leader> in chords. One chord
	// token, e.g. " " or "," or "<Space>".
	Leader string `toml:"leader"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// Terminal configures the floating review terminal.
	Terminal Terminal `toml:"terminal"`

	// Keymaps are user bindings, merged over the stock defaults in
	// file order.
	Keymaps []KeymapEntry `toml:"keymap"`
}

// Terminal configures the floating surface and its bootstrap command.
type Terminal struct {
	// Shell runs inside the floating surface (defaults to $SHELL).
	Shell string `toml:"shell"`

	// ReviewTool is the command typed into a freshly created surface.
	ReviewTool string `toml:"review_tool"`

	// Cols and Rows size the surface.
	Cols int `toml:"cols"`
	Rows int `toml:"rows"`
}

// KeymapEntry is one user binding.
type KeymapEntry struct {
	Mode        string `toml:"mode"`
	Chord       string `toml:"chord"`
	Action      string `toml:"action"`
	Description string `toml:"desc"`

	// Guard names a capability required for the binding to register.
	Guard string `toml:"guard"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Leader:   "<Space>",
		LogLevel: "info",
		Terminal: Terminal{
			ReviewTool: "lazygit",
			Cols:       120,
			Rows:       30,
		},
	}
}

// LeaderEvent parses the configured leader into a key event. Falls back
// to the default leader if the text is not a single key.
func (c *Config) LeaderEvent() key.Event {
	seq, err := key.ParseSequence(c.Leader)
	if err != nil || seq.Len() != 1 {
		return key.DefaultLeader
	}
	return seq.Events[0]
}

// KeymapSources converts the user entries into registry sources, one
// per mode, preserving file order within a mode.
func (c *Config) KeymapSources() []*keymap.Source {
	byMode := make(map[string]*keymap.Source)
	order := make([]string, 0)

	for _, e := range c.Keymaps {
		src, ok := byMode[e.Mode]
		if !ok {
			src = keymap.NewSource("config").ForMode(e.Mode)
			byMode[e.Mode] = src
			order = append(order, e.Mode)
		}
		src.AddBinding(keymap.NewBinding(e.Chord, e.Action).
			WithDescription(e.Description).
			WithGuard(e.Guard))
	}

	sources := make([]*keymap.Source, 0, len(order))
	for _, mode := range order {
		sources = append(sources, byMode[mode])
	}
	return sources
}
