package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyrig/internal/input/keymap"
)

// Host runs user Lua scripts against the rig API.
//
// Scripts see a global `rig` table:
//
//	rig.map(mode, chord, action, opts)  -- action: command string or function
//	rig.provide(name)                   -- announce a capability
//	rig.has(name) -> bool               -- query a capability
//
// opts is an optional table with `desc` and `guard` fields.
//
// The host is single-threaded: scripts run at startup and callbacks run
// on the input loop, never concurrently.
type Host struct {
	L       *lua.LState
	keymaps *keymap.Registry
	caps    *Capabilities

	// script is the name of the script currently executing, used as
	// the binding source name.
	script string
}

// NewHost creates a Lua host bound to the registry and capability set.
func NewHost(keymaps *keymap.Registry, caps *Capabilities) *Host {
	h := &Host{
		L:       lua.NewState(),
		keymaps: keymaps,
		caps:    caps,
		script:  "lua",
	}
	h.register()
	return h
}

// Close releases the Lua state.
func (h *Host) Close() {
	h.L.Close()
}

// RunString executes Lua source. Errors abort only this chunk.
func (h *Host) RunString(src string) error {
	return h.L.DoString(src)
}

// RunFile executes one script file.
func (h *Host) RunFile(path string) error {
	prev := h.script
	h.script = "lua:" + filepath.Base(path)
	defer func() { h.script = prev }()

	if err := h.L.DoFile(path); err != nil {
		return fmt.Errorf("running %s: %w", path, err)
	}
	return nil
}

// RunDir executes every .lua file in dir in name order. A missing dir
// is fine; a failing script is skipped after its error is reported to
// onError, so one broken script cannot take the rest down.
func (h *Host) RunDir(dir string, onError func(error)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.RunFile(filepath.Join(dir, name)); err != nil && onError != nil {
			onError(err)
		}
	}
	return nil
}

// register installs the rig API table.
func (h *Host) register() {
	mod := h.L.NewTable()
	h.L.SetField(mod, "map", h.L.NewFunction(h.luaMap))
	h.L.SetField(mod, "provide", h.L.NewFunction(h.luaProvide))
	h.L.SetField(mod, "has", h.L.NewFunction(h.luaHas))
	h.L.SetGlobal("rig", mod)
}

// luaMap implements rig.map(mode, chord, action, opts?).
func (h *Host) luaMap(L *lua.LState) int {
	mode := L.CheckString(1)
	chord := L.CheckString(2)

	var action keymap.Action
	switch v := L.Get(3).(type) {
	case lua.LString:
		action = keymap.Command(string(v))
	case *lua.LFunction:
		action = keymap.Func(h.wrap(v))
	default:
		L.ArgError(3, "action must be a command string or a function")
		return 0
	}

	var desc, guard string
	if L.GetTop() >= 4 {
		opts := L.CheckTable(4)
		desc = tableString(opts, "desc")
		guard = tableString(opts, "guard")
	}

	src := keymap.NewSource(h.script).ForMode(mode).
		AddBinding(keymap.Binding{
			Chord:       chord,
			Action:      action,
			Description: desc,
			Guard:       guard,
		})
	if err := h.keymaps.Register(src); err != nil {
		L.RaiseError("map: %v", err)
		return 0
	}
	return 0
}

// luaProvide implements rig.provide(name).
func (h *Host) luaProvide(L *lua.LState) int {
	h.caps.Provide(L.CheckString(1))
	return 0
}

// luaHas implements rig.has(name).
func (h *Host) luaHas(L *lua.LState) int {
	L.Push(lua.LBool(h.caps.Has(L.CheckString(1))))
	return 1
}

// wrap turns a Lua function into a zero-argument Go callback.
func (h *Host) wrap(fn *lua.LFunction) func() error {
	return func() error {
		return h.L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		})
	}
}

// tableString reads a string field from an options table.
func tableString(t *lua.LTable, field string) string {
	if v, ok := t.RawGetString(field).(lua.LString); ok {
		return string(v)
	}
	return ""
}
