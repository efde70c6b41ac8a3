package plugin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/keyrig/internal/input/keymap"
)

func newTestHost(t *testing.T) (*Host, *keymap.Registry, *Capabilities) {
	t.Helper()
	reg := keymap.NewRegistry()
	caps := NewCapabilities()
	reg.SetCapabilityChecker(caps)
	h := NewHost(reg, caps)
	t.Cleanup(h.Close)
	return h, reg, caps
}

func TestLuaMapCommand(t *testing.T) {
	h, reg, _ := newTestHost(t)

	err := h.RunString(`rig.map("normal", "<leader>g", "git.blame", { desc = "Blame" })`)
	if err != nil {
		t.Fatalf("RunString error = %v", err)
	}

	action, ok := reg.ResolveChord("normal", "<leader>g")
	if !ok || action.Command != "git.blame" {
		t.Errorf("resolve = (%v, %v), want git.blame", action, ok)
	}
}

func TestLuaMapFunction(t *testing.T) {
	h, reg, _ := newTestHost(t)

	err := h.RunString(`
		hits = 0
		rig.map("normal", "<leader>x", function() hits = hits + 1 end)
	`)
	if err != nil {
		t.Fatalf("RunString error = %v", err)
	}

	action, ok := reg.ResolveChord("normal", "<leader>x")
	if !ok || action.Kind != keymap.ActionFunc {
		t.Fatalf("resolve = (%v, %v), want a Func action", action, ok)
	}
	if err := action.Fn(); err != nil {
		t.Fatalf("callback error = %v", err)
	}
	if got := h.L.GetGlobal("hits").String(); got != "1" {
		t.Errorf("hits = %s, want 1", got)
	}
}

func TestLuaProvideAndHas(t *testing.T) {
	h, _, caps := newTestHost(t)

	if err := h.RunString(`rig.provide("git")`); err != nil {
		t.Fatalf("RunString error = %v", err)
	}
	if !caps.Has("git") {
		t.Error("capability git not announced")
	}

	err := h.RunString(`
		if not rig.has("git") then error("expected git") end
		if rig.has("nope") then error("unexpected nope") end
	`)
	if err != nil {
		t.Errorf("has checks failed: %v", err)
	}
}

func TestLuaGuardedMapRespectsCapabilities(t *testing.T) {
	h, reg, _ := newTestHost(t)

	err := h.RunString(`rig.map("normal", "<leader>b", "git.blame", { guard = "git" })`)
	if err != nil {
		t.Fatalf("RunString error = %v", err)
	}
	if _, ok := reg.ResolveChord("normal", "<leader>b"); ok {
		t.Error("guarded binding resolved despite absent capability")
	}

	err = h.RunString(`
		rig.provide("git")
		rig.map("normal", "<leader>b", "git.blame", { guard = "git" })
	`)
	if err != nil {
		t.Fatalf("RunString error = %v", err)
	}
	if _, ok := reg.ResolveChord("normal", "<leader>b"); !ok {
		t.Error("guarded binding missing despite announced capability")
	}
}

func TestRunDirSkipsBrokenScripts(t *testing.T) {
	h, reg, _ := newTestHost(t)

	dir := t.TempDir()
	good := `rig.map("normal", "gg", "cursor.top")`
	bad := `this is not lua`
	if err := os.WriteFile(filepath.Join(dir, "10-bad.lua"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "20-good.lua"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}

	var scriptErrs []error
	if err := h.RunDir(dir, func(err error) { scriptErrs = append(scriptErrs, err) }); err != nil {
		t.Fatalf("RunDir error = %v", err)
	}
	if len(scriptErrs) != 1 {
		t.Errorf("script errors = %d, want 1", len(scriptErrs))
	}
	if _, ok := reg.ResolveChord("normal", "gg"); !ok {
		t.Error("good script after a broken one did not run")
	}
}

func TestRunDirMissingDirIsFine(t *testing.T) {
	h, _, _ := newTestHost(t)
	if err := h.RunDir(filepath.Join(t.TempDir(), "absent"), nil); err != nil {
		t.Errorf("RunDir on missing dir = %v, want nil", err)
	}
}

func TestProvideIfInstalled(t *testing.T) {
	caps := NewCapabilities()

	// `sh` exists everywhere the tests run.
	if !caps.ProvideIfInstalled("shell", "sh") {
		t.Error("expected sh to be found")
	}
	if !caps.Has("shell") {
		t.Error("capability not recorded")
	}
	if caps.ProvideIfInstalled("nope", "definitely-not-a-binary-3124") {
		t.Error("nonexistent binary reported installed")
	}
}
