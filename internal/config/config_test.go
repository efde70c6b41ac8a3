package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/keyrig/internal/input/key"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keyrig.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Terminal.ReviewTool != "lazygit" {
		t.Errorf("ReviewTool = %q, want lazygit", cfg.Terminal.ReviewTool)
	}
	if cfg.Leader != "<Space>" {
		t.Errorf("Leader = %q, want <Space>", cfg.Leader)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
leader = ","
log_level = "debug"

[terminal]
review_tool = "tig"
rows = 40

[[keymap]]
mode = "normal"
chord = "<leader>g"
action = "git.blame"
desc = "Git blame"
guard = "git"

[[keymap]]
mode = "normal"
chord = "<leader>i"
action = "term.review"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Leader != "," {
		t.Errorf("Leader = %q, want ,", cfg.Leader)
	}
	if cfg.Terminal.ReviewTool != "tig" {
		t.Errorf("ReviewTool = %q, want tig", cfg.Terminal.ReviewTool)
	}
	if cfg.Terminal.Cols != 120 {
		t.Errorf("Cols = %d, want default 120", cfg.Terminal.Cols)
	}
	if len(cfg.Keymaps) != 2 {
		t.Fatalf("keymaps = %d, want 2", len(cfg.Keymaps))
	}
	if cfg.Keymaps[0].Guard != "git" {
		t.Errorf("guard = %q, want git", cfg.Keymaps[0].Guard)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "leader = [broken")

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestLeaderEvent(t *testing.T) {
	cfg := Default()
	if !cfg.LeaderEvent().Equals(key.DefaultLeader) {
		t.Errorf("default LeaderEvent = %#v, want space", cfg.LeaderEvent())
	}

	cfg.Leader = ","
	if !cfg.LeaderEvent().Equals(key.NewRuneEvent(',')) {
		t.Errorf("LeaderEvent = %#v, want comma", cfg.LeaderEvent())
	}

	cfg.Leader = "not a key!!"
	if !cfg.LeaderEvent().Equals(key.DefaultLeader) {
		t.Errorf("bad leader should fall back to space, got %#v", cfg.LeaderEvent())
	}
}

func TestKeymapSources(t *testing.T) {
	cfg := Default()
	cfg.Keymaps = []KeymapEntry{
		{Mode: "normal", Chord: "gg", Action: "cursor.top"},
		{Mode: "insert", Chord: "jk", Action: "mode.normal"},
		{Mode: "normal", Chord: "G", Action: "cursor.bottom"},
	}

	sources := cfg.KeymapSources()
	if len(sources) != 2 {
		t.Fatalf("sources = %d, want 2 (one per mode)", len(sources))
	}
	if sources[0].Mode != "normal" || len(sources[0].Bindings) != 2 {
		t.Errorf("first source = %s with %d bindings, want normal with 2",
			sources[0].Mode, len(sources[0].Bindings))
	}
	if sources[1].Mode != "insert" || len(sources[1].Bindings) != 1 {
		t.Errorf("second source = %s with %d bindings, want insert with 1",
			sources[1].Mode, len(sources[1].Bindings))
	}
	if sources[0].Bindings[0].Action.Command != "cursor.top" {
		t.Errorf("binding action = %v", sources[0].Bindings[0].Action)
	}
}
