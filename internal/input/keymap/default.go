package keymap

// DefaultSources returns the stock binding tables, one source per mode.
// User config and scripts are registered after these and override them.
func DefaultSources() []*Source {
	normal := NewSource("default").ForMode("normal").
		AddBinding(NewBinding("i", "mode.insert").WithDescription("Enter insert mode")).
		AddBinding(NewBinding("v", "mode.visual").WithDescription("Enter visual mode")).
		AddBinding(NewBinding(":", "mode.command").WithDescription("Enter command mode")).
		AddBinding(NewBinding("<leader>i", "term.review").WithDescription("Toggle review terminal")).
		AddBinding(NewBinding("<leader>?", "keymap.cheatsheet").WithDescription("Show key bindings")).
		AddBinding(NewBinding("<C-q>", "app.quit").WithDescription("Quit"))

	insert := NewSource("default").ForMode("insert").
		AddBinding(NewBinding("<Esc>", "mode.normal").WithDescription("Back to normal mode"))

	visual := NewSource("default").ForMode("visual").
		AddBinding(NewBinding("<Esc>", "mode.normal").WithDescription("Back to normal mode"))

	command := NewSource("default").ForMode("command").
		AddBinding(NewBinding("<Esc>", "mode.normal").WithDescription("Back to normal mode"))

	terminal := NewSource("default").ForMode("terminal").
		AddBinding(NewBinding("<C-\\>", "mode.normal").WithDescription("Back to normal mode")).
		AddBinding(NewBinding("<leader>i", "term.review").WithDescription("Toggle review terminal"))

	return []*Source{normal, insert, visual, command, terminal}
}
