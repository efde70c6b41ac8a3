// Package app wires the keyrig components together and runs the input
// loop: config, capabilities, the keymap registry, Lua scripts, the
// terminal manager and the review controller.
package app

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dshills/keyrig/internal/config"
	"github.com/dshills/keyrig/internal/dispatch"
	"github.com/dshills/keyrig/internal/event"
	"github.com/dshills/keyrig/internal/input/key"
	"github.com/dshills/keyrig/internal/input/keymap"
	"github.com/dshills/keyrig/internal/input/mode"
	"github.com/dshills/keyrig/internal/plugin"
	"github.com/dshills/keyrig/internal/term"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML config file. Empty means the default
	// location; a missing file means defaults.
	ConfigPath string

	// LogLevel overrides the config's log level when non-empty.
	LogLevel string

	// WorkDir is the working directory for terminal sessions.
	WorkDir string

	// Watch enables config hot-reload.
	Watch bool
}

// App is the assembled editor customization layer.
type App struct {
	opts Options
	log  *Logger

	// mu guards cfg and review. Config reloads arrive on the watcher's
	// debounce goroutine and swap both while the input loop reads them.
	mu     sync.RWMutex
	cfg    *config.Config
	review *term.Controller

	bus        *event.Bus
	caps       *plugin.Capabilities
	keymaps    *keymap.Registry
	modes      *mode.Manager
	dispatcher *dispatch.Dispatcher
	terms      *term.Manager
	lua        *plugin.Host
	watcher    *config.Watcher

	// pending accumulates key events until they resolve, dead-end, or
	// complete a chord.
	pending *key.Sequence
}

// New builds the application from options.
func New(opts Options) (*App, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultPath()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	log := NewLogger(ParseLevel(level))

	a := &App{
		opts:    opts,
		log:     log,
		cfg:     cfg,
		bus:     event.NewBus(),
		caps:    plugin.NewCapabilities(),
		keymaps: keymap.NewRegistry(),
		modes:   mode.NewManager(),
		pending: key.NewSequence(),
	}

	a.detectCapabilities()

	a.keymaps.SetLeader(cfg.LeaderEvent())
	a.keymaps.SetCapabilityChecker(a.caps)

	a.lua = plugin.NewHost(a.keymaps, a.caps)
	if err := a.registerSources(cfg); err != nil {
		a.lua.Close()
		return nil, err
	}

	a.terms = term.NewManager(term.ManagerConfig{
		Shell:   cfg.Terminal.Shell,
		WorkDir: opts.WorkDir,
		Cols:    cfg.Terminal.Cols,
		Rows:    cfg.Terminal.Rows,
		Bus:     a.bus,
	})
	a.review = term.NewController(a.terms, cfg.Terminal.ReviewTool)

	a.dispatcher = dispatch.New()
	a.registerHandlers()
	a.subscribe()

	if opts.Watch {
		w, err := config.Watch(config.WatchConfig{
			Path:     opts.ConfigPath,
			OnChange: a.onConfigChange,
			OnError: func(err error) {
				log.Warn("config reload failed: %v", err)
			},
		})
		if err != nil {
			log.Warn("config watch unavailable: %v", err)
		} else {
			a.watcher = w
		}
	}

	return a, nil
}

// Logger returns the application logger.
func (a *App) Logger() *Logger {
	return a.log
}

// detectCapabilities probes the environment for guard capabilities.
func (a *App) detectCapabilities() {
	a.caps.ProvideIfInstalled("git", "git")
	if tool := a.cfg.Terminal.ReviewTool; tool != "" {
		a.caps.ProvideIfInstalled("review", tool)
	}
}

// registerSources merges the binding sources in precedence order:
// stock defaults, user config, Lua scripts.
func (a *App) registerSources(cfg *config.Config) error {
	for _, src := range keymap.DefaultSources() {
		if err := a.keymaps.Register(src); err != nil {
			return fmt.Errorf("default keymap: %w", err)
		}
	}
	for _, src := range cfg.KeymapSources() {
		if err := a.keymaps.Register(src); err != nil {
			return fmt.Errorf("config keymap: %w", err)
		}
	}

	scriptDir := filepath.Join(filepath.Dir(a.opts.ConfigPath), "scripts")
	if err := a.lua.RunDir(scriptDir, func(err error) {
		a.log.Warn("lua script failed: %v", err)
	}); err != nil {
		return fmt.Errorf("lua scripts: %w", err)
	}
	return nil
}

// onConfigChange rebuilds the keymap registry from the new config. It
// runs on the watcher's debounce goroutine, so the fields the input
// loop reads are swapped under a.mu. The terminal manager is left
// alone: its handles, and therefore the review bootstrap decision,
// survive reloads.
func (a *App) onConfigChange(cfg *config.Config) {
	a.log.Info("config reloaded")
	a.keymaps.Reset()
	a.keymaps.SetLeader(cfg.LeaderEvent())
	if err := a.registerSources(cfg); err != nil {
		a.log.Error("rebuilding keymaps: %v", err)
	}

	a.mu.Lock()
	a.cfg = cfg
	a.review = term.NewController(a.terms, cfg.Terminal.ReviewTool)
	a.mu.Unlock()
}

// reviewController returns the current review controller. Reloads swap
// the controller, so callers must not cache it across key events.
func (a *App) reviewController() *term.Controller {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.review
}

// subscribe wires event bus logging.
func (a *App) subscribe() {
	log := a.log.WithComponent("term")
	a.bus.Subscribe("terminal.created", func(p map[string]any) {
		log.Info("terminal created: %v", p["id"])
	})
	a.bus.Subscribe("terminal.closed", func(p map[string]any) {
		log.Info("terminal closed: %v (exit %v)", p["id"], p["exitCode"])
	})
}

// Shutdown tears down the terminal sessions and watchers.
func (a *App) Shutdown() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.terms != nil {
		a.terms.Shutdown(3 * time.Second)
	}
	if a.lua != nil {
		a.lua.Close()
	}
}
