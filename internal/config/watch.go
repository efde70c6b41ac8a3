package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Observer receives the freshly loaded config after a file change.
type Observer func(*Config)

// Watcher reloads the config file when it changes on disk. Editor
// saves often arrive as bursts of write events, so reloads are
// debounced.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange Observer
	onError  func(error)

	fw     *fsnotify.Watcher
	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// WatchConfig configures a watcher.
type WatchConfig struct {
	// Path is the config file to watch.
	Path string

	// Debounce collapses bursts of write events (default 250ms).
	Debounce time.Duration

	// OnChange receives each successfully reloaded config.
	OnChange Observer

	// OnError receives reload failures. Optional; failures leave the
	// previous config in effect either way.
	OnError func(error)
}

// Watch starts watching the config file's directory. Watching the
// directory instead of the file survives rename-based saves.
func Watch(cfg WatchConfig) (*Watcher, error) {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 250 * time.Millisecond
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(cfg.Path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     cfg.Path,
		debounce: cfg.Debounce,
		onChange: cfg.OnChange,
		onError:  cfg.OnError,
		fw:       fw,
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// schedule arms (or re-arms) the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	cfg, err := Load(w.path)
	if err != nil {
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
