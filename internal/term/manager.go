package term

import (
	"sync"
	"sync/atomic"
	"time"
)

// EventPublisher receives terminal lifecycle events.
type EventPublisher interface {
	Publish(topic string, payload map[string]any)
}

// ManagerConfig configures a terminal manager.
type ManagerConfig struct {
	// Shell is the default shell (defaults to $SHELL, then /bin/sh).
	Shell string

	// WorkDir is the default working directory.
	WorkDir string

	// Cols and Rows size new sessions.
	Cols int
	Rows int

	// Bus receives terminal.created / terminal.closed events. Optional.
	Bus EventPublisher
}

// Manager owns the terminal sessions and the floating surface. It is
// the concrete Host the controller toggles against.
type Manager struct {
	mu       sync.RWMutex
	cfg      ManagerConfig
	sessions map[string]*Session
	float    *Session
	visible  bool
	closed   atomic.Bool

	// spawn is injectable so tests can avoid real PTYs.
	spawn func(SessionOptions) (*Session, error)
}

// NewManager creates a manager with no sessions.
func NewManager(cfg ManagerConfig) *Manager {
	return &Manager{
		cfg:      cfg,
		sessions: make(map[string]*Session),
		spawn:    newSession,
	}
}

// Handles returns the number of live terminal handles.
func (m *Manager) Handles() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Visible reports whether the floating surface is currently shown.
func (m *Manager) Visible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visible
}

// Float returns the floating session, or nil if none exists.
func (m *Manager) Float() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.float
}

// ToggleFloat shows or hides the floating surface, creating its session
// on first use. A session whose shell has exited is replaced.
func (m *Manager) ToggleFloat() error {
	if m.closed.Load() {
		return ErrManagerClosed
	}

	m.mu.Lock()

	if m.float == nil || !m.float.IsRunning() {
		s, err := m.spawn(SessionOptions{
			Name:    "float",
			Shell:   m.cfg.Shell,
			WorkDir: m.cfg.WorkDir,
			Cols:    m.cfg.Cols,
			Rows:    m.cfg.Rows,
			OnClose: m.release,
		})
		if err != nil {
			m.mu.Unlock()
			return err
		}
		m.sessions[s.id] = s
		m.float = s
		m.visible = true
		m.mu.Unlock()

		m.publish("terminal.created", map[string]any{
			"id":   s.id,
			"name": s.name,
		})
		return nil
	}

	m.visible = !m.visible
	m.mu.Unlock()
	return nil
}

// Send types text into the floating session.
func (m *Manager) Send(text string) error {
	m.mu.RLock()
	float := m.float
	m.mu.RUnlock()

	if float == nil || !float.IsRunning() {
		return ErrNoFloat
	}
	_, err := float.WriteString(text)
	return err
}

// release is the session close callback. It goes in through the spawn
// options so it is installed before the session's read goroutine
// starts: a shell that exits immediately still runs teardown and
// cannot leave a dead entry inflating the handle count. It acquires
// the write lock, so a close racing the tracking inside ToggleFloat
// blocks until the session is in the map.
func (m *Manager) release(s *Session) {
	m.mu.Lock()
	delete(m.sessions, s.id)
	if m.float == s {
		m.float = nil
		m.visible = false
	}
	m.mu.Unlock()

	m.publish("terminal.closed", map[string]any{
		"id":       s.id,
		"name":     s.name,
		"exitCode": s.ExitCode(),
	})
}

// Shutdown closes every session, waiting up to timeout before killing
// stragglers.
func (m *Manager) Shutdown(timeout time.Duration) {
	if m.closed.Swap(true) {
		return
	}

	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	if len(sessions) == 0 {
		return
	}

	done := make(chan struct{})
	go func() {
		for _, s := range sessions {
			s.Close()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		for _, s := range sessions {
			if s.cmd != nil && s.cmd.Process != nil {
				s.cmd.Process.Kill()
			}
		}
	}
}

// publish emits an event when a bus is configured.
func (m *Manager) publish(topic string, payload map[string]any) {
	if m.cfg.Bus != nil {
		payload["timestamp"] = time.Now().UnixMilli()
		m.cfg.Bus.Publish(topic, payload)
	}
}
