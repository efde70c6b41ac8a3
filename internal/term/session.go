package term

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync/atomic"

	"github.com/google/uuid"
)

// Session is one PTY-backed shell process.
type Session struct {
	id   string
	name string

	pty PTY
	cmd *exec.Cmd

	done     chan struct{}
	exitCode atomic.Int32
	closed   atomic.Bool

	onOutput func(data []byte)
	onClose  func(*Session)
}

// SessionOptions configures a new session.
type SessionOptions struct {
	// Name is a human-readable label.
	Name string

	// Shell is the executable to run (defaults to $SHELL, then /bin/sh).
	Shell string

	// WorkDir is the shell's working directory.
	WorkDir string

	// Cols and Rows give the initial size (defaults 80x24).
	Cols int
	Rows int

	// Env are extra environment variables.
	Env []string

	// OnOutput is called with raw PTY output.
	OnOutput func(data []byte)

	// OnClose is called once when the session ends, with the session
	// itself. It must be supplied here rather than set afterwards: the
	// read goroutine starts inside the spawn and consults it at exit.
	OnClose func(*Session)
}

// newSession spawns the shell attached to a fresh PTY.
func newSession(opts SessionOptions) (*Session, error) {
	if opts.Shell == "" {
		opts.Shell = os.Getenv("SHELL")
		if opts.Shell == "" {
			opts.Shell = "/bin/sh"
		}
	}
	if opts.Cols <= 0 {
		opts.Cols = 80
	}
	if opts.Rows <= 0 {
		opts.Rows = 24
	}
	if opts.Name == "" {
		opts.Name = "float"
	}

	if _, err := exec.LookPath(opts.Shell); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrShellNotFound, opts.Shell)
	}

	cmd := exec.Command(opts.Shell)
	cmd.Dir = opts.WorkDir
	cmd.Env = append(os.Environ(), opts.Env...)
	cmd.Env = append(cmd.Env, "TERM=xterm-256color")

	pty, err := StartPTY(cmd, uint16(opts.Cols), uint16(opts.Rows))
	if err != nil {
		return nil, fmt.Errorf("start PTY: %w", err)
	}

	s := &Session{
		id:       uuid.New().String(),
		name:     opts.Name,
		pty:      pty,
		cmd:      cmd,
		done:     make(chan struct{}),
		onOutput: opts.OnOutput,
		onClose:  opts.OnClose,
	}
	s.exitCode.Store(-1)

	go s.readLoop()

	return s, nil
}

// ID returns the session's handle identifier.
func (s *Session) ID() string {
	return s.id
}

// Name returns the session's display name.
func (s *Session) Name() string {
	return s.name
}

// Write sends input to the session.
func (s *Session) Write(data []byte) (int, error) {
	if s.closed.Load() {
		return 0, ErrSessionClosed
	}
	return s.pty.Write(data)
}

// WriteString sends a string to the session.
func (s *Session) WriteString(text string) (int, error) {
	return s.Write([]byte(text))
}

// Resize changes the session's PTY size.
func (s *Session) Resize(cols, rows int) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	return s.pty.Resize(uint16(cols), uint16(rows))
}

// IsRunning returns true while the session's process is alive.
func (s *Session) IsRunning() bool {
	return !s.closed.Load()
}

// Done returns a channel closed when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// ExitCode returns the shell's exit code, or -1 while running.
func (s *Session) ExitCode() int {
	return int(s.exitCode.Load())
}

// Close terminates the session.
func (s *Session) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	if s.cmd != nil && s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	s.pty.Close()
	<-s.done

	if s.onClose != nil {
		s.onClose(s)
	}
	return nil
}

// readLoop drains PTY output until the process exits.
func (s *Session) readLoop() {
	defer close(s.done)

	buf := make([]byte, 4096)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 && s.onOutput != nil {
			s.onOutput(buf[:n])
		}
		if err != nil {
			if err == io.EOF || s.closed.Load() {
				break
			}
			// PTY read errors after the child exits show up as EIO.
			break
		}
	}

	if s.cmd.Process != nil {
		state, _ := s.cmd.Process.Wait()
		if state != nil {
			s.exitCode.Store(int32(state.ExitCode()))
		}
	}

	// Exited on its own: release the PTY and notify.
	if !s.closed.Swap(true) {
		s.pty.Close()
		if s.onClose != nil {
			s.onClose(s)
		}
	}
}
