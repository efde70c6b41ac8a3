package term

import "sync"

// Host is the terminal-multiplexing capability the controller depends
// on. Manager implements it; tests substitute a fake.
type Host interface {
	// Handles returns the number of live terminal handles.
	Handles() int

	// ToggleFloat creates the floating surface on first use and flips
	// its visibility thereafter.
	ToggleFloat() error

	// Send types text into the floating surface.
	Send(text string) error
}

// State describes the controller's view of the floating surface.
type State uint8

const (
	// Closed means no floating surface is visible.
	Closed State = iota

	// OpenEmpty means the surface is visible and the review command has
	// not been sent by this controller instance.
	OpenEmpty

	// OpenRunning means the surface is visible and the review command
	// has been sent.
	OpenRunning
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case OpenEmpty:
		return "open-empty"
	case OpenRunning:
		return "open-running"
	default:
		return "unknown"
	}
}

// Controller gives one chord a reusable floating terminal that runs the
// review command exactly once per freshly created handle.
type Controller struct {
	mu      sync.Mutex
	host    Host
	command string
	visible bool
	ran     bool
}

// NewController creates a controller that types command into the first
// terminal handle it causes to exist.
func NewController(host Host, command string) *Controller {
	return &Controller{host: host, command: command}
}

// Toggle flips the floating surface and bootstraps the review command
// when, and only when, the toggle created the very first handle.
//
// The pre-toggle handle count is the sole bootstrap signal: a count of
// zero means this toggle is about to create the handle, so the command
// is typed in afterwards. A nonzero count means some surface already
// exists and must never be re-sent the command, even when it is being
// re-shown. Host failures are returned as-is; there is no recovery.
func (c *Controller) Toggle() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fresh := c.host.Handles() == 0

	if err := c.host.ToggleFloat(); err != nil {
		return err
	}
	c.visible = !c.visible

	if fresh {
		// The toggle that creates the handle always shows it.
		c.visible = true
		if err := c.host.Send(c.command + "\n"); err != nil {
			return err
		}
		c.ran = true
	}

	return nil
}

// State returns the controller's current state. After a config reload
// the controller starts over in Closed even if the host still holds a
// running terminal; the handle count, not this state, is what prevents
// a second bootstrap.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.visible {
		return Closed
	}
	if c.ran {
		return OpenRunning
	}
	return OpenEmpty
}

// Command returns the configured review command.
func (c *Controller) Command() string {
	return c.command
}
