package term

import (
	"os"
	"os/exec"
)

// PTY is a pseudo-terminal master attached to a running command.
type PTY interface {
	// Read reads output from the PTY.
	Read(p []byte) (n int, err error)

	// Write sends input to the PTY.
	Write(p []byte) (n int, err error)

	// Resize changes the PTY window size.
	Resize(cols, rows uint16) error

	// Close closes the master side.
	Close() error
}

// StartPTY starts cmd attached to a new PTY of the given size.
func StartPTY(cmd *exec.Cmd, cols, rows uint16) (PTY, error) {
	return startPTY(cmd, cols, rows)
}

// masterPTY wraps the master file as a PTY.
type masterPTY struct {
	master *os.File
}

func (p *masterPTY) Read(buf []byte) (int, error) {
	return p.master.Read(buf)
}

func (p *masterPTY) Write(data []byte) (int, error) {
	return p.master.Write(data)
}

func (p *masterPTY) Resize(cols, rows uint16) error {
	return setWinSize(p.master, cols, rows)
}

func (p *masterPTY) Close() error {
	return p.master.Close()
}
