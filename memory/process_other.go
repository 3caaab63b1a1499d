//go:build !linux

package memory

import (
	"github.com/wippyai/tracedecode/errors"
)

// Process reads the memory of a live process. Only Linux is supported.
type Process struct {
	pid int
}

// OpenProcess always fails on this platform.
func OpenProcess(pid int) (*Process, error) {
	return nil, errors.Unsupported(errors.PhaseAttach, "process memory access requires linux")
}

// Pid returns the traced process id.
func (p *Process) Pid() int {
	return p.pid
}

// Read reports every address as unavailable.
func (p *Process) Read(addr uint64, length uint32) ([]byte, error) {
	return nil, errors.Unavailable(addr, length, nil)
}
