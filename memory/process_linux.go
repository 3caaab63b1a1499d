//go:build linux

package memory

import (
	"golang.org/x/sys/unix"

	"github.com/wippyai/tracedecode"
	"github.com/wippyai/tracedecode/errors"
)

// maxIovecs is IOV_MAX; longer requests come back partial.
const maxIovecs = 1024

// Process reads the memory of a live process with process_vm_readv(2).
// The caller must be allowed to ptrace the target.
type Process struct {
	pid      int
	pageSize uint64
}

// OpenProcess checks that pid exists and returns a reader for it.
func OpenProcess(pid int) (*Process, error) {
	if pid <= 0 {
		return nil, errors.InvalidInput(errors.PhaseAttach, "pid must be positive")
	}
	// EPERM still proves the process exists; the read itself reports access.
	if err := unix.Kill(pid, 0); err != nil && err != unix.EPERM {
		return nil, errors.Attach("probe process", err)
	}
	return &Process{pid: pid, pageSize: uint64(unix.Getpagesize())}, nil
}

// Pid returns the traced process id.
func (p *Process) Pid() int {
	return p.pid
}

// Read implements tracedecode.Memory. The remote range is split at page
// boundaries because the kernel never transfers part of a single iovec.
func (p *Process) Read(addr uint64, length uint32) ([]byte, error) {
	if length == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, length)
	local := []unix.Iovec{{Base: &buf[0]}}
	local[0].SetLen(int(length))

	n, err := unix.ProcessVMReadv(p.pid, local, p.remote(addr, length), 0)
	if n <= 0 {
		return nil, errors.Unavailable(addr, length, err)
	}
	if n < int(length) {
		return buf[:n], errors.Partial(addr, length, uint32(n))
	}
	return buf, nil
}

func (p *Process) remote(addr uint64, length uint32) []unix.RemoteIovec {
	var iov []unix.RemoteIovec
	end := addr + uint64(length)
	if end < addr {
		end = ^uint64(0)
	}
	for cur := addr; cur < end && len(iov) < maxIovecs; {
		next := (cur/p.pageSize + 1) * p.pageSize
		if next > end || next == 0 {
			next = end
		}
		iov = append(iov, unix.RemoteIovec{Base: uintptr(cur), Len: int(next - cur)})
		cur = next
	}
	return iov
}

var _ tracedecode.Memory = (*Process)(nil)
