package memory

import (
	"math"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/tracedecode"
	"github.com/wippyai/tracedecode/errors"
)

// WrapMemory wraps a wazero api.Memory so a guest instance can serve as the
// traced address space.
func WrapMemory(mem api.Memory) *Wasm {
	if mem == nil {
		return nil
	}
	return &Wasm{Mem: mem}
}

// Wasm adapts wazero linear memory to tracedecode.Memory.
type Wasm struct {
	Mem api.Memory
}

// Read copies bytes out of linear memory. A range that crosses the end of
// memory yields the in-bounds prefix.
func (m *Wasm) Read(addr uint64, length uint32) ([]byte, error) {
	if length == 0 {
		return []byte{}, nil
	}
	size := uint64(m.Mem.Size())
	if addr >= size {
		return nil, errors.Unavailable(addr, length, nil)
	}

	n := length
	if avail := size - addr; avail < uint64(n) {
		n = uint32(avail)
	}
	view, ok := m.Mem.Read(uint32(addr), n)
	if !ok {
		return nil, errors.Unavailable(addr, length, nil)
	}

	// view aliases guest memory, which the guest may keep mutating.
	data := make([]byte, n)
	copy(data, view)
	if n < length {
		return data, errors.Partial(addr, length, n)
	}
	return data, nil
}

// Write stores data into linear memory.
func (m *Wasm) Write(addr uint64, data []byte) error {
	if addr > math.MaxUint32 || !m.Mem.Write(uint32(addr), data) {
		return errors.New(errors.PhaseLoad, errors.KindOutOfBounds).
			Addr(addr).
			Detail("write of %d bytes beyond linear memory (%d bytes)", len(data), m.Mem.Size()).
			Build()
	}
	return nil
}

// Size returns the current size of linear memory in bytes.
func (m *Wasm) Size() uint32 {
	if m.Mem == nil {
		return 0
	}
	return m.Mem.Size()
}

var _ tracedecode.Memory = (*Wasm)(nil)
