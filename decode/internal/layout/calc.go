package layout

import (
	"fmt"

	"github.com/wippyai/tracedecode/decode/internal/abi"
)

// Info is the computed layout of a structure.
type Info struct {
	FieldOffs map[string]uint32
	Offsets   []uint32
	Size      uint32
	Align     uint32
}

// Member is one structure member. Count > 1 declares a fixed array of
// Count elements of Size bytes each.
type Member struct {
	Name  string
	Size  uint32
	Align uint32
	Count uint32
}

// Extent returns the number of bytes the member occupies.
func (m Member) Extent() (uint32, bool) {
	if m.Count <= 1 {
		return m.Size, true
	}
	return abi.SafeMulU32(m.Size, m.Count)
}

// Struct lays members out in declaration order.
func Struct(members []Member) (Info, error) {
	if len(members) == 0 {
		return Info{Size: 0, Align: 1}, nil
	}

	fieldOffs := make(map[string]uint32, len(members))
	offsets := make([]uint32, len(members))
	maxAlign := uint32(1)
	offset := uint32(0)

	for i, m := range members {
		if m.Align == 0 || m.Align&(m.Align-1) != 0 {
			return Info{}, fmt.Errorf("member %q: alignment %d is not a power of two", m.Name, m.Align)
		}
		if _, dup := fieldOffs[m.Name]; dup {
			return Info{}, fmt.Errorf("member %q declared twice", m.Name)
		}

		offset = abi.AlignTo(offset, m.Align)
		fieldOffs[m.Name] = offset
		offsets[i] = offset

		if m.Align > maxAlign {
			maxAlign = m.Align
		}

		extent, ok := m.Extent()
		if !ok {
			return Info{}, fmt.Errorf("member %q: %d elements of %d bytes overflow", m.Name, m.Count, m.Size)
		}
		next, ok := abi.SafeAddU32(offset, extent)
		if !ok || next > abi.MaxRecordSize {
			return Info{}, fmt.Errorf("member %q: structure exceeds %d bytes", m.Name, abi.MaxRecordSize)
		}
		offset = next
	}

	return Info{
		Size:      abi.AlignTo(offset, maxAlign),
		Align:     maxAlign,
		FieldOffs: fieldOffs,
		Offsets:   offsets,
	}, nil
}
