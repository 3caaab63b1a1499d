package memory

import (
	"sort"

	"github.com/wippyai/tracedecode/errors"
)

// Segment is a mapped range of a Buffer.
type Segment struct {
	Data []byte
	Addr uint64
}

// End returns the first address past the segment.
func (s Segment) End() uint64 {
	return s.Addr + uint64(len(s.Data))
}

// Buffer is an in-process address space built from non-overlapping segments.
// Adjacent segments read as one contiguous range.
type Buffer struct {
	segs []Segment
}

// NewBuffer maps segs and panics if any two overlap.
func NewBuffer(segs ...Segment) *Buffer {
	b := &Buffer{}
	for _, s := range segs {
		if err := b.Map(s.Addr, s.Data); err != nil {
			panic(err)
		}
	}
	return b
}

// Map adds a segment at addr. The data is not copied.
func (b *Buffer) Map(addr uint64, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	seg := Segment{Addr: addr, Data: data}
	if seg.End() < addr {
		return errors.New(errors.PhaseLoad, errors.KindOverflow).
			Addr(addr).
			Detail("segment of %d bytes wraps the address space", len(data)).
			Build()
	}

	i := sort.Search(len(b.segs), func(i int) bool { return b.segs[i].Addr >= addr })
	if i > 0 && b.segs[i-1].End() > addr {
		return overlap(addr, b.segs[i-1])
	}
	if i < len(b.segs) && seg.End() > b.segs[i].Addr {
		return overlap(addr, b.segs[i])
	}

	b.segs = append(b.segs, Segment{})
	copy(b.segs[i+1:], b.segs[i:])
	b.segs[i] = seg
	return nil
}

func overlap(addr uint64, with Segment) error {
	return errors.New(errors.PhaseLoad, errors.KindInvalidInput).
		Addr(addr).
		Detail("segment overlaps mapping at %#x-%#x", with.Addr, with.End()).
		Build()
}

// Segments returns the mappings in address order.
func (b *Buffer) Segments() []Segment {
	return append([]Segment(nil), b.segs...)
}

// Read implements tracedecode.Memory.
func (b *Buffer) Read(addr uint64, length uint32) ([]byte, error) {
	if length == 0 {
		return []byte{}, nil
	}

	i := sort.Search(len(b.segs), func(i int) bool { return b.segs[i].End() > addr })
	if i == len(b.segs) || b.segs[i].Addr > addr {
		return nil, errors.Unavailable(addr, length, nil)
	}

	out := make([]byte, 0, length)
	cur := addr
	for ; i < len(b.segs); i++ {
		seg := b.segs[i]
		if seg.Addr > cur {
			break
		}
		start := cur - seg.Addr
		take := uint64(len(seg.Data)) - start
		if need := uint64(length) - uint64(len(out)); take > need {
			take = need
		}
		out = append(out, seg.Data[start:start+take]...)
		cur += take
		if len(out) == int(length) {
			return out, nil
		}
	}

	return out, errors.Partial(addr, length, uint32(len(out)))
}
