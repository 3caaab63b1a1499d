package decode

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/tracedecode/decode/internal/abi"
	"github.com/wippyai/tracedecode/errors"
)

// Array decodes a structure whose trailing array holds a runtime number of
// elements. The count read from the header is clamped to Max, then
// Mult*count+Add elements are printed, each fetched with its own read.
type Array struct {
	elem    *Struct
	Struct  *Struct
	Count   string
	Tail    string
	tailOff uint32
	Max     uint32
	Mult    uint32
	Add     uint32
}

// NewArray describes the tail member of s sized by the count member. It
// panics if the tail cannot hold Mult*max+Add elements; schemas are static,
// so such a mismatch is a programming error.
func NewArray(s *Struct, count, tail string, max, mult, add uint32) *Array {
	cf := s.Fields[s.mustIndex(count)]
	if !cf.Kind.IsScalar() || cf.IsArray() {
		panic(errors.InvalidData(errors.PhaseDecode, []string{s.Name, count}, "not a scalar count"))
	}
	ti := s.mustIndex(tail)
	tf := s.Fields[ti]
	if tf.Kind != KindStruct || tf.Count == 0 {
		panic(errors.InvalidData(errors.PhaseDecode, []string{s.Name, tail}, "not a structure array"))
	}
	if ti != len(s.Fields)-1 {
		panic(errors.InvalidData(errors.PhaseDecode, []string{s.Name, tail}, "not the last member"))
	}
	most, ok := abi.Extent(max, mult, add)
	if !ok || most > tf.Count {
		panic(errors.Overflow(errors.PhaseDecode, []string{s.Name, tail},
			fmt.Sprintf("%d*%d+%d elements", mult, max, add), tf.Count))
	}
	return &Array{
		Struct:  s,
		Count:   count,
		Tail:    tail,
		Max:     max,
		Mult:    mult,
		Add:     add,
		elem:    tf.Elem,
		tailOff: s.offsets[ti],
	}
}

// Header returns the size of the members preceding the tail.
func (a *Array) Header() uint32 { return a.tailOff }

// Elem returns the element schema.
func (a *Array) Elem() *Struct { return a.elem }

// Extent returns the number of elements printed for a header count.
func (a *Array) Extent(count uint64) uint32 {
	n, _ := abi.Extent(abi.Clamp(count, a.Max), a.Mult, a.Add)
	return n
}

// FetchHeader reads only the header members of the structure at addr.
func (a *Array) FetchHeader(c *Context, addr uint64) (Record, error) {
	return c.Fetch(a.Struct, addr, nil, a.tailOff)
}

// Elements prints prefix, the tail name and the element list, using the
// count from hdr. The walk stops at the first element that cannot be read
// (marker in its place) or after one that is read only in part.
func (a *Array) Elements(c *Context, prefix string, hdr Record) {
	count, ok := hdr.Uint(a.Count)
	if !ok {
		c.w.Punct(prefix)
		c.w.Marker()
		return
	}
	n := a.Extent(count)
	if count > uint64(a.Max) {
		Logger().Debug("clamped element count",
			zap.String("struct", a.Struct.Name),
			zap.Uint64("count", count),
			zap.Uint32("max", a.Max),
			zap.Uint32("elements", n))
	}

	c.w.Name(prefix, a.Tail)
	c.w.Punct("[")
	size := uint64(a.elem.size)
	for i := uint32(0); i < n; i++ {
		if i > 0 {
			c.w.Punct(", ")
		}
		addr, ok := abi.SafeAddAddr(hdr.Addr, uint64(a.tailOff)+uint64(i)*size)
		if !ok {
			c.w.Marker()
			break
		}
		rec, err := c.Fetch(a.elem, addr, nil, 0)
		if errors.IsUnavailable(err) || rec.Valid() == 0 {
			c.w.Marker()
			break
		}
		c.Render(rec)
		if !rec.Complete() {
			if i+1 < n {
				c.w.Punct(", ")
				c.w.Marker()
			}
			break
		}
	}
	c.w.Punct("]")
}
