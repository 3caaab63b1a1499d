package decode

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/tracedecode"
	"github.com/wippyai/tracedecode/decode/internal/abi"
	"github.com/wippyai/tracedecode/errors"
	"github.com/wippyai/tracedecode/xlat"
)

// Context carries the state of one Decode call: the traced memory, the
// output writer and the pointer depth. Handlers receive it and must not keep
// it after they return.
type Context struct {
	mem   tracedecode.Memory
	w     *Writer
	cfg   *Config
	depth int
}

func newContext(mem tracedecode.Memory, sink tracedecode.Sink, cfg *Config) *Context {
	return &Context{mem: mem, w: NewWriter(sink), cfg: cfg}
}

func (c *Context) Writer() *Writer { return c.w }

func (c *Context) Config() *Config { return c.cfg }

// Fetch reads s at addr. known holds bytes of the structure that the caller
// already copied from the traced process; only the remainder is read. limit,
// when non-zero and below the structure size, caps the bytes consulted.
//
// The returned record covers the valid prefix. The error is nil, a partial
// read error, or an unavailable read error; in the last case the record holds
// only the known bytes.
func (c *Context) Fetch(s *Struct, addr uint64, known []byte, limit uint32) (Record, error) {
	size := s.size
	if limit > 0 && limit < size {
		size = limit
	}

	data := make([]byte, size)
	n := uint32(copy(data, known))
	if n == size {
		return NewRecord(s, addr, data, c.cfg.ByteOrder), nil
	}

	start, ok := abi.SafeAddAddr(addr, uint64(n))
	if !ok {
		err := errors.Unavailable(addr, size, nil)
		return NewRecord(s, addr, data[:n], c.cfg.ByteOrder), err
	}

	want := size - n
	buf, err := c.mem.Read(start, want)
	got := uint32(copy(data[n:], buf))
	switch {
	case err == nil && got < want:
		err = errors.Partial(start, want, got)
		fallthrough
	case errors.IsPartial(err):
		Logger().Debug("partial read",
			zap.String("struct", s.Name),
			zap.Uint64("addr", start),
			zap.Uint32("want", want),
			zap.Uint32("got", got))
		return NewRecord(s, addr, data[:n+got], c.cfg.ByteOrder), err
	case err != nil:
		Logger().Debug("unavailable read",
			zap.String("struct", s.Name),
			zap.Uint64("addr", start),
			zap.Uint32("want", want),
			zap.Error(err))
		if !errors.IsUnavailable(err) {
			err = errors.Unavailable(start, want, err)
		}
		return NewRecord(s, addr, data[:n], c.cfg.ByteOrder), err
	}
	return NewRecord(s, addr, data, c.cfg.ByteOrder), nil
}

// Read fetches s at addr. If nothing can be read the address is printed
// instead and ok is false.
func (c *Context) Read(s *Struct, addr uint64) (Record, bool) {
	if addr == 0 {
		c.w.Addr(0)
		return Record{}, false
	}
	rec, err := c.Fetch(s, addr, nil, 0)
	if err != nil && rec.Valid() == 0 {
		c.w.Addr(addr)
		return rec, false
	}
	return rec, true
}

// Struct prints the structure at addr with all visible members, or its
// address when it cannot be read.
func (c *Context) Struct(s *Struct, addr uint64) bool {
	rec, ok := c.Read(s, addr)
	if ok {
		c.Render(rec)
	}
	return ok
}

// Render prints rec as "{...}" followed by the schema's comment.
func (c *Context) Render(rec Record) {
	names := rec.schema.Visible()
	if len(names) == 0 {
		c.w.Punct("{}")
	} else {
		c.Fields(rec, "{", names...)
		c.w.Punct("}")
	}
	if rec.schema.comment != nil {
		c.w.Comment(rec.schema.comment(c, rec))
	}
}

// Fields prints the named members of rec in order, prefix before the first
// and ", " before the rest. At the first member not entirely within the
// valid prefix the marker is printed and Fields returns false.
func (c *Context) Fields(rec Record, prefix string, names ...string) bool {
	sep := prefix
	for _, name := range names {
		i := rec.schema.mustIndex(name)
		if !rec.fits(i) {
			c.w.Punct(sep)
			c.w.Marker()
			return false
		}
		c.field(sep, rec, i)
		sep = ", "
	}
	return true
}

func (c *Context) field(prefix string, rec Record, i int) {
	f := rec.schema.Fields[i]
	off := rec.schema.offsets[i]

	switch {
	case f.Kind == KindChars:
		b, _ := rec.Chars(f.Name)
		c.w.FieldString(prefix, f.Name, b)
	case f.IsArray():
		c.w.Name(prefix, f.Name)
		c.w.Punct("[")
		for j := uint32(0); j < f.Count; j++ {
			if j > 0 {
				c.w.Punct(", ")
			}
			if f.Kind == KindStruct {
				c.Render(rec.elem(i, j))
				continue
			}
			c.scalar(f, rec.scalar(off+j*f.Kind.Width(), f.Kind))
		}
		c.w.Punct("]")
	case f.Kind == KindStruct:
		c.w.Name(prefix, f.Name)
		c.Render(rec.elem(i, 0))
	case f.Kind == KindPtr:
		c.w.Name(prefix, f.Name)
		c.deref(f.Elem, rec.scalar(off, KindU64))
	default:
		c.w.Name(prefix, f.Name)
		c.scalar(f, rec.scalar(off, f.Kind))
	}
}

func (c *Context) scalar(f Field, v uint64) {
	switch f.Format {
	case FormatD:
		c.w.Value(strconv.FormatInt(signExtend(v, f.Kind.Width()), 10))
	case FormatU:
		c.w.Value(strconv.FormatUint(v, 10))
	case FormatX:
		c.w.Value(xlat.Hex(v))
	case FormatFlags:
		c.w.Sym(xlat.Flags(v, f.Table(c.cfg.Tables), f.Dflt))
	case FormatXVal:
		c.w.Sym(xlat.Enum(v, f.Table(c.cfg.Tables), f.Dflt))
	case FormatIfIndex:
		c.w.IfIndex(int32(v), c.cfg.IfName)
	default:
		if f.Kind.Signed() {
			c.w.Value(strconv.FormatInt(signExtend(v, f.Kind.Width()), 10))
		} else {
			c.w.Value(strconv.FormatUint(v, 10))
		}
	}
}

func (c *Context) deref(s *Struct, addr uint64) {
	if addr == 0 {
		c.w.Addr(0)
		return
	}
	if c.depth >= c.cfg.MaxDepth {
		Logger().Debug("pointer depth limit reached",
			zap.String("struct", s.Name),
			zap.Uint64("addr", addr),
			zap.Int("max_depth", c.cfg.MaxDepth))
		c.w.Addr(addr)
		return
	}
	c.depth++
	c.Struct(s, addr)
	c.depth--
}
